package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UpdateGovernanceRequest replaces the company policy wholesale: callers send
// the full desired state, there is no partial merge.
type UpdateGovernanceRequest struct {
	Enabled                   bool            `json:"enabled"`
	AutonomyLevel             int             `json:"autonomy_level" validate:"min=0,max=100"`
	MaxRiskScoreForAuto       int             `json:"max_risk_score_for_auto" validate:"min=0,max=100"`
	MinConfidenceForAuto      float64         `json:"min_confidence_for_auto" validate:"min=0,max=1"`
	RequireHumanReview        bool            `json:"require_human_review"`
	AuditEnabled              bool            `json:"audit_enabled"`
	ExplainabilityEnabled     bool            `json:"explainability_enabled"`
	MaxAutoApproveDiscountPct decimal.Decimal `json:"max_auto_approve_discount_pct"`
	IncrementalLearning       bool            `json:"incremental_learning"`
	RetrainingFrequencyDays   int             `json:"retraining_frequency_days" validate:"min=0"`
}

// GovernanceResponse policy output with the derived display fields recomputed
// on every read.
type GovernanceResponse struct {
	CompanyID                 string          `json:"company_id"`
	Enabled                   bool            `json:"enabled"`
	AutonomyLevel             int             `json:"autonomy_level"`
	AutonomyDescription       string          `json:"autonomy_description"`
	Summary                   string          `json:"summary"`
	MaxRiskScoreForAuto       int             `json:"max_risk_score_for_auto"`
	MinConfidenceForAuto      float64         `json:"min_confidence_for_auto"`
	RequireHumanReview        bool            `json:"require_human_review"`
	AuditEnabled              bool            `json:"audit_enabled"`
	ExplainabilityEnabled     bool            `json:"explainability_enabled"`
	MaxAutoApproveDiscountPct decimal.Decimal `json:"max_auto_approve_discount_pct"`
	IncrementalLearning       bool            `json:"incremental_learning"`
	RetrainingFrequencyDays   int             `json:"retraining_frequency_days"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

// GovernanceAuditEntryResponse one audit trail entry.
type GovernanceAuditEntryResponse struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	ActorID   string          `json:"actor_id"`
	RequestID string          `json:"request_id,omitempty"`
	Detail    json.RawMessage `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// GovernanceAuditListResponse paginated audit trail.
type GovernanceAuditListResponse struct {
	Tenant TenantInfo                     `json:"tenant"`
	Items  []GovernanceAuditEntryResponse `json:"items"`
	Page   PageResponse                   `json:"page"`
}
