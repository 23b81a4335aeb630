package entity

import (
	"encoding/json"
	"time"
)

// Governance audit event types.
const (
	AuditEventConfigUpdated = "config_updated"
	AuditEventPresetApplied = "preset_applied"
	AuditEventAutoApproved  = "auto_approved"
	AuditEventSentToReview  = "sent_to_review"
	AuditEventHumanDecision = "human_decision"
)

// GovernanceAuditEntry is one line of the governance audit trail. Written only
// when the company's config has AuditEnabled.
type GovernanceAuditEntry struct {
	ID        string
	CompanyID string
	EventType string // see AuditEvent* constants
	ActorID   string // user id or "ai"
	RequestID string // discount request id when applicable
	Detail    json.RawMessage
	CreatedAt time.Time
}
