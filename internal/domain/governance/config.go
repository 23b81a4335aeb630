// Package governance holds the per-company AI approval policy: the
// configuration record, its canonical presets, the derived descriptions, and
// the decision engine that routes discount requests to auto-approval or
// human review.
package governance

import (
	"fmt"
	"time"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Config is a company-scoped AI governance policy. One record per company;
// created at onboarding, replaced wholesale on update, never deleted.
type Config struct {
	CompanyID                 string
	Enabled                   bool
	AutonomyLevel             int             // 0-100: how much authority is delegated to the AI
	MaxRiskScoreForAuto       int             // 0-100: requests above this risk always go to a human
	MinConfidenceForAuto      float64         // 0.0-1.0: requests below this confidence always go to a human
	RequireHumanReview        bool            // overrides every auto-approval threshold
	AuditEnabled              bool
	ExplainabilityEnabled     bool
	MaxAutoApproveDiscountPct decimal.Decimal // discounts above this percentage always go to a human
	IncrementalLearning       bool
	RetrainingFrequencyDays   int
	UpdatedAt                 time.Time
}

// Validate bounds-checks the numeric fields. The thresholds are meaningless
// outside their ranges even when RequireHumanReview makes them moot.
func (c Config) Validate() error {
	if c.AutonomyLevel < 0 || c.AutonomyLevel > 100 {
		return fmt.Errorf("%w: autonomy level must be between 0 and 100, got %d", domain.ErrInvalidInput, c.AutonomyLevel)
	}
	if c.MaxRiskScoreForAuto < 0 || c.MaxRiskScoreForAuto > 100 {
		return fmt.Errorf("%w: max risk score must be between 0 and 100, got %d", domain.ErrInvalidInput, c.MaxRiskScoreForAuto)
	}
	if c.MinConfidenceForAuto < 0 || c.MinConfidenceForAuto > 1 {
		return fmt.Errorf("%w: min confidence must be between 0.0 and 1.0, got %.2f", domain.ErrInvalidInput, c.MinConfidenceForAuto)
	}
	if c.MaxAutoApproveDiscountPct.IsNegative() || c.MaxAutoApproveDiscountPct.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: max auto-approve discount must be between 0 and 100, got %s", domain.ErrInvalidInput, c.MaxAutoApproveDiscountPct)
	}
	if c.RetrainingFrequencyDays < 0 {
		return fmt.Errorf("%w: retraining frequency cannot be negative, got %d", domain.ErrInvalidInput, c.RetrainingFrequencyDays)
	}
	return nil
}

// DefaultConfig returns the configuration a company starts with (Balanced).
func DefaultConfig(companyID string) Config {
	return ApplyPresetValues(PresetBalanced, companyID)
}
