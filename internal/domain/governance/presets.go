package governance

import (
	"fmt"
	"time"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Preset names a fixed bundle of governance parameters. Presets are factory
// defaults, not storage rows.
type Preset string

const (
	PresetConservative Preset = "conservative"
	PresetBalanced     Preset = "balanced"
	PresetAggressive   Preset = "aggressive"
	PresetDisabled     Preset = "disabled"
)

// ParsePreset maps a name to a Preset, rejecting unknown values.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case PresetConservative, PresetBalanced, PresetAggressive, PresetDisabled:
		return Preset(name), nil
	default:
		return "", fmt.Errorf("%w: unknown governance preset %q", domain.ErrInvalidInput, name)
	}
}

// ApplyPresetValues returns the canonical parameter bundle for the preset,
// bound to the given company.
func ApplyPresetValues(p Preset, companyID string) Config {
	cfg := Config{
		CompanyID:             companyID,
		AuditEnabled:          true,
		ExplainabilityEnabled: true,
		UpdatedAt:             time.Now(),
	}
	switch p {
	case PresetConservative:
		cfg.Enabled = true
		cfg.AutonomyLevel = 10
		cfg.MaxRiskScoreForAuto = 0
		cfg.MinConfidenceForAuto = 1.0
		cfg.RequireHumanReview = true
		cfg.MaxAutoApproveDiscountPct = decimal.Zero
		cfg.IncrementalLearning = true
		cfg.RetrainingFrequencyDays = 30
	case PresetAggressive:
		cfg.Enabled = true
		cfg.AutonomyLevel = 85
		cfg.MaxRiskScoreForAuto = 80
		cfg.MinConfidenceForAuto = 0.60
		cfg.RequireHumanReview = false
		cfg.MaxAutoApproveDiscountPct = decimal.NewFromInt(30)
		cfg.IncrementalLearning = true
		cfg.RetrainingFrequencyDays = 15
	case PresetDisabled:
		cfg.Enabled = false
		cfg.AutonomyLevel = 0
		cfg.MaxRiskScoreForAuto = 0
		cfg.MinConfidenceForAuto = 1.0
		cfg.RequireHumanReview = true
		cfg.MaxAutoApproveDiscountPct = decimal.Zero
		cfg.IncrementalLearning = false
		cfg.RetrainingFrequencyDays = 0
	default: // PresetBalanced
		cfg.Enabled = true
		cfg.AutonomyLevel = 50
		cfg.MaxRiskScoreForAuto = 60
		cfg.MinConfidenceForAuto = 0.75
		cfg.RequireHumanReview = false
		cfg.MaxAutoApproveDiscountPct = decimal.NewFromInt(15)
		cfg.IncrementalLearning = true
		cfg.RetrainingFrequencyDays = 30
	}
	return cfg
}
