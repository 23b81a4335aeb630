package governance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
)

func TestApplyPresetValues(t *testing.T) {
	cases := []struct {
		preset     governance.Preset
		enabled    bool
		autonomy   int
		maxRisk    int
		minConf    float64
		humanRev   bool
		maxPct     string
		learning   bool
		retrainDay int
	}{
		{governance.PresetConservative, true, 10, 0, 1.0, true, "0", true, 30},
		{governance.PresetBalanced, true, 50, 60, 0.75, false, "15", true, 30},
		{governance.PresetAggressive, true, 85, 80, 0.60, false, "30", true, 15},
		{governance.PresetDisabled, false, 0, 0, 1.0, true, "0", false, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := governance.ApplyPresetValues(tc.preset, "company-1")
			assert.Equal(t, "company-1", cfg.CompanyID)
			assert.Equal(t, tc.enabled, cfg.Enabled)
			assert.Equal(t, tc.autonomy, cfg.AutonomyLevel)
			assert.Equal(t, tc.maxRisk, cfg.MaxRiskScoreForAuto)
			assert.Equal(t, tc.minConf, cfg.MinConfidenceForAuto)
			assert.Equal(t, tc.humanRev, cfg.RequireHumanReview)
			assert.True(t, cfg.MaxAutoApproveDiscountPct.Equal(decimal.RequireFromString(tc.maxPct)))
			assert.Equal(t, tc.learning, cfg.IncrementalLearning)
			assert.Equal(t, tc.retrainDay, cfg.RetrainingFrequencyDays)
			assert.True(t, cfg.AuditEnabled)
			assert.True(t, cfg.ExplainabilityEnabled)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"conservative", "balanced", "aggressive", "disabled"} {
		p, err := governance.ParsePreset(name)
		require.NoError(t, err)
		assert.Equal(t, governance.Preset(name), p)
	}

	_, err := governance.ParsePreset("yolo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigValidate(t *testing.T) {
	valid := governance.DefaultConfig("c")
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*governance.Config)
	}{
		{"autonomy below range", func(c *governance.Config) { c.AutonomyLevel = -1 }},
		{"autonomy above range", func(c *governance.Config) { c.AutonomyLevel = 101 }},
		{"risk above range", func(c *governance.Config) { c.MaxRiskScoreForAuto = 101 }},
		{"confidence above range", func(c *governance.Config) { c.MinConfidenceForAuto = 1.1 }},
		{"confidence below range", func(c *governance.Config) { c.MinConfidenceForAuto = -0.1 }},
		{"discount pct above range", func(c *governance.Config) { c.MaxAutoApproveDiscountPct = decimal.NewFromInt(101) }},
		{"discount pct negative", func(c *governance.Config) { c.MaxAutoApproveDiscountPct = decimal.NewFromInt(-1) }},
		{"negative retraining days", func(c *governance.Config) { c.RetrainingFrequencyDays = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := governance.DefaultConfig("c")
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidInput)
		})
	}
}

func TestAutonomyDescription_Tiers(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, "Conservative: AI provides recommendations only"},
		{24, "Conservative: AI provides recommendations only"},
		{25, "Low autonomy: AI auto-approves only the safest requests"},
		{49, "Low autonomy: AI auto-approves only the safest requests"},
		{50, "Moderate autonomy: AI handles routine approvals"},
		{74, "Moderate autonomy: AI handles routine approvals"},
		{75, "High autonomy: AI handles most approvals"},
		{89, "High autonomy: AI handles most approvals"},
		{90, "Full autonomy: AI approves everything within policy"},
		{100, "Full autonomy: AI approves everything within policy"},
	}
	for _, tc := range cases {
		cfg := governance.Config{AutonomyLevel: tc.level}
		assert.Equal(t, tc.want, governance.AutonomyDescription(cfg), "level %d", tc.level)
	}
}

func TestSummary(t *testing.T) {
	disabled := governance.ApplyPresetValues(governance.PresetDisabled, "c")
	assert.Equal(t,
		"AI assistance is disabled; all discount requests require human review",
		governance.Summary(disabled))

	conservative := governance.ApplyPresetValues(governance.PresetConservative, "c")
	assert.Equal(t,
		"AI enabled at 10% autonomy; every request is routed to human review",
		governance.Summary(conservative))

	balanced := governance.ApplyPresetValues(governance.PresetBalanced, "c")
	assert.Equal(t,
		"AI enabled at 50% autonomy; auto-approves discounts up to 15% when risk score is at most 60 and confidence is at least 0.75",
		governance.Summary(balanced))
}

func TestEvaluate_GateOrder(t *testing.T) {
	balanced := governance.ApplyPresetValues(governance.PresetBalanced, "c")

	t.Run("disabled wins over everything", func(t *testing.T) {
		cfg := balanced
		cfg.Enabled = false
		d := governance.Evaluate(cfg, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(5), RiskScore: 1, Confidence: 0.99,
		})
		assert.Equal(t, governance.OutcomeInReview, d.Outcome)
		require.Len(t, d.Reasons, 1)
		assert.Equal(t, "AI assistance is disabled for this company", d.Reasons[0])
	})

	t.Run("human review override never mentions thresholds", func(t *testing.T) {
		cfg := balanced
		cfg.RequireHumanReview = true
		d := governance.Evaluate(cfg, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(99), RiskScore: 99, Confidence: 0.01,
		})
		assert.Equal(t, governance.OutcomeInReview, d.Outcome)
		require.Len(t, d.Reasons, 1)
		assert.Equal(t, "company policy requires human review for every request", d.Reasons[0])
	})

	t.Run("discount above ceiling", func(t *testing.T) {
		d := governance.Evaluate(balanced, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(16), RiskScore: 1, Confidence: 0.99,
		})
		assert.Equal(t, governance.OutcomeInReview, d.Outcome)
		assert.Contains(t, d.Reasons[0], "exceeds the auto-approval ceiling of 15%")
	})

	t.Run("risk above ceiling", func(t *testing.T) {
		d := governance.Evaluate(balanced, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(10), RiskScore: 61, Confidence: 0.99,
		})
		assert.Equal(t, governance.OutcomeInReview, d.Outcome)
		assert.Contains(t, d.Reasons[0], "risk score 61 exceeds the auto-approval ceiling of 60")
	})

	t.Run("confidence below floor", func(t *testing.T) {
		d := governance.Evaluate(balanced, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(10), RiskScore: 10, Confidence: 0.5,
		})
		assert.Equal(t, governance.OutcomeInReview, d.Outcome)
		assert.Contains(t, d.Reasons[0], "below the auto-approval floor of 0.75")
	})

	t.Run("all gates pass", func(t *testing.T) {
		d := governance.Evaluate(balanced, governance.EvaluationInput{
			RequestedDiscountPct: decimal.NewFromInt(15), RiskScore: 60, Confidence: 0.75,
		})
		assert.Equal(t, governance.OutcomeAutoApproved, d.Outcome)
		assert.True(t, d.AutoApproved())
		assert.Contains(t, d.Reasons[0], "within policy")
	})
}
