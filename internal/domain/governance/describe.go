package governance

import "fmt"

// AutonomyDescription buckets the autonomy level into a five-tier label.
// Pure function of the config; recomputed on every read, never stored.
func AutonomyDescription(cfg Config) string {
	switch level := cfg.AutonomyLevel; {
	case level < 25:
		return "Conservative: AI provides recommendations only"
	case level < 50:
		return "Low autonomy: AI auto-approves only the safest requests"
	case level < 75:
		return "Moderate autonomy: AI handles routine approvals"
	case level < 90:
		return "High autonomy: AI handles most approvals"
	default:
		return "Full autonomy: AI approves everything within policy"
	}
}

// Summary renders a one-line human-readable policy description.
// RequireHumanReview takes precedence over the thresholds, so the summary
// never mentions auto-approval limits when every request goes to a human.
func Summary(cfg Config) string {
	if !cfg.Enabled {
		return "AI assistance is disabled; all discount requests require human review"
	}
	if cfg.RequireHumanReview {
		return fmt.Sprintf("AI enabled at %d%% autonomy; every request is routed to human review", cfg.AutonomyLevel)
	}
	return fmt.Sprintf(
		"AI enabled at %d%% autonomy; auto-approves discounts up to %s%% when risk score is at most %d and confidence is at least %.2f",
		cfg.AutonomyLevel,
		cfg.MaxAutoApproveDiscountPct.String(),
		cfg.MaxRiskScoreForAuto,
		cfg.MinConfidenceForAuto,
	)
}
