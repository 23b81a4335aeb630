package governance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Outcome of a policy evaluation.
const (
	OutcomeAutoApproved = "auto_approved"
	OutcomeInReview     = "in_review"
)

// EvaluationInput carries the signals the policy gates on. RiskScore and
// Confidence are produced upstream; the engine does not compute them.
type EvaluationInput struct {
	RequestedDiscountPct decimal.Decimal // highest line-item percentage on the request
	RiskScore            int             // 0-100
	Confidence           float64         // 0.0-1.0
}

// Decision is the routing result with per-gate reasons for explainability.
type Decision struct {
	Outcome string
	Reasons []string
}

// AutoApproved reports whether the request cleared every gate.
func (d Decision) AutoApproved() bool { return d.Outcome == OutcomeAutoApproved }

// Evaluate routes a discount request against the company policy.
// Gate order: enabled, human-review override, discount ceiling, risk ceiling,
// confidence floor. The human-review override makes the thresholds moot, so
// none of them is consulted (or mentioned) once it fires.
func Evaluate(cfg Config, in EvaluationInput) Decision {
	if !cfg.Enabled {
		return Decision{
			Outcome: OutcomeInReview,
			Reasons: []string{"AI assistance is disabled for this company"},
		}
	}
	if cfg.RequireHumanReview {
		return Decision{
			Outcome: OutcomeInReview,
			Reasons: []string{"company policy requires human review for every request"},
		}
	}
	if in.RequestedDiscountPct.GreaterThan(cfg.MaxAutoApproveDiscountPct) {
		return Decision{
			Outcome: OutcomeInReview,
			Reasons: []string{fmt.Sprintf("requested discount %s%% exceeds the auto-approval ceiling of %s%%",
				in.RequestedDiscountPct, cfg.MaxAutoApproveDiscountPct)},
		}
	}
	if in.RiskScore > cfg.MaxRiskScoreForAuto {
		return Decision{
			Outcome: OutcomeInReview,
			Reasons: []string{fmt.Sprintf("risk score %d exceeds the auto-approval ceiling of %d",
				in.RiskScore, cfg.MaxRiskScoreForAuto)},
		}
	}
	if in.Confidence < cfg.MinConfidenceForAuto {
		return Decision{
			Outcome: OutcomeInReview,
			Reasons: []string{fmt.Sprintf("confidence %.2f is below the auto-approval floor of %.2f",
				in.Confidence, cfg.MinConfidenceForAuto)},
		}
	}
	return Decision{
		Outcome: OutcomeAutoApproved,
		Reasons: []string{fmt.Sprintf("discount %s%%, risk %d and confidence %.2f are all within policy",
			in.RequestedDiscountPct, in.RiskScore, in.Confidence)},
	}
}
