// Package ports declares the application-owned interfaces implemented by
// infrastructure adapters (cache, events, pdf, transactions).
package ports

import (
	"context"

	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

// GovernanceCache is a read-through cache for per-company governance configs.
// A miss returns (nil, nil).
type GovernanceCache interface {
	Get(ctx context.Context, companyID string) (*governance.Config, error)
	Set(ctx context.Context, cfg *governance.Config) error
	Invalidate(ctx context.Context, companyID string) error
}

// DecisionEvent is published whenever a discount request is decided, by the
// engine or by a human.
type DecisionEvent struct {
	RequestID    string  `json:"request_id"`
	CompanyID    string  `json:"company_id"`
	Status       string  `json:"status"`
	RiskScore    int     `json:"risk_score"`
	AIConfidence float64 `json:"ai_confidence"`
	DecidedBy    string  `json:"decided_by"`
	Reason       string  `json:"reason"`
	DecidedAt    string  `json:"decided_at"`
}

// DecisionEventPublisher pushes decision events to the event stream.
// Publishing is best effort: callers log failures, the decision itself is
// already durable.
type DecisionEventPublisher interface {
	Publish(ctx context.Context, event DecisionEvent) error
}

// DecisionReportGenerator renders the decision report PDF for a request.
type DecisionReportGenerator interface {
	GenerateDecisionReport(ctx context.Context, request *entity.DiscountRequest, company *entity.Company, customer *entity.Customer) ([]byte, error)
}

// DecisionTxRunner runs the decision write set (request update + audit entry)
// inside one transaction.
type DecisionTxRunner interface {
	Run(ctx context.Context, fn func(
		requestRepo repository.DiscountRequestRepository,
		auditRepo repository.GovernanceAuditRepository,
	) error) error
}
