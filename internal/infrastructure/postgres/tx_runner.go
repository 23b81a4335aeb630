package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

var _ ports.DecisionTxRunner = (*DecisionTxRunner)(nil)

// DecisionTxRunner runs the decision write set inside one transaction,
// handing the callback repositories bound to the tx.
type DecisionTxRunner struct {
	pool *pgxpool.Pool
}

// NewDecisionTxRunner builds the runner on the shared pool.
func NewDecisionTxRunner(pool *pgxpool.Pool) *DecisionTxRunner {
	return &DecisionTxRunner{pool: pool}
}

// Run begins a transaction, invokes fn with tx-bound repositories and commits.
// Any error rolls the whole write set back.
func (t *DecisionTxRunner) Run(ctx context.Context, fn func(
	requestRepo repository.DiscountRequestRepository,
	auditRepo repository.GovernanceAuditRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewDiscountRequestRepository(tx), NewGovernanceAuditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
