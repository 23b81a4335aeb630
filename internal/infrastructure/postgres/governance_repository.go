package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

var _ repository.GovernanceRepository = (*GovernanceRepo)(nil)

const governanceColumns = `company_id, enabled, autonomy_level, max_risk_score_for_auto, min_confidence_for_auto, require_human_review, audit_enabled, explainability_enabled, max_auto_approve_discount_pct, incremental_learning, retraining_frequency_days, updated_at`

// GovernanceRepo implements GovernanceRepository on PostgreSQL (usable with
// pool or tx). One row per company keyed by company_id.
type GovernanceRepo struct {
	q Querier
}

// NewGovernanceRepository builds the adapter. Pass a pool or tx (Querier).
func NewGovernanceRepository(q Querier) *GovernanceRepo {
	return &GovernanceRepo{q: q}
}

// GetByCompany fetches a company's governance config.
func (r *GovernanceRepo) GetByCompany(companyID string) (*governance.Config, error) {
	query := `SELECT ` + governanceColumns + ` FROM governance_configs WHERE company_id = $1`
	var cfg governance.Config
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&cfg.CompanyID, &cfg.Enabled, &cfg.AutonomyLevel,
		&cfg.MaxRiskScoreForAuto, &cfg.MinConfidenceForAuto,
		&cfg.RequireHumanReview, &cfg.AuditEnabled, &cfg.ExplainabilityEnabled,
		&cfg.MaxAutoApproveDiscountPct, &cfg.IncrementalLearning,
		&cfg.RetrainingFrequencyDays, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get governance config: %w", err)
	}
	return &cfg, nil
}

// Upsert replaces the company's config wholesale. Last writer wins.
func (r *GovernanceRepo) Upsert(cfg *governance.Config) error {
	query := `
		INSERT INTO governance_configs (` + governanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (company_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			autonomy_level = EXCLUDED.autonomy_level,
			max_risk_score_for_auto = EXCLUDED.max_risk_score_for_auto,
			min_confidence_for_auto = EXCLUDED.min_confidence_for_auto,
			require_human_review = EXCLUDED.require_human_review,
			audit_enabled = EXCLUDED.audit_enabled,
			explainability_enabled = EXCLUDED.explainability_enabled,
			max_auto_approve_discount_pct = EXCLUDED.max_auto_approve_discount_pct,
			incremental_learning = EXCLUDED.incremental_learning,
			retraining_frequency_days = EXCLUDED.retraining_frequency_days,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		cfg.CompanyID, cfg.Enabled, cfg.AutonomyLevel,
		cfg.MaxRiskScoreForAuto, cfg.MinConfidenceForAuto,
		cfg.RequireHumanReview, cfg.AuditEnabled, cfg.ExplainabilityEnabled,
		cfg.MaxAutoApproveDiscountPct, cfg.IncrementalLearning,
		cfg.RetrainingFrequencyDays, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert governance config: %w", err)
	}
	return nil
}
