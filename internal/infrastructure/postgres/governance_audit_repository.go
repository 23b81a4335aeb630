package postgres

import (
	"context"
	"fmt"

	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

var _ repository.GovernanceAuditRepository = (*GovernanceAuditRepo)(nil)

// GovernanceAuditRepo implements GovernanceAuditRepository on PostgreSQL
// (usable with pool or tx). The trail is append-only.
type GovernanceAuditRepo struct {
	q Querier
}

// NewGovernanceAuditRepository builds the adapter. Pass a pool or tx (Querier).
func NewGovernanceAuditRepository(q Querier) *GovernanceAuditRepo {
	return &GovernanceAuditRepo{q: q}
}

// Append persists one audit entry.
func (r *GovernanceAuditRepo) Append(entry *entity.GovernanceAuditEntry) error {
	query := `
		INSERT INTO governance_audit_log (id, company_id, event_type, actor_id, request_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.CompanyID, entry.EventType, entry.ActorID,
		entry.RequestID, entry.Detail, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByCompany returns a company's audit trail, newest first.
func (r *GovernanceAuditRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.GovernanceAuditEntry, error) {
	query := `
		SELECT id, company_id, event_type, actor_id, request_id, detail, created_at
		FROM governance_audit_log WHERE company_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.GovernanceAuditEntry
	for rows.Next() {
		var e entity.GovernanceAuditEntry
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.EventType, &e.ActorID,
			&e.RequestID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
