package repository

import (
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
)

// GovernanceRepository is the persistence port for the per-company governance
// configuration. One row per company; Upsert replaces it wholesale (last
// writer wins, no version token).
type GovernanceRepository interface {
	GetByCompany(companyID string) (*governance.Config, error)
	Upsert(cfg *governance.Config) error
}

// GovernanceAuditRepository appends to the governance audit trail.
type GovernanceAuditRepository interface {
	Append(entry *entity.GovernanceAuditEntry) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.GovernanceAuditEntry, error)
}
