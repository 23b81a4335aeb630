package entity

import "time"

// Company represents an organization/tenant. Every piece of business data is
// scoped to exactly one company.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
