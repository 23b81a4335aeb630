package entity

import "time"

// Application roles.
const (
	RoleAdmin    = "admin"
	RoleApprover = "approver"
	RoleSales    = "sales"
)

// User represents an application user belonging to a company.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string
	Name         string
	Role         string // see Role* constants
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
