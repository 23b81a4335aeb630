package entity

import "time"

// Customer represents a company's customer, the counterparty of a discount
// request.
type Customer struct {
	ID        string
	CompanyID string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Segment   string // enterprise, mid-market, smb
	CreatedAt time.Time
	UpdatedAt time.Time
}
