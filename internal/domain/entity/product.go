package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item. ListPrice is the undiscounted unit price
// used as the base price of discount request line items; UnitCost backs margin
// checks on the sales side.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // unique per company
	Name        string
	Description string
	Category    string
	ListPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	Currency    string // 3-letter code, uppercase
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
