package entity

import (
	"time"

	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
	"github.com/shopspring/decimal"
)

// Discount request lifecycle states.
const (
	RequestStatusPending      = "pending"
	RequestStatusAutoApproved = "auto_approved"
	RequestStatusInReview     = "in_review"
	RequestStatusApproved     = "approved"
	RequestStatusRejected     = "rejected"
)

// DiscountRequest is the approval aggregate: line items plus the AI signals
// and the decision trail. RiskScore and AIConfidence are produced upstream and
// recorded here for the policy engine and the audit trail.
type DiscountRequest struct {
	ID             string
	CompanyID      string
	CustomerID     string
	RequestedBy    string // user id
	Status         string // see RequestStatus* constants
	Currency       string
	Items          []valueobject.DiscountRequestItem
	RiskScore      int     // 0-100
	AIConfidence   float64 // 0.0-1.0
	DecisionReason string
	DecidedBy      string // user id for human decisions, "ai" for automatic ones
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalBase sums the items' total base prices.
func (r *DiscountRequest) TotalBase() valueobject.Money {
	return r.sum(func(i valueobject.DiscountRequestItem) valueobject.Money { return i.TotalBasePrice() })
}

// TotalFinal sums the items' total final prices.
func (r *DiscountRequest) TotalFinal() valueobject.Money {
	return r.sum(func(i valueobject.DiscountRequestItem) valueobject.Money { return i.TotalFinalPrice() })
}

// TotalDiscount sums the items' discount amounts.
func (r *DiscountRequest) TotalDiscount() valueobject.Money {
	return r.sum(func(i valueobject.DiscountRequestItem) valueobject.Money { return i.TotalDiscountAmount() })
}

func (r *DiscountRequest) sum(pick func(valueobject.DiscountRequestItem) valueobject.Money) valueobject.Money {
	total := valueobject.MoneyFromStore(decimal.Zero, r.Currency)
	for _, item := range r.Items {
		total, _ = total.Add(pick(item))
	}
	return total
}

// MaxDiscountPercentage returns the highest line-item percentage; this is the
// figure the governance engine gates on.
func (r *DiscountRequest) MaxDiscountPercentage() decimal.Decimal {
	max := decimal.Zero
	for _, item := range r.Items {
		if item.DiscountPercentage().GreaterThan(max) {
			max = item.DiscountPercentage()
		}
	}
	return max
}

// IsOpen reports whether the request still accepts a decision.
func (r *DiscountRequest) IsOpen() bool {
	return r.Status == RequestStatusPending || r.Status == RequestStatusInReview
}
