package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountItemRequest one line item on a discount request submission.
type DiscountItemRequest struct {
	ProductID          string          `json:"product_id" validate:"required"`
	Quantity           int             `json:"quantity" validate:"required,min=1"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// CreateDiscountRequest input to submit a discount request.
// RiskScore and AIConfidence come from the upstream scoring service.
type CreateDiscountRequest struct {
	CustomerID   string                `json:"customer_id" validate:"required"`
	Items        []DiscountItemRequest `json:"items" validate:"required,min=1"`
	RiskScore    int                   `json:"risk_score" validate:"min=0,max=100"`
	AIConfidence float64               `json:"ai_confidence" validate:"min=0,max=1"`
}

// DecideDiscountRequest human approve/reject input.
type DecideDiscountRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// DiscountItemResponse one evaluated line item.
type DiscountItemResponse struct {
	ProductID          string          `json:"product_id"`
	ProductName        string          `json:"product_name"`
	Quantity           int             `json:"quantity"`
	UnitBasePrice      decimal.Decimal `json:"unit_base_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	UnitFinalPrice     decimal.Decimal `json:"unit_final_price"`
	TotalBasePrice     decimal.Decimal `json:"total_base_price"`
	TotalFinalPrice    decimal.Decimal `json:"total_final_price"`
	TotalDiscount      decimal.Decimal `json:"total_discount"`
}

// DiscountRequestResponse discount request output.
type DiscountRequestResponse struct {
	ID             string                 `json:"id"`
	CompanyID      string                 `json:"company_id"`
	CustomerID     string                 `json:"customer_id"`
	RequestedBy    string                 `json:"requested_by"`
	Status         string                 `json:"status"`
	Currency       string                 `json:"currency"`
	Items          []DiscountItemResponse `json:"items"`
	TotalBase      decimal.Decimal        `json:"total_base"`
	TotalFinal     decimal.Decimal        `json:"total_final"`
	TotalDiscount  decimal.Decimal        `json:"total_discount"`
	RiskScore      int                    `json:"risk_score"`
	AIConfidence   float64                `json:"ai_confidence"`
	DecisionReason string                 `json:"decision_reason,omitempty"`
	DecidedBy      string                 `json:"decided_by,omitempty"`
	DecidedAt      *time.Time             `json:"decided_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// DiscountRequestListResponse paginated request listing.
type DiscountRequestListResponse struct {
	Tenant TenantInfo                `json:"tenant"`
	Items  []DiscountRequestResponse `json:"items"`
	Page   PageResponse              `json:"page"`
}
