package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ListPrice   decimal.Decimal `json:"list_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Currency    string          `json:"currency"`
}

// UpdateProductRequest input to update a product (nil fields are untouched).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	ListPrice   *decimal.Decimal `json:"list_price"`
	UnitCost    *decimal.Decimal `json:"unit_cost"`
}

// ProductResponse product output.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	ListPrice   decimal.Decimal `json:"list_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse paginated product listing.
type ProductListResponse struct {
	Tenant TenantInfo        `json:"tenant"`
	Items  []ProductResponse `json:"items"`
	Page   PageResponse      `json:"page"`
}
