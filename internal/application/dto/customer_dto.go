package dto

import "time"

// CreateCustomerRequest input to create a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Segment string `json:"segment"`
}

// CustomerResponse customer output.
type CustomerResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Segment   string    `json:"segment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse paginated customer listing.
type CustomerListResponse struct {
	Tenant TenantInfo         `json:"tenant"`
	Items  []CustomerResponse `json:"items"`
	Page   PageResponse       `json:"page"`
}
