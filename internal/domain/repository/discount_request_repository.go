package repository

import "github.com/marginiq/marginiq-api/internal/domain/entity"

// DiscountRequestFilter narrows request listings.
type DiscountRequestFilter struct {
	Status string
	Limit  int
	Offset int
}

// DiscountRequestRepository is the persistence port for DiscountRequest (DIP).
// Reads are company-qualified; see ProductRepository.
type DiscountRequestRepository interface {
	Create(request *entity.DiscountRequest) error
	GetByID(companyID, id string) (*entity.DiscountRequest, error)
	ListByCompany(companyID string, filter DiscountRequestFilter) ([]*entity.DiscountRequest, int, error)
	UpdateDecision(request *entity.DiscountRequest) error
}
