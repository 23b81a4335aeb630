package repository

import "github.com/marginiq/marginiq-api/internal/domain/entity"

// CustomerRepository is the persistence port for Customer (DIP).
// Reads are company-qualified; see ProductRepository.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(companyID, id string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, int, error)
}
