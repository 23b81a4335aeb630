package repository

import "github.com/marginiq/marginiq-api/internal/domain/entity"

// CompanyRepository is the persistence port for Company (DIP).
// The implementation lives in infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
}
