package repository

import "github.com/marginiq/marginiq-api/internal/domain/entity"

// ProductFilter narrows product listings. Category matches case-insensitively
// when non-empty.
type ProductFilter struct {
	Category string
	Limit    int
	Offset   int
}

// ProductRepository is the persistence port for Product (DIP).
// Every read is company-qualified: a row owned by another company scans as
// no-rows, so cross-tenant access is indistinguishable from not-found.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(companyID, id string) (*entity.Product, error)
	GetBySKU(companyID, sku string) (*entity.Product, error)
	ListByCompany(companyID string, filter ProductFilter) ([]*entity.Product, int, error)
	Update(product *entity.Product) error
	Delete(companyID, id string) error
}
