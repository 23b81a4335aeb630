package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
)

// ProductUseCase CRUD over the product catalog. Every operation is scoped to
// the caller's company and fails fast when no tenant is resolved, before any
// repository call.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the usecase.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create creates a product. The list price goes through Money so the currency
// and sign rules hold from the start.
func (uc *ProductUseCase) Create(companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	if in.Currency == "" {
		in.Currency = "USD"
	}
	price, err := valueobject.NewMoney(in.ListPrice, in.Currency)
	if err != nil {
		return nil, err
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(companyID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		ListPrice:   price.Amount(),
		UnitCost:    in.UnitCost.Round(2),
		Currency:    price.Currency(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns a product owned by the company. A product that exists under
// another company is indistinguishable from a missing one.
func (uc *ProductUseCase) GetByID(companyID, id string) (*dto.ProductResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	product, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns the company's products, optionally narrowed by category
// (case-insensitive equality).
func (uc *ProductUseCase) List(companyID, category string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	page.DefaultPage()
	list, total, err := uc.repo.ListByCompany(companyID, repository.ProductFilter{
		Category: category,
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Tenant: dto.TenantInfo{CompanyID: companyID},
		Items:  items,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Update applies the non-nil fields and bumps UpdatedAt.
func (uc *ProductUseCase) Update(companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	product, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.ListPrice != nil {
		price, err := valueobject.NewMoney(*in.ListPrice, product.Currency)
		if err != nil {
			return nil, err
		}
		product.ListPrice = price.Amount()
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitCost = in.UnitCost.Round(2)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a company's product. Deleting a foreign or missing id is a
// no-op at this layer; the repository reports affected rows.
func (uc *ProductUseCase) Delete(companyID, id string) error {
	if companyID == "" {
		return domain.ErrMissingTenant
	}
	return uc.repo.Delete(companyID, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		ListPrice:   p.ListPrice,
		UnitCost:    p.UnitCost,
		Currency:    p.Currency,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
