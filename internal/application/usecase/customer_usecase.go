package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

// CustomerUseCase CRUD over the company's customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the usecase.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create creates a customer under the caller's company.
func (uc *CustomerUseCase) Create(companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Segment:   in.Segment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID returns a customer owned by the company; foreign rows read as missing.
func (uc *CustomerUseCase) GetByID(companyID, id string) (*dto.CustomerResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	customer, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List returns the company's customers with pagination.
func (uc *CustomerUseCase) List(companyID string, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	page.DefaultPage()
	list, total, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Tenant: dto.TenantInfo{CompanyID: companyID},
		Items:  items,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Phone:     c.Phone,
		Segment:   c.Segment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
