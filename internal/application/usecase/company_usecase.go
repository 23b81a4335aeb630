package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

// CompanyUseCase company onboarding and lookup. Onboarding seeds the Balanced
// governance configuration so the policy read path never sees an absent row.
type CompanyUseCase struct {
	repo           repository.CompanyRepository
	governanceRepo repository.GovernanceRepository
}

// NewCompanyUseCase builds the usecase.
func NewCompanyUseCase(repo repository.CompanyRepository, governanceRepo repository.GovernanceRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, governanceRepo: governanceRepo}
}

// Create onboards a company with its default governance config.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	cfg := governance.DefaultConfig(company.ID)
	if err := uc.governanceRepo.Upsert(&cfg); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID returns a company by id.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List returns companies with pagination.
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
