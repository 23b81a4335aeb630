package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/application/usecase"
	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
)

const (
	companyA = "company-a"
	companyB = "company-b"
)

func TestProductCreate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(companyA, dto.CreateProductRequest{
		SKU:       "WID-1",
		Name:      "Widget",
		ListPrice: decimal.RequireFromString("19.995"),
		Currency:  "usd",
	})
	require.NoError(t, err)
	assert.Equal(t, companyA, out.CompanyID)
	assert.Equal(t, "20.00", out.ListPrice.StringFixed(2), "list price goes through Money rounding")
	assert.Equal(t, "USD", out.Currency)
}

func TestProductCreate_DuplicateSKU(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := dto.CreateProductRequest{SKU: "WID-1", Name: "Widget", ListPrice: decimal.NewFromInt(10)}
	_, err := uc.Create(companyA, in)
	require.NoError(t, err)

	_, err = uc.Create(companyA, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// same SKU under another company is fine
	_, err = uc.Create(companyB, in)
	assert.NoError(t, err)
}

func TestProductCreate_NegativePrice(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())
	_, err := uc.Create(companyA, dto.CreateProductRequest{
		SKU: "WID-1", Name: "Widget", ListPrice: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_MissingTenantFailsBeforeRepo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create("", dto.CreateProductRequest{SKU: "X", Name: "X"})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
	_, err = uc.GetByID("", "id")
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
	_, err = uc.List("", "", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
	_, err = uc.Update("", "id", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
	assert.ErrorIs(t, uc.Delete("", "id"), domain.ErrMissingTenant)

	assert.Zero(t, repo.calls, "no repository call may happen without a tenant")
}

func TestProductGetByID_CrossTenantReadsAsMissing(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(companyA, dto.CreateProductRequest{
		SKU: "WID-1", Name: "Widget", ListPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	own, err := uc.GetByID(companyA, created.ID)
	require.NoError(t, err)
	require.NotNil(t, own)

	foreign, err := uc.GetByID(companyB, created.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign, "another tenant's product must read as missing, not as an error")
}

func TestProductUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(companyA, dto.CreateProductRequest{
		SKU: "WID-1", Name: "Widget", Description: "original", ListPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	newName := "Widget v2"
	newPrice := decimal.RequireFromString("12.345")
	out, err := uc.Update(companyA, created.ID, dto.UpdateProductRequest{
		Name:      &newName,
		ListPrice: &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget v2", out.Name)
	assert.Equal(t, "12.35", out.ListPrice.StringFixed(2))
	assert.Equal(t, "original", out.Description, "untouched fields keep their value")
}

func TestProductList_ScopedToCompany(t *testing.T) {
	repo := newFakeProductRepo()
	repo.products[scopedKey(companyA, "p1")] = &entity.Product{ID: "p1", CompanyID: companyA, SKU: "A"}
	repo.products[scopedKey(companyB, "p2")] = &entity.Product{ID: "p2", CompanyID: companyB, SKU: "B"}
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.List(companyA, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "p1", out.Items[0].ID)
	assert.Equal(t, companyA, out.Tenant.CompanyID)
}
