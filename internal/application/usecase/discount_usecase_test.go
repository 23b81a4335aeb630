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
	"github.com/marginiq/marginiq-api/internal/domain/governance"
)

type discountFixture struct {
	uc          *usecase.DiscountRequestUseCase
	requestRepo *fakeRequestRepo
	productRepo *fakeProductRepo
	govRepo     *fakeGovernanceRepo
	auditRepo   *fakeAuditRepo
	publisher   *fakePublisher
}

func newDiscountFixture(t *testing.T) *discountFixture {
	t.Helper()
	requestRepo := newFakeRequestRepo()
	productRepo := newFakeProductRepo()
	customerRepo := newFakeCustomerRepo()
	companyRepo := newFakeCompanyRepo()
	govRepo := newFakeGovernanceRepo()
	auditRepo := &fakeAuditRepo{}
	publisher := &fakePublisher{}

	companyRepo.companies[companyA] = &entity.Company{ID: companyA, Name: "Acme"}
	customerRepo.customers[scopedKey(companyA, "cust-1")] = &entity.Customer{
		ID: "cust-1", CompanyID: companyA, Name: "Globex",
	}
	productRepo.products[scopedKey(companyA, "prod-1")] = &entity.Product{
		ID: "prod-1", CompanyID: companyA, SKU: "WID-1", Name: "Widget",
		ListPrice: decimal.NewFromInt(10), Currency: "USD",
	}
	productRepo.products[scopedKey(companyA, "prod-eur")] = &entity.Product{
		ID: "prod-eur", CompanyID: companyA, SKU: "EUR-1", Name: "Euro Widget",
		ListPrice: decimal.NewFromInt(10), Currency: "EUR",
	}

	governanceUC := usecase.NewGovernanceUseCase(govRepo, auditRepo, nil)
	uc := usecase.NewDiscountRequestUseCase(
		requestRepo, productRepo, customerRepo, companyRepo,
		governanceUC,
		&fakeTxRunner{requestRepo: requestRepo, auditRepo: auditRepo},
		publisher, nil, nil,
	)
	return &discountFixture{
		uc:          uc,
		requestRepo: requestRepo,
		productRepo: productRepo,
		govRepo:     govRepo,
		auditRepo:   auditRepo,
		publisher:   publisher,
	}
}

func submitRequest(t *testing.T, f *discountFixture, pct string, riskScore int, confidence float64) *dto.DiscountRequestResponse {
	t.Helper()
	out, err := f.uc.Create(companyA, "user-1", dto.CreateDiscountRequest{
		CustomerID: "cust-1",
		Items: []dto.DiscountItemRequest{
			{ProductID: "prod-1", Quantity: 3, DiscountPercentage: decimal.RequireFromString(pct)},
		},
		RiskScore:    riskScore,
		AIConfidence: confidence,
	})
	require.NoError(t, err)
	return out
}

func TestDiscountCreate_SnapshotsProductAndDerivesTotals(t *testing.T) {
	f := newDiscountFixture(t)
	out := submitRequest(t, f, "20", 10, 0.9)

	assert.Equal(t, entity.RequestStatusPending, out.Status)
	assert.Equal(t, "USD", out.Currency)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Widget", out.Items[0].ProductName)
	assert.Equal(t, "8.00", out.Items[0].UnitFinalPrice.StringFixed(2))
	assert.Equal(t, "30.00", out.TotalBase.StringFixed(2))
	assert.Equal(t, "24.00", out.TotalFinal.StringFixed(2))
	assert.Equal(t, "6.00", out.TotalDiscount.StringFixed(2))
}

func TestDiscountCreate_Validation(t *testing.T) {
	f := newDiscountFixture(t)

	_, err := f.uc.Create("", "user-1", dto.CreateDiscountRequest{})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)

	_, err = f.uc.Create(companyA, "user-1", dto.CreateDiscountRequest{CustomerID: "cust-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty item list")

	_, err = f.uc.Create(companyA, "user-1", dto.CreateDiscountRequest{
		CustomerID: "nope",
		Items:      []dto.DiscountItemRequest{{ProductID: "prod-1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown customer")

	_, err = f.uc.Create(companyA, "user-1", dto.CreateDiscountRequest{
		CustomerID: "cust-1",
		Items:      []dto.DiscountItemRequest{{ProductID: "prod-1", Quantity: 1}},
		RiskScore:  101,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "risk score out of range")
}

func TestDiscountCreate_MixedCurrencies(t *testing.T) {
	f := newDiscountFixture(t)
	_, err := f.uc.Create(companyA, "user-1", dto.CreateDiscountRequest{
		CustomerID: "cust-1",
		Items: []dto.DiscountItemRequest{
			{ProductID: "prod-1", Quantity: 1},
			{ProductID: "prod-eur", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestDiscountEvaluate_AutoApproves(t *testing.T) {
	f := newDiscountFixture(t)
	// Balanced defaults: ceiling 15%, max risk 60, min confidence 0.75
	created := submitRequest(t, f, "10", 30, 0.9)

	out, err := f.uc.Evaluate(companyA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAutoApproved, out.Status)
	assert.Equal(t, "ai", out.DecidedBy)
	require.NotNil(t, out.DecidedAt)
	assert.Contains(t, out.DecisionReason, "within policy")

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditEventAutoApproved, f.auditRepo.entries[0].EventType)
	assert.Equal(t, created.ID, f.auditRepo.entries[0].RequestID)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, entity.RequestStatusAutoApproved, f.publisher.events[0].Status)
	assert.Equal(t, companyA, f.publisher.events[0].CompanyID)
}

func TestDiscountEvaluate_RoutesToReview(t *testing.T) {
	f := newDiscountFixture(t)
	created := submitRequest(t, f, "40", 30, 0.9) // above the 15% ceiling

	out, err := f.uc.Evaluate(companyA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusInReview, out.Status)
	assert.Empty(t, out.DecidedBy, "routing to review is not a decision")
	assert.Nil(t, out.DecidedAt)

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditEventSentToReview, f.auditRepo.entries[0].EventType)
}

func TestDiscountEvaluate_OnlyPendingRequests(t *testing.T) {
	f := newDiscountFixture(t)
	created := submitRequest(t, f, "10", 30, 0.9)

	_, err := f.uc.Evaluate(companyA, created.ID)
	require.NoError(t, err)

	_, err = f.uc.Evaluate(companyA, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "a decided request cannot be re-evaluated")
}

func TestDiscountEvaluate_DisabledPolicyRoutesToReview(t *testing.T) {
	f := newDiscountFixture(t)
	disabled := governance.ApplyPresetValues(governance.PresetDisabled, companyA)
	f.govRepo.configs[companyA] = &disabled

	created := submitRequest(t, f, "1", 1, 0.99)
	out, err := f.uc.Evaluate(companyA, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusInReview, out.Status)
	assert.Contains(t, out.DecisionReason, "disabled")
	require.Len(t, f.auditRepo.entries, 1, "the disabled preset keeps auditing on")
	assert.Equal(t, entity.AuditEventSentToReview, f.auditRepo.entries[0].EventType)
}

func TestDiscountDecide_ApproveAndReject(t *testing.T) {
	f := newDiscountFixture(t)
	created := submitRequest(t, f, "40", 30, 0.9)
	_, err := f.uc.Evaluate(companyA, created.ID) // lands in review
	require.NoError(t, err)

	out, err := f.uc.Decide(companyA, "approver-1", created.ID, dto.DecideDiscountRequest{
		Approve: true, Reason: "strategic account",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, out.Status)
	assert.Equal(t, "approver-1", out.DecidedBy)
	assert.Equal(t, "strategic account", out.DecisionReason)
	require.NotNil(t, out.DecidedAt)

	// a decided request rejects further decisions
	_, err = f.uc.Decide(companyA, "approver-1", created.ID, dto.DecideDiscountRequest{Approve: false})
	assert.ErrorIs(t, err, domain.ErrConflict)

	rejected := submitRequest(t, f, "40", 30, 0.9)
	out, err = f.uc.Decide(companyA, "approver-1", rejected.ID, dto.DecideDiscountRequest{
		Approve: false, Reason: "margin too thin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, out.Status)
}

func TestDiscountDecide_RecordsHumanAuditAndEvent(t *testing.T) {
	f := newDiscountFixture(t)
	created := submitRequest(t, f, "10", 30, 0.9)

	_, err := f.uc.Decide(companyA, "approver-1", created.ID, dto.DecideDiscountRequest{Approve: true})
	require.NoError(t, err)

	require.Len(t, f.auditRepo.entries, 1)
	assert.Equal(t, entity.AuditEventHumanDecision, f.auditRepo.entries[0].EventType)
	assert.Equal(t, "approver-1", f.auditRepo.entries[0].ActorID)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "approver-1", f.publisher.events[0].DecidedBy)
}

func TestDiscountGetByID_CrossTenantReadsAsMissing(t *testing.T) {
	f := newDiscountFixture(t)
	created := submitRequest(t, f, "10", 30, 0.9)

	foreign, err := f.uc.GetByID(companyB, created.ID)
	require.NoError(t, err)
	assert.Nil(t, foreign)

	evaluated, err := f.uc.Evaluate(companyB, created.ID)
	require.NoError(t, err)
	assert.Nil(t, evaluated, "evaluation under the wrong tenant sees no request")
}

func TestDiscountList_FiltersByStatus(t *testing.T) {
	f := newDiscountFixture(t)
	first := submitRequest(t, f, "10", 30, 0.9)
	submitRequest(t, f, "40", 30, 0.9)
	_, err := f.uc.Evaluate(companyA, first.ID)
	require.NoError(t, err)

	out, err := f.uc.List(companyA, entity.RequestStatusAutoApproved, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, first.ID, out.Items[0].ID)

	all, err := f.uc.List(companyA, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
}
