package usecase_test

import (
	"context"

	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

// In-memory fakes for the repository ports. Keys are company|id so tenant
// scoping behaves like the SQL predicates: a row under another company reads
// as missing.

func scopedKey(companyID, id string) string { return companyID + "|" + id }

type fakeProductRepo struct {
	products map[string]*entity.Product
	calls    int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.calls++
	f.products[scopedKey(p.CompanyID, p.ID)] = p
	return nil
}

func (f *fakeProductRepo) GetByID(companyID, id string) (*entity.Product, error) {
	f.calls++
	return f.products[scopedKey(companyID, id)], nil
}

func (f *fakeProductRepo) GetBySKU(companyID, sku string) (*entity.Product, error) {
	f.calls++
	for _, p := range f.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByCompany(companyID string, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	f.calls++
	var list []*entity.Product
	for _, p := range f.products {
		if p.CompanyID == companyID {
			list = append(list, p)
		}
	}
	return list, len(list), nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.calls++
	f.products[scopedKey(p.CompanyID, p.ID)] = p
	return nil
}

func (f *fakeProductRepo) Delete(companyID, id string) error {
	f.calls++
	delete(f.products, scopedKey(companyID, id))
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	f.customers[scopedKey(c.CompanyID, c.ID)] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(companyID, id string) (*entity.Customer, error) {
	return f.customers[scopedKey(companyID, id)], nil
}

func (f *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, int, error) {
	var list []*entity.Customer
	for _, c := range f.customers {
		if c.CompanyID == companyID {
			list = append(list, c)
		}
	}
	return list, len(list), nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return f.companies[id], nil
}

func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range f.companies {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error {
	f.companies[c.ID] = c
	return nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.DiscountRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.DiscountRequest)}
}

func (f *fakeRequestRepo) Create(r *entity.DiscountRequest) error {
	f.requests[scopedKey(r.CompanyID, r.ID)] = r
	return nil
}

func (f *fakeRequestRepo) GetByID(companyID, id string) (*entity.DiscountRequest, error) {
	return f.requests[scopedKey(companyID, id)], nil
}

func (f *fakeRequestRepo) ListByCompany(companyID string, filter repository.DiscountRequestFilter) ([]*entity.DiscountRequest, int, error) {
	var list []*entity.DiscountRequest
	for _, r := range f.requests {
		if r.CompanyID != companyID {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		list = append(list, r)
	}
	return list, len(list), nil
}

func (f *fakeRequestRepo) UpdateDecision(r *entity.DiscountRequest) error {
	f.requests[scopedKey(r.CompanyID, r.ID)] = r
	return nil
}

type fakeGovernanceRepo struct {
	configs map[string]*governance.Config
}

func newFakeGovernanceRepo() *fakeGovernanceRepo {
	return &fakeGovernanceRepo{configs: make(map[string]*governance.Config)}
}

func (f *fakeGovernanceRepo) GetByCompany(companyID string) (*governance.Config, error) {
	return f.configs[companyID], nil
}

func (f *fakeGovernanceRepo) Upsert(cfg *governance.Config) error {
	copied := *cfg
	f.configs[cfg.CompanyID] = &copied
	return nil
}

type fakeAuditRepo struct {
	entries []*entity.GovernanceAuditEntry
}

func (f *fakeAuditRepo) Append(e *entity.GovernanceAuditEntry) error {
	f.entries = append(f.entries, e)
	return nil
}

func (f *fakeAuditRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.GovernanceAuditEntry, error) {
	var list []*entity.GovernanceAuditEntry
	for _, e := range f.entries {
		if e.CompanyID == companyID {
			list = append(list, e)
		}
	}
	return list, nil
}

type fakeCache struct {
	store       map[string]*governance.Config
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]*governance.Config)}
}

func (f *fakeCache) Get(_ context.Context, companyID string) (*governance.Config, error) {
	return f.store[companyID], nil
}

func (f *fakeCache) Set(_ context.Context, cfg *governance.Config) error {
	copied := *cfg
	f.store[cfg.CompanyID] = &copied
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, companyID string) error {
	delete(f.store, companyID)
	f.invalidated = append(f.invalidated, companyID)
	return nil
}

// fakeTxRunner hands the callback the same fakes, no transaction semantics.
type fakeTxRunner struct {
	requestRepo *fakeRequestRepo
	auditRepo   *fakeAuditRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	requestRepo repository.DiscountRequestRepository,
	auditRepo repository.GovernanceAuditRepository,
) error) error {
	return fn(f.requestRepo, f.auditRepo)
}

type fakePublisher struct {
	events []ports.DecisionEvent
}

func (f *fakePublisher) Publish(_ context.Context, e ports.DecisionEvent) error {
	f.events = append(f.events, e)
	return nil
}
