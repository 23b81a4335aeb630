package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
	"github.com/marginiq/marginiq-api/internal/domain/valueobject"
	"github.com/marginiq/marginiq-api/pkg/logger"
)

// DiscountRequestUseCase drives the discount request lifecycle: submission,
// policy evaluation, human decision, and the decision report. Evaluation and
// decisions persist the request update and the audit entry in one transaction;
// the decision event is published after commit, best effort.
type DiscountRequestUseCase struct {
	requestRepo  repository.DiscountRequestRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	governanceUC *GovernanceUseCase
	txRunner     ports.DecisionTxRunner
	publisher    ports.DecisionEventPublisher
	reports      ports.DecisionReportGenerator
	log          *logger.Logger
}

// NewDiscountRequestUseCase builds the usecase.
func NewDiscountRequestUseCase(
	requestRepo repository.DiscountRequestRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	governanceUC *GovernanceUseCase,
	txRunner ports.DecisionTxRunner,
	publisher ports.DecisionEventPublisher,
	reports ports.DecisionReportGenerator,
	log *logger.Logger,
) *DiscountRequestUseCase {
	return &DiscountRequestUseCase{
		requestRepo:  requestRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		governanceUC: governanceUC,
		txRunner:     txRunner,
		publisher:    publisher,
		reports:      reports,
		log:          log,
	}
}

// Create submits a discount request. Line items snapshot the product name and
// list price at submission time; every item must share one currency.
func (uc *DiscountRequestUseCase) Create(companyID, userID string, in dto.CreateDiscountRequest) (*dto.DiscountRequestResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(companyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.RiskScore < 0 || in.RiskScore > 100 || in.AIConfidence < 0 || in.AIConfidence > 1 {
		return nil, domain.ErrInvalidInput
	}

	currency := ""
	items := make([]valueobject.DiscountRequestItem, 0, len(in.Items))
	for _, it := range in.Items {
		product, err := uc.productRepo.GetByID(companyID, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if currency == "" {
			currency = product.Currency
		} else if currency != product.Currency {
			return nil, domain.ErrCurrencyMismatch
		}
		basePrice, err := valueobject.NewMoney(product.ListPrice, product.Currency)
		if err != nil {
			return nil, err
		}
		item, err := valueobject.NewDiscountRequestItem(product.ID, product.Name, it.Quantity, basePrice, it.DiscountPercentage)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	now := time.Now()
	request := &entity.DiscountRequest{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CustomerID:   in.CustomerID,
		RequestedBy:  userID,
		Status:       entity.RequestStatusPending,
		Currency:     currency,
		Items:        items,
		RiskScore:    in.RiskScore,
		AIConfidence: in.AIConfidence,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return toDiscountRequestResponse(request), nil
}

// Evaluate runs the governance engine on a pending request and routes it to
// auto-approval or human review.
func (uc *DiscountRequestUseCase) Evaluate(companyID, id string) (*dto.DiscountRequestResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	request, err := uc.requestRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	if request.Status != entity.RequestStatusPending {
		return nil, domain.ErrConflict
	}
	cfg, err := uc.governanceUC.Config(companyID)
	if err != nil {
		return nil, err
	}

	decision := governance.Evaluate(*cfg, governance.EvaluationInput{
		RequestedDiscountPct: request.MaxDiscountPercentage(),
		RiskScore:            request.RiskScore,
		Confidence:           request.AIConfidence,
	})

	now := time.Now()
	request.DecisionReason = strings.Join(decision.Reasons, "; ")
	request.UpdatedAt = now
	eventType := entity.AuditEventSentToReview
	if decision.AutoApproved() {
		request.Status = entity.RequestStatusAutoApproved
		request.DecidedBy = "ai"
		request.DecidedAt = &now
		eventType = entity.AuditEventAutoApproved
	} else {
		request.Status = entity.RequestStatusInReview
	}

	if err := uc.persistDecision(request, cfg, eventType, "ai"); err != nil {
		return nil, err
	}
	uc.publish(request)
	return toDiscountRequestResponse(request), nil
}

// Decide records a human approve/reject on an open request.
func (uc *DiscountRequestUseCase) Decide(companyID, userID, id string, in dto.DecideDiscountRequest) (*dto.DiscountRequestResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	request, err := uc.requestRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	if !request.IsOpen() {
		return nil, domain.ErrConflict
	}
	cfg, err := uc.governanceUC.Config(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if in.Approve {
		request.Status = entity.RequestStatusApproved
	} else {
		request.Status = entity.RequestStatusRejected
	}
	request.DecisionReason = in.Reason
	request.DecidedBy = userID
	request.DecidedAt = &now
	request.UpdatedAt = now

	if err := uc.persistDecision(request, cfg, entity.AuditEventHumanDecision, userID); err != nil {
		return nil, err
	}
	uc.publish(request)
	return toDiscountRequestResponse(request), nil
}

// GetByID returns a request owned by the company; foreign rows read as missing.
func (uc *DiscountRequestUseCase) GetByID(companyID, id string) (*dto.DiscountRequestResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	request, err := uc.requestRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	return toDiscountRequestResponse(request), nil
}

// List returns the company's requests, optionally filtered by status.
func (uc *DiscountRequestUseCase) List(companyID, status string, page dto.PageRequest) (*dto.DiscountRequestListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	page.DefaultPage()
	list, total, err := uc.requestRepo.ListByCompany(companyID, repository.DiscountRequestFilter{
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountRequestResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toDiscountRequestResponse(r))
	}
	return &dto.DiscountRequestListResponse{
		Tenant: dto.TenantInfo{CompanyID: companyID},
		Items:  items,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// DecisionReport renders the PDF decision report for a request.
func (uc *DiscountRequestUseCase) DecisionReport(companyID, id string) ([]byte, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	request, err := uc.requestRepo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(companyID, request.CustomerID)
	if err != nil {
		return nil, err
	}
	return uc.reports.GenerateDecisionReport(context.Background(), request, company, customer)
}

// persistDecision writes the request update and the audit entry atomically.
func (uc *DiscountRequestUseCase) persistDecision(request *entity.DiscountRequest, cfg *governance.Config, eventType, actorID string) error {
	return uc.txRunner.Run(context.Background(), func(
		requestRepo repository.DiscountRequestRepository,
		auditRepo repository.GovernanceAuditRepository,
	) error {
		if err := requestRepo.UpdateDecision(request); err != nil {
			return err
		}
		if !cfg.AuditEnabled {
			return nil
		}
		detail, _ := json.Marshal(map[string]interface{}{
			"status":        request.Status,
			"reason":        request.DecisionReason,
			"risk_score":    request.RiskScore,
			"ai_confidence": request.AIConfidence,
		})
		return auditRepo.Append(&entity.GovernanceAuditEntry{
			ID:        uuid.New().String(),
			CompanyID: request.CompanyID,
			EventType: eventType,
			ActorID:   actorID,
			RequestID: request.ID,
			Detail:    detail,
			CreatedAt: time.Now(),
		})
	})
}

func (uc *DiscountRequestUseCase) publish(request *entity.DiscountRequest) {
	if uc.publisher == nil {
		return
	}
	decidedAt := ""
	if request.DecidedAt != nil {
		decidedAt = request.DecidedAt.Format(time.RFC3339)
	}
	err := uc.publisher.Publish(context.Background(), ports.DecisionEvent{
		RequestID:    request.ID,
		CompanyID:    request.CompanyID,
		Status:       request.Status,
		RiskScore:    request.RiskScore,
		AIConfidence: request.AIConfidence,
		DecidedBy:    request.DecidedBy,
		Reason:       request.DecisionReason,
		DecidedAt:    decidedAt,
	})
	if err != nil && uc.log != nil {
		uc.log.Warn().Err(err).
			Str("request_id", request.ID).
			Str("company_id", request.CompanyID).
			Msg("decision event publish failed")
	}
}

func toDiscountRequestResponse(r *entity.DiscountRequest) *dto.DiscountRequestResponse {
	if r == nil {
		return nil
	}
	items := make([]dto.DiscountItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.DiscountItemResponse{
			ProductID:          it.ProductID(),
			ProductName:        it.ProductName(),
			Quantity:           it.Quantity(),
			UnitBasePrice:      it.UnitBasePrice().Amount(),
			DiscountPercentage: it.DiscountPercentage(),
			UnitFinalPrice:     it.UnitFinalPrice().Amount(),
			TotalBasePrice:     it.TotalBasePrice().Amount(),
			TotalFinalPrice:    it.TotalFinalPrice().Amount(),
			TotalDiscount:      it.TotalDiscountAmount().Amount(),
		})
	}
	return &dto.DiscountRequestResponse{
		ID:             r.ID,
		CompanyID:      r.CompanyID,
		CustomerID:     r.CustomerID,
		RequestedBy:    r.RequestedBy,
		Status:         r.Status,
		Currency:       r.Currency,
		Items:          items,
		TotalBase:      r.TotalBase().Amount(),
		TotalFinal:     r.TotalFinal().Amount(),
		TotalDiscount:  r.TotalDiscount().Amount(),
		RiskScore:      r.RiskScore,
		AIConfidence:   r.AIConfidence,
		DecisionReason: r.DecisionReason,
		DecidedBy:      r.DecidedBy,
		DecidedAt:      r.DecidedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
