package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/domain"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/internal/domain/governance"
	"github.com/marginiq/marginiq-api/internal/domain/repository"
)

// GovernanceUseCase reads and replaces the per-company AI governance policy.
// Reads go through the cache when one is wired; writes replace the row
// wholesale and invalidate the cache. Updates are last-writer-wins.
type GovernanceUseCase struct {
	repo      repository.GovernanceRepository
	auditRepo repository.GovernanceAuditRepository
	cache     ports.GovernanceCache // nil disables caching
}

// NewGovernanceUseCase builds the usecase. cache may be nil.
func NewGovernanceUseCase(repo repository.GovernanceRepository, auditRepo repository.GovernanceAuditRepository, cache ports.GovernanceCache) *GovernanceUseCase {
	return &GovernanceUseCase{repo: repo, auditRepo: auditRepo, cache: cache}
}

// Get returns the company policy with the derived fields recomputed. A company
// onboarded before governance rows existed falls back to the default config
// without persisting it.
func (uc *GovernanceUseCase) Get(companyID string) (*dto.GovernanceResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	cfg, err := uc.load(companyID)
	if err != nil {
		return nil, err
	}
	return toGovernanceResponse(cfg), nil
}

// Config returns the raw policy for internal callers (the decision flow).
func (uc *GovernanceUseCase) Config(companyID string) (*governance.Config, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	return uc.load(companyID)
}

func (uc *GovernanceUseCase) load(companyID string) (*governance.Config, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(context.Background(), companyID); err == nil && cached != nil {
			return cached, nil
		}
	}
	cfg, err := uc.repo.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		def := governance.DefaultConfig(companyID)
		cfg = &def
	}
	if uc.cache != nil {
		_ = uc.cache.Set(context.Background(), cfg)
	}
	return cfg, nil
}

// Update replaces the policy wholesale. Callers supply the full desired state;
// there is no partial merge. Bounds are validated before the write.
func (uc *GovernanceUseCase) Update(companyID, actorID string, in dto.UpdateGovernanceRequest) (*dto.GovernanceResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	cfg := governance.Config{
		CompanyID:                 companyID,
		Enabled:                   in.Enabled,
		AutonomyLevel:             in.AutonomyLevel,
		MaxRiskScoreForAuto:       in.MaxRiskScoreForAuto,
		MinConfidenceForAuto:      in.MinConfidenceForAuto,
		RequireHumanReview:        in.RequireHumanReview,
		AuditEnabled:              in.AuditEnabled,
		ExplainabilityEnabled:     in.ExplainabilityEnabled,
		MaxAutoApproveDiscountPct: in.MaxAutoApproveDiscountPct,
		IncrementalLearning:       in.IncrementalLearning,
		RetrainingFrequencyDays:   in.RetrainingFrequencyDays,
		UpdatedAt:                 time.Now(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(&cfg); err != nil {
		return nil, err
	}
	uc.invalidate(companyID)
	uc.audit(&cfg, entity.AuditEventConfigUpdated, actorID, "")
	return toGovernanceResponse(&cfg), nil
}

// ApplyPreset replaces the policy with one of the canonical bundles.
func (uc *GovernanceUseCase) ApplyPreset(companyID, actorID, presetName string) (*dto.GovernanceResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	preset, err := governance.ParsePreset(presetName)
	if err != nil {
		return nil, err
	}
	cfg := governance.ApplyPresetValues(preset, companyID)
	if err := uc.repo.Upsert(&cfg); err != nil {
		return nil, err
	}
	uc.invalidate(companyID)
	uc.audit(&cfg, entity.AuditEventPresetApplied, actorID, string(preset))
	return toGovernanceResponse(&cfg), nil
}

// AuditTrail returns the company's governance audit entries, newest first.
func (uc *GovernanceUseCase) AuditTrail(companyID string, page dto.PageRequest) (*dto.GovernanceAuditListResponse, error) {
	if companyID == "" {
		return nil, domain.ErrMissingTenant
	}
	page.DefaultPage()
	list, err := uc.auditRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GovernanceAuditEntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.GovernanceAuditEntryResponse{
			ID:        e.ID,
			EventType: e.EventType,
			ActorID:   e.ActorID,
			RequestID: e.RequestID,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return &dto.GovernanceAuditListResponse{
		Tenant: dto.TenantInfo{CompanyID: companyID},
		Items:  items,
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *GovernanceUseCase) invalidate(companyID string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(context.Background(), companyID)
	}
}

// audit appends a trail entry when the (new) config enables auditing. Audit
// failures do not fail the update; the write already committed.
func (uc *GovernanceUseCase) audit(cfg *governance.Config, eventType, actorID, detail string) {
	if !cfg.AuditEnabled || uc.auditRepo == nil {
		return
	}
	payload, _ := json.Marshal(map[string]string{
		"summary": governance.Summary(*cfg),
		"detail":  detail,
	})
	_ = uc.auditRepo.Append(&entity.GovernanceAuditEntry{
		ID:        uuid.New().String(),
		CompanyID: cfg.CompanyID,
		EventType: eventType,
		ActorID:   actorID,
		Detail:    payload,
		CreatedAt: time.Now(),
	})
}

func toGovernanceResponse(cfg *governance.Config) *dto.GovernanceResponse {
	if cfg == nil {
		return nil
	}
	return &dto.GovernanceResponse{
		CompanyID:                 cfg.CompanyID,
		Enabled:                   cfg.Enabled,
		AutonomyLevel:             cfg.AutonomyLevel,
		AutonomyDescription:       governance.AutonomyDescription(*cfg),
		Summary:                   governance.Summary(*cfg),
		MaxRiskScoreForAuto:       cfg.MaxRiskScoreForAuto,
		MinConfidenceForAuto:      cfg.MinConfidenceForAuto,
		RequireHumanReview:        cfg.RequireHumanReview,
		AuditEnabled:              cfg.AuditEnabled,
		ExplainabilityEnabled:     cfg.ExplainabilityEnabled,
		MaxAutoApproveDiscountPct: cfg.MaxAutoApproveDiscountPct,
		IncrementalLearning:       cfg.IncrementalLearning,
		RetrainingFrequencyDays:   cfg.RetrainingFrequencyDays,
		UpdatedAt:                 cfg.UpdatedAt,
	}
}
