package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/application/usecase"
	"github.com/marginiq/marginiq-api/pkg/logger"
)

// GovernanceHandler handles the AI governance policy surface (protected;
// writes are admin-only via RequireRole in the router).
type GovernanceHandler struct {
	uc  *usecase.GovernanceUseCase
	log *logger.Logger
}

// NewGovernanceHandler builds the handler.
func NewGovernanceHandler(uc *usecase.GovernanceUseCase, log *logger.Logger) *GovernanceHandler {
	return &GovernanceHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Get the company's governance policy
// @Tags         governance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GovernanceResponse
// @Router       /api/governance [get]
func (h *GovernanceHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetCompanyID(c))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Replace the governance policy
// @Tags         governance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateGovernanceRequest  true  "Full desired state"
// @Success      200   {object}  dto.GovernanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/governance [put]
func (h *GovernanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGovernanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// ApplyPreset godoc
// @Summary      Apply a canonical policy preset
// @Tags         governance
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Preset name"  Enums(conservative, balanced, aggressive, disabled)
// @Success      200   {object}  dto.GovernanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/governance/presets/{name} [post]
func (h *GovernanceHandler) ApplyPreset(c *fiber.Ctx) error {
	out, err := h.uc.ApplyPreset(GetCompanyID(c), GetUserID(c), c.Params("name"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// AuditTrail godoc
// @Summary      List governance audit entries
// @Tags         governance
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.GovernanceAuditListResponse
// @Router       /api/governance/audit [get]
func (h *GovernanceHandler) AuditTrail(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.AuditTrail(GetCompanyID(c), page)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}
