package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marginiq/marginiq-api/internal/application/dto"
	"github.com/marginiq/marginiq-api/internal/application/usecase"
	"github.com/marginiq/marginiq-api/pkg/logger"
)

// DiscountHandler handles the discount request lifecycle (protected).
type DiscountHandler struct {
	uc  *usecase.DiscountRequestUseCase
	log *logger.Logger
}

// NewDiscountHandler builds the handler.
func NewDiscountHandler(uc *usecase.DiscountRequestUseCase, log *logger.Logger) *DiscountHandler {
	return &DiscountHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Submit a discount request
// @Tags         discount-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDiscountRequest  true  "Request data"
// @Success      201   {object}  dto.DiscountRequestResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/discount-requests [post]
func (h *DiscountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.CustomerID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id and items are required"})
	}
	out, err := h.uc.Create(GetCompanyID(c), GetUserID(c), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a discount request by id
// @Tags         discount-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Request id"
// @Success      200  {object}  dto.DiscountRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discount-requests/{id} [get]
func (h *DiscountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "discount request not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List discount requests
// @Tags         discount-requests
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Status filter"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.DiscountRequestListResponse
// @Router       /api/discount-requests [get]
func (h *DiscountHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetCompanyID(c), c.Query("status"), page)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// Evaluate godoc
// @Summary      Run the governance engine on a pending request
// @Tags         discount-requests
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Request id"
// @Success      200  {object}  dto.DiscountRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/discount-requests/{id}/evaluate [post]
func (h *DiscountHandler) Evaluate(c *fiber.Ctx) error {
	out, err := h.uc.Evaluate(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "discount request not found"})
	}
	return c.JSON(out)
}

// Decide godoc
// @Summary      Record a human approve/reject decision
// @Tags         discount-requests
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Request id"
// @Param        body  body  dto.DecideDiscountRequest  true  "Decision"
// @Success      200   {object}  dto.DiscountRequestResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/discount-requests/{id}/decision [post]
func (h *DiscountHandler) Decide(c *fiber.Ctx) error {
	var in dto.DecideDiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Decide(GetCompanyID(c), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "discount request not found"})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Download the decision report PDF
// @Tags         discount-requests
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Request id"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/discount-requests/{id}/report.pdf [get]
func (h *DiscountHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.DecisionReport(GetCompanyID(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="decision-report-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
