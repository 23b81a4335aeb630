package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/marginiq/marginiq-api/internal/application/auth"
	"github.com/marginiq/marginiq-api/internal/application/usecase"
	"github.com/marginiq/marginiq-api/internal/domain/entity"
	"github.com/marginiq/marginiq-api/pkg/logger"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CompanyUC    *usecase.CompanyUseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	DiscountUC   *usecase.DiscountRequestUseCase
	GovernanceUC *usecase.GovernanceUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	Log          *logger.Logger
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (public onboarding)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protected)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Discount requests (protected; decisions need approver or admin)
	requests := protected.Group("/discount-requests")
	discountHandler := NewDiscountHandler(deps.DiscountUC, deps.Log)
	requests.Post("/", discountHandler.Create)
	requests.Get("/", discountHandler.List)
	requests.Get("/:id", discountHandler.GetByID)
	requests.Get("/:id/report.pdf", discountHandler.Report)
	requests.Post("/:id/evaluate", discountHandler.Evaluate)
	requests.Post("/:id/decision", RequireRole(entity.RoleApprover, entity.RoleAdmin), discountHandler.Decide)

	// Governance (protected; writes are admin-only)
	gov := protected.Group("/governance")
	governanceHandler := NewGovernanceHandler(deps.GovernanceUC, deps.Log)
	gov.Get("/", governanceHandler.Get)
	gov.Get("/audit", governanceHandler.AuditTrail)
	gov.Put("/", RequireRole(entity.RoleAdmin), governanceHandler.Update)
	gov.Post("/presets/:name", RequireRole(entity.RoleAdmin), governanceHandler.ApplyPreset)
}
