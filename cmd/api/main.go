package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/marginiq/marginiq-api/internal/application/auth"
	"github.com/marginiq/marginiq-api/internal/application/ports"
	"github.com/marginiq/marginiq-api/internal/application/usecase"
	infracache "github.com/marginiq/marginiq-api/internal/infrastructure/cache"
	infraevents "github.com/marginiq/marginiq-api/internal/infrastructure/events"
	infrapdf "github.com/marginiq/marginiq-api/internal/infrastructure/pdf"
	"github.com/marginiq/marginiq-api/internal/infrastructure/postgres"
	httpRouter "github.com/marginiq/marginiq-api/internal/interfaces/http"
	"github.com/marginiq/marginiq-api/pkg/config"
	"github.com/marginiq/marginiq-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	requestRepo := postgres.NewDiscountRequestRepository(pool)
	governanceRepo := postgres.NewGovernanceRepository(pool)
	auditRepo := postgres.NewGovernanceAuditRepository(pool)
	txRunner := postgres.NewDecisionTxRunner(pool)

	// Governance config cache: optional, enabled by REDIS_ADDR.
	var governanceCache ports.GovernanceCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		governanceCache = infracache.NewRedisGovernanceCache(redisClient, time.Duration(cfg.Redis.TTLSecs)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("governance cache enabled")
	}

	// Decision events: optional, enabled by KAFKA_BROKERS.
	var publisher ports.DecisionEventPublisher = infraevents.NoopDecisionPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := infraevents.NewKafkaDecisionPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("decision events enabled")
	}

	reportGenerator := infrapdf.NewMarotoReportGenerator()

	companyUC := usecase.NewCompanyUseCase(companyRepo, governanceRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	governanceUC := usecase.NewGovernanceUseCase(governanceRepo, auditRepo, governanceCache)
	discountUC := usecase.NewDiscountRequestUseCase(
		requestRepo, productRepo, customerRepo, companyRepo,
		governanceUC, txRunner, publisher, reportGenerator, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MarginIQ API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:    companyUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		DiscountUC:   discountUC,
		GovernanceUC: governanceUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
