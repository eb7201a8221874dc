package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"zoomboom/docs"
	"zoomboom/internal/auth"
	"zoomboom/internal/config"
	"zoomboom/internal/coverage"
	"zoomboom/internal/database"
	"zoomboom/internal/database/migration"
	handlers "zoomboom/internal/http/handler"
	"zoomboom/internal/http/middleware"
	"zoomboom/internal/logging"
	"zoomboom/internal/otel"
	"zoomboom/internal/payment"
	"zoomboom/internal/repository/postgres"
	"zoomboom/internal/service"
	"zoomboom/internal/storage"
	"zoomboom/internal/validation"
)

// @title						ZoomBoom Parcel API
// @version					1.0
// @description				Parcel booking, payments, rider onboarding and coverage for ZoomBoom.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", cfg.Timezone, err)
	}
	logger := logging.Stdout(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	revoked, closeRedis := revocationStore(ctx, cfg.Redis, logger)
	defer closeRedis()

	tokens, err := auth.NewTokens(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("failed to configure tokens: %v", err)
	}

	outbound := &http.Client{
		Timeout:   30 * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	identities, err := auth.NewFirebaseVerifier(cfg.Identity.FirebaseProjectID, cfg.Identity.CertsURL, outbound)
	if err != nil {
		log.Fatalf("failed to configure identity verification: %v", err)
	}

	gateway := payment.NewStripe(cfg.Payment.StripeSecretKey, outbound)

	validator, err := validation.New()
	if err != nil {
		log.Fatalf("failed to build validator: %v", err)
	}

	cov, err := coverage.Load(cfg.CoverageFile)
	if err != nil {
		log.Fatalf("failed to load coverage: %v", err)
	}

	userRepo := postgres.NewUserPostgres(db)
	parcelRepo := postgres.NewParcelPostgres(db)
	paymentRepo := postgres.NewPaymentPostgres(db)
	riderRepo := postgres.NewRiderPostgres(db)

	deps := handlers.Dependencies{
		DB:       db,
		Coverage: cov,
		Sessions: service.NewSessionService(tokens, revoked, userRepo, identities),
		Users:    service.NewUserService(userRepo, identities, validator),
		Parcels:  service.NewParcelService(parcelRepo, cov, validator),
		Payments: service.NewPaymentService(paymentRepo, parcelRepo, gateway, validator, service.PaymentOptions{
			Currency:      cfg.Payment.Currency,
			VerifyIntents: cfg.Payment.VerifyIntents,
		}),
		Riders: service.NewRiderService(riderRepo, cov, validator),
		Images: service.NewImageService(objStore, int64(cfg.Upload.MaxBytes), time.Duration(cfg.Upload.URLTTLHours)*time.Hour),
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := newApp(cfg, deps, promMiddleware, reg, logger)

	go func() {
		<-ctx.Done()
		logger.Info("server_shutdown", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server_shutdown_failed", err, nil)
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing_shutdown_failed", err, nil)
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("server_listening", map[string]any{"addr": addr})
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newApp(cfg *config.AppConfig, deps handlers.Dependencies, prom *middleware.PrometheusMiddleware, reg *prometheus.Registry, logger *logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Multipart overhead on top of the largest accepted image.
		BodyLimit: cfg.Upload.MaxBytes + 1<<20,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(prom.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.RequestIDHeader,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	mountSwagger(app, cfg.AppHost)

	handlers.RegisterRoutes(app, deps)
	return app
}

// mountSwagger serves the API docs. The host is fixed here, before any request is
// served, and the UI uses the scheme it was loaded with.
func mountSwagger(app *fiber.App, host string) {
	docs.SwaggerInfo.Host = host
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// revocationStore returns the Redis store when REDIS_ADDR is set, otherwise a no-op store.
func revocationStore(ctx context.Context, cfg config.RedisConfig, logger *logging.Logger) (auth.RevocationStore, func()) {
	if cfg.Addr == "" {
		logger.Warn("token_revocation_disabled", map[string]any{"reason": "REDIS_ADDR not set"})
		return auth.NopRevocationStore{}, func() {}
	}
	rdb, err := auth.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize token revocation: %v", err)
	}
	return auth.NewRedisRevocationStore(rdb), func() { _ = rdb.Close() }
}
