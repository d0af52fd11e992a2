package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/executiva/backend/internal/application/identity"
	orgapp "github.com/executiva/backend/internal/application/organization"
	personnelapp "github.com/executiva/backend/internal/application/personnel"
	"github.com/executiva/backend/internal/application/uow"
	"github.com/executiva/backend/internal/domain/integrity"
	"github.com/executiva/backend/internal/domain/shared"
	"github.com/executiva/backend/internal/infrastructure/auth"
	"github.com/executiva/backend/internal/infrastructure/config"
	"github.com/executiva/backend/internal/infrastructure/logger"
	"github.com/executiva/backend/internal/infrastructure/persistence"
	"github.com/executiva/backend/internal/infrastructure/telemetry"
	"github.com/executiva/backend/internal/interfaces/http/handler"
	"github.com/executiva/backend/internal/interfaces/http/middleware"
	"github.com/executiva/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.NewFromConfig(cfg.Log, cfg.App.Env)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Executiva backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	mp, err := telemetry.NewMeterProvider(context.Background(), telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsExportInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()

	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	defer func() {
		if err := lp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down logger provider", zap.Error(err))
		}
	}()
	log = lp.Bridge(log, log.Level())

	businessMetrics, err := telemetry.NewBusinessMetrics(mp.Meter("executiva/uow"))
	if err != nil {
		log.Fatal("Failed to create business metrics", zap.Error(err))
	}
	uow.Instrument(businessMetrics)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	// Postgres schemas are owned by cmd/migrate; sqlite files are created in place
	if cfg.Database.Driver == config.DriverSQLite {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to create sqlite schema", zap.Error(err))
		}
	}

	dbSystem := "postgresql"
	if cfg.Database.Driver == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: 200 * time.Millisecond,
		DBSystem:        dbSystem,
	}, log)
	if err := dbTracing.RegisterOtelGorm(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	dbMetrics, err := telemetry.NewDBMetrics(mp.Meter("executiva/db"), db.PoolStats)
	if err != nil {
		log.Fatal("Failed to register database pool metrics", zap.Error(err))
	}
	defer func() {
		if err := dbMetrics.Stop(); err != nil {
			log.Error("Error stopping database pool metrics", zap.Error(err))
		}
	}()

	store := persistence.NewGormTransactionScope(db.DB)

	orgLimits := orgapp.Limits{
		LegalOrganizations: pageLimits(cfg.Pagination.LegalOrganizations, cfg.Pagination.MaxLimit),
		Organizations:      pageLimits(cfg.Pagination.Organizations, cfg.Pagination.MaxLimit),
		Departments:        pageLimits(cfg.Pagination.Departments, cfg.Pagination.MaxLimit),
	}
	personnelLimits := personnelapp.Limits{
		Executives:  pageLimits(cfg.Pagination.Executives, cfg.Pagination.MaxLimit),
		Secretaries: pageLimits(cfg.Pagination.Secretaries, cfg.Pagination.MaxLimit),
	}
	policy := integrity.PersonnelPolicy{
		ValidateManagerLink:   cfg.Personnel.ValidateManagerLink,
		ValidateReferences:    cfg.Personnel.ValidateReferences,
		SecretaryExecutiveIDs: integrity.ExecutiveIDPolicy(cfg.Personnel.SecretaryExecutivePolicy),
	}

	legalOrgService := orgapp.NewLegalOrganizationService(store, orgLimits.LegalOrganizations, log)
	organizationService := orgapp.NewOrganizationService(store, orgLimits.Organizations, log)
	departmentService := orgapp.NewDepartmentService(store, orgLimits.Departments, log)
	executiveService := personnelapp.NewExecutiveService(store, policy, personnelLimits.Executives, log)
	secretaryService := personnelapp.NewSecretaryService(store, policy, personnelLimits.Secretaries, log)
	userService := identityapp.NewUserService(store, auth.NewBcryptHasher(bcrypt.DefaultCost),
		pageLimits(cfg.Pagination.Users, cfg.Pagination.MaxLimit), log)

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		blacklist = redisBlacklist
		log.Info("Token revocation backed by redis", zap.String("addr", cfg.Redis.Addr()))
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Token revocation kept in memory")
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userService, jwtService, blacklist, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// RequestID runs first so the logger and tracer can read it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(middleware.HTTPMetrics(mp.Meter("http.server")))
	engine.Use(middleware.Secure(cfg.App.Env == "production"))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log

	router.Setup(engine, router.Handlers{
		LegalOrganizations: handler.NewLegalOrganizationHandler(legalOrgService),
		Organizations:      handler.NewOrganizationHandler(organizationService),
		Departments:        handler.NewDepartmentHandler(departmentService),
		Executives:         handler.NewExecutiveHandler(executiveService),
		Secretaries:        handler.NewSecretaryHandler(secretaryService),
		Users:              handler.NewUserHandler(userService),
		Auth:               handler.NewAuthHandler(authService),
		System:             handler.NewSystemHandler(db, cfg.App.Name, version),
	}, router.Options{
		Authenticate: middleware.JWTAuthMiddlewareWithConfig(jwtConfig),
		RequireAuth:  cfg.HTTP.RequireAuth,
	})

	if cfg.HTTP.RequireAuth {
		log.Info("Entity routes require a bearer token")
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

func pageLimits(def, maxLimit int) shared.PageLimits {
	return shared.PageLimits{Default: min(def, maxLimit), Max: maxLimit}
}
