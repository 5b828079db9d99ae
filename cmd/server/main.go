package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountingapp "github.com/docs2ai/gateway/internal/application/accounting"
	catalogapp "github.com/docs2ai/gateway/internal/application/catalog"
	docsaiapp "github.com/docs2ai/gateway/internal/application/docsai"
	expenseapp "github.com/docs2ai/gateway/internal/application/expense"
	identityapp "github.com/docs2ai/gateway/internal/application/identity"
	partnerapp "github.com/docs2ai/gateway/internal/application/partner"
	"github.com/docs2ai/gateway/internal/infrastructure/auth"
	"github.com/docs2ai/gateway/internal/infrastructure/config"
	docsaiclient "github.com/docs2ai/gateway/internal/infrastructure/docsai"
	"github.com/docs2ai/gateway/internal/infrastructure/logger"
	"github.com/docs2ai/gateway/internal/infrastructure/persistence"
	"github.com/docs2ai/gateway/internal/interfaces/http/handler"
	"github.com/docs2ai/gateway/internal/interfaces/http/middleware"
	"github.com/docs2ai/gateway/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Docs2AI gateway",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	queryLog := logger.NewQueryLogger(log, logger.QueryLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, queryLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	partnerRepo := persistence.NewGormPartnerRepository(db.DB)
	entryRepo := persistence.NewGormEntryRepository(db.DB)
	taxRepo := persistence.NewGormTaxRepository(db.DB)
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	paramRepo := persistence.NewGormParamRepository(db.DB)
	attachmentRepo := persistence.NewGormAttachmentRepository(db.DB)
	attemptRepo := persistence.NewGormUploadAttemptRepository(db.DB)

	// Outbound Docs2AI client
	docsaiGateway := docsaiclient.NewClient(&cfg.DocsAI, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	managerService := identityapp.NewManagerService(userRepo)
	partnerService := partnerapp.NewPartnerService(partnerRepo)
	entryService := accountingapp.NewEntryService(entryRepo, partnerRepo, currencyRepo, taxRepo, accountRepo, attachmentRepo)
	taxService := accountingapp.NewTaxService(taxRepo, accountRepo)
	expenseService := expenseapp.NewExpenseService(expenseRepo, employeeRepo, currencyRepo, taxRepo, entryRepo, attachmentRepo)
	categoryService := catalogapp.NewCategoryService(productRepo)
	uploadService := docsaiapp.NewUploadService(paramRepo, docsaiGateway, entryRepo, expenseRepo, attemptRepo, log)
	settingsService := docsaiapp.NewSettingsService(paramRepo, docsaiGateway, log)
	statusService := docsaiapp.NewStatusService(paramRepo, docsaiGateway, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	entryHandler := handler.NewEntryHandler(entryService)
	taxHandler := handler.NewTaxHandler(taxService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	managerHandler := handler.NewManagerHandler(managerService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	docsaiHandler := handler.NewDocsAIHandler(statusService, settingsService, log)
	healthHandler := handler.NewHealthHandler(db)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Auth(middleware.DefaultAuthConfig(jwtService, log)))

	router.NewRouter(engine).
		API(authHandler, partnerHandler, entryHandler, taxHandler, expenseHandler,
			managerHandler, categoryHandler, uploadHandler).
		Docs2AI(docsaiHandler).
		Root(healthHandler).
		Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
