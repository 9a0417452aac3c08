package main

import (
	"context"
	"log"

	"github.com/skelectricals/backend/internal/billing"
	"github.com/skelectricals/backend/internal/cache"
	"github.com/skelectricals/backend/internal/config"
	"github.com/skelectricals/backend/internal/database"
	"github.com/skelectricals/backend/internal/handler"
	"github.com/skelectricals/backend/internal/logger"
	"github.com/skelectricals/backend/internal/repository"
	"github.com/skelectricals/backend/internal/server"
	"github.com/skelectricals/backend/internal/service"
)

// @title SK Electricals API
// @version 1.0
// @description Back-office API for invoices, GST billing, clients and contact requests
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	// Repositories
	invoiceRepo := repository.NewPostgresInvoiceRepository(db.GetPool())
	userRepo := repository.NewPostgresUserRepository(db.GetPool())
	clientRepo := repository.NewPostgresClientRepository(db.GetPool())
	contactRepo := repository.NewPostgresContactRepository(db.GetPool())

	// Domain plumbing
	statusEngine := billing.NewStatusEngine(billing.SystemClock())
	statsCache := cache.New()

	// Services
	invoiceService := service.NewInvoiceService(invoiceRepo, statusEngine, statsCache, appLogger)
	dashboardService := service.NewDashboardService(invoiceService, statusEngine, statsCache, appLogger)
	clientService := service.NewClientService(clientRepo, appLogger)
	contactService := service.NewContactService(contactRepo, appLogger)
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:             userRepo,
		ClientRepo:           clientRepo,
		Logger:               appLogger,
		JWTSecret:            cfg.JWTSecret,
		JWTAccessExpiration:  cfg.JWTAccessExpiration,
		JWTRefreshExpiration: cfg.JWTRefreshExpiration,
	})

	// Catch up on invoices that went overdue while the service was down.
	if flipped, err := invoiceService.ReconcileOverdue(context.Background()); err != nil {
		appLogger.Warnw("startup overdue reconciliation failed", "error", err)
	} else if flipped > 0 {
		appLogger.Infow("startup overdue reconciliation", "updated", flipped)
	}

	handlers := server.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Client:    handler.NewClientHandler(clientService),
		Contact:   handler.NewContactHandler(contactService),
		Dashboard: handler.NewDashboardHandler(dashboardService, invoiceService),
	}

	appServer := server.NewServer(cfg, appLogger, authService, handlers)
	if err := appServer.Start(); err != nil {
		appLogger.Fatalw("server error", "error", err)
	}
}
