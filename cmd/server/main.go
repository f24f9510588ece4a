package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kingao12/investment-platform/internal/api"
	"github.com/kingao12/investment-platform/internal/config"
	"github.com/kingao12/investment-platform/internal/database"
	"github.com/kingao12/investment-platform/internal/pricing"
	"github.com/kingao12/investment-platform/internal/pricing/alphavantage"
	"github.com/kingao12/investment-platform/internal/pricing/coingecko"
	"github.com/kingao12/investment-platform/internal/repository"
	"github.com/kingao12/investment-platform/internal/scheduler"
	"github.com/kingao12/investment-platform/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	portfolioRepo := repository.NewPortfolioRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	settingsService, err := service.NewSettingsService(
		settingsRepo,
		cfg.Secrets.FernetKey,
		cfg.Pricing.EquityAPIKey,
	)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}

	// Price sources: CoinGecko for crypto, Alpha Vantage for equities.
	// The Alpha Vantage key comes from the settings service so a stored
	// key takes effect without a restart.
	router := &pricing.Router{
		Crypto: coingecko.NewClient(cfg.Pricing.VsCurrency),
		Equity: alphavantage.NewClient(settingsService),
	}

	valuationService := service.NewValuationService(
		holdingRepo,
		transactionRepo,
		snapshotRepo,
		router,
		cfg.Pricing.VsCurrency,
	)
	portfolioService := service.NewPortfolioService(
		portfolioRepo,
		holdingRepo,
		valuationService,
	)
	holdingService := service.NewHoldingService(
		holdingRepo,
		portfolioRepo,
	)
	transactionService := service.NewTransactionService(
		transactionRepo,
		holdingRepo,
	)
	journalService := service.NewJournalService(journalRepo)
	calendarService := service.NewCalendarService(calendarRepo)

	// Start the background price refresh
	priceScheduler, err := scheduler.New(valuationService, cfg.Pricing.RefreshSpec)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}
	priceScheduler.Start()
	defer priceScheduler.Stop()

	// Create router
	handler := api.NewRouter(api.Services{
		System:      systemService,
		Portfolio:   portfolioService,
		Holding:     holdingService,
		Transaction: transactionService,
		Valuation:   valuationService,
		Journal:     journalService,
		Calendar:    calendarService,
		Settings:    settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
