package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Rustaman254/waveUnit/api"
	"github.com/Rustaman254/waveUnit/config"
	"github.com/Rustaman254/waveUnit/database"
	"github.com/Rustaman254/waveUnit/events"
	"github.com/Rustaman254/waveUnit/ledger"
	"github.com/Rustaman254/waveUnit/oracle"
	"github.com/Rustaman254/waveUnit/repository"
	"github.com/Rustaman254/waveUnit/service"
	"github.com/Rustaman254/waveUnit/workers"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting waveunit platform...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Initialize Hedera client
	log.Println("Connecting to Hedera network...")
	ledgerClient, err := ledger.NewHederaClient(ledger.HederaConfig{
		Network:    cfg.HederaNetwork,
		OperatorID: cfg.OperatorID,
		OperatorKey: cfg.OperatorKey,
		TokenID:    cfg.ShareTokenID,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize Hedera client: %w", err)
	}
	log.Printf("Hedera client ready on %s as %s", cfg.HederaNetwork, ledgerClient.OperatorAccount())

	// Initialize exchange rate oracle
	rateOracle := oracle.NewRateOracle(&http.Client{Timeout: 10 * time.Second}, cfg.RateURL, cfg.FallbackRate)

	// Initialize services
	log.Println("Initializing services...")
	profileService := service.NewProfileService(uowFactory)
	investmentService := service.NewInvestmentService(uowFactory, ledgerClient, rateOracle)
	withdrawalService := service.NewWithdrawalService(uowFactory)
	distributionService := service.NewDistributionService(uowFactory)
	settingsService := service.NewSettingsService(uowFactory)
	reportingService := service.NewReportingService(uowFactory)
	log.Println("Services initialized successfully")

	// Start the daily distribution worker
	distributionWorker := workers.NewDistributionWorker(distributionService)
	stopWorker := distributionWorker.Start(ctx, cfg.DistributionHour)
	defer stopWorker()

	// Build the HTTP router
	router := api.NewRouter(&api.Config{
		ProfileHandler:    api.NewProfileHandler(profileService, investmentService, withdrawalService, distributionService),
		InvestmentHandler: api.NewInvestmentHandler(investmentService),
		WithdrawalHandler: api.NewWithdrawalHandler(withdrawalService),
		PlatformHandler:   api.NewPlatformHandler(rateOracle, reportingService),
		AdminHandler:      api.NewAdminHandler(profileService, investmentService, withdrawalService, distributionService, settingsService, reportingService),
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP server listening on %s in %s mode...", cfg.ListenAddr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown or a server failure
	select {
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
