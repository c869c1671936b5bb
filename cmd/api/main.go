package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/api/middleware"
	"github.com/feral-file/ff-drop-engine/internal/api/server"
	"github.com/feral-file/ff-drop-engine/internal/config"
	"github.com/feral-file/ff-drop-engine/internal/engine"
	"github.com/feral-file/ff-drop-engine/internal/events"
	"github.com/feral-file/ff-drop-engine/internal/fees"
	"github.com/feral-file/ff-drop-engine/internal/ledger"
	"github.com/feral-file/ff-drop-engine/internal/logger"
	"github.com/feral-file/ff-drop-engine/internal/metadata"
	"github.com/feral-file/ff-drop-engine/internal/payments"
	"github.com/feral-file/ff-drop-engine/internal/pricing"
	"github.com/feral-file/ff-drop-engine/internal/sale"
	"github.com/feral-file/ff-drop-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "drop-engine-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Drop Engine API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)
	dropLedger := ledger.NewPGLedger(db, cfg.Drop.Slug, cfg.Drop.PartitionOffset)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Event publisher: NATS JetStream when configured, otherwise a no-op
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		publisher, err = events.NewJetStreamPublisher(events.Config{
			URL:            cfg.NATS.URL,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, drop events will not be published")
	}
	defer publisher.Close()

	// Money collaborators: price conversion, fee registry, payment sender
	pricingClient := pricing.NewClient(adapter.NewHTTPClient(cfg.Pricing.Timeout), cfg.Pricing.URL)
	paymentsClient := payments.NewClient(adapter.NewHTTPClient(cfg.Payments.Timeout), cfg.Payments.URL)
	accountant := fees.NewAccountant(pricingClient, pricingClient, paymentsClient, cfg.Payments.SendBudget)

	renderer := metadata.NewBaseRenderer(cfg.Drop.MetadataBaseURI, cfg.Drop.ContractURI)

	eng := engine.New(
		cfg.Drop.Slug,
		dataStore,
		dropLedger,
		sale.NewPhases(clock),
		accountant,
		publisher,
		renderer,
		clock,
	)

	// Create the drop row on first boot; subsequent boots are a no-op
	initParams := engine.InitParams{
		EditionSize:     cfg.Drop.EditionSize,
		RoyaltyBPS:      cfg.Drop.RoyaltyBPS,
		MetadataBaseURI: cfg.Drop.MetadataBaseURI,
		ContractURI:     cfg.Drop.ContractURI,
	}
	if common.IsHexAddress(cfg.Drop.Owner) {
		initParams.Owner = common.HexToAddress(cfg.Drop.Owner)
	} else {
		logger.FatalCtx(ctx, "Drop owner is not a valid address", zap.String("owner", cfg.Drop.Owner))
	}
	if cfg.Drop.FundsRecipient != "" {
		if !common.IsHexAddress(cfg.Drop.FundsRecipient) {
			logger.FatalCtx(ctx, "Funds recipient is not a valid address", zap.String("funds_recipient", cfg.Drop.FundsRecipient))
		}
		initParams.FundsRecipient = common.HexToAddress(cfg.Drop.FundsRecipient)
	}
	if err := eng.EnsureInitialized(ctx, initParams); err != nil {
		logger.FatalCtx(ctx, "Failed to initialize drop", zap.Error(err))
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	authConfig := middleware.AuthConfig{
		JWTPublicKey: cfg.Auth.JWTPublicKey,
		APIKeys:      cfg.Auth.APIKeys,
	}

	// Create and start server
	srv := server.New(serverConfig, eng, authConfig)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
