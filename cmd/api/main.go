package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/stars-roulette/internal/domain/port/core"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/referral"
	"github.com/amirhossein-jamali/stars-roulette/internal/domain/usecase/roulette"

	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/scheduler"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/stars-roulette/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, v, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production:  cfg.Environment == config.Production || cfg.Logger.Format == "json",
		Level:       coreport.ParseLogLevel(cfg.Logger.Level),
		OutputPaths: outputPaths(cfg.Logger.Output),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// Database
	startCtx, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	dbManager := database.NewManager(database.CreateConfigFromViperConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(startCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		cancelStart()
		os.Exit(1)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(startCtx); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
		cancelStart()
		os.Exit(1)
	}
	cancelStart()

	uow := dbManager.CreateUnitOfWork()

	// Runtime settings
	economy := config.NewEconomyProvider(cfg.Economy.Settings(), appLogger)
	economy.Watch(v)
	admins := config.NewAdminDirectory(cfg.Security.AdminTelegramIDs)

	holder, err := ledger.ResolveHolder(cfg.Ledger.Holder, os.Hostname)
	if err != nil {
		appLogger.Warn("Hostname unavailable, using a random lease holder", map[string]any{
			"holder": holder,
			"error":  err.Error(),
		})
	}
	executor := ledger.NewExecutor(uow, appLogger, tp, ledger.Options{
		QueueSize:   cfg.Ledger.QueueSize,
		IdleTimeout: cfg.Ledger.IdleTimeout,
		LockTTL:     time.Duration(cfg.Ledger.LockTimeoutMs) * time.Millisecond,
		Holder:      holder,
	})

	// Telegram
	var tgClient *telegram.Client
	var botAPI telegram.API
	if cfg.Telegram.BotToken != "" {
		bot, err := telegram.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			appLogger.Error("Failed to create Telegram bot client", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		botAPI = bot
		tgClient = telegram.NewClient(bot, appLogger)
	} else {
		appLogger.Warn("No bot token configured, invoices and notifications are disabled", nil)
	}

	// Use cases
	resolver := roulette.NewResolver(uow, appLogger)
	selector := roulette.NewSelector(random.NewSource())

	var invoices coreport.InvoiceProvider
	var notifier coreport.Notifier
	if tgClient != nil {
		invoices = tgClient
		notifier = tgClient
	}

	accountService := account.NewService(executor, economy, admins, invoices, appLogger, tp, cfg.Telegram.BotUsername)
	rouletteService := roulette.NewService(executor, resolver, selector, economy, appLogger, tp)
	paymentService := payment.NewService(executor, uow, economy, appLogger, tp)
	referralService := referral.NewService(executor, economy, appLogger, tp)
	adminService := admin.NewService(executor, resolver, economy, appLogger, tp)

	// Background work
	runCtx, stopRun := context.WithCancel(context.Background())
	defer stopRun()

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(
			cfg.Scheduler.Timezone,
			scheduler.Specs{
				Reconcile:   cfg.Scheduler.ReconcileSpec,
				Digest:      cfg.Scheduler.DigestSpec,
				LockCleanup: cfg.Scheduler.LockCleanupSpec,
			},
			adminService,
			executor,
			notifier,
			admins,
			appLogger,
		)
		if err := sched.Start(); err != nil {
			appLogger.Error("Failed to start scheduler", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}

	botDone := make(chan struct{})
	if cfg.Telegram.BotEnabled && botAPI != nil {
		bot := telegram.NewBot(botAPI, accountService, paymentService, referralService, notifier, appLogger, telegram.BotOptions{
			PollTimeoutSeconds: cfg.Telegram.PollTimeoutSeconds,
			MaxInflight:        cfg.Telegram.MaxInflight,
			WebAppURL:          cfg.Telegram.WebAppURL,
			SupportChatIDs:     admins.AdminIDs(),
		})
		go func() {
			defer close(botDone)
			if err := bot.Run(runCtx); err != nil {
				appLogger.Error("Bot stopped with error", map[string]any{"error": err.Error()})
			}
		}()
	} else {
		close(botDone)
	}

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Account:  handler.NewAccountHandler(accountService, appLogger),
		Roulette: handler.NewRouletteHandler(rouletteService, appLogger),
		Internal: handler.NewInternalHandler(paymentService, referralService, appLogger),
		Admin:    handler.NewAdminHandler(adminService, referralService, appLogger),
		Health:   handler.NewHealthHandler(dbManager),
	}, routes.Guards{
		Verifier:      telegram.NewInitDataVerifier(cfg.Telegram.BotToken, cfg.Telegram.InitDataMaxAge, tp),
		Users:         accountService,
		Admins:        admins,
		InternalToken: cfg.Security.InternalAPIToken,
	}, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking requests first, then drain the background work
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	stopRun()
	<-botDone
	if sched != nil {
		sched.Stop()
	}

	appLogger.Info("Shutting down ledger executor...", nil)
	executor.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

func outputPaths(output string) []string {
	if output == "" {
		return nil
	}
	return strings.Split(output, ",")
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or SR_DB_HOST)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or SR_DB_PORT)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or SR_DB_USERNAME)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or SR_DB_PASSWORD)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or SR_DB_NAME)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Ledger.LockTimeoutMs == 0 {
		missingConfigs = append(missingConfigs, "ledger.lockTimeoutMs")
	}

	if cfg.Telegram.BotEnabled && cfg.Telegram.BotToken == "" {
		missingConfigs = append(missingConfigs, "telegram.botToken (or SR_TELEGRAM_BOT_TOKEN) when telegram.botEnabled")
	}
	if cfg.Telegram.BotEnabled && cfg.Telegram.MaxInflight <= 0 {
		missingConfigs = append(missingConfigs, "telegram.maxInflight")
	}

	if cfg.Scheduler.Enabled && cfg.Scheduler.ReconcileSpec == "" &&
		cfg.Scheduler.DigestSpec == "" && cfg.Scheduler.LockCleanupSpec == "" {
		missingConfigs = append(missingConfigs, "scheduler.reconcileSpec, digestSpec or lockCleanupSpec")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Security.InternalAPIToken == "" {
			warnings = append(warnings, "security.internalAPIToken is empty, internal endpoints are open")
		}
		if cfg.Telegram.BotToken == "" {
			warnings = append(warnings, "telegram.botToken is empty, every mini app request will be rejected")
		}
		if len(cfg.Security.AdminTelegramIDs) == 0 {
			warnings = append(warnings, "security.adminTelegramIDs is empty, the admin API is unreachable")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
