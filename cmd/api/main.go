package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	notificationport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/notification"
	budgetUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/budget"
	categoryUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/category"
	reportUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/report"
	transactionUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/transaction"
	userUseCase "github.com/tobiadeyemi/pocketbudget/internal/domain/usecase/user"
	"github.com/tobiadeyemi/pocketbudget/internal/domain/worker"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/actor"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/handler"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/api/routes"
	jwtauth "github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/auth"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/database"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/database/migration"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/idgen"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/logger"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/notification"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/repository"
	timeProvider "github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/time"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	tp := timeProvider.NewRealTimeProvider()
	idGenerator := idgen.NewUUIDGenerator()

	// Database
	dbManager := database.NewManager(&cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	budgetRepo := repository.NewBudgetRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager.DB(), appLogger)

	if err := migration.SeedDefaultCategories(context.Background(), categoryRepo, idGenerator); err != nil {
		appLogger.Error("Failed to seed default categories", map[string]any{
			"error": err.Error(),
		})
	}

	// Push notification sender
	var pushSender notificationport.PushSender
	if cfg.Firebase.Enabled {
		fcmSender, err := notification.NewFCMSender(context.Background(), cfg.Firebase.CredentialsFile, appLogger)
		if err != nil {
			appLogger.Error("Failed to initialize push sender", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		pushSender = fcmSender
	} else {
		pushSender = notification.NewNoopSender(appLogger)
	}

	// Actor system and workers
	actorSystem := actor.NewSystem(cfg.Actor.QueueSize, appLogger)
	reconciler := worker.NewBudgetReconciler(budgetRepo, userRepo, actorSystem, tp, appLogger)
	categoryEnsurer := worker.NewCategoryEnsurer(categoryRepo, idGenerator, appLogger)
	pushNotifier := worker.NewPushNotifier(pushSender, appLogger)

	actorSystem.Register(worker.HandlerReconcileDelta, reconciler.HandleDelta)
	actorSystem.Register(worker.HandlerReconcileAbsolute, reconciler.HandleAbsolute)
	actorSystem.Register(worker.HandlerEnsureCategory, categoryEnsurer.HandleEnsure)
	actorSystem.Register(worker.HandlerSendPush, pushNotifier.HandleSend)
	actorSystem.Start()

	// Use cases
	tokenManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	userService := userUseCase.NewService(userRepo, tokenManager, idGenerator, tp, appLogger)
	transactionService := transactionUseCase.NewService(transactionRepo, actorSystem, idGenerator, tp, appLogger)
	budgetService := budgetUseCase.NewService(budgetRepo, idGenerator, tp, appLogger)
	categoryService := categoryUseCase.NewService(categoryRepo, appLogger)
	reportService := reportUseCase.NewService(transactionRepo, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(userService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, reportService, appLogger)
	budgetHandler := handler.NewBudgetHandler(budgetService, appLogger)
	categoryHandler := handler.NewCategoryHandler(categoryService, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokenManager, authHandler, userHandler, transactionHandler, budgetHandler, categoryHandler)

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

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// Drain in-flight events before closing the database
	actorSystem.Shutdown()

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PB_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PB_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or PB_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PB_DB_NAME environment variable)")
	}

	if cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or PB_AUTH_JWT_SECRET environment variable)")
	}

	if cfg.Firebase.Enabled && cfg.Firebase.CredentialsFile == "" {
		missingConfigs = append(missingConfigs, "firebase.credentialsFile (or PB_FIREBASE_CREDENTIALS_FILE environment variable)")
	}

	if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
