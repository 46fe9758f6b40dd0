package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/cleanwave/cleanwave/internal/domain/contract"
	handlerHttp "github.com/cleanwave/cleanwave/internal/handler/http"
	"github.com/cleanwave/cleanwave/internal/infrastructure/clock"
	"github.com/cleanwave/cleanwave/internal/infrastructure/config"
	"github.com/cleanwave/cleanwave/internal/infrastructure/idgen"
	"github.com/cleanwave/cleanwave/internal/infrastructure/kvstore"
	"github.com/cleanwave/cleanwave/internal/infrastructure/latency"
	"github.com/cleanwave/cleanwave/internal/infrastructure/logger"
	"github.com/cleanwave/cleanwave/internal/infrastructure/seed"
	"github.com/cleanwave/cleanwave/internal/infrastructure/validator"
	"github.com/cleanwave/cleanwave/internal/usecase"
	usecasecontract "github.com/cleanwave/cleanwave/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewZapLogger()

	// Durable key-value substrate
	kv, cleanup, err := buildKVStore(context.Background(), appConfig)
	if err != nil {
		appLogger.Fatalf("Failed to open durable store: %v", err)
	}
	defer cleanup()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: infrastructure services
	idGenerator := idgen.NewGenerator()
	appClock := clock.NewSystemClock()
	loginLatency := latency.NewFixedDelay(appConfig.GetLoginLatency())

	// Dependency Injection: Usecases
	identityUsecase := usecase.NewIdentityUsecase(kv, seed.Users(), idGenerator, loginLatency, appLogger)
	catalogUsecase := usecase.NewCatalogUsecase(kv, seed.Events(), idGenerator, appClock, appLogger)
	educationUsecase := usecase.NewEducationUsecase(seed.Tips(), seed.FAQs(), seed.QuizQuestions(), seed.Certificates(), appClock)

	// Restore persisted state before serving requests
	if err := identityUsecase.RestoreSession(context.Background()); err != nil {
		appLogger.Fatalf("Failed to restore session: %v", err)
	}
	if err := catalogUsecase.Init(context.Background()); err != nil {
		appLogger.Fatalf("Failed to load event collection: %v", err)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(identityUsecase, catalogUsecase, educationUsecase)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetPort()
	appLogger.Infof("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}

// buildKVStore selects the durable backend from configuration. The returned
// cleanup releases the underlying connection and is safe to call once.
func buildKVStore(ctx context.Context, cfg usecasecontract.IConfigProvider) (contract.IKVStore, func(), error) {
	switch backend := cfg.GetDurableBackend(); backend {
	case "sqlite":
		store, err := kvstore.OpenSQLiteStore(cfg.GetSQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "redis":
		client, err := kvstore.NewRedisFromURL(ctx, cfg.GetRedisURL())
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewRedisStore(client), func() { _ = client.Close() }, nil
	case "mongo":
		client, err := kvstore.DialMongo(ctx, cfg.GetMongoURI())
		if err != nil {
			return nil, nil, err
		}
		collection := client.Database(cfg.GetMongoDBName()).Collection("kv")
		return kvstore.NewMongoStore(collection), func() { _ = client.Disconnect(context.Background()) }, nil
	case "memory":
		return kvstore.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown durable backend %q", backend)
	}
}
