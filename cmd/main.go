package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/platewise/platewise-backend/internal/data/db"
	"github.com/platewise/platewise-backend/internal/data/repos"
	"github.com/platewise/platewise-backend/internal/http/handlers"
	"github.com/platewise/platewise-backend/internal/observability"
	"github.com/platewise/platewise-backend/internal/platform/envutil"
	"github.com/platewise/platewise-backend/internal/platform/logger"
	"github.com/platewise/platewise-backend/internal/platform/openai"
	"github.com/platewise/platewise-backend/internal/server"
	"github.com/platewise/platewise-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "platewise-backend",
		Environment: envutil.String("DEPLOY_ENV", "local"),
	})
	if shutdownOtel != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownOtel(ctx)
		}()
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	recipeRepo := repos.NewRecipeRepo(thePG, log)
	preferenceRepo := repos.NewPreferenceRepo(thePG, log)
	recipePreferenceRepo := repos.NewRecipePreferenceRepo(thePG, log)
	variationRepo := repos.NewVariationRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAI client", "error", err)
		os.Exit(1)
	}
	preferenceService := services.NewPreferenceService(thePG, log, preferenceRepo)
	resolverService := services.NewVariantResolverService(thePG, log, preferenceService, recipeRepo, recipePreferenceRepo, variationRepo)
	generationService := services.NewRecipeGenerationService(log, openaiClient)
	writerService := services.NewVariantWriterService(thePG, log, recipeRepo, recipePreferenceRepo, variationRepo)
	variantService := services.NewRecipeVariantService(thePG, log, resolverService, generationService, writerService, recipeRepo)
	recipeService := services.NewRecipeService(thePG, log, recipeRepo)

	// Handlers
	log.Info("Setting up handlers...")
	healthHandler := handlers.NewHealthHandler()
	recipeHandler := handlers.NewRecipeHandler(recipeService, variantService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		HealthHandler:     healthHandler,
		RecipeHandler:     recipeHandler,
		PreferenceHandler: preferenceHandler,
	})

	port := envutil.String("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
