package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/platewise/platewise-backend/internal/http/handlers"
	"github.com/platewise/platewise-backend/internal/http/middleware"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log               *logger.Logger
	HealthHandler     *handlers.HealthHandler
	RecipeHandler     *handlers.RecipeHandler
	PreferenceHandler *handlers.PreferenceHandler
	AllowOrigins      []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.Use(otelgin.Middleware("platewise"))
	router.Use(middleware.TraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/recipes", cfg.RecipeHandler.ListOriginals)
		api.GET("/recipes/:id", cfg.RecipeHandler.GetRecipe)
		api.POST("/recipes/:id/preferred", cfg.RecipeHandler.GetPreferredRecipe)
		api.GET("/preferences", cfg.PreferenceHandler.ListPreferences)
	}

	return router
}
