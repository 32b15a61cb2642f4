package http

import (
	"github.com/gin-gonic/gin"
	"github.com/messmeal/backend/config"
)

// SetupRouter creates and configures the Gin router.
// mcpHandler may be nil, in which case the /mcp routes are not registered.
func SetupRouter(cfg *config.Config, handler *Handler, mcpHandler *MCPHandler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Planner endpoints, rate limited per client IP
	planner := router.Group("/")
	planner.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	{
		planner.POST("/setup-profile", handler.SetupProfile)
		planner.POST("/scan-menu", handler.ScanMenu)
		planner.POST("/get-recommendations", handler.GetRecommendations)
		planner.POST("/get-guidance", handler.GetGuidance)
		planner.GET("/workout-motivation/:workout_day/:goal", handler.WorkoutMotivation)
		planner.GET("/search-food/:food_name", handler.SearchFood)
	}

	if mcpHandler != nil {
		tools := router.Group("/mcp")
		tools.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
		{
			tools.GET("/tools", mcpHandler.ListTools)
			tools.POST("/call", mcpHandler.CallTool)
		}
	}

	return router
}
