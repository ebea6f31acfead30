package routes

import (
	"github.com/gin-gonic/gin"

	"codergrounds/internal/interfaces/http/handlers"
	"codergrounds/internal/interfaces/http/middleware"
)

// PlaygroundRouteConfig holds dependencies for playground routes.
type PlaygroundRouteConfig struct {
	PlaygroundHandler *handlers.PlaygroundHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupPlaygroundRoutes configures playground, file, and execution routes.
// Reads and executions use optional auth so public playgrounds work for
// anonymous visitors; every mutation requires the owner.
func SetupPlaygroundRoutes(api *gin.RouterGroup, cfg *PlaygroundRouteConfig) {
	playgrounds := api.Group("/playgrounds")
	{
		playgrounds.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.Create)
		playgrounds.GET("", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.List)

		playgrounds.GET("/:id", cfg.AuthMiddleware.OptionalAuth(), cfg.PlaygroundHandler.Get)
		playgrounds.PATCH("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.Update)
		playgrounds.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.Delete)

		playgrounds.POST("/:id/files", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.CreateFile)
		playgrounds.PATCH("/:id/files/:fileId", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.UpdateFile)
		playgrounds.DELETE("/:id/files/:fileId", cfg.AuthMiddleware.RequireAuth(), cfg.PlaygroundHandler.DeleteFile)

		playgrounds.POST("/:id/execute", cfg.AuthMiddleware.OptionalAuth(), cfg.PlaygroundHandler.ExecuteCode)
		playgrounds.GET("/:id/executions", cfg.AuthMiddleware.OptionalAuth(), cfg.PlaygroundHandler.ListExecutions)
		playgrounds.GET("/:id/executions/:executionId", cfg.AuthMiddleware.OptionalAuth(), cfg.PlaygroundHandler.GetExecution)
	}
}
