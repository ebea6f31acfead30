package routes

import (
	"github.com/gin-gonic/gin"

	"codergrounds/internal/interfaces/http/handlers"
	"codergrounds/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures the authenticated user's own routes.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", cfg.UserHandler.GetCurrentUser)
		users.PUT("/me/password", cfg.UserHandler.ChangePassword)
	}
}
