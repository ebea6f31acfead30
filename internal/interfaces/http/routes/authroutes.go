package routes

import (
	"github.com/gin-gonic/gin"

	"codergrounds/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
}

// SetupAuthRoutes configures authentication and OAuth routes. The refresh
// token cookie is scoped to /api/v1/auth, so every route that touches it
// lives under that prefix.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.RefreshToken)
		auth.POST("/logout", cfg.AuthHandler.Logout)
	}

	oauth := api.Group("/oauth")
	{
		oauth.GET("/:provider", cfg.AuthHandler.InitiateOAuth)
		oauth.GET("/:provider/callback", cfg.AuthHandler.OAuthCallback)
	}
}
