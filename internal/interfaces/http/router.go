package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codergrounds/internal/interfaces/http/middleware"
	"codergrounds/internal/interfaces/http/routes"
)

// Router owns the gin engine and mounts all route groups.
type Router struct {
	engine    *gin.Engine
	container *Container
}

func NewRouter(container *Container) *Router {
	return &Router{
		engine:    gin.New(),
		container: container,
	}
}

// SetupRoutes configures global middleware and all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.container.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.container.log))
	r.engine.Use(middleware.CORS(r.container.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: r.container.authHandler,
	})

	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.container.userHandler,
		AuthMiddleware: r.container.authMiddleware,
	})

	routes.SetupPlaygroundRoutes(api, &routes.PlaygroundRouteConfig{
		PlaygroundHandler: r.container.playgroundHandler,
		AuthMiddleware:    r.container.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
