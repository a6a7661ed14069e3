package api

import (
	"net/http"

	routes "condotrack/internal/api/handlers"
	"condotrack/internal/config"
	"condotrack/internal/relay"
	"condotrack/internal/service/route"

	"github.com/gin-gonic/gin"
)

// SetupRouter initializes all application routes
func SetupRouter(r *gin.Engine, hub *relay.Hub, cfg config.Config) {
	r.Use(corsMiddleware(cfg.AllowedOrigin))

	// API group
	api := r.Group("/api")

	routeHandler := routes.NewRouteHandler(route.GetRouteService())
	routes.SetupRouteHandlers(api, routeHandler)

	routes.SetupTrackerHandlers(r.Group(""), api)
	routes.SetupWSHandlers(r.Group(""), hub, cfg.AllowedOrigin)
	routes.SetupMainHandlers(r, cfg)
}

// corsMiddleware restricts browser callers to the configured frontend origin
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowedOrigin == "*" || origin == allowedOrigin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
