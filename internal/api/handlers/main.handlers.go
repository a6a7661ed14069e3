package routes

import (
	"net/http"

	"condotrack/internal/config"

	"github.com/gin-gonic/gin"
)

// SetupMainHandlers registers the static tracking pages as a fallback behind
// the API routes
func SetupMainHandlers(engine *gin.Engine, cfg config.Config) {
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	engine.NoRoute(func(c *gin.Context) {
		fileServer.ServeHTTP(c.Writer, c.Request)
	})
}

// NewHealthEngine builds the isolated liveness listener: GET / answers with
// success and no body
func NewHealthEngine() *gin.Engine {
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}
