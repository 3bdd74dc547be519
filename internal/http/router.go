package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig receives the router's dependencies.
type RouterConfig struct {
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Version)
	contentController := NewContentController()
	projectController := NewProjectController()

	router.GET("/health", health.Status)

	api := router.Group("/api/projects")
	api.POST("/content/parse", contentController.Parse)
	api.POST("/content/import", contentController.Import)
	api.POST("/validate", projectController.Validate)
	api.GET("/options", projectController.Options)

	return router
}
