package router

import (
	"github.com/gin-gonic/gin"

	"github.com/leandrowiemesfilho/doc2md/internal/handler"
	"github.com/leandrowiemesfilho/doc2md/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(convertH *handler.ConvertHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS())

	r.GET("/", healthH.Root)
	r.GET("/health", healthH.Health)

	contracts := r.Group("/api/contracts")
	contracts.POST("/convert/word-to-md", convertH.WordToMarkdown)
	contracts.POST("/convert/pdf-to-md", convertH.PDFToMarkdown)
	contracts.POST("/convert", convertH.Convert)

	return r
}
