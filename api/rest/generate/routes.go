package generate

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/history"
)

// registers code generation routes
func RegisterRoutes(router *gin.RouterGroup, generator Generator, store history.Store) {
	router.POST("/generate", Handler(generator, store))
}
