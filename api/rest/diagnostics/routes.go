package diagnostics

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/config"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	router.GET("/test", Handler(cfg, nil))
}
