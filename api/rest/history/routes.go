package history

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/history"
)

func RegisterRoutes(router *gin.RouterGroup, store history.Store) {
	group := router.Group("/history")
	{
		group.GET("", ListHandler(store))
		group.POST("", AddHandler(store))
		group.DELETE("", ClearHandler(store))
	}
}
