package chat

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/assistant"
)

func RegisterRoutes(router *gin.RouterGroup, responder assistant.Responder) {
	router.POST("/chat", Handler(responder))
}
