package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/assistant"
	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/logger"
)

// answers a chat message through the configured responder
func Handler(responder assistant.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			apierrors.ValidationError(c, "Message is required")
			return
		}

		reply, err := responder.Reply(c.Request.Context(), message, req.Messages)
		if err != nil {
			code := apierrors.CodeUpstreamError
			if errors.Is(err, assistant.ErrNotConfigured) {
				code = apierrors.CodeNotConfigured
			}

			apierrors.InternalErrorWithCode(c, code, assistant.UserMessage(err), err)
			return
		}

		logger.FromContext(c.Request.Context()).Debug("chat reply sent",
			"history", len(req.Messages),
			"reply_length", len(reply),
		)

		c.JSON(http.StatusOK, Response{
			Response: reply,
			Success:  true,
		})
	}
}
