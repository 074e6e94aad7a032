package generate

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/codegen"
	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/history"
	"codeberg.org/promptforge/server/internal/logger"
)

type Generator interface {
	Generate(ctx context.Context, prompt string) (*codegen.Result, error)
}

// creates a handler for component generation. when the request names a
// client and a store is given, the result is added to that client's history.
func Handler(generator Generator, store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		prompt := strings.TrimSpace(req.Prompt)
		if prompt == "" {
			apierrors.ValidationError(c, "Prompt is required")
			return
		}

		ctx := c.Request.Context()

		result, err := generator.Generate(ctx, prompt)
		if err != nil {
			apierrors.InternalError(c, "Failed to generate code", err)
			return
		}

		log := logger.FromContext(ctx)
		log.Info("component generated",
			"source", result.Source,
			"template", result.Template,
			"code_length", len(result.Code),
		)

		if owner := c.GetHeader(history.ClientIDHeader); owner != "" && store != nil {
			entry := history.Entry{
				Prompt:  prompt,
				Code:    result.Code,
				Preview: result.Preview,
			}

			if err := store.Add(ctx, owner, entry); err != nil {
				log.Warn("failed to record project history", "error", err, "owner", owner)
			}
		}

		c.JSON(http.StatusOK, Response{
			Code:     result.Code,
			Preview:  result.Preview,
			Success:  true,
			Source:   result.Source,
			Template: result.Template,
		})
	}
}
