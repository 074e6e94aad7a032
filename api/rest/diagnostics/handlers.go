package diagnostics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/config"
)

// reports whether a model credential is configured without exposing it
func Handler(cfg *config.Config, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Success:     true,
			HasAPIKey:   cfg.HasCredential(),
			APIKeyStart: cfg.MaskedKey(),
			Provider:    string(cfg.Provider),
			Environment: cfg.Environment,
			Timestamp:   now().UTC(),
		})
	}
}
