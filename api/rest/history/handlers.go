package history

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/history"
)

func owner(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.GetHeader(history.ClientIDHeader))
	if id == "" {
		apierrors.ValidationError(c, history.ClientIDHeader+" header is required")
		return "", false
	}

	return id, true
}

// lists the caller's recent projects, newest first
func ListHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := owner(c)
		if !ok {
			return
		}

		entries, err := store.List(c.Request.Context(), id)
		if err != nil {
			apierrors.InternalError(c, "failed to load project history", err)
			return
		}

		if entries == nil {
			entries = []history.Entry{}
		}

		c.JSON(http.StatusOK, ListResponse{Projects: entries, Success: true})
	}
}

// records a project. the oldest entry is dropped past history.MaxEntries.
func AddHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := owner(c)
		if !ok {
			return
		}

		var req AddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		if strings.TrimSpace(req.Code) == "" {
			apierrors.ValidationError(c, "Code is required")
			return
		}

		ctx := c.Request.Context()

		if err := store.Add(ctx, id, history.Entry{
			Prompt:  req.Prompt,
			Code:    req.Code,
			Preview: req.Preview,
		}); err != nil {
			apierrors.InternalError(c, "failed to save project", err)
			return
		}

		entries, err := store.List(ctx, id)
		if err != nil || len(entries) == 0 {
			apierrors.InternalError(c, "failed to load project history", err)
			return
		}

		c.JSON(http.StatusCreated, AddResponse{Project: entries[0], Success: true})
	}
}

func ClearHandler(store history.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := owner(c)
		if !ok {
			return
		}

		if err := store.Clear(c.Request.Context(), id); err != nil {
			apierrors.InternalError(c, "failed to clear project history", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
