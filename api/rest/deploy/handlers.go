package deploy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/deploy"
	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/gitops"
	"codeberg.org/promptforge/server/internal/logger"
	"codeberg.org/promptforge/server/internal/preview"
)

const (
	deployFailedMessage  = "Deployment failed. Please try again."
	previewFailedMessage = "Deployment failed"
	previewBranch        = "main"
)

type Deployer interface {
	Deploy(ctx context.Context, req deploy.Request, onStep func(step string)) (*deploy.Deployment, error)
	DeployToVercel(ctx context.Context, req deploy.VercelRequest) (*deploy.VercelDeployment, error)
}

// simulates a deployment of a git repository
func DeployHandler(deployer Deployer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		result, err := deployer.Deploy(c.Request.Context(), deploy.Request{
			ProjectName: req.ProjectName,
			GitHubURL:   req.GitHubURL,
		}, nil)
		if err != nil {
			respondDeployError(c, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Success:       true,
			DeploymentURL: result.URL,
			Message:       "Project deployed successfully!",
			Steps:         result.Steps,
		})
	}
}

// simulates uploading generated files to Vercel
func VercelHandler(deployer Deployer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VercelRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		result, err := deployer.DeployToVercel(c.Request.Context(), deploy.VercelRequest{
			ProjectName: req.ProjectName,
			Files:       req.Files,
		})
		if err != nil {
			respondDeployError(c, err)
			return
		}

		c.JSON(http.StatusOK, VercelResponse{
			Success:      true,
			URL:          result.URL,
			Message:      "Successfully deployed to Vercel!",
			DeploymentID: result.DeploymentID,
			ProjectID:    result.ProjectID,
			Files:        result.Files,
		})
	}
}

// pushes the files to a fresh repository and starts a preview of it
func PreviewHandler(repos gitops.Manager, previews preview.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PreviewRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		ctx := c.Request.Context()
		repoName := fmt.Sprintf("preview-%d", time.Now().UnixMilli())

		repo, err := repos.CreateRepository(ctx, repoName, false)
		if err != nil {
			apierrors.InternalError(c, previewFailedMessage, err)
			return
		}

		for _, file := range req.Files {
			err := repos.CreateOrUpdateFile(ctx, repo.Owner.Login, repo.Name,
				file.Path, file.Content, "Add "+file.Path)
			if err != nil {
				apierrors.InternalError(c, previewFailedMessage, err)
				return
			}
		}

		info, err := previews.CreatePreview(ctx, repo.CloneURL, previewBranch)
		if err != nil {
			apierrors.InternalError(c, previewFailedMessage, err)
			return
		}

		logger.FromContext(ctx).Info("preview created",
			"repo", repo.Name,
			"preview_id", info.PreviewID,
			"files", len(req.Files),
		)

		c.JSON(http.StatusOK, PreviewResponse{
			PreviewURL:  info.URL,
			RepoURL:     repo.HTMLURL,
			PreviewID:   info.PreviewID,
			ContainerID: info.ContainerID,
		})
	}
}

// tears down a preview container
func DestroyPreviewHandler(previews preview.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		containerID := c.Param("containerId")

		if err := previews.DestroyPreview(c.Request.Context(), containerID); err != nil {
			apierrors.InternalError(c, "failed to destroy preview", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func respondDeployError(c *gin.Context, err error) {
	if errors.Is(err, deploy.ErrInvalidProjectName) {
		apierrors.ValidationError(c, "Project name is required")
		return
	}

	apierrors.InternalError(c, deployFailedMessage, err)
}
