package deploy

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/internal/gitops"
	"codeberg.org/promptforge/server/internal/preview"
)

func RegisterRoutes(router *gin.RouterGroup, deployer Deployer, repos gitops.Manager, previews preview.Manager) {
	router.POST("/deploy", DeployHandler(deployer))
	router.POST("/deploy-to-vercel", VercelHandler(deployer))
	router.POST("/deploy-preview", PreviewHandler(repos, previews))
	router.DELETE("/deploy-preview/:containerId", DestroyPreviewHandler(previews))
}
