package websocket

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, deployer Deployer, allowedOrigins []string) {
	router.GET("/deploy/stream", DeployStreamHandler(deployer, allowedOrigins))
}
