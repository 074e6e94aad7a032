package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/promptforge/server/api/rest/chat"
	"codeberg.org/promptforge/server/api/rest/deploy"
	"codeberg.org/promptforge/server/api/rest/diagnostics"
	"codeberg.org/promptforge/server/api/rest/generate"
	"codeberg.org/promptforge/server/api/rest/health"
	"codeberg.org/promptforge/server/api/rest/history"
	"codeberg.org/promptforge/server/api/websocket"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, rateLimit gin.HandlerFunc) {
	router.Use(RequestLogger())
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler)

	api := router.Group("/api")
	api.GET("/ping", health.PingHandler)
	api.GET("/test", diagnostics.Handler(server.config, nil))

	// streaming deploys are paced by the simulator and skip the limiter
	websocket.RegisterRoutes(api, server.services.Deployer, server.config.AllowedOrigins)

	limited := api.Group("")
	limited.Use(rateLimit)
	{
		chat.RegisterRoutes(limited, server.services.Chat)
		generate.RegisterRoutes(limited, server.services.Generator, server.history)
		deploy.RegisterRoutes(limited, server.services.Deployer, server.services.Repos, server.services.Previews)
		history.RegisterRoutes(limited, server.history)
	}
}
