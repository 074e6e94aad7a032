package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/promptforge/server/internal/assistant"
	"codeberg.org/promptforge/server/internal/codegen"
	"codeberg.org/promptforge/server/internal/config"
	"codeberg.org/promptforge/server/internal/deploy"
	"codeberg.org/promptforge/server/internal/gitops"
	"codeberg.org/promptforge/server/internal/history"
	"codeberg.org/promptforge/server/internal/llm"
	"codeberg.org/promptforge/server/internal/preview"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	history  history.Store
	redis    *redis.Client // nil when REDIS_URL is unset
	router   *gin.Engine
}

// holds the service clients behind the handlers
type Services struct {
	LLM       *llm.Clients
	Chat      assistant.Responder
	Generator *codegen.Generator
	Deployer  *deploy.Simulator
	Repos     gitops.Manager
	Previews  preview.Manager
}
