package main

import (
	"fmt"

	"codeberg.org/promptforge/server/internal/assistant"
	"codeberg.org/promptforge/server/internal/codegen"
	"codeberg.org/promptforge/server/internal/config"
	"codeberg.org/promptforge/server/internal/deploy"
	"codeberg.org/promptforge/server/internal/gitops"
	"codeberg.org/promptforge/server/internal/llm"
	"codeberg.org/promptforge/server/internal/logger"
	"codeberg.org/promptforge/server/internal/preview"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config) (*Services, error) {
	clients, err := llm.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM clients: %w", err)
	}

	services := &Services{
		LLM:       clients,
		Chat:      chatResponder(cfg, clients),
		Generator: codegen.New(clients.Generator),
		Deployer:  deploy.NewSimulator(cfg.DeployDelay),
		Repos:     gitops.NewStubManager(cfg.GitHubToken),
		Previews:  preview.NewStubManager(),
	}

	if services.Generator.Remote() {
		logger.Info("remote completions enabled",
			"provider", cfg.Provider,
			"chat_model", clients.Chat.Model(),
			"generator_model", clients.Generator.Model(),
		)
	} else {
		logger.Warn("no API key configured, running in local mode",
			"provider", cfg.Provider,
			"chat_fallback", cfg.ChatFallback,
			"templates", len(codegen.Templates()),
		)
	}

	return services, nil
}

// picks the chat responder. without a credential the chat either reports
// a configuration error or answers from canned replies.
func chatResponder(cfg *config.Config, clients *llm.Clients) assistant.Responder {
	if clients.Available() {
		return assistant.New(clients.Chat, cfg.AssistantLanguage)
	}

	if cfg.ChatFallback == config.ChatFallbackLocal {
		return assistant.NewLocalResponder()
	}

	return assistant.New(nil, cfg.AssistantLanguage)
}
