package config

import "time"

type Config struct {
	Environment string
	Port        string

	Provider          Provider
	OpenAIKey         string
	OpenAIBaseURL     string
	AnthropicKey      string
	ChatModel         string
	GeneratorModel    string
	ChatFallback      ChatFallback
	AssistantLanguage string

	RedisURL       string
	GitHubToken    string
	RateLimit      string
	AllowedOrigins []string
	DeployDelay    time.Duration
}

// identifies the remote model API in use
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// decides what the chat route does without a credential
type ChatFallback string

const (
	ChatFallbackError ChatFallback = "error"
	ChatFallbackLocal ChatFallback = "local"
)
