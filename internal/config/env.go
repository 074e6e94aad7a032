package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort              = "8080"
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultOpenAIModel       = "gpt-4"
	defaultAnthropicModel    = "claude-3-5-haiku-latest"
	defaultAssistantLanguage = "Georgian"
	defaultRateLimit         = "30-M"
	defaultDeployDelay       = 2 * time.Second
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromEnv(os.Getenv)
}

// builds a Config from the given lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Environment:       getenv("ENVIRONMENT"),
		Port:              getenv("PORT"),
		Provider:          Provider(strings.ToLower(getenv("LLM_PROVIDER"))),
		OpenAIKey:         strings.TrimSpace(getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:     strings.TrimRight(getenv("OPENAI_BASE_URL"), "/"),
		AnthropicKey:      strings.TrimSpace(getenv("ANTHROPIC_API_KEY")),
		ChatModel:         getenv("CHAT_MODEL"),
		GeneratorModel:    getenv("GENERATOR_MODEL"),
		ChatFallback:      ChatFallback(strings.ToLower(getenv("CHAT_FALLBACK"))),
		AssistantLanguage: getenv("ASSISTANT_LANGUAGE"),
		RedisURL:          getenv("REDIS_URL"),
		GitHubToken:       getenv("GITHUB_TOKEN"),
		RateLimit:         getenv("RATE_LIMIT"),
		AllowedOrigins:    splitList(getenv("CORS_ALLOWED_ORIGINS")),
		DeployDelay:       defaultDeployDelay,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.OpenAIBaseURL == "" {
		cfg.OpenAIBaseURL = defaultOpenAIBaseURL
	}

	switch cfg.Provider {
	case "":
		cfg.Provider = ProviderOpenAI
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", cfg.Provider)
	}

	defaultModel := defaultOpenAIModel
	if cfg.Provider == ProviderAnthropic {
		defaultModel = defaultAnthropicModel
	}

	if cfg.ChatModel == "" {
		cfg.ChatModel = defaultModel
	}

	if cfg.GeneratorModel == "" {
		cfg.GeneratorModel = defaultModel
	}

	switch cfg.ChatFallback {
	case "":
		cfg.ChatFallback = ChatFallbackError
	case ChatFallbackError, ChatFallbackLocal:
	default:
		return nil, fmt.Errorf("unsupported CHAT_FALLBACK: %s", cfg.ChatFallback)
	}

	if cfg.AssistantLanguage == "" {
		cfg.AssistantLanguage = defaultAssistantLanguage
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	if raw := getenv("DEPLOY_SIMULATED_DELAY"); raw != "" {
		delay, err := time.ParseDuration(raw)
		if err != nil || delay < 0 {
			return nil, fmt.Errorf("invalid DEPLOY_SIMULATED_DELAY %q", raw)
		}
		cfg.DeployDelay = delay
	}

	return cfg, nil
}

// reports whether the configured provider has an API key
func (c *Config) HasCredential() bool {
	return c.APIKey() != ""
}

// returns the API key of the configured provider
func (c *Config) APIKey() string {
	if c.Provider == ProviderAnthropic {
		return c.AnthropicKey
	}

	return c.OpenAIKey
}

// returns the first characters of the API key for diagnostics
func (c *Config) MaskedKey() string {
	key := c.APIKey()
	if key == "" {
		return "Not found"
	}

	if len(key) > 10 {
		key = key[:10]
	}

	return key + "..."
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func splitList(raw string) []string {
	var out []string

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}
