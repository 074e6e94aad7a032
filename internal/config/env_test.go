package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4", cfg.ChatModel)
	assert.Equal(t, ChatFallbackError, cfg.ChatFallback)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.DeployDelay)
	assert.False(t, cfg.HasCredential())
	assert.Equal(t, "Not found", cfg.MaskedKey())
}

func TestFromEnv_Credential(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"OPENAI_API_KEY":       "sk-test-1234567890abcdef",
		"CORS_ALLOWED_ORIGINS": "http://localhost:3000, https://example.com",
	}))

	require.NoError(t, err)
	assert.True(t, cfg.HasCredential())
	assert.Equal(t, "sk-test-12...", cfg.MaskedKey())
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.AllowedOrigins)
}

func TestFromEnv_AnthropicUsesItsOwnKey(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"LLM_PROVIDER":   "anthropic",
		"OPENAI_API_KEY": "sk-openai",
	}))

	require.NoError(t, err)
	assert.False(t, cfg.HasCredential())
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.GeneratorModel)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"provider": {"LLM_PROVIDER": "mistral"},
		"fallback": {"CHAT_FALLBACK": "silent"},
		"rate":     {"RATE_LIMIT": "lots"},
		"delay":    {"DEPLOY_SIMULATED_DELAY": "soon"},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envFrom(values))
			assert.Error(t, err)
		})
	}
}
