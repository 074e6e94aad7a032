package llm

import (
	"fmt"

	"codeberg.org/promptforge/server/internal/config"
)

// holds the two completers the server uses. both are nil when the
// configured provider has no API key, which puts the server in local mode.
type Clients struct {
	Chat      Completer
	Generator Completer
}

// reports whether remote completions are available
func (c *Clients) Available() bool {
	return c != nil && c.Chat != nil && c.Generator != nil
}

// builds the chat and generator completers from configuration
func NewFromConfig(cfg *config.Config) (*Clients, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if !cfg.HasCredential() {
		return &Clients{}, nil
	}

	chat, err := newCompleter(cfg, cfg.ChatModel)
	if err != nil {
		return nil, err
	}

	generator, err := newCompleter(cfg, cfg.GeneratorModel)
	if err != nil {
		return nil, err
	}

	return &Clients{Chat: chat, Generator: generator}, nil
}

func newCompleter(cfg *config.Config, model string) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(ClientConfig{
			APIKey:  cfg.OpenAIKey,
			Model:   model,
			BaseURL: cfg.OpenAIBaseURL,
		}), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(ClientConfig{
			APIKey: cfg.AnthropicKey,
			Model:  model,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
