package grader

import (
	"context"
	"fmt"
)

// NewClient creates a Client from configuration, wrapped with retry.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	var base Client
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiClient(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIClient(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicClient(cfg.Anthropic)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown grading provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s client: %w", cfg.Provider, err)
	}

	return WithRetry(base, cfg.Retry), nil
}

// NewClientFromEnv builds a Client from RECAP_LLM_* environment variables.
// When no provider is configured explicitly, it falls back to probing the
// standard *_API_KEY variables.
func NewClientFromEnv(ctx context.Context) (Client, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewClient(ctx, cfg)
}
