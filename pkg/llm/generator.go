package llm

import (
	"context"
	"fmt"
)

// Generator turns a prompt into reply text.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
	GetConfig() *Config
	Close() error
}

var (
	_ Generator = (*Client)(nil)
	_ Generator = (*GeminiClient)(nil)
)

// NewGenerator builds the generator for cfg.Provider. It returns
// ErrMissingAPIKey when cfg carries no credential.
func NewGenerator(ctx context.Context, cfg *Config, opts ...ClientOption) (Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("llm: config cannot be nil")
	}
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, cfg, opts...)
	case ProviderOpenAI, "":
		return NewClient(cfg, opts...)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
