package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	config       *Config
	client       *genai.Client
	logger       Logger
	retryHandler *RetryHandler
}

// NewGeminiClient builds a Gemini-backed generator. BaseURL, when set,
// replaces the public endpoint.
func NewGeminiClient(ctx context.Context, cfg *Config, opts ...ClientOption) (*GeminiClient, error) {
	clientCfg, err := prepareConfig(cfg)
	if err != nil {
		return nil, err
	}
	optState := collectOptions(clientCfg, opts)

	gcfg := &genai.ClientConfig{
		APIKey:  clientCfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimSpace(clientCfg.BaseURL); base != "" {
		gcfg.HTTPOptions.BaseURL = base
	}
	if optState.httpClient != nil {
		gcfg.HTTPClient = optState.httpClient
	}
	client, err := genai.NewClient(ctx, gcfg)
	if err != nil {
		return nil, fmt.Errorf("llm: create gemini client: %w", err)
	}

	return &GeminiClient{
		config:       clientCfg,
		client:       client,
		logger:       optState.logger,
		retryHandler: optState.retry,
	}, nil
}

// Generate sends prompt to the default model and returns the reply text.
// The system part travels as the system instruction.
func (g *GeminiClient) Generate(ctx context.Context, prompt Prompt) (string, error) {
	if strings.TrimSpace(prompt.User) == "" {
		return "", ErrEmptyPrompt
	}
	modelID, modelCfg := g.config.resolveModel("")
	// Gemini takes bare model names.
	_, model := ParseModelID(modelID)
	genCfg := buildGenerateConfig(prompt, modelCfg)

	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	g.logger.Info(ctx, "gemini generate request", Fields{"model": model})

	var text string
	err := g.retryHandler.Do(ctx, func() error {
		resp, callErr := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt.User), genCfg)
		if callErr != nil {
			g.logger.Error(ctx, fmt.Errorf("gemini generate failed: %w", callErr), Fields{"model": model})
			return callErr
		}
		text = strings.TrimSpace(resp.Text())
		return nil
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}

	g.logger.Info(ctx, "gemini generate success", Fields{
		"model":          model,
		"duration_ms":    time.Since(start).Milliseconds(),
		"response_chars": len([]rune(text)),
	})
	return text, nil
}

// GetConfig returns a copy of the client configuration.
func (g *GeminiClient) GetConfig() *Config {
	return g.config.Clone()
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (g *GeminiClient) Close() error {
	return nil
}

func buildGenerateConfig(prompt Prompt, modelCfg ModelConfig) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if system := strings.TrimSpace(prompt.System); system != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	if modelCfg.Temperature != nil {
		cfg.Temperature = genai.Ptr(float32(*modelCfg.Temperature))
	}
	if modelCfg.TopP != nil {
		cfg.TopP = genai.Ptr(float32(*modelCfg.TopP))
	}
	if modelCfg.MaxCompletionTokens != nil {
		cfg.MaxOutputTokens = int32(*modelCfg.MaxCompletionTokens)
	}
	return cfg
}
