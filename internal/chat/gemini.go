package chat

import (
	"context"
	"log/slog"
	"sync"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

type GeminiConfig struct {
	APIKey string
	Model  string
}

// GeminiGenerator calls the Gemini API. The client is built on first use and
// reused afterwards; a failed build is retried on the next call.
type GeminiGenerator struct {
	apiKey string
	model  string
	logger *slog.Logger

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiGenerator(cfg GeminiConfig, logger *slog.Logger) *GeminiGenerator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiGenerator{apiKey: cfg.APIKey, model: cfg.Model, logger: logger}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return "", err
	}

	g.logger.Debug("gemini: generating content", "model", g.model)
	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", ErrUpstream.WithCause(err)
	}
	return resp.Text(), nil
}

func (g *GeminiGenerator) clientFor(ctx context.Context) (*genai.Client, error) {
	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		g.logger.Error("gemini: failed to create client", "error", err)
		return nil, &InitError{Err: err}
	}
	g.client = client
	return client, nil
}
