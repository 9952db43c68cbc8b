// Package generator adapts text-generation providers to domain.Generator.
package generator

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"edubridge/internal/config"
	"edubridge/internal/domain"
	"edubridge/internal/logger"

	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// Provider is a domain.Generator that owns a client connection.
type Provider interface {
	domain.Generator
	Name() string
	Close() error
}

// New builds the provider selected by cfg, bounded by cfg.Timeout.
func New(ctx context.Context, cfg config.LLMConfig) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err = NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model, float32(cfg.Temperature))
	case config.ProviderOpenAI:
		p, err = NewOpenAI(cfg.OpenAIAPIKey, cfg.Model, float32(cfg.Temperature))
	case config.ProviderOllama:
		httpClient := &http.Client{Timeout: cfg.Timeout}
		llm, ollamaErr := ollama.New(
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithModel(cfg.Model),
			ollama.WithHTTPClient(httpClient),
		)
		if ollamaErr != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", ollamaErr)
		}
		p = NewLangChain(config.ProviderOllama, llm, cfg.Temperature)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Generation provider initialized",
		zap.String("provider", p.Name()),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout))

	return WithTimeout(p, cfg.Timeout), nil
}

type timeoutProvider struct {
	next    Provider
	timeout time.Duration
}

// WithTimeout bounds every Generate call of p by timeout. A non-positive
// timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{next: p, timeout: timeout}
}

func (t *timeoutProvider) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	text, err := t.next.Generate(ctx, prompt)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", newError(t.next.Name(), ErrorKindTimeout,
				fmt.Errorf("request timed out after %s: %w", t.timeout, context.DeadlineExceeded))
		}
		return "", err
	}
	return text, nil
}

func (t *timeoutProvider) Name() string {
	return t.next.Name()
}

func (t *timeoutProvider) Close() error {
	return t.next.Close()
}
