package generator

import (
	"context"
	"strings"

	"edubridge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangChain generates text with any langchaingo model (Ollama in practice).
type LangChain struct {
	name        string
	llm         llms.Model
	temperature float64
}

// NewLangChain wraps llm under the given provider name.
func NewLangChain(name string, llm llms.Model, temperature float64) *LangChain {
	return &LangChain{name: name, llm: llm, temperature: temperature}
}

func (l *LangChain) Name() string {
	return l.name
}

// Generate calls the model with a single prompt. Reasoning models wrap their
// chain of thought in <think> tags, which is dropped from the reply.
func (l *LangChain) Generate(ctx context.Context, prompt string) (string, error) {
	response, err := llms.GenerateFromSinglePrompt(ctx, l.llm, prompt, llms.WithTemperature(l.temperature))
	if err != nil {
		return "", newError(l.name, ErrorKindGeneral, err)
	}

	cleaned := stripThinking(response)
	if strings.TrimSpace(cleaned) == "" {
		return "", newError(l.name, ErrorKindEmptyResponse, ErrEmptyResponse)
	}
	return cleaned, nil
}

func (l *LangChain) Close() error {
	return nil
}

// stripThinking removes a <think>...</think> block and the whitespace around
// the remaining text. Replies without a complete block are returned as is.
func stripThinking(s string) string {
	thinkStart := strings.Index(s, "<think>")
	if thinkStart == -1 {
		return s
	}
	thinkEnd := strings.Index(s, "</think>")
	if thinkEnd == -1 || thinkEnd < thinkStart {
		return s
	}
	removed := thinkEnd + len("</think>") - thinkStart
	cleaned := s[:thinkStart] + s[thinkEnd+len("</think>"):]
	logger.Get().Debug("Stripped <think> block from model response", zap.Int("removed_bytes", removed))
	return strings.TrimSpace(cleaned)
}
