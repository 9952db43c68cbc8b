package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"edubridge/internal/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiProvider = "gemini"

// deprecatedGeminiModels maps retired model names to their replacement.
var deprecatedGeminiModels = map[string]string{
	"gemini-pro":        "gemini-1.5-flash",
	"models/gemini-pro": "gemini-1.5-flash",
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini generates text with Google's Gemini API.
type Gemini struct {
	client    *genai.Client
	model     contentGenerator
	modelName string
}

// NewGemini connects to the Gemini API with apiKey. Retired model names are
// replaced, see ResolveGeminiModel.
func NewGemini(ctx context.Context, apiKey, modelName string, temperature float32) (*Gemini, error) {
	return NewGeminiModel(ctx, apiKey, ResolveGeminiModel(modelName), temperature)
}

// NewGeminiModel connects to the Gemini API and uses modelName as given.
func NewGeminiModel(ctx context.Context, apiKey, modelName string, temperature float32) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("Gemini model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)

	return &Gemini{client: client, model: model, modelName: modelName}, nil
}

// ResolveGeminiModel replaces retired model names.
func ResolveGeminiModel(name string) string {
	if replacement, ok := deprecatedGeminiModels[name]; ok {
		logger.Get().Warn("Converting deprecated Gemini model",
			zap.String("model", name),
			zap.String("replacement", replacement))
		return replacement
	}
	return name
}

func (g *Gemini) Name() string {
	return geminiProvider
}

// Model returns the model name requests are sent to.
func (g *Gemini) Model() string {
	return g.modelName
}

// Generate sends prompt as a single text part and returns the text of the
// first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", newError(geminiProvider, classifyGoogleError(err), err)
	}

	text := geminiText(resp)
	if text == "" {
		return "", newError(geminiProvider, ErrorKindEmptyResponse, ErrEmptyResponse)
	}
	return text, nil
}

func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}

func classifyGoogleError(err error) ErrorKind {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return ErrorKindGeneral
	}
	switch apiErr.Code {
	case http.StatusTooManyRequests:
		return ErrorKindRateLimit
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrorKindInvalidAPIKey
	}
	if apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "API key") {
		return ErrorKindInvalidAPIKey
	}
	return ErrorKindGeneral
}
