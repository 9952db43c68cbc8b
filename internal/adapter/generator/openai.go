package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const openAIProvider = "openai"

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAI generates text through the OpenAI chat completions API.
type OpenAI struct {
	client      chatCompleter
	model       string
	temperature float32
}

// NewOpenAI creates an OpenAI provider for model.
func NewOpenAI(apiKey, model string, temperature float32) (*OpenAI, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("OpenAI model name cannot be empty")
	}
	return &OpenAI{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}, nil
}

func (o *OpenAI) Name() string {
	return openAIProvider
}

// Generate sends prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", newError(openAIProvider, classifyOpenAIError(err), err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", newError(openAIProvider, ErrorKindEmptyResponse, ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAI) Close() error {
	return nil
}

func classifyOpenAIError(err error) ErrorKind {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return ErrorKindRateLimit
		case http.StatusUnauthorized:
			return ErrorKindInvalidAPIKey
		}
	}
	return ErrorKindGeneral
}
