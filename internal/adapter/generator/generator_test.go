package generator

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"google.golang.org/api/googleapi"
)

// --- fakes ---

type fakeGemini struct {
	resp *genai.GenerateContentResponse
	err  error
	got  []genai.Part
}

func (f *fakeGemini) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.got = parts
	return f.resp, f.err
}

type fakeChat struct {
	resp openai.ChatCompletionResponse
	err  error
	req  openai.ChatCompletionRequest
}

func (f *fakeChat) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

type fakeLLM struct {
	content string
	err     error
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.content}}}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}
func (slowProvider) Name() string { return "slow" }
func (slowProvider) Close() error { return nil }

type staticProvider struct {
	text string
	err  error
}

func (s staticProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}
func (s staticProvider) Name() string { return "static" }
func (s staticProvider) Close() error { return nil }

// --- gemini ---

func geminiResponse(parts ...genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}}}
}

func TestGemini_Generate(t *testing.T) {
	fake := &fakeGemini{resp: geminiResponse(genai.Text("```json\n{}"), genai.Text("\n```"))}
	g := &Gemini{model: fake}

	text, err := g.Generate(context.Background(), "hola")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{}\n```", text)
	require.Len(t, fake.got, 1)
	assert.Equal(t, genai.Text("hola"), fake.got[0])
	assert.Equal(t, "gemini", g.Name())
	assert.NoError(t, g.Close())
}

func TestGemini_EmptyResponse(t *testing.T) {
	for _, resp := range []*genai.GenerateContentResponse{nil, {}, {Candidates: []*genai.Candidate{{}}}} {
		g := &Gemini{model: &fakeGemini{resp: resp}}
		_, err := g.Generate(context.Background(), "hola")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyResponse)
		assert.Equal(t, ErrorKindEmptyResponse, KindOf(err))
	}
}

func TestGemini_ErrorClassification(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{&googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota"}, ErrorKindRateLimit},
		{&googleapi.Error{Code: http.StatusForbidden}, ErrorKindInvalidAPIKey},
		{&googleapi.Error{Code: http.StatusBadRequest, Message: "API key not valid"}, ErrorKindInvalidAPIKey},
		{&googleapi.Error{Code: http.StatusInternalServerError}, ErrorKindGeneral},
		{errors.New("dial tcp: refused"), ErrorKindGeneral},
		{context.DeadlineExceeded, ErrorKindTimeout},
	}
	for _, tt := range tests {
		g := &Gemini{model: &fakeGemini{err: tt.err}}
		_, err := g.Generate(context.Background(), "hola")
		require.Error(t, err)
		assert.Equal(t, tt.want, KindOf(err), "error %v", tt.err)
		assert.ErrorIs(t, err, tt.err)
	}
}

func TestNewGemini_Validation(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "gemini-1.5-flash", 0.7)
	assert.ErrorContains(t, err, "API key cannot be empty")

	_, err = NewGemini(context.Background(), "key", "", 0.7)
	assert.ErrorContains(t, err, "model name cannot be empty")
}

func TestNewGeminiModel_KeepsModelName(t *testing.T) {
	ctx := context.Background()

	resolved, err := NewGemini(ctx, "test-key", "gemini-pro", 0.7)
	require.NoError(t, err)
	defer resolved.Close()
	assert.Equal(t, "gemini-1.5-flash", resolved.Model())

	exact, err := NewGeminiModel(ctx, "test-key", "gemini-pro", 0)
	require.NoError(t, err)
	defer exact.Close()
	assert.Equal(t, "gemini-pro", exact.Model())
}

func TestResolveGeminiModel(t *testing.T) {
	assert.Equal(t, "gemini-1.5-flash", ResolveGeminiModel("gemini-pro"))
	assert.Equal(t, "gemini-2.0-flash", ResolveGeminiModel("gemini-2.0-flash"))
}

// --- openai ---

func TestOpenAI_Generate(t *testing.T) {
	fake := &fakeChat{resp: openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
		{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "# Resumen"}},
	}}}
	o := &OpenAI{client: fake, model: "gpt-4o-mini", temperature: 0.2}

	text, err := o.Generate(context.Background(), "resume esto")
	require.NoError(t, err)
	assert.Equal(t, "# Resumen", text)
	assert.Equal(t, "gpt-4o-mini", fake.req.Model)
	require.Len(t, fake.req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, fake.req.Messages[0].Role)
	assert.Equal(t, "resume esto", fake.req.Messages[0].Content)
}

func TestOpenAI_Errors(t *testing.T) {
	o := &OpenAI{client: &fakeChat{err: &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"}}}
	_, err := o.Generate(context.Background(), "x")
	assert.Equal(t, ErrorKindRateLimit, KindOf(err))
	assert.Contains(t, err.Error(), "openai:")

	o = &OpenAI{client: &fakeChat{err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "bad key"}}}
	_, err = o.Generate(context.Background(), "x")
	assert.Equal(t, ErrorKindInvalidAPIKey, KindOf(err))

	o = &OpenAI{client: &fakeChat{}}
	_, err = o.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewOpenAI_Validation(t *testing.T) {
	_, err := NewOpenAI("", "gpt-4o", 0)
	assert.ErrorContains(t, err, "API key cannot be empty")
	_, err = NewOpenAI("sk-test", "", 0)
	assert.ErrorContains(t, err, "model name cannot be empty")

	o, err := NewOpenAI("sk-test", "gpt-4o", 0)
	require.NoError(t, err)
	assert.Equal(t, "openai", o.Name())
}

// --- langchain ---

func TestLangChain_Generate(t *testing.T) {
	l := NewLangChain("ollama", &fakeLLM{content: "<think>razonando...</think>\n{\"ok\": true}"}, 0.1)

	text, err := l.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, "ollama", l.Name())
}

func TestLangChain_GeneratePreservesPlainText(t *testing.T) {
	reply := "\n# Resumen\n\nTexto del resumen.\n\n"
	text, err := NewLangChain("ollama", &fakeLLM{content: reply}, 0.1).Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, reply, text)
}

func TestLangChain_Errors(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := NewLangChain("ollama", &fakeLLM{err: cause}, 0.1).Generate(context.Background(), "x")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ollama: ")

	_, err = NewLangChain("ollama", &fakeLLM{content: "<think>solo pienso</think>"}, 0.1).Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestStripThinking(t *testing.T) {
	assert.Equal(t, "  respuesta  ", stripThinking("  respuesta  "))
	assert.Equal(t, "antes  después", stripThinking("antes <think>x</think> después"))
	assert.Equal(t, "<think> sin cierre", stripThinking("<think> sin cierre"))
}

// --- timeout ---

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), "x")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, ErrorKindTimeout, KindOf(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "timed out")
	assert.Equal(t, "slow", p.Name())
	assert.NoError(t, p.Close())
}

func TestWithTimeout_PassThrough(t *testing.T) {
	p := WithTimeout(staticProvider{text: "ok"}, time.Second)
	text, err := p.Generate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)

	cause := errors.New("boom")
	_, err = WithTimeout(staticProvider{err: cause}, time.Second).Generate(context.Background(), "x")
	assert.Same(t, cause, err)

	unbounded := staticProvider{text: "ok"}
	assert.Equal(t, Provider(unbounded), WithTimeout(unbounded, 0))
}
