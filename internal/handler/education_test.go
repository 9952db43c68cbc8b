package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"edubridge/internal/dto"
	"edubridge/internal/format"
	"edubridge/internal/handler"
	"edubridge/internal/middleware"
	"edubridge/internal/prompt"
	"edubridge/internal/service"
	"edubridge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

// StubGenerator
type StubGenerator struct {
	mock.Mock
}

func (m *StubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func setupApp(gen *StubGenerator) *fiber.App {
	svc := service.NewEducationService(gen, prompt.New("Comunicación", ""), format.NewQuizFormatter("Comunicación"))
	h := handler.NewEducationHandler(svc, validation.NewValidator())

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/api/generate-quiz", h.GenerateQuiz)
	app.Post("/api/generate-summary", h.GenerateSummary)
	app.Post("/api/generate-report", h.GenerateReport)
	app.Post("/api/feedback", h.GenerateFeedback)
	app.Post("/api/recommendations", h.GenerateRecommendations)
	app.Post("/api/evaluate-quiz", h.EvaluateQuiz)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestGenerateSummary_TooShort(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-summary", dto.SummaryRequest{Text: strings.Repeat("x", 50)})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, body)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "El texto debe tener al menos 100 caracteres", out["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestGenerateSummary_Success(t *testing.T) {
	stub := "# Resumen académico\n\n## Ideas principales\n- La comunicación es un proceso bidireccional."
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return(stub, nil).Once()
	app := setupApp(gen)

	text := strings.Repeat("Texto de prueba sobre comunicación. ", 4)
	resp, body := postJSON(t, app, "/api/generate-summary", dto.SummaryRequest{Text: text, SummaryType: "academic"})

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var out dto.SummaryResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Success)
	assert.Equal(t, stub, out.Summary)
	assert.Equal(t, len([]rune(stub)), out.SummaryLength)
	assert.Equal(t, len([]rune(text)), out.OriginalLength)
	assert.ElementsMatch(t, []string{"success", "summary", "original_length", "summary_length"}, keys(decodeBody(t, body)))
	gen.AssertNumberOfCalls(t, "Generate", 1)
}

func TestEvaluateQuiz_EmptyUserAnswers(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/evaluate-quiz", `{"quiz":{"topic":"Comunicación","questions":[{"number":1,"type":"true_false","question":"¿?","correct_answer":"true"}]},"user_answers":[]}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decodeBody(t, body)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Datos incompletos", out["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestEvaluateQuiz_MissingQuiz(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/evaluate-quiz", `{"quiz":{},"user_answers":[{"question_number":1,"answer":"true"}]}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Datos incompletos", decodeBody(t, body)["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestEvaluateQuiz_Success(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return(
		"```json\n{\"evaluations\":[{\"question_number\":1,\"correct\":true,\"score\":100,\"feedback\":\"Bien\",\"correct_answer\":\"true\"}],"+
			"\"summary\":{\"total_score\":100,\"correct_count\":1,\"total_questions\":1,\"performance_level\":\"excelente\",\"general_feedback\":\"Muy bien\"}}\n```", nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/evaluate-quiz", `{"quiz":{"topic":"Comunicación","questions":[{"number":1,"type":"true_false","question":"¿?","correct_answer":"true"}]},"user_answers":[{"question_number":1,"answer":"true"}]}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "evaluation"}, keys(out))
	evaluation := out["evaluation"].(map[string]any)
	summary := evaluation["summary"].(map[string]any)
	assert.Equal(t, "excelente", summary["performance_level"])
}

func TestGenerateQuiz_Success(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `"Testing"`)
	})).Return(`{"topic":"Testing","total_questions":2,"questions":[{"number":1,"type":"multiple_choice","question":"Q1?","options":["a","b","c","d"],"correct_answer":"a"},{"number":2,"type":"true_false","question":"Q2?","correct_answer":"true"}]}`, nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-quiz", dto.QuizRequest{Topic: "Testing", NumQuestions: 2})

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "quiz", "formatted_text"}, keys(out))
	assert.Equal(t, true, out["success"])
	formatted := out["formatted_text"].(string)
	assert.Contains(t, formatted, "1 preguntas de Opción Múltiple")
	assert.Contains(t, formatted, "1 preguntas de Verdadero/Falso")
	assert.Contains(t, formatted, "0 preguntas de Respuesta Abierta")
	gen.AssertExpectations(t)
}

func TestGenerateQuiz_TooManyQuestions(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-quiz", dto.QuizRequest{Topic: "Testing", NumQuestions: 500})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, validation.MsgNumQuestions, decodeBody(t, body)["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestGenerateQuiz_ParseFailure(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("```json\n{\"topic\": \"x\",}\n```", nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-quiz", `{}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "error"}, keys(out))
	assert.Equal(t, false, out["success"])
	assert.Contains(t, out["error"], "invalid JSON in model response")
}

func TestGenerationFailure(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("gemini: 429 Resource has been exhausted"))
	app := setupApp(gen)

	requests := map[string]any{
		"/api/generate-quiz":    dto.QuizRequest{},
		"/api/generate-summary": dto.SummaryRequest{Text: strings.Repeat("a", 100)},
		"/api/generate-report":  dto.ReportRequest{Topic: "Cine"},
		"/api/feedback":         `{"answers":[{"question_number":1,"question":"q","answer":"a"}]}`,
		"/api/recommendations":  dto.RecommendationsRequest{},
		"/api/evaluate-quiz":    `{"quiz":{"topic":"t"},"user_answers":[{"question_number":1,"answer":"a"}]}`,
	}
	for path, body := range requests {
		t.Run(path, func(t *testing.T) {
			resp, respBody := postJSON(t, app, path, body)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			out := decodeBody(t, respBody)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, "gemini: 429 Resource has been exhausted", out["error"])
		})
	}
	gen.AssertNumberOfCalls(t, "Generate", len(requests))
}

func TestGenerateReport_MissingTopic(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-report", dto.ReportRequest{ReportType: "critical"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, validation.MsgReportTopic, decodeBody(t, body)["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestGenerateReport_Success(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("# Informe\n\n## Introducción", nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-report", dto.ReportRequest{Topic: "Cine", ReportType: "critical"})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "report"}, keys(out))
	assert.Equal(t, "# Informe\n\n## Introducción", out["report"])
}

func TestGenerateFeedback_NoAnswers(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/feedback", `{"answers":[]}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No se proporcionaron respuestas", decodeBody(t, body)["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}

func TestGenerateFeedback_Success(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return(`{"individual_feedback":[],"overall":{"total_score":80,"strengths":["a"],"areas_to_improve":[],"recommendations":[]}}`, nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/feedback", `{"answers":[{"question_number":1,"question":"q","answer":"a"}]}`)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "feedback"}, keys(out))
}

func TestGenerateRecommendations_Success(t *testing.T) {
	gen := new(StubGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("```\n{\"resources\":[],\"exercises\":[],\"strategies\":[\"leer\"],\"topics_to_reinforce\":[],\"short_term_goals\":[]}\n```", nil).Once()
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/recommendations", dto.RecommendationsRequest{Level: "advanced"})

	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	out := decodeBody(t, body)
	assert.ElementsMatch(t, []string{"success", "recommendations"}, keys(out))
	recs := out["recommendations"].(map[string]any)
	assert.Equal(t, []any{"leer"}, recs["strategies"])
}

func TestMalformedBody(t *testing.T) {
	gen := new(StubGenerator)
	app := setupApp(gen)

	resp, body := postJSON(t, app, "/api/generate-quiz", `{"topic": `)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, validation.MsgInvalidBody, decodeBody(t, body)["error"])
	gen.AssertNumberOfCalls(t, "Generate", 0)
}
