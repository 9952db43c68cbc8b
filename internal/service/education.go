package service

import (
	"context"
	"time"
	"unicode/utf8"

	"edubridge/internal/domain"
	"edubridge/internal/dto"
	"edubridge/internal/extract"
	"edubridge/internal/format"
	"edubridge/internal/logger"
	"edubridge/internal/prompt"
	"edubridge/internal/util"

	"go.uber.org/zap"
)

// Capability names, used in logs.
const (
	CapabilityQuiz            = "quiz"
	CapabilitySummary         = "summary"
	CapabilityReport          = "report"
	CapabilityFeedback        = "feedback"
	CapabilityRecommendations = "recommendations"
	CapabilityEvaluation      = "evaluation"
)

// EducationService defines the generation operations behind the API
type EducationService interface {
	GenerateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error)
	GenerateSummary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error)
	GenerateReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error)
	GenerateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	GenerateRecommendations(ctx context.Context, req *dto.RecommendationsRequest) (*dto.RecommendationsResponse, error)
	EvaluateQuiz(ctx context.Context, req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error)
}

// educationService implements EducationService
type educationService struct {
	generator domain.Generator
	prompts   *prompt.Builder
	formatter *format.QuizFormatter
}

// NewEducationService creates a new instance of educationService
func NewEducationService(generator domain.Generator, prompts *prompt.Builder, formatter *format.QuizFormatter) EducationService {
	return &educationService{
		generator: generator,
		prompts:   prompts,
		formatter: formatter,
	}
}

// GenerateQuiz implements EducationService
func (s *educationService) GenerateQuiz(ctx context.Context, req *dto.QuizRequest) (*dto.QuizResponse, error) {
	raw, err := s.generate(ctx, CapabilityQuiz, s.prompts.Quiz(req.Topic, req.NumQuestions))
	if err != nil {
		return nil, err
	}

	quiz, err := decode[domain.Quiz](ctx, CapabilityQuiz, raw)
	if err != nil {
		return nil, err
	}

	return &dto.QuizResponse{
		Success:       true,
		Quiz:          quiz,
		FormattedText: s.formatter.Display(quiz),
	}, nil
}

// GenerateSummary implements EducationService
func (s *educationService) GenerateSummary(ctx context.Context, req *dto.SummaryRequest) (*dto.SummaryResponse, error) {
	summary, err := s.generate(ctx, CapabilitySummary, s.prompts.Summary(req.Text, req.SummaryType))
	if err != nil {
		return nil, err
	}

	return &dto.SummaryResponse{
		Success:        true,
		Summary:        summary,
		OriginalLength: utf8.RuneCountInString(req.Text),
		SummaryLength:  utf8.RuneCountInString(summary),
	}, nil
}

// GenerateReport implements EducationService
func (s *educationService) GenerateReport(ctx context.Context, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	report, err := s.generate(ctx, CapabilityReport, s.prompts.Report(req.Topic, req.ReportType, req.Description, req.DataSources))
	if err != nil {
		return nil, err
	}

	return &dto.ReportResponse{Success: true, Report: report}, nil
}

// GenerateFeedback implements EducationService
func (s *educationService) GenerateFeedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	raw, err := s.generate(ctx, CapabilityFeedback, s.prompts.Feedback(req.Answers))
	if err != nil {
		return nil, err
	}

	feedback, err := decode[domain.Feedback](ctx, CapabilityFeedback, raw)
	if err != nil {
		return nil, err
	}

	return &dto.FeedbackResponse{Success: true, Feedback: feedback}, nil
}

// GenerateRecommendations implements EducationService
func (s *educationService) GenerateRecommendations(ctx context.Context, req *dto.RecommendationsRequest) (*dto.RecommendationsResponse, error) {
	raw, err := s.generate(ctx, CapabilityRecommendations, s.prompts.Recommendations(req.Level, req.Difficulties, req.Interests))
	if err != nil {
		return nil, err
	}

	recommendations, err := decode[domain.Recommendations](ctx, CapabilityRecommendations, raw)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendationsResponse{Success: true, Recommendations: recommendations}, nil
}

// EvaluateQuiz implements EducationService
func (s *educationService) EvaluateQuiz(ctx context.Context, req *dto.EvaluateQuizRequest) (*dto.EvaluateQuizResponse, error) {
	raw, err := s.generate(ctx, CapabilityEvaluation, s.prompts.EvaluateQuiz(req.Quiz, req.UserAnswers))
	if err != nil {
		return nil, err
	}

	evaluation, err := decode[domain.Evaluation](ctx, CapabilityEvaluation, raw)
	if err != nil {
		return nil, err
	}

	return &dto.EvaluateQuizResponse{Success: true, Evaluation: evaluation}, nil
}

func (s *educationService) generate(ctx context.Context, capability, promptText string) (string, error) {
	l := logger.Get().With(
		zap.String("capability", capability),
		zap.String("request_id", util.RequestIDFrom(ctx)),
	)
	l.Debug("Sending prompt to generator", zap.Int("prompt_length", len(promptText)))

	start := time.Now()
	text, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		l.Error("Generation failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return "", domain.NewLLMServiceError(err)
	}

	l.Info("Generation completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_length", len(text)))
	return text, nil
}

// decode extracts the JSON payload of a model reply. The raw reply is only
// logged, never returned to the caller.
func decode[T any](ctx context.Context, capability, raw string) (*T, error) {
	parsed, err := extract.Decode[T](raw)
	if err != nil {
		logger.Get().Error("Failed to parse model response",
			zap.String("capability", capability),
			zap.String("request_id", util.RequestIDFrom(ctx)),
			zap.Error(err))
		logger.Get().Debug("Unparseable model response", zap.String("raw_response", raw))
		return nil, domain.NewParseError(err)
	}
	return &parsed, nil
}
