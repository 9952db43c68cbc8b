package dto

import "edubridge/internal/domain"

// QuizRequest represents the body of POST /api/generate-quiz
// @Description Request body for generating a quiz
type QuizRequest struct {
	Topic        string `json:"topic" example:"Comunicación no verbal"`
	NumQuestions int    `json:"num_questions" validate:"gte=0,lte=50" example:"5"`
}

// SummaryRequest represents the body of POST /api/generate-summary
// @Description Request body for summarizing a text of at least 100 characters
type SummaryRequest struct {
	Text        string `json:"text" validate:"min=100"`
	SummaryType string `json:"summary_type" example:"academic"`
}

// ReportRequest represents the body of POST /api/generate-report
// @Description Request body for generating a report
type ReportRequest struct {
	Topic       string `json:"topic" validate:"required" example:"Redes sociales y opinión pública"`
	ReportType  string `json:"report_type" example:"textual"`
	Description string `json:"description"`
	DataSources string `json:"data_sources"`
}

// FeedbackRequest represents the body of POST /api/feedback
// @Description Request body with the answers to get feedback on
type FeedbackRequest struct {
	Answers []domain.AnswerSubmission `json:"answers" validate:"required,min=1"`
}

// RecommendationsRequest represents the body of POST /api/recommendations
// @Description Request body for personalised study recommendations
type RecommendationsRequest struct {
	Level        string `json:"level" example:"intermediate"`
	Difficulties string `json:"difficulties"`
	Interests    string `json:"interests"`
}

// EvaluateQuizRequest represents the body of POST /api/evaluate-quiz
// @Description Request body with a generated quiz and the user's answers
type EvaluateQuizRequest struct {
	Quiz        *domain.Quiz        `json:"quiz" validate:"required"`
	UserAnswers []domain.UserAnswer `json:"user_answers" validate:"required,min=1"`
}
