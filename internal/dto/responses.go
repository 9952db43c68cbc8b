package dto

import "edubridge/internal/domain"

// QuizResponse is returned by POST /api/generate-quiz
type QuizResponse struct {
	Success       bool         `json:"success"`
	Quiz          *domain.Quiz `json:"quiz"`
	FormattedText string       `json:"formatted_text"`
}

// SummaryResponse is returned by POST /api/generate-summary. Lengths are in characters.
type SummaryResponse struct {
	Success        bool   `json:"success"`
	Summary        string `json:"summary"`
	OriginalLength int    `json:"original_length"`
	SummaryLength  int    `json:"summary_length"`
}

// ReportResponse is returned by POST /api/generate-report
type ReportResponse struct {
	Success bool   `json:"success"`
	Report  string `json:"report"`
}

// FeedbackResponse is returned by POST /api/feedback
type FeedbackResponse struct {
	Success  bool             `json:"success"`
	Feedback *domain.Feedback `json:"feedback"`
}

// RecommendationsResponse is returned by POST /api/recommendations
type RecommendationsResponse struct {
	Success         bool                    `json:"success"`
	Recommendations *domain.Recommendations `json:"recommendations"`
}

// EvaluateQuizResponse is returned by POST /api/evaluate-quiz
type EvaluateQuizResponse struct {
	Success    bool               `json:"success"`
	Evaluation *domain.Evaluation `json:"evaluation"`
}

// HealthResponse is returned by GET /api/health
type HealthResponse struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
