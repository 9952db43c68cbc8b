package validation

import (
	"edubridge/internal/domain"
	"edubridge/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Client-facing messages for rejected requests.
const (
	MsgInvalidBody       = "Cuerpo de la solicitud inválido"
	MsgNumQuestions      = "El número de preguntas debe estar entre 1 y 50"
	MsgSummaryTooShort   = "El texto debe tener al menos 100 caracteres"
	MsgReportTopic       = "El tema del informe es obligatorio"
	MsgNoAnswers         = "No se proporcionaron respuestas"
	MsgIncompleteData    = "Datos incompletos"
	MinSummaryTextLength = 100
)

// Validator provides request validation functionality
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// check runs the struct tags of req and collapses any failure into a single
// invalid-input error carrying message.
func (v *Validator) check(req any, message string) error {
	if err := v.validate.Struct(req); err != nil {
		return domain.NewInvalidInputError(message)
	}
	return nil
}

// ValidateQuizRequest validates the quiz generation request. Zero questions
// means the default count.
func (v *Validator) ValidateQuizRequest(req *dto.QuizRequest) error {
	if req == nil {
		return domain.NewInvalidInputError(MsgInvalidBody)
	}
	return v.check(req, MsgNumQuestions)
}

// ValidateSummaryRequest requires at least MinSummaryTextLength characters of text.
func (v *Validator) ValidateSummaryRequest(req *dto.SummaryRequest) error {
	if req == nil {
		return domain.NewInvalidInputError(MsgSummaryTooShort)
	}
	return v.check(req, MsgSummaryTooShort)
}

// ValidateReportRequest requires a topic.
func (v *Validator) ValidateReportRequest(req *dto.ReportRequest) error {
	if req == nil {
		return domain.NewInvalidInputError(MsgReportTopic)
	}
	return v.check(req, MsgReportTopic)
}

// ValidateFeedbackRequest requires at least one answer.
func (v *Validator) ValidateFeedbackRequest(req *dto.FeedbackRequest) error {
	if req == nil {
		return domain.NewInvalidInputError(MsgNoAnswers)
	}
	return v.check(req, MsgNoAnswers)
}

// ValidateRecommendationsRequest accepts any body; every field has a default.
func (v *Validator) ValidateRecommendationsRequest(req *dto.RecommendationsRequest) error {
	if req == nil {
		return domain.NewInvalidInputError(MsgInvalidBody)
	}
	return nil
}

// ValidateEvaluateQuizRequest requires a non-empty quiz and at least one answer.
func (v *Validator) ValidateEvaluateQuizRequest(req *dto.EvaluateQuizRequest) error {
	if req == nil || req.Quiz.IsEmpty() {
		return domain.NewInvalidInputError(MsgIncompleteData)
	}
	return v.check(req, MsgIncompleteData)
}
