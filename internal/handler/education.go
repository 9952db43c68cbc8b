package handler

import (
	"edubridge/internal/domain"
	"edubridge/internal/dto"
	"edubridge/internal/logger"
	"edubridge/internal/service"
	"edubridge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EducationHandler handles the generation endpoints
type EducationHandler struct {
	service   service.EducationService
	validator *validation.Validator
}

// NewEducationHandler creates a new EducationHandler instance
func NewEducationHandler(service service.EducationService, validator *validation.Validator) *EducationHandler {
	return &EducationHandler{
		service:   service,
		validator: validator,
	}
}

// parseBody decodes the JSON body into req, rejecting anything that is not
// a JSON object.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		logger.Get().Warn("Failed to parse request body",
			zap.String("path", c.Path()),
			zap.Error(err))
		return domain.NewInvalidInputError(validation.MsgInvalidBody)
	}
	return nil
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a mixed-type quiz (40% multiple choice, 30% open ended, 30% true/false) and its markdown rendering
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz topic and number of questions"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-quiz [post]
func (h *EducationHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateQuizRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateSummary godoc
// @Summary Summarize a text
// @Description Summarizes a text of at least 100 characters as markdown (academic, executive or simple)
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequest true "Text and summary type"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-summary [post]
func (h *EducationHandler) GenerateSummary(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateSummaryRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateSummary(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateReport godoc
// @Summary Generate a report
// @Description Generates a markdown report with introduction, development, conclusions and references
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Report parameters"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-report [post]
func (h *EducationHandler) GenerateReport(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateReportRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateReport(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateFeedback godoc
// @Summary Get feedback on answers
// @Description Scores each answer and returns overall strengths, areas to improve and recommendations
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.FeedbackRequest true "Answers to review"
// @Success 200 {object} dto.FeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /feedback [post]
func (h *EducationHandler) GenerateFeedback(c *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateFeedbackRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateFeedback(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GenerateRecommendations godoc
// @Summary Get study recommendations
// @Description Recommends resources, exercises, strategies, topics and goals for the student's level
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.RecommendationsRequest true "Student profile"
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recommendations [post]
func (h *EducationHandler) GenerateRecommendations(c *fiber.Ctx) error {
	var req dto.RecommendationsRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateRecommendationsRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.GenerateRecommendations(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EvaluateQuiz godoc
// @Summary Evaluate a completed quiz
// @Description Grades the user's answers against a generated quiz
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.EvaluateQuizRequest true "Quiz and user answers"
// @Success 200 {object} dto.EvaluateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /evaluate-quiz [post]
func (h *EducationHandler) EvaluateQuiz(c *fiber.Ctx) error {
	var req dto.EvaluateQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.ValidateEvaluateQuizRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.EvaluateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
