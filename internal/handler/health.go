package handler

import (
	"edubridge/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness
type HealthHandler struct {
	provider string
}

func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Success:  true,
		Status:   "ok",
		Provider: h.provider,
	})
}
