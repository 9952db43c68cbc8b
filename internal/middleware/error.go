package middleware

import (
	"errors"
	"net/http"

	"edubridge/internal/domain"
	"edubridge/internal/dto"
	"edubridge/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. Every failure is
// written as {"success": false, "error": "<message>"}.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", RequestIDFromCtx(c)),
		)

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			}
			if statusCode >= http.StatusInternalServerError {
				logger.Error("Domain error occurred", fields...)
			} else {
				logger.Warn("Request rejected", fields...)
			}
			return writeError(c, statusCode, domainErr.PublicMessage())
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return writeError(c, fiberErr.Code, fiberErr.Message)
		}

		logger.Error("Unknown error occurred", zap.Error(err))
		return writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
