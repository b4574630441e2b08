package middleware

import (
	"errors"

	"study-byte/internal/domain"
	"study-byte/internal/dto"
	"study-byte/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusForCode maps domain error codes to HTTP statuses. Unknown codes fall
// through to 500.
func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.ErrNotFound:
		return fiber.StatusNotFound
	case domain.ErrInvalidInput, domain.ErrQuizCompleted:
		return fiber.StatusBadRequest
	case domain.ErrUnauthorized:
		return fiber.StatusUnauthorized
	case domain.ErrEndpointUnavailable, domain.ErrModelNotFound:
		return fiber.StatusServiceUnavailable
	case domain.ErrExtractionFailed:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the fiber error handler. Domain errors are rendered as the
// uniform error envelope; the underlying cause is logged but never surfaced.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if domainErr, ok := domain.AsDomainError(err); ok {
		status := statusForCode(domainErr.Code)

		fields := []zap.Field{
			zap.String("code", string(domainErr.Code)),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
		}
		if domainErr.Err != nil {
			fields = append(fields, zap.Error(domainErr.Err))
		}
		for k, v := range domainErr.Context {
			fields = append(fields, zap.Any(k, v))
		}
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error(domainErr.Message, fields...)
		} else {
			logger.Get().Warn(domainErr.Message, fields...)
		}

		return c.Status(status).JSON(dto.ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
			Hint:    domainErr.Hint,
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
			Code:    string(domain.ErrInternal),
			Message: fiberErr.Message,
		})
	}

	logger.Get().Error("unhandled error",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err))

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    string(domain.ErrInternal),
		Message: "An unexpected error occurred",
	})
}
