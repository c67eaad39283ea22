package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"prime-property/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	TraceID string `json:"trace_id,omitempty"`
}

func codeFor(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// statusFor maps domain errors onto HTTP statuses. The message is shown to
// the client as is.
func statusFor(err error) (int, string, bool) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error(), true
	}

	switch {
	case errors.Is(err, domain.ErrAlreadyFavorited):
		return fiber.StatusBadRequest, "Already favorited", true
	case errors.Is(err, domain.ErrEmailExists):
		return fiber.StatusBadRequest, "Email already registered", true
	case errors.Is(err, domain.ErrMissingToken):
		return fiber.StatusUnauthorized, "Missing authorization token", true
	case errors.Is(err, domain.ErrInvalidToken):
		return fiber.StatusUnauthorized, "Invalid or expired token", true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "Invalid email or password", true
	case errors.Is(err, domain.ErrAccountBlocked):
		return fiber.StatusForbidden, "Account is blocked", true
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "You do not have permission to perform this action", true
	case errors.Is(err, domain.ErrPropertyNotFound):
		return fiber.StatusNotFound, "Property not found", true
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrMessageNotFound):
		return fiber.StatusNotFound, "Message not found", true
	case errors.Is(err, domain.ErrReportNotFound):
		return fiber.StatusNotFound, "Report not found", true
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable, "Image storage is not configured", true
	}
	return 0, "", false
}

func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else if status, msg, ok := statusFor(err); ok {
		code = status
		message = msg
	}

	traceID := GetTraceID(c)
	if code >= fiber.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   c.Method(),
			"path":     c.Path(),
		}).Error("request failed")
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   message,
		Code:    codeFor(code),
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}
