package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	TraceIDContextKey = "trace_id"
	TraceIDHeader     = "X-Trace-ID"
)

func newTraceID() string {
	return uuid.New().String()[:8]
}

// validTraceID accepts only ids shaped like the ones newTraceID produces.
func validTraceID(id string) bool {
	if len(id) != 8 {
		return false
	}
	for _, r := range id {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// RequestLogger assigns a trace id to every request and logs its outcome.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		traceID := c.Get(TraceIDHeader)
		if !validTraceID(traceID) {
			traceID = newTraceID()
		}
		c.Locals(TraceIDContextKey, traceID)
		c.Set(TraceIDHeader, traceID)

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		if c.Path() == "/health" || c.Path() == "/metrics" {
			return nil
		}

		entry := logrus.WithFields(logrus.Fields{
			"trace_id": traceID,
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
			"ip":       c.IP(),
		})
		if user := GetCurrentUser(c); user != nil {
			entry = entry.WithField("user_id", user.ID)
		}
		entry.Info("request")
		return nil
	}
}

func GetTraceID(c *fiber.Ctx) string {
	if traceID, ok := c.Locals(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	return newTraceID()
}
