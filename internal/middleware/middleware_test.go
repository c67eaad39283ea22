package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prime-property/internal/domain"
)

type stubAuthenticator map[string]*domain.User

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*domain.User, error) {
	switch token {
	case "blocked":
		return nil, domain.ErrAccountBlocked
	}
	if user, ok := s[token]; ok {
		return user, nil
	}
	return nil, domain.ErrInvalidToken
}

var users = stubAuthenticator{
	"buyer": {ID: 2, Name: "Bob", Role: domain.RoleBuyer, Status: domain.StatusActive},
	"admin": {ID: 1, Name: "Root", Role: domain.RoleAdmin, Status: domain.StatusActive},
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(RequestLogger())

	whoami := func(c *fiber.Ctx) error {
		if actor := GetActor(c); actor != nil {
			return c.SendString(fmt.Sprintf("%d", actor.ID))
		}
		return c.SendString("anonymous")
	}

	app.Get("/private", AuthRequired(users), whoami)
	app.Get("/optional", OptionalAuth(users), whoami)
	app.Get("/admin", AuthRequired(users), RequireRole(domain.RoleAdmin), whoami)
	app.Get("/error/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "validation":
			return domain.NewValidationError("price", "must not be negative")
		case "wrapped":
			return fmt.Errorf("loading listing: %w", domain.ErrPropertyNotFound)
		case "storage":
			return domain.ErrStorageUnavailable
		case "fiber":
			return fiber.NewError(fiber.StatusConflict, "busy")
		default:
			return errors.New("boom")
		}
	})
	return app
}

func call(t *testing.T, app *fiber.App, path, token string) (int, string, *http.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body), resp
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", fiber.StatusUnauthorized},
		{"invalid", "garbage", fiber.StatusUnauthorized},
		{"blocked", "blocked", fiber.StatusForbidden},
		{"valid", "buyer", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, _ := call(t, app, "/private", tt.token)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	app := newTestApp()

	_, body, _ := call(t, app, "/optional", "")
	assert.Equal(t, "anonymous", body)

	_, body, _ = call(t, app, "/optional", "garbage")
	assert.Equal(t, "anonymous", body)

	_, body, _ = call(t, app, "/optional", "buyer")
	assert.Equal(t, "2", body)
}

func TestRequireRole(t *testing.T) {
	app := newTestApp()

	status, _, _ := call(t, app, "/admin", "buyer")
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body, _ := call(t, app, "/admin", "admin")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "1", body)
}

func TestErrorHandler(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		kind    string
		status  int
		code    string
		message string
	}{
		{"validation", fiber.StatusBadRequest, "BAD_REQUEST", "price: must not be negative"},
		{"wrapped", fiber.StatusNotFound, "NOT_FOUND", "Property not found"},
		{"storage", fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Image storage is not configured"},
		{"fiber", fiber.StatusConflict, "CONFLICT", "busy"},
		{"unknown", fiber.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			status, body, resp := call(t, app, "/error/"+tt.kind, "")
			assert.Equal(t, tt.status, status)

			var payload ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &payload))
			assert.Equal(t, tt.code, payload.Code)
			assert.Equal(t, tt.message, payload.Error)
			assert.Len(t, payload.TraceID, 8)
			assert.Equal(t, payload.TraceID, resp.Header.Get(TraceIDHeader))
		})
	}
}

func TestRequestLoggerKeepsIncomingTraceID(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set(TraceIDHeader, "abcd1234")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "abcd1234", resp.Header.Get(TraceIDHeader))
}

func TestRequestLoggerReplacesMalformedTraceID(t *testing.T) {
	app := newTestApp()

	for _, incoming := range []string{"not-hex!", "ABCD1234", "abcd12345678", "abc-1234"} {
		req := httptest.NewRequest(http.MethodGet, "/optional", nil)
		req.Header.Set(TraceIDHeader, incoming)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()

		got := resp.Header.Get(TraceIDHeader)
		assert.NotEqual(t, incoming, got)
		assert.Len(t, got, 8)
		assert.True(t, validTraceID(got), got)
	}
}
