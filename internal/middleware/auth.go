package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prime-property/internal/domain"
)

const UserContextKey = "user"

// Authenticator resolves a bearer token to the live user row.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

// AuthRequired rejects requests without a valid token for an active account.
// The user stored in the request locals is the current database row, not the
// token's claims.
func AuthRequired(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, present := bearerToken(c)
		if !present {
			return domain.ErrMissingToken
		}
		if token == "" {
			return domain.ErrInvalidToken
		}

		user, err := authn.Authenticate(c.UserContext(), token)
		if err != nil {
			return err
		}

		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

// OptionalAuth identifies the caller when a usable token is sent and treats
// everyone else as anonymous.
func OptionalAuth(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, present := bearerToken(c); present && token != "" {
			if user, err := authn.Authenticate(c.UserContext(), token); err == nil {
				c.Locals(UserContextKey, user)
			}
		}
		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// GetActor returns the caller's identity, or nil for anonymous requests.
func GetActor(c *fiber.Ctx) *domain.Actor {
	user := GetCurrentUser(c)
	if user == nil {
		return nil
	}
	actor := user.Actor()
	return &actor
}

// MustActor is for routes behind AuthRequired.
func MustActor(c *fiber.Ctx) domain.Actor {
	if actor := GetActor(c); actor != nil {
		return *actor
	}
	return domain.Actor{}
}
