package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"zoomboom/internal/auth"
	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

const (
	// ActorLocalKey holds the model.Actor of an authenticated request.
	ActorLocalKey = "actor"
	// ClaimsLocalKey holds the parsed *auth.Claims of the bearer token.
	ClaimsLocalKey = "claims"
)

// Authenticator resolves a bearer token to its caller.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (model.Actor, *auth.Claims, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header.
// A missing, malformed, expired or revoked token is rejected with 401.
func Auth(a Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		actor, claims, err := a.Authenticate(c.UserContext(), raw)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
			}
			return err
		}

		c.Locals(ActorLocalKey, actor)
		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// RequireRole lets the request through only if the actor has one of roles.
// It must run after Auth.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
		}
		if !lo.Contains(roles, actor.Role) {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}
		return c.Next()
	}
}

// ActorFrom returns the caller stored by Auth.
func ActorFrom(c *fiber.Ctx) (model.Actor, bool) {
	actor, ok := c.Locals(ActorLocalKey).(model.Actor)
	return actor, ok
}

// ClaimsFrom returns the token claims stored by Auth.
func ClaimsFrom(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(ClaimsLocalKey).(*auth.Claims)
	return claims, ok && claims != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
