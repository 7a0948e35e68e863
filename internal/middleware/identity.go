package middleware

import (
	"Nutrition-Density-Backend/domain"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Identify never aborts the request. It stores a domain.Identity in the
// context and leaves the accept/reject decision to the route.
func (m *middleware) Identify(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(domain.LocalsIdentity, ResolveIdentity(c.Get(fiber.HeaderAuthorization), verifier))
		return c.Next()
	}
}

func ResolveIdentity(header string, verifier TokenVerifier) domain.Identity {
	if header == "" {
		return domain.Anonymous()
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return domain.Rejected(domain.ErrMalformedAuth)
	}

	username, ok := verifier.VerifyToken(parts[1])
	if !ok {
		return domain.Rejected(domain.ErrTokenInvalid)
	}
	return domain.Identified(username)
}

func GetIdentity(c *fiber.Ctx) domain.Identity {
	identity, ok := c.Locals(domain.LocalsIdentity).(domain.Identity)
	if !ok {
		return domain.Anonymous()
	}
	return identity
}
