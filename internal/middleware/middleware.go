package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type (
	// TokenVerifier resolves a bearer token to a username.
	TokenVerifier interface {
		VerifyToken(token string) (string, bool)
	}

	Middleware interface {
		CORSMiddleware() fiber.Handler
		Identify(verifier TokenVerifier) fiber.Handler
		RateLimiter(maxPerSecond int) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "*",
	})
}

// RateLimiter caps requests per client IP per second. Preflight requests are
// not counted.
func (m *middleware) RateLimiter(maxPerSecond int) fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		Max:        maxPerSecond,
		Expiration: 1 * time.Second,
	})
}
