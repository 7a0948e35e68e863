package routes

import (
	"Nutrition-Density-Backend/internal/api/handlers"
	"Nutrition-Density-Backend/internal/middleware"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	MealHandler   handlers.MealHandler
	LabelHandler  handlers.LabelHandler
	Middleware    middleware.Middleware
	TokenVerifier middleware.TokenVerifier
	FrontendDir   string
	RateLimit     int
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	if c.RateLimit > 0 {
		c.App.Use(c.Middleware.RateLimiter(c.RateLimit))
	}
	c.Auth()
	c.Prediction()
	c.Label()
	c.GuestRoute()
	c.Frontend()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Prediction() {
	identify := c.Middleware.Identify(c.TokenVerifier)

	c.App.Post("/predict", identify, c.MealHandler.Predict)
	c.App.Get("/meals", identify, c.MealHandler.GetMeals)
}

func (c *Config) Label() {
	c.App.Post("/img_to_text", c.LabelHandler.ImageToText)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) Frontend() {
	if c.FrontendDir == "" {
		return
	}

	c.App.Static("/static", c.FrontendDir)
	c.App.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.SendFile(filepath.Join(c.FrontendDir, "register.html"))
	})
	c.App.Get("/login", func(ctx *fiber.Ctx) error {
		return ctx.SendFile(filepath.Join(c.FrontendDir, "login.html"))
	})
}
