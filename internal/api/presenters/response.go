package presenters

import (
	"github.com/gofiber/fiber/v2"
)

type ErrorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := ErrorBody{Detail: message}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}
