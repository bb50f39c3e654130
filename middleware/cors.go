package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	allowedMethods = "GET,POST,PUT,DELETE,PATCH,OPTIONS"
	allowedHeaders = "Origin,Content-Type,Accept,Authorization,X-Requested-With"
)

// CORS allows the configured frontend origin to call the API.
func CORS(origin string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if origin != "" {
			c.Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Set("Access-Control-Allow-Origin", "*")
		}
		c.Set("Access-Control-Allow-Credentials", "true")

		if c.Method() == fiber.MethodOptions {
			c.Set("Access-Control-Allow-Methods", allowedMethods)
			c.Set("Access-Control-Allow-Headers", allowedHeaders)
			c.Set("Access-Control-Max-Age", "3600")
			return c.SendStatus(fiber.StatusNoContent)
		}

		return c.Next()
	}
}
