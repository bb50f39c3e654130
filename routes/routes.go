package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	controller "verimail/controllers"
	"verimail/middleware"
	"verimail/verifier"
)

func SetupRoutes(app *fiber.App, v *verifier.Verifier, log *logrus.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth := app.Group("/auth", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	auth.Post("/signup", controller.Signup)
	auth.Post("/signin", controller.Signin)
	auth.Post("/refresh", controller.RefreshToken)
	auth.Get("/me", middleware.Protected(), controller.GetCurrentUser)

	emailController := controller.NewEmailController(v, log)

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	api.Post("/email/verify", emailController.VerifyEmail)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
