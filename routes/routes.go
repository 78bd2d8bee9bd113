package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"registration-form-app/dto/res"
	"registration-form-app/handler"
	"registration-form-app/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.RegistrationHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Use(rc.Middleware.RequestID)
	rc.App.Use(rc.Middleware.AccessLog)
	rc.App.Use(recover.New())

	rc.GetHealthRoute()
	rc.GetPublicRoute()
}

func (rc *ConfigRoute) GetHealthRoute() {
	rc.App.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(res.CommonResponse[fiber.Map]{
			Message:    "service healthy",
			StatusCode: fiber.StatusOK,
			Data:       fiber.Map{"status": "ok"},
		})
	})
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/registrations", rc.RegistrationHandler.Register)
	app.Post("/registrations/validate", rc.RegistrationHandler.Validate)
}
