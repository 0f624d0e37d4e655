package routes

import (
	"taskhive/interfaces/api/handlers"
	"taskhive/interfaces/api/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	protected := middleware.Protected(jwtSecret)

	SetupAuthRoutes(api, h, protected)
	SetupUserRoutes(api, h, protected)
	SetupTaskRoutes(api, h, protected)
	SetupCategoryRoutes(api, h, protected)
	SetupTagRoutes(api, h, protected)
}
