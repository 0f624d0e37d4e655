package routes

import (
	"taskhive/interfaces/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	users := api.Group("/users")
	users.Use(protected)

	users.Get("/profile", h.UserHandler.GetProfile)
	users.Put("/profile", h.UserHandler.UpdateProfile)
	users.Patch("/profile", h.UserHandler.UpdateProfile)
	users.Patch("/password", h.UserHandler.ChangePassword)
}
