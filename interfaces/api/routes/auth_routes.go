package routes

import (
	"taskhive/interfaces/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
	auth.Post("/refresh", h.AuthHandler.Refresh)
	auth.Post("/logout", h.AuthHandler.Logout)

	auth.Get("/me", protected, h.AuthHandler.Me)
}
