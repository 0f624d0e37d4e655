package routes

import (
	"taskhive/interfaces/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	categories := api.Group("/categories")
	categories.Use(protected)

	categories.Get("/", h.CategoryHandler.List)
	categories.Post("/", h.CategoryHandler.Create)
	categories.Get("/:id", h.CategoryHandler.Get)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Patch("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
