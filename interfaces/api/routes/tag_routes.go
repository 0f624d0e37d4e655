package routes

import (
	"taskhive/interfaces/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupTagRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	tags := api.Group("/tags")
	tags.Use(protected)

	tags.Get("/", h.TagHandler.List)
	tags.Post("/", h.TagHandler.Create)
	tags.Get("/:id", h.TagHandler.Get)
	tags.Put("/:id", h.TagHandler.Update)
	tags.Patch("/:id", h.TagHandler.Update)
	tags.Delete("/:id", h.TagHandler.Delete)
}
