package routes

import (
	"taskhive/interfaces/api/handlers"

	"github.com/gofiber/fiber/v2"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	tasks := api.Group("/tasks")
	tasks.Use(protected)

	tasks.Get("/", h.TaskHandler.List)
	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/top-level", h.TaskHandler.TopLevel)
	tasks.Get("/:id", h.TaskHandler.Get)
	tasks.Put("/:id", h.TaskHandler.Replace)
	tasks.Patch("/:id", h.TaskHandler.Update)
	tasks.Delete("/:id", h.TaskHandler.Delete)
	tasks.Get("/:id/subtasks", h.TaskHandler.Subtasks)
}
