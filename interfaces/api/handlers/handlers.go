package handlers

import (
	"taskhive/domain/services"
	"taskhive/pkg/config"
)

// Services bundles everything the handlers depend on.
type Services struct {
	UserService     services.UserService
	TaskService     services.TaskService
	CategoryService services.CategoryService
	TagService      services.TagService
	Config          *config.Config
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	TaskHandler     *TaskHandler
	CategoryHandler *CategoryHandler
	TagHandler      *TagHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:     NewAuthHandler(services.UserService),
		UserHandler:     NewUserHandler(services.UserService),
		TaskHandler:     NewTaskHandler(services.TaskService),
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		TagHandler:      NewTagHandler(services.TagService),
	}
}
