package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	AsWorkload  *bool  `json:"as_workload"`
	Priority    *int   `json:"priority" validate:"omitempty,min=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	AsWorkload  *bool   `json:"as_workload"`
	Priority    *int    `json:"priority" validate:"omitempty,min=0"`
}

type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	AsWorkload  bool      `json:"as_workload"`
	Priority    *int      `json:"priority"`
	User        uuid.UUID `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
