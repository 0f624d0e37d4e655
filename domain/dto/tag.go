package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type UpdateTagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=50"`
}

type TagResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	User      uuid.UUID `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
