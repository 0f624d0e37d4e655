package services

import (
	"context"

	"taskhive/domain/dto"
	"taskhive/domain/models"

	"github.com/google/uuid"
)

type TagService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTagRequest) (*models.Tag, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Tag, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTagRequest) (*models.Tag, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
