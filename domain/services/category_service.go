package services

import (
	"context"

	"taskhive/domain/dto"
	"taskhive/domain/models"

	"github.com/google/uuid"
)

type CategoryService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
