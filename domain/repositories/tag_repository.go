package repositories

import (
	"context"

	"taskhive/domain/models"

	"github.com/google/uuid"
)

// TagRepository is owner-scoped, same contract as CategoryRepository.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Tag, error)
	GetManyByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Tag, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error)
	Update(ctx context.Context, tag *models.Tag) error
	// Delete removes the tag and its task associations only.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
