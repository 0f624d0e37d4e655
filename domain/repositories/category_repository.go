package repositories

import (
	"context"

	"taskhive/domain/models"

	"github.com/google/uuid"
)

// CategoryRepository is owner-scoped: every by-id operation requires the owning
// user's id and treats a foreign-owned row the same as a missing one.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// Delete removes the category; dependent tasks are detached (category set
	// to null), never deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
