package repositories

import (
	"context"

	"taskhive/domain/dto"
	"taskhive/domain/models"

	"github.com/google/uuid"
)

// TaskRepository is the persistence surface of the task query engine. All
// operations are owner-scoped; by-id misses and foreign-owned rows are
// indistinguishable (both surface as not found).
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)

	// Query returns the user's tasks matching params, ordered per its sort
	// specs (default ordering when none), with category/tags/subtasks
	// preloaded. Malformed params are ignored, never an error.
	Query(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) ([]*models.Task, error)

	// ListSubtasks returns the direct subtasks of a task in default order.
	ListSubtasks(ctx context.Context, userID, parentID uuid.UUID) ([]*models.Task, error)

	// ListByIDs re-fetches tasks by id (used to re-serialize orphaned subtasks
	// after a cascade).
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Task, error)

	// Update persists the task's columns and replaces its tag associations.
	Update(ctx context.Context, task *models.Task) error

	// DeleteCascade removes the task and handles its subtasks in one
	// transaction. With keepSubtasks the subtasks are detached (parent cleared,
	// category inherited from the deleted task when they had none); otherwise
	// they are hard-deleted. Returns the affected subtask ids.
	DeleteCascade(ctx context.Context, userID, id uuid.UUID, keepSubtasks bool) ([]uuid.UUID, error)

	// CountOverdue counts incomplete tasks due before the start of today,
	// across all users (overdue digest job).
	CountOverdue(ctx context.Context) (int64, error)
}
