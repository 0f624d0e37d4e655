package services

import (
	"context"

	"taskhive/domain/dto"
	"taskhive/domain/models"

	"github.com/google/uuid"
)

// DeleteTaskResult reports the outcome of a delete cascade. Exactly one of
// Kept / Deleted is set when the task had subtasks; both are nil otherwise.
type DeleteTaskResult struct {
	Kept    *dto.SubtaskSet
	Deleted *dto.DeletedSubtasks
}

type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Task, error)
	Query(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) (*dto.TaskBoard, error)
	TopLevel(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) (*dto.TaskBoard, error)
	Subtasks(ctx context.Context, userID, id uuid.UUID) (*dto.SubtaskSet, error)
	Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	Replace(ctx context.Context, userID, id uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, userID, id uuid.UUID, keepSubtasks bool) (*DeleteTaskResult, error)
}
