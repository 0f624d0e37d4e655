package serviceimpl

import (
	"context"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/domain/repositories"
	"taskhive/domain/services"
	"taskhive/pkg/logger"

	"github.com/google/uuid"
)

const defaultTaskTitle = "Untitled"

type TaskServiceImpl struct {
	taskRepo     repositories.TaskRepository
	categoryRepo repositories.CategoryRepository
	tagRepo      repositories.TagRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, categoryRepo repositories.CategoryRepository, tagRepo repositories.TagRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *TaskServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		EstimatedTime: req.EstimatedTime,
		DueDate:       req.DueDate,
		UserID:        userID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if task.Title == "" {
		task.Title = defaultTaskTitle
	}
	task.SetCompleted(req.Completed, time.Now())

	if err := s.applyParent(ctx, userID, task, req.ParentTask); err != nil {
		return nil, err
	}
	if err := s.applyCategory(ctx, userID, task, req.Category); err != nil {
		return nil, err
	}
	if err := s.applyTags(ctx, userID, task, req.Tags); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "user_id", userID, "task_id", task.ID)

	// Re-fetch so the response carries preloaded relations.
	return s.Get(ctx, userID, task.ID)
}

func (s *TaskServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return task, nil
}

func (s *TaskServiceImpl) Query(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) (*dto.TaskBoard, error) {
	tasks, err := s.taskRepo.Query(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return dto.ShapeTaskBoard(tasks), nil
}

func (s *TaskServiceImpl) TopLevel(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) (*dto.TaskBoard, error) {
	params.ParentTask = "null"
	return s.Query(ctx, userID, params)
}

func (s *TaskServiceImpl) Subtasks(ctx context.Context, userID, id uuid.UUID) (*dto.SubtaskSet, error) {
	parent, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	subtasks, err := s.taskRepo.ListSubtasks(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	return dto.ShapeSubtaskSet(subtasks, parent), nil
}

func (s *TaskServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.EstimatedTime != nil {
		task.EstimatedTime = req.EstimatedTime
	}
	if req.DueDate != nil {
		if req.DueDate.IsZero() {
			task.DueDate = nil
		} else {
			task.DueDate = req.DueDate
		}
	}
	if req.Completed != nil {
		task.SetCompleted(*req.Completed, time.Now())
	}

	if req.ParentTask != nil {
		if err := s.applyParent(ctx, userID, task, req.ParentTask); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := s.applyCategory(ctx, userID, task, req.Category); err != nil {
			return nil, err
		}
	}
	if req.Tags != nil {
		if err := s.applyTags(ctx, userID, task, *req.Tags); err != nil {
			return nil, err
		}
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, asNotFound(err)
	}

	return s.Get(ctx, userID, id)
}

// Replace overwrites every mutable field; fields absent from the request fall
// back to their defaults rather than keeping old values.
func (s *TaskServiceImpl) Replace(ctx context.Context, userID, id uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	task.Title = req.Title
	if task.Title == "" {
		task.Title = defaultTaskTitle
	}
	task.Description = req.Description
	task.EstimatedTime = req.EstimatedTime
	task.DueDate = req.DueDate
	task.SetCompleted(req.Completed, time.Now())
	task.ParentTaskID = nil
	task.CategoryID = nil
	task.Category = nil

	if err := s.applyParent(ctx, userID, task, req.ParentTask); err != nil {
		return nil, err
	}
	if err := s.applyCategory(ctx, userID, task, req.Category); err != nil {
		return nil, err
	}
	if err := s.applyTags(ctx, userID, task, req.Tags); err != nil {
		return nil, err
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, asNotFound(err)
	}

	return s.Get(ctx, userID, id)
}

func (s *TaskServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID, keepSubtasks bool) (*services.DeleteTaskResult, error) {
	subIDs, err := s.taskRepo.DeleteCascade(ctx, userID, id, keepSubtasks)
	if err != nil {
		return nil, asNotFound(err)
	}

	logger.InfoContext(ctx, "Task deleted", "user_id", userID, "task_id", id,
		"subtasks", len(subIDs), "kept", keepSubtasks)

	result := &services.DeleteTaskResult{}
	if len(subIDs) == 0 {
		return result, nil
	}

	if !keepSubtasks {
		result.Deleted = &dto.DeletedSubtasks{
			SubCount:        len(subIDs),
			DeletedSubtasks: subIDs,
		}
		return result, nil
	}

	// The detached subtasks already carry any inherited category, so they are
	// re-read rather than shaped from the stale pre-delete rows.
	orphans, err := s.taskRepo.ListByIDs(ctx, userID, subIDs)
	if err != nil {
		return nil, err
	}
	result.Kept = dto.ShapeSubtaskSet(orphans, nil)

	return result, nil
}

// applyParent validates and sets the task's parent. A pointer to uuid.Nil
// clears it; any other id must name an owned, top-level task that is not the
// task itself and the task itself must have no subtasks.
func (s *TaskServiceImpl) applyParent(ctx context.Context, userID uuid.UUID, task *models.Task, parentID *uuid.UUID) error {
	if parentID == nil || *parentID == uuid.Nil {
		task.ParentTaskID = nil
		return nil
	}

	if *parentID == task.ID {
		return services.NewValidationError("parent_task", "A task cannot be its own parent")
	}
	if len(task.SubTasks) > 0 {
		return services.NewValidationError("parent_task", "Subtasks cannot have their own subtasks")
	}

	parent, err := s.taskRepo.GetByID(ctx, userID, *parentID)
	if err != nil {
		return services.NewValidationError("parent_task", "Invalid parent task selection")
	}
	if !parent.IsTopLevel() {
		return services.NewValidationError("parent_task", "Subtasks cannot have their own subtasks")
	}

	id := *parentID
	task.ParentTaskID = &id
	return nil
}

// applyCategory validates ownership and sets the task's category; a pointer to
// uuid.Nil clears it.
func (s *TaskServiceImpl) applyCategory(ctx context.Context, userID uuid.UUID, task *models.Task, categoryID *uuid.UUID) error {
	if categoryID == nil || *categoryID == uuid.Nil {
		task.CategoryID = nil
		task.Category = nil
		return nil
	}

	category, err := s.categoryRepo.GetByID(ctx, userID, *categoryID)
	if err != nil {
		return services.NewValidationError("category", "Invalid category selection")
	}

	task.CategoryID = &category.ID
	task.Category = category
	return nil
}

// applyTags validates that every referenced tag is owned by the user and
// replaces the task's tag set.
func (s *TaskServiceImpl) applyTags(ctx context.Context, userID uuid.UUID, task *models.Task, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		task.Tags = []*models.Tag{}
		return nil
	}

	unique := dedupeIDs(tagIDs)
	tags, err := s.tagRepo.GetManyByIDs(ctx, userID, unique)
	if err != nil {
		return err
	}
	if len(tags) != len(unique) {
		return services.NewValidationError("tags", "One or more tags are invalid")
	}

	task.Tags = tags
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
