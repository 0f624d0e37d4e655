package postgres

import (
	"context"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Preload("SubTasks").
		Preload("SubTasks.Tags").
		Preload("ParentTask").
		Preload("ParentTask.Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Query(ctx context.Context, userID uuid.UUID, params dto.TaskQueryParams) ([]*models.Task, error) {
	db := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("tasks.user_id = ?", userID)

	if needsCategoryJoin(params.SortBy) {
		db = db.Joins("LEFT JOIN categories ON categories.id = tasks.category_id")
	}

	db = applyTaskFilters(db, params, time.Now())

	for _, clause := range taskOrderClauses(params.SortBy) {
		db = db.Order(clause)
	}

	var tasks []*models.Task
	err := db.
		Preload("Category").
		Preload("Tags").
		Preload("SubTasks").
		Preload("SubTasks.Tags").
		Preload("SubTasks.Category").
		Preload("ParentTask").
		Preload("ParentTask.Category").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListSubtasks(ctx context.Context, userID, parentID uuid.UUID) ([]*models.Task, error) {
	db := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("tasks.user_id = ? AND tasks.parent_task_id = ?", userID, parentID)

	for _, clause := range taskOrderClauses(nil) {
		db = db.Order(clause)
	}

	var tasks []*models.Task
	err := db.Preload("Category").Preload("Tags").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]*models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	db := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("tasks.user_id = ? AND tasks.id IN ?", userID, ids)

	for _, clause := range taskOrderClauses(nil) {
		db = db.Order(clause)
	}

	var tasks []*models.Task
	err := db.Preload("Category").Preload("Tags").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).
			Where("id = ? AND user_id = ?", task.ID, task.UserID).
			Select(
				"title", "description", "estimated_time", "due_date",
				"completed", "completed_at", "parent_task_id", "category_id",
				"updated_at",
			).
			Updates(task)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(task).Association("Tags").Replace(task.Tags)
	})
}

// DeleteCascade removes the task and settles its subtasks inside a single
// transaction, so callers never observe a half-applied cascade.
func (r *TaskRepositoryImpl) DeleteCascade(ctx context.Context, userID, id uuid.UUID, keepSubtasks bool) ([]uuid.UUID, error) {
	var subIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task models.Task
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&task).Error; err != nil {
			return err
		}

		var subs []*models.Task
		if err := tx.Where("parent_task_id = ?", task.ID).Find(&subs).Error; err != nil {
			return err
		}
		for _, sub := range subs {
			subIDs = append(subIDs, sub.ID)
		}

		// The self-referencing FK on parent_task_id rejects deleting a row
		// that still has children, so the subtasks are settled first.
		if len(subIDs) > 0 {
			if keepSubtasks {
				// Detach: subtasks become top-level; those without their own
				// category inherit the deleted parent's.
				if task.CategoryID != nil {
					err := tx.Model(&models.Task{}).
						Where("parent_task_id = ? AND category_id IS NULL", task.ID).
						Update("category_id", task.CategoryID).Error
					if err != nil {
						return err
					}
				}
				err := tx.Model(&models.Task{}).
					Where("parent_task_id = ?", task.ID).
					Update("parent_task_id", nil).Error
				if err != nil {
					return err
				}
			} else {
				if err := tx.Exec("DELETE FROM task_tags WHERE task_id IN ?", subIDs).Error; err != nil {
					return err
				}
				if err := tx.Where("id IN ?", subIDs).Delete(&models.Task{}).Error; err != nil {
					return err
				}
			}
		}

		if err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", task.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		return nil, err
	}

	return subIDs, nil
}

func (r *TaskRepositoryImpl) CountOverdue(ctx context.Context) (int64, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("due_date < ? AND completed = ?", today, false).
		Count(&count).Error
	return count, err
}
