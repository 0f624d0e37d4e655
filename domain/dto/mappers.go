package dto

import (
	"taskhive/domain/models"

	"github.com/google/uuid"
)

func UserToUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		AsWorkload:  category.AsWorkload,
		Priority:    category.Priority,
		User:        category.UserID,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func TagToTagResponse(tag *models.Tag) *TagResponse {
	if tag == nil {
		return nil
	}
	return &TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		User:      tag.UserID,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

// TaskToTaskResponse serializes a task with its preloaded relations. The
// category name falls back to the parent's category when the task has none of
// its own, so subtasks inherit their parent's grouping in the UI.
func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}

	var fallback *models.Category
	if task.ParentTask != nil {
		fallback = task.ParentTask.Category
	}
	return taskResponse(task, fallback)
}

// SubtaskToTaskResponse serializes a subtask in the context of its parent,
// which may carry the category the subtask inherits.
func SubtaskToTaskResponse(task, parent *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}

	var fallback *models.Category
	if parent != nil {
		fallback = parent.Category
	}
	return taskResponse(task, fallback)
}

func taskResponse(task *models.Task, fallbackCategory *models.Category) *TaskResponse {
	subTasks := make([]uuid.UUID, 0, len(task.SubTasks))
	for _, sub := range task.SubTasks {
		subTasks = append(subTasks, sub.ID)
	}

	tags := make([]uuid.UUID, 0, len(task.Tags))
	tagNames := make([]string, 0, len(task.Tags))
	for _, tag := range task.Tags {
		tags = append(tags, tag.ID)
		tagNames = append(tagNames, tag.Name)
	}

	var categoryName *string
	if task.Category != nil {
		categoryName = &task.Category.Name
	} else if fallbackCategory != nil {
		categoryName = &fallbackCategory.Name
	}

	return &TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		EstimatedTime: task.EstimatedTime,
		DueDate:       task.DueDate,
		Completed:     task.Completed,
		CompletedAt:   task.CompletedAt,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
		User:          task.UserID,
		ParentTask:    task.ParentTaskID,
		HasSubtasks:   len(task.SubTasks) > 0,
		SubTasks:      subTasks,
		Category:      task.CategoryID,
		CategoryName:  categoryName,
		Tags:          tags,
		TagNames:      tagNames,
	}
}
