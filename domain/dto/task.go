package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title         string      `json:"title" validate:"omitempty,max=225"`
	Description   string      `json:"description" validate:"omitempty,max=5000"`
	EstimatedTime *int64      `json:"estimated_time" validate:"omitempty,min=0"`
	DueDate       *time.Time  `json:"due_date"`
	Completed     bool        `json:"completed"`
	ParentTask    *uuid.UUID  `json:"parent_task"`
	Category      *uuid.UUID  `json:"category"`
	Tags          []uuid.UUID `json:"tags"`
}

// UpdateTaskRequest carries a partial update; nil fields are left untouched.
// JSON null is indistinguishable from an absent key on pointer fields, so
// clearing uses sentinels instead: the zero UUID for parent_task and
// category, the zero time for due_date. A full replace (PUT) goes through
// CreateTaskRequest instead.
type UpdateTaskRequest struct {
	Title         *string      `json:"title" validate:"omitempty,min=1,max=225"`
	Description   *string      `json:"description" validate:"omitempty,max=5000"`
	EstimatedTime *int64       `json:"estimated_time" validate:"omitempty,min=0"`
	DueDate       *time.Time   `json:"due_date"`
	Completed     *bool        `json:"completed"`
	ParentTask    *uuid.UUID   `json:"parent_task"`
	Category      *uuid.UUID   `json:"category"`
	Tags          *[]uuid.UUID `json:"tags"`
}

// TaskQueryParams is the raw, untrusted query surface of the list endpoint.
// Unrecognized or malformed values are ignored downstream rather than rejected.
type TaskQueryParams struct {
	ParentTask string   `query:"parent_task"`
	Completed  string   `query:"completed"`
	Status     string   `query:"status"` // alias for completed
	Category   string   `query:"category"`
	Component  string   `query:"component"` // alias for category
	DueDate    string   `query:"due_date"`
	Tag        string   `query:"tag"`
	Search     string   `query:"search"`
	SortBy     []string `query:"sort_by"`
}

// CompletedParam resolves the completed/status alias pair; completed wins.
func (p TaskQueryParams) CompletedParam() string {
	if p.Completed != "" {
		return p.Completed
	}
	return p.Status
}

// CategoryParam resolves the category/component alias pair; category wins.
func (p TaskQueryParams) CategoryParam() string {
	if p.Category != "" {
		return p.Category
	}
	return p.Component
}

type TaskResponse struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	EstimatedTime *int64      `json:"estimated_time"`
	DueDate       *time.Time  `json:"due_date"`
	Completed     bool        `json:"completed"`
	CompletedAt   *time.Time  `json:"completed_at"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	User          uuid.UUID   `json:"user"`
	ParentTask    *uuid.UUID  `json:"parent_task"`
	HasSubtasks   bool        `json:"has_subtasks"`
	SubTasks      []uuid.UUID `json:"sub_tasks"`
	Category      *uuid.UUID  `json:"category"`
	CategoryName  *string     `json:"category_name"`
	Tags          []uuid.UUID `json:"tags"`
	TagNames      []string    `json:"tag_names"`
}
