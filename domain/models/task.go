package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            uuid.UUID  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title         string     `gorm:"size:225;not null;default:'Untitled'"`
	Description   string     `gorm:"type:text"`
	EstimatedTime *int64     // whole minutes
	DueDate       *time.Time `gorm:"type:timestamptz;index"`
	Completed     bool       `gorm:"default:false"`
	CompletedAt   *time.Time `gorm:"type:timestamptz"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentTaskID  *uuid.UUID `gorm:"type:uuid;index"`
	CategoryID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User       *User     `gorm:"foreignKey:UserID"`
	ParentTask *Task     `gorm:"foreignKey:ParentTaskID"`
	SubTasks   []*Task   `gorm:"foreignKey:ParentTaskID"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Tags       []*Tag    `gorm:"many2many:task_tags;constraint:OnDelete:CASCADE"`
}

func (Task) TableName() string {
	return "tasks"
}

// SetCompleted flips the completion flag and keeps completed_at derived from it:
// set on the false->true transition, cleared on true->false.
func (t *Task) SetCompleted(completed bool, now time.Time) {
	if completed && !t.Completed {
		at := now
		t.CompletedAt = &at
	}
	if !completed {
		t.CompletedAt = nil
	}
	t.Completed = completed
}

// NormalizeCompletion re-establishes the completed/completed_at invariant before a
// save, whatever path mutated the fields.
func (t *Task) NormalizeCompletion(now time.Time) {
	if t.Completed && t.CompletedAt == nil {
		at := now
		t.CompletedAt = &at
	}
	if !t.Completed {
		t.CompletedAt = nil
	}
}

// IsTopLevel reports whether the task has no parent.
func (t *Task) IsTopLevel() bool {
	return t.ParentTaskID == nil
}
