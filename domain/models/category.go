package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"size:50;not null"`
	Slug        string    `gorm:"size:100;index"`
	Description string    `gorm:"type:text"`
	AsWorkload  bool      `gorm:"default:true"` // counts toward workload accounting
	Priority    *int      // sort key; nil sorts last in the default presentation
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User *User `gorm:"foreignKey:UserID"`
}

func (Category) TableName() string {
	return "categories"
}
