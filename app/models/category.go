package models

import (
	"time"

	"gorm.io/gorm"
)

// Category groups hosting plans by product type (shared, VPS, dedicated, ...)
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Slug        string         `gorm:"uniqueIndex;type:varchar(150)" json:"slug" validate:"required,min=2,max=150"`
	Description string         `gorm:"type:text" json:"description" validate:"max=1000"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
