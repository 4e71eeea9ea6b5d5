package models

import (
	"time"

	"gorm.io/gorm"
)

// Provider is a hosting company whose plans are listed in the catalog
type Provider struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Slug        string         `gorm:"uniqueIndex;type:varchar(150)" json:"slug" validate:"required,min=2,max=150"`
	Website     string         `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`
	LogoURL     string         `gorm:"type:varchar(255);default:null" json:"logo_url" validate:"max=255"`
	Description string         `gorm:"type:text" json:"description" validate:"max=2000"`
	// AvgRating is a denormalized cache over reviews, refreshed on review writes
	AvgRating float64        `gorm:"type:decimal(3,2);default:0" json:"avg_rating"`
	Plans     []Plan         `gorm:"foreignKey:ProviderID" json:"plans,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Provider model
func (Provider) TableName() string {
	return "providers"
}
