package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Review is a user-submitted rating for a plan
type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	PlanID    uint           `gorm:"index" json:"plan_id" validate:"required"`
	Plan      Plan           `gorm:"foreignKey:PlanID" json:"-"`
	UserID    uint           `gorm:"index" json:"user_id" validate:"required"`
	User      User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int            `gorm:"not null" json:"rating" validate:"required,min=1,max=5"`
	Title     string         `gorm:"type:varchar(200)" json:"title" validate:"max=200"`
	Body      string         `gorm:"type:text" json:"body" validate:"max=4000"`
	IPv4      string         `gorm:"type:varchar(15);default:null" json:"-"` // IPv4 address of the reviewer
	IPv6      string         `gorm:"type:varchar(45);default:null" json:"-"` // IPv6 address of the reviewer
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

func (r *Review) Validate() error {
	v := validator.New()

	return v.Struct(r)
}
