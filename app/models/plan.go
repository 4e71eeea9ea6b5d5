package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Plan is a priced hosting offering belonging to a provider and category.
// The numeric attributes (storage, bandwidth, SLA, money-back) are optional
// and only used by the scoring subsystem.
type Plan struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	Name           string   `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	ProviderID     uint     `gorm:"index" json:"provider_id" validate:"required"`
	Provider       Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	CategoryID     uint     `gorm:"index" json:"category_id" validate:"required"`
	Category       Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	MonthlyPrice   float64  `gorm:"type:decimal(10,2);not null" json:"monthly_price" validate:"gte=0"`
	RenewalPrice   *float64 `gorm:"type:decimal(10,2);default:null" json:"renewal_price,omitempty" validate:"omitempty,gte=0"`
	Currency       string   `gorm:"type:varchar(3);default:'USD'" json:"currency" validate:"required,len=3"`
	DiscountPct    *float64 `gorm:"type:decimal(5,2);default:null" json:"discount_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	FeatureSummary string   `gorm:"type:text" json:"feature_summary" validate:"max=2000"`

	// Scoring attributes, all optional
	StorageGB    *float64 `gorm:"type:decimal(10,2);default:null" json:"storage_gb,omitempty" validate:"omitempty,gte=0"`
	BandwidthTB  *float64 `gorm:"type:decimal(10,2);default:null" json:"bandwidth_tb,omitempty" validate:"omitempty,gte=0"`
	Support247   bool     `gorm:"type:tinyint(1);default:0" json:"support_247"`
	SLAPct       *float64 `gorm:"type:decimal(5,2);default:null" json:"sla_pct,omitempty" validate:"omitempty,gte=0,lte=100"`
	MoneyBackDays *int    `gorm:"default:null" json:"money_back_days,omitempty" validate:"omitempty,gte=0"`

	ViewCount int64          `gorm:"default:0" json:"view_count"`
	Features  []PlanFeature  `gorm:"foreignKey:PlanID" json:"features,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Plan model
func (Plan) TableName() string {
	return "plans"
}

func (p *Plan) Validate() error {
	v := validator.New()

	return v.Struct(p)
}

// PlanFeature is one structured attribute->value pair of a plan
// (e.g. "SSD Storage" -> "100 GB").
type PlanFeature struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PlanID    uint      `gorm:"index" json:"plan_id"`
	Name      string    `gorm:"type:varchar(150)" json:"name" validate:"required,min=1,max=150"`
	Value     string    `gorm:"type:varchar(255)" json:"value" validate:"max=255"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the PlanFeature model
func (PlanFeature) TableName() string {
	return "plan_features"
}
