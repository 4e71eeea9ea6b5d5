package repository

import (
	"github.com/hostpick/hostpick/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetBySlug(slug string) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	List(offset, limit int) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

// ProviderRepository defines the interface for provider-related operations
type ProviderRepository interface {
	Create(provider *models.Provider) error
	CreateBatch(providers []*models.Provider) error
	GetByID(id uint) (*models.Provider, error)
	GetBySlug(slug string) (*models.Provider, error)
	GetByName(name string) (*models.Provider, error)
	List(offset, limit int) ([]models.Provider, error)
	Update(provider *models.Provider) error
	Delete(id uint) error
	Count() (int64, error)
	Search(query string) ([]models.Provider, error)
	RefreshAvgRating(id uint) error
	SlugExists(slug string) (bool, error)
}

// PlanRepository defines the interface for plan-related database operations
type PlanRepository interface {
	Create(plan *models.Plan) error
	CreateBatch(plans []*models.Plan) error
	GetByID(id uint) (*models.Plan, error)
	GetByIDs(ids []uint) ([]models.Plan, error)
	GetByName(name string) (*models.Plan, error)
	GetByProviderID(providerID uint, offset, limit int) ([]models.Plan, error)
	GetByCategoryID(categoryID uint, offset, limit int) ([]models.Plan, error)
	List(offset, limit int) ([]models.Plan, error)
	Update(plan *models.Plan) error
	Delete(id uint) error
	Count() (int64, error)
	CountByCategoryID(categoryID uint) (int64, error)
	CountByProviderID(providerID uint) (int64, error)
	Search(query string) ([]models.Plan, error)
	AddFeature(feature *models.PlanFeature) error
	AddFeatureBatch(features []*models.PlanFeature) error
	GetFeatures(planID uint) ([]models.PlanFeature, error)
	DeleteFeature(id uint) error
	UpdateViewCount(id uint, delta int64) error
}

// ReviewRepository defines the interface for review-related operations
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetByPlanID(planID uint, offset, limit int) ([]models.Review, error)
	GetByUserID(userID uint) ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id uint) error
	Count() (int64, error)
	CountByPlanID(planID uint) (int64, error)
	AvgRatingByPlanID(planID uint) (float64, error)
	HasUserReviewed(userID, planID uint) (bool, error)
}

// SettingRepository defines the interface for application settings
type SettingRepository interface {
	Get() (*models.AppSettings, error)
	Save(settings *models.AppSettings) error
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Category CategoryRepository
	Provider ProviderRepository
	Plan     PlanRepository
	Review   ReviewRepository
	Setting  SettingRepository
}

// NewRepositories creates all repositories with the given database connection
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Category: NewCategoryRepository(db),
		Provider: NewProviderRepository(db),
		Plan:     NewPlanRepository(db),
		Review:   NewReviewRepository(db),
		Setting:  NewSettingRepository(db),
	}
}
