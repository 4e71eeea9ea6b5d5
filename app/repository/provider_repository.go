package repository

import (
	"github.com/hostpick/hostpick/app/models"
	"gorm.io/gorm"
)

// providerRepository implements the ProviderRepository interface
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository creates a new provider repository instance
func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

// Create creates a new provider in the database
func (r *providerRepository) Create(provider *models.Provider) error {
	return r.db.Create(provider).Error
}

// CreateBatch creates providers inside one transaction; all or nothing
func (r *providerRepository) CreateBatch(providers []*models.Provider) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range providers {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a provider by its ID
func (r *providerRepository) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.First(&provider, id).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetBySlug retrieves a provider by its slug
func (r *providerRepository) GetBySlug(slug string) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Where("slug = ?", slug).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// GetByName retrieves a provider by its exact name, used by the bulk import
// to resolve provider references in plan records
func (r *providerRepository) GetByName(name string) (*models.Provider, error) {
	var provider models.Provider
	err := r.db.Where("name = ?", name).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

// List retrieves providers with pagination
func (r *providerRepository) List(offset, limit int) ([]models.Provider, error) {
	var providers []models.Provider
	err := r.db.Order("name ASC").Offset(offset).Limit(limit).Find(&providers).Error
	return providers, err
}

// Update updates an existing provider in the database
func (r *providerRepository) Update(provider *models.Provider) error {
	return r.db.Save(provider).Error
}

// Delete soft deletes a provider by its ID
func (r *providerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Provider{}, id).Error
}

// Count returns the total number of providers
func (r *providerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Provider{}).Count(&count).Error
	return count, err
}

// Search finds providers by name or description
func (r *providerRepository) Search(query string) ([]models.Provider, error) {
	var providers []models.Provider
	like := "%" + query + "%"
	err := r.db.Where("name LIKE ? OR description LIKE ?", like, like).
		Order("name ASC").Find(&providers).Error
	return providers, err
}

// RefreshAvgRating recomputes the denormalized rating cache from reviews
func (r *providerRepository) RefreshAvgRating(id uint) error {
	return r.db.Exec(`
		UPDATE providers SET avg_rating = COALESCE((
			SELECT AVG(r.rating) FROM reviews r
			JOIN plans p ON p.id = r.plan_id
			WHERE p.provider_id = providers.id AND r.deleted_at IS NULL
		), 0)
		WHERE providers.id = ?`, id).Error
}

// SlugExists checks if a slug already exists
func (r *providerRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Provider{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
