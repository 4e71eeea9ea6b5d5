package repository

import (
	"github.com/hostpick/hostpick/app/models"
	"gorm.io/gorm"
)

// categoryRepository implements the CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create creates a new category in the database
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// GetByID retrieves a category by its ID
func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug
func (r *categoryRepository) GetBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetByName retrieves a category by its exact name. Used by the plan import
// to resolve category references.
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetAll retrieves all categories ordered for display
func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("sort_order ASC, name ASC").Find(&categories).Error
	return categories, err
}

// List retrieves categories with pagination
func (r *categoryRepository) List(offset, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("sort_order ASC, name ASC").
		Offset(offset).Limit(limit).Find(&categories).Error
	return categories, err
}

// Update updates an existing category in the database
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete soft deletes a category by its ID
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// Count returns the total number of categories
func (r *categoryRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}

// SlugExists checks if a slug already exists
func (r *categoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *categoryRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}
