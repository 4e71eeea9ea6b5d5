package repository

import (
	"github.com/hostpick/hostpick/app/models"
	"gorm.io/gorm"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create creates a new plan in the database
func (r *planRepository) Create(plan *models.Plan) error {
	return r.db.Create(plan).Error
}

// CreateBatch creates plans inside one transaction; all or nothing
func (r *planRepository) CreateBatch(plans []*models.Plan) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range plans {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a plan with its provider, category and features
func (r *planRepository) GetByID(id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Preload("Provider").Preload("Category").Preload("Features").
		First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByIDs retrieves the given plans preserving no particular order;
// the comparison view reorders them by selection order itself
func (r *planRepository) GetByIDs(ids []uint) ([]models.Plan, error) {
	var plans []models.Plan
	if len(ids) == 0 {
		return plans, nil
	}
	err := r.db.Preload("Provider").Preload("Category").Preload("Features").
		Where("id IN ?", ids).Find(&plans).Error
	return plans, err
}

// GetByName retrieves the first plan with an exact name match. Used by the
// feature import to resolve plan references.
func (r *planRepository) GetByName(name string) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.Where("name = ?", name).First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByProviderID retrieves plans of one provider with pagination
func (r *planRepository) GetByProviderID(providerID uint, offset, limit int) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Preload("Provider").Preload("Category").
		Where("provider_id = ?", providerID).
		Order("monthly_price ASC").Offset(offset).Limit(limit).Find(&plans).Error
	return plans, err
}

// GetByCategoryID retrieves plans of one category with pagination
func (r *planRepository) GetByCategoryID(categoryID uint, offset, limit int) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Preload("Provider").Preload("Category").
		Where("category_id = ?", categoryID).
		Order("monthly_price ASC").Offset(offset).Limit(limit).Find(&plans).Error
	return plans, err
}

// List retrieves all plans with pagination
func (r *planRepository) List(offset, limit int) ([]models.Plan, error) {
	var plans []models.Plan
	err := r.db.Preload("Provider").Preload("Category").
		Order("monthly_price ASC").Offset(offset).Limit(limit).Find(&plans).Error
	return plans, err
}

// Update updates an existing plan in the database
func (r *planRepository) Update(plan *models.Plan) error {
	return r.db.Save(plan).Error
}

// Delete soft deletes a plan by its ID
func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&models.Plan{}, id).Error
}

// Count returns the total number of plans
func (r *planRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Count(&count).Error
	return count, err
}

// CountByCategoryID returns the number of plans in a category
func (r *planRepository) CountByCategoryID(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// CountByProviderID returns the number of plans of a provider
func (r *planRepository) CountByProviderID(providerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Plan{}).Where("provider_id = ?", providerID).Count(&count).Error
	return count, err
}

// Search finds plans by name or feature summary
func (r *planRepository) Search(query string) ([]models.Plan, error) {
	var plans []models.Plan
	like := "%" + query + "%"
	err := r.db.Preload("Provider").Preload("Category").
		Where("name LIKE ? OR feature_summary LIKE ?", like, like).
		Order("monthly_price ASC").Find(&plans).Error
	return plans, err
}

// AddFeature adds a structured feature row to a plan
func (r *planRepository) AddFeature(feature *models.PlanFeature) error {
	return r.db.Create(feature).Error
}

// AddFeatureBatch adds feature rows inside one transaction
func (r *planRepository) AddFeatureBatch(features []*models.PlanFeature) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, f := range features {
			if err := tx.Create(f).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetFeatures retrieves the structured feature rows of a plan
func (r *planRepository) GetFeatures(planID uint) ([]models.PlanFeature, error) {
	var features []models.PlanFeature
	err := r.db.Where("plan_id = ?", planID).Order("id ASC").Find(&features).Error
	return features, err
}

// DeleteFeature removes a feature row
func (r *planRepository) DeleteFeature(id uint) error {
	return r.db.Delete(&models.PlanFeature{}, id).Error
}

// UpdateViewCount applies a batched view-count increment from the counter flush
func (r *planRepository) UpdateViewCount(id uint, delta int64) error {
	return r.db.Model(&models.Plan{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error
}
