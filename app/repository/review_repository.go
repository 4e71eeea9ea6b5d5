package repository

import (
	"github.com/hostpick/hostpick/app/models"
	"gorm.io/gorm"
)

// reviewRepository implements the ReviewRepository interface
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create creates a new review in the database
func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// GetByID retrieves a review by its ID
func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByPlanID retrieves reviews for a plan with pagination
func (r *reviewRepository) GetByPlanID(planID uint, offset, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("User").Where("plan_id = ?", planID).
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&reviews).Error
	return reviews, err
}

// GetByUserID retrieves all reviews written by a user
func (r *reviewRepository) GetByUserID(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Update updates an existing review in the database
func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete soft deletes a review by its ID
func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

// Count returns the total number of reviews
func (r *reviewRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

// CountByPlanID returns the number of reviews for a plan
func (r *reviewRepository) CountByPlanID(planID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Where("plan_id = ?", planID).Count(&count).Error
	return count, err
}

// AvgRatingByPlanID returns the average rating of a plan, 0 when unreviewed
func (r *reviewRepository) AvgRatingByPlanID(planID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).Where("plan_id = ?", planID).
		Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// HasUserReviewed checks whether a user already reviewed a plan
func (r *reviewRepository) HasUserReviewed(userID, planID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND plan_id = ?", userID, planID).Count(&count).Error
	return count > 0, err
}
