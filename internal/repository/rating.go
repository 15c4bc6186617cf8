package repository

import (
	"data-collector-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RatingRepository handles database operations for ratings
type RatingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new rating repository
func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Create creates a new rating
func (r *RatingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetByID retrieves a rating by ID
func (r *RatingRepository) GetByID(id uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByMemberAndProject retrieves the rating for a (team member, project) pair
func (r *RatingRepository) GetByMemberAndProject(memberID, projectID uuid.UUID) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.First(&rating, "team_member_id = ? AND project_id = ?", memberID, projectID).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// List retrieves ratings with optional team member and project filters
func (r *RatingRepository) List(memberID, projectID *uuid.UUID) ([]models.Rating, error) {
	var ratings []models.Rating

	query := r.db.Model(&models.Rating{})
	if memberID != nil {
		query = query.Where("team_member_id = ?", *memberID)
	}
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	err := query.Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}

	return ratings, nil
}

// Update updates a rating
func (r *RatingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// Delete deletes a rating
func (r *RatingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Rating{}, "id = ?", id).Error
}
