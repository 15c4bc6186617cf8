package service

import (
	"fmt"
	"time"

	"data-collector-backend/internal/database/models"
	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RatingService handles business logic for project ratings
type RatingService struct {
	ratingRepo  repository.RatingRepositoryInterface
	memberRepo  repository.TeamMemberRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewRatingService creates a new rating service
func NewRatingService(ratingRepo repository.RatingRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		memberRepo:  memberRepo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// CreateRatingRequest represents the data needed to create a rating
type CreateRatingRequest struct {
	TeamMemberID uuid.UUID `json:"team_member_id" validate:"required"`
	ProjectID    uuid.UUID `json:"project_id" validate:"required"`
	Score        *int      `json:"score" validate:"omitempty,min=1,max=5"`
	Feedback     string    `json:"feedback"`
	RatedBy      string    `json:"rated_by" validate:"max=100"`
}

// UpdateRatingRequest represents the data needed to update a rating
type UpdateRatingRequest struct {
	Score    *int    `json:"score" validate:"omitempty,min=1,max=5"`
	Feedback *string `json:"feedback"`
	RatedBy  *string `json:"rated_by" validate:"omitempty,max=100"`
}

// RatingResponse represents the response data for a rating
type RatingResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamMemberID uuid.UUID `json:"team_member_id"`
	ProjectID    uuid.UUID `json:"project_id"`
	Score        *int      `json:"score"`
	Feedback     string    `json:"feedback"`
	RatedBy      string    `json:"rated_by"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// CreateRating creates a new rating. At most one rating may exist per
// (team member, project) pair.
func (s *RatingService) CreateRating(req *CreateRatingRequest) (*RatingResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	// Both referenced entities must exist
	if _, err := s.memberRepo.GetByID(req.TeamMemberID); err != nil {
		return nil, apperrors.ErrTeamMemberNotFound
	}
	if _, err := s.projectRepo.GetByID(req.ProjectID); err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	// Reject a second rating for the same pair
	if _, err := s.ratingRepo.GetByMemberAndProject(req.TeamMemberID, req.ProjectID); err == nil {
		return nil, apperrors.ErrRatingExists
	}

	rating := &models.Rating{
		TeamMemberID: req.TeamMemberID,
		ProjectID:    req.ProjectID,
		Score:        req.Score,
		Feedback:     req.Feedback,
		RatedBy:      req.RatedBy,
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return s.convertToResponse(rating), nil
}

// GetRatingByID retrieves a rating by ID
func (s *RatingService) GetRatingByID(id uuid.UUID) (*RatingResponse, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRatingNotFound
	}

	return s.convertToResponse(rating), nil
}

// ListRatings retrieves ratings with optional team member and project filters
func (s *RatingService) ListRatings(memberID, projectID *uuid.UUID) ([]RatingResponse, error) {
	ratings, err := s.ratingRepo.List(memberID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	responses := make([]RatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = *s.convertToResponse(&rating)
	}

	return responses, nil
}

// UpdateRating updates an existing rating's score, feedback, or rater
func (s *RatingService) UpdateRating(id uuid.UUID, req *UpdateRatingRequest) (*RatingResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrRatingNotFound
	}

	if req.Score != nil {
		rating.Score = req.Score
	}
	if req.Feedback != nil {
		rating.Feedback = *req.Feedback
	}
	if req.RatedBy != nil {
		rating.RatedBy = *req.RatedBy
	}

	if err := s.ratingRepo.Update(rating); err != nil {
		return nil, fmt.Errorf("failed to update rating: %w", err)
	}

	return s.convertToResponse(rating), nil
}

// DeleteRating deletes a rating
func (s *RatingService) DeleteRating(id uuid.UUID) error {
	if _, err := s.ratingRepo.GetByID(id); err != nil {
		return apperrors.ErrRatingNotFound
	}

	return s.ratingRepo.Delete(id)
}

func (s *RatingService) convertToResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:           rating.ID,
		TeamMemberID: rating.TeamMemberID,
		ProjectID:    rating.ProjectID,
		Score:        rating.Score,
		Feedback:     rating.Feedback,
		RatedBy:      rating.RatedBy,
		CreatedAt:    rating.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rating.UpdatedAt.Format(time.RFC3339),
	}
}
