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

// TeamMemberService handles business logic for team members
type TeamMemberService struct {
	repo      repository.TeamMemberRepositoryInterface
	validator *validator.Validate
}

// NewTeamMemberService creates a new team member service
func NewTeamMemberService(repo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *TeamMemberService {
	return &TeamMemberService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamMemberRequest represents the data needed to create a team member
type CreateTeamMemberRequest struct {
	VECode           string  `json:"ve_code" validate:"required,max=10"`
	Name             string  `json:"name" validate:"required,max=255"`
	Role             string  `json:"role" validate:"required"`
	ExperienceLevel  string  `json:"experience_level" validate:"required"`
	PerformanceScore *int    `json:"performance_score" validate:"required,min=0,max=100"`
	RotationRank     *int    `json:"rotation_rank" validate:"required,min=1"`
	Status           *string `json:"status"` // Optional: defaults to "available" if not provided
}

// UpdateTeamMemberRequest represents the data needed to partially update a team member
type UpdateTeamMemberRequest struct {
	VECode           *string `json:"ve_code" validate:"omitempty,max=10"`
	Name             *string `json:"name" validate:"omitempty,max=255"`
	Role             *string `json:"role"`
	ExperienceLevel  *string `json:"experience_level"`
	PerformanceScore *int    `json:"performance_score" validate:"omitempty,min=0,max=100"`
	RotationRank     *int    `json:"rotation_rank" validate:"omitempty,min=1"`
	Status           *string `json:"status"`
}

// TeamMemberResponse represents the response data for a team member
type TeamMemberResponse struct {
	ID                    uuid.UUID `json:"id"`
	VECode                string    `json:"ve_code"`
	Name                  string    `json:"name"`
	Role                  string    `json:"role"`
	ExperienceLevel       string    `json:"experience_level"`
	PerformanceScore      int       `json:"performance_score"`
	RotationRank          int       `json:"rotation_rank"`
	Status                string    `json:"status"`
	ProjectsCount         int       `json:"projects_count"`
	AssignedProjects      []string  `json:"assigned_projects"`
	CurrentProject        string    `json:"current_project"`
	AssignedProjectsCount int       `json:"assigned_projects_count"`
	ActiveProjectsCount   int       `json:"active_projects_count"`
	AverageRating         *float64  `json:"average_rating"`
	CreatedAt             string    `json:"created_at"`
	UpdatedAt             string    `json:"updated_at"`
}

// CreateTeamMember creates a new team member
func (s *TeamMemberService) CreateTeamMember(req *CreateTeamMemberRequest) (*TeamMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validateEnums(req.Role, req.ExperienceLevel, req.Status); err != nil {
		return nil, err
	}

	// Check if VE code already exists
	if _, err := s.repo.GetByVECode(req.VECode); err == nil {
		return nil, apperrors.ErrTeamMemberExists
	}

	// Set default status
	status := models.StatusAvailable
	if req.Status != nil {
		status = models.TeamMemberStatus(*req.Status)
	}

	member := &models.TeamMember{
		VECode:           req.VECode,
		Name:             req.Name,
		Role:             models.TeamMemberRole(req.Role),
		ExperienceLevel:  models.ExperienceLevel(req.ExperienceLevel),
		PerformanceScore: *req.PerformanceScore,
		RotationRank:     *req.RotationRank,
		Status:           status,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// GetTeamMemberByID retrieves a team member by ID with project enrichment
func (s *TeamMemberService) GetTeamMemberByID(id uuid.UUID) (*TeamMemberResponse, error) {
	member, err := s.repo.GetByIDWithRelations(id)
	if err != nil {
		return nil, apperrors.ErrTeamMemberNotFound
	}

	return s.convertToResponse(member), nil
}

// ListTeamMembers retrieves team members with optional status and unassigned filters
func (s *TeamMemberService) ListTeamMembers(status string, unassigned bool) ([]TeamMemberResponse, error) {
	members, err := s.repo.List(status, unassigned)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i, member := range members {
		responses[i] = *s.convertToResponse(&member)
	}

	return responses, nil
}

// UpdateTeamMember partially updates an existing team member
func (s *TeamMemberService) UpdateTeamMember(id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := validateEnums(deref(req.Role), deref(req.ExperienceLevel), req.Status); err != nil {
		return nil, err
	}

	member, err := s.repo.GetByIDWithRelations(id)
	if err != nil {
		return nil, apperrors.ErrTeamMemberNotFound
	}

	// Check VE code uniqueness if it is being changed
	if req.VECode != nil && *req.VECode != member.VECode {
		if _, err := s.repo.GetByVECode(*req.VECode); err == nil {
			return nil, apperrors.ErrTeamMemberExists
		}
		member.VECode = *req.VECode
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = models.TeamMemberRole(*req.Role)
	}
	if req.ExperienceLevel != nil {
		member.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.PerformanceScore != nil {
		member.PerformanceScore = *req.PerformanceScore
	}
	if req.RotationRank != nil {
		member.RotationRank = *req.RotationRank
	}
	if req.Status != nil {
		member.Status = models.TeamMemberStatus(*req.Status)
	}

	if err := s.repo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	return s.convertToResponse(member), nil
}

// DeleteTeamMember deletes a team member
func (s *TeamMemberService) DeleteTeamMember(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return apperrors.ErrTeamMemberNotFound
	}

	return s.repo.Delete(id)
}

func (s *TeamMemberService) convertToResponse(member *models.TeamMember) *TeamMemberResponse {
	assigned := member.AssignedProjectNames()
	current := ""
	if len(assigned) > 0 {
		current = assigned[0]
	}

	return &TeamMemberResponse{
		ID:                    member.ID,
		VECode:                member.VECode,
		Name:                  member.Name,
		Role:                  string(member.Role),
		ExperienceLevel:       string(member.ExperienceLevel),
		PerformanceScore:      member.PerformanceScore,
		RotationRank:          member.RotationRank,
		Status:                string(member.Status),
		ProjectsCount:         member.ProjectsCount,
		AssignedProjects:      assigned,
		CurrentProject:        current,
		AssignedProjectsCount: len(assigned),
		ActiveProjectsCount:   member.ActiveProjectsCount(),
		AverageRating:         member.AverageRating(),
		CreatedAt:             member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             member.UpdatedAt.Format(time.RFC3339),
	}
}

// validateEnums rejects role, experience level, and status values outside the
// model enums. Empty strings mean "not provided" and pass.
func validateEnums(role, experience string, status *string) error {
	if role != "" && !models.TeamMemberRole(role).IsValid() {
		return &apperrors.ValidationError{Field: "role", Message: "must be one of: supervisor, data_collector"}
	}
	if experience != "" && !models.ExperienceLevel(experience).IsValid() {
		return &apperrors.ValidationError{Field: "experience_level", Message: "invalid experience level"}
	}
	if status != nil && !models.TeamMemberStatus(*status).IsValid() {
		return &apperrors.ValidationError{Field: "status", Message: "must be one of: available, deployed, inactive"}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
