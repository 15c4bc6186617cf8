package repository

import (
	"data-collector-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByIDWithRelations(id uuid.UUID) (*models.TeamMember, error)
	GetByVECode(code string) (*models.TeamMember, error)
	List(status string, unassigned bool) ([]models.TeamMember, error)
	Update(member *models.TeamMember) error
	Delete(id uuid.UUID) error
	CountByStatus(status models.TeamMemberStatus) (int64, error)
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
	GetByNameWithMembers(name string) (*models.Project, error)
	GetAllWithMembers() ([]models.Project, error)
	ListEligibleMembers(projectID uuid.UUID) ([]models.TeamMember, error)
	ApplyAssignment(project *models.Project, members []*models.TeamMember) error
	DeleteWithUnassignment(project *models.Project) ([]models.TeamMember, error)
}

// RatingRepositoryInterface defines the interface for rating repository operations
type RatingRepositoryInterface interface {
	Create(rating *models.Rating) error
	GetByID(id uuid.UUID) (*models.Rating, error)
	GetByMemberAndProject(memberID, projectID uuid.UUID) (*models.Rating, error)
	List(memberID, projectID *uuid.UUID) ([]models.Rating, error)
	Update(rating *models.Rating) error
	Delete(id uuid.UUID) error
}
