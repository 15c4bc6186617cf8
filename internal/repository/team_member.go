package repository

import (
	"data-collector-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create creates a new team member
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByIDWithRelations retrieves a team member with projects and ratings preloaded
func (r *TeamMemberRepository) GetByIDWithRelations(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.Preload("Projects").Preload("Ratings").First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByVECode retrieves a team member by their unique VE code
func (r *TeamMemberRepository) GetByVECode(code string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "ve_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// List retrieves team members with optional status and unassigned filters.
// Projects and ratings are preloaded for response enrichment.
func (r *TeamMemberRepository) List(status string, unassigned bool) ([]models.TeamMember, error) {
	var members []models.TeamMember

	query := r.db.Preload("Projects").Preload("Ratings")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if unassigned {
		assigned := r.db.Table("project_assignments").Select("team_member_id")
		query = query.Where("id NOT IN (?)", assigned)
	}

	err := query.Order("created_at ASC").Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// Update updates a team member
func (r *TeamMemberRepository) Update(member *models.TeamMember) error {
	return r.db.Save(member).Error
}

// Delete deletes a team member, unlinking its projects. Ratings are removed
// by the foreign key cascade.
func (r *TeamMemberRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		member := models.TeamMember{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&member).Association("Projects").Clear(); err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})
}

// CountByStatus counts team members with the given status system-wide
func (r *TeamMemberRepository) CountByStatus(status models.TeamMemberStatus) (int64, error) {
	var total int64
	err := r.db.Model(&models.TeamMember{}).Where("status = ?", status).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
