package repository

import (
	"data-collector-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects and assignments
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByName retrieves a project by its exact name
func (r *ProjectRepository) GetByName(name string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByNameWithMembers retrieves a project with its team members preloaded
func (r *ProjectRepository) GetByNameWithMembers(name string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("TeamMembers").First(&project, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAllWithMembers retrieves all projects with their team members preloaded
func (r *ProjectRepository) GetAllWithMembers() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Preload("TeamMembers").Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListEligibleMembers retrieves every team member not linked to the given
// project, in selection priority order: rotation rank ascending, then
// performance score descending, then persisted row order.
func (r *ProjectRepository) ListEligibleMembers(projectID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember

	linked := r.db.Table("project_assignments").
		Select("team_member_id").
		Where("project_id = ?", projectID)

	err := r.db.Where("id NOT IN (?)", linked).
		Order("rotation_rank ASC").
		Order("performance_score DESC").
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}

	return members, nil
}

// ApplyAssignment persists a project upsert together with all member
// mutations (link, counter increment, deployed status) in one transaction.
func (r *ProjectRepository) ApplyAssignment(project *models.Project, members []*models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("TeamMembers", "Ratings").Save(project).Error; err != nil {
			return err
		}

		for _, member := range members {
			if err := tx.Model(project).Association("TeamMembers").Append(member); err != nil {
				return err
			}
			member.ProjectsCount++
			member.Status = models.StatusDeployed
			err := tx.Model(&models.TeamMember{}).
				Where("id = ?", member.ID).
				Updates(map[string]interface{}{
					"projects_count": member.ProjectsCount,
					"status":         member.Status,
				}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteWithUnassignment unlinks every member from the project, recomputes
// their counters and status, and deletes the project row, all in one
// transaction. Ratings referencing the project are removed by the foreign key
// cascade. The returned members carry their post-removal project list.
func (r *ProjectRepository) DeleteWithUnassignment(project *models.Project) ([]models.TeamMember, error) {
	var updated []models.TeamMember

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var members []models.TeamMember
		if err := tx.Model(project).Association("TeamMembers").Find(&members); err != nil {
			return err
		}

		for i := range members {
			member := &members[i]

			if err := tx.Model(member).Association("Projects").Delete(project); err != nil {
				return err
			}

			var remaining []models.Project
			if err := tx.Model(member).Association("Projects").Find(&remaining); err != nil {
				return err
			}

			count := len(remaining)
			if count < 0 {
				count = 0
			}
			status := models.StatusDeployed
			if count == 0 {
				status = models.StatusAvailable
			}

			err := tx.Model(&models.TeamMember{}).
				Where("id = ?", member.ID).
				Updates(map[string]interface{}{
					"projects_count": count,
					"status":         status,
				}).Error
			if err != nil {
				return err
			}

			member.Projects = remaining
			member.ProjectsCount = count
			member.Status = status
		}

		if err := tx.Delete(project).Error; err != nil {
			return err
		}

		updated = members
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
