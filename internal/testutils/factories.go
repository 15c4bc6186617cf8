package testutils

import (
	"fmt"
	"time"

	"data-collector-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	id := uuid.New()
	// Generate a unique VE code from part of the UUID to avoid conflicts
	veCode := "VE" + id.String()[:6]

	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		VECode:           veCode,
		Name:             "Jane Collector",
		Role:             models.RoleDataCollector,
		ExperienceLevel:  models.ExperienceRegular,
		PerformanceScore: 75,
		RotationRank:     1,
		Status:           models.StatusAvailable,
		ProjectsCount:    0,
	}
}

// WithVECode sets a custom VE code for the team member
func (f *TeamMemberFactory) WithVECode(code string) *models.TeamMember {
	member := f.Create()
	member.VECode = code
	return member
}

// WithRole sets a custom role for the team member
func (f *TeamMemberFactory) WithRole(role models.TeamMemberRole) *models.TeamMember {
	member := f.Create()
	member.Role = role
	if role == models.RoleSupervisor {
		member.ExperienceLevel = models.ExperienceSupervisor
	}
	return member
}

// WithStatus sets a custom status for the team member
func (f *TeamMemberFactory) WithStatus(status models.TeamMemberStatus) *models.TeamMember {
	member := f.Create()
	member.Status = status
	return member
}

// WithRotation sets the rotation rank and performance score together, since
// assignment ordering depends on the pair
func (f *TeamMemberFactory) WithRotation(rank, score int) *models.TeamMember {
	member := f.Create()
	member.RotationRank = rank
	member.PerformanceScore = score
	return member
}

// CreateBatch creates n team members with increasing rotation ranks
func (f *TeamMemberFactory) CreateBatch(n int) []*models.TeamMember {
	members := make([]*models.TeamMember, 0, n)
	for i := 0; i < n; i++ {
		member := f.Create()
		member.Name = fmt.Sprintf("Collector %d", i+1)
		member.RotationRank = i + 1
		members = append(members, member)
	}
	return members
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	start := time.Now().AddDate(0, 0, -7).Truncate(24 * time.Hour)
	end := start.AddDate(0, 1, 0)

	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                 "Household Survey " + uuid.NewString()[:6],
		ScrumMaster:          "Alex Lead",
		StartDate:            &start,
		EndDate:              &end,
		Status:               models.ProjectStatusActive,
		NumCollectorsNeeded:  2,
		NumSupervisorsNeeded: 1,
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithDates sets custom start and end dates for the project
func (f *ProjectFactory) WithDates(start, end time.Time) *models.Project {
	project := f.Create()
	project.StartDate = &start
	project.EndDate = &end
	return project
}

// WithHeadcount sets the collector and supervisor targets for the project
func (f *ProjectFactory) WithHeadcount(collectors, supervisors int) *models.Project {
	project := f.Create()
	project.NumCollectorsNeeded = collectors
	project.NumSupervisorsNeeded = supervisors
	return project
}

// FactorySet provides access to all factories
type FactorySet struct {
	TeamMember *TeamMemberFactory
	Project    *ProjectFactory
	Rating     *RatingFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TeamMember: NewTeamMemberFactory(),
		Project:    NewProjectFactory(),
		Rating:     NewRatingFactory(),
	}
}

// RatingFactory provides methods to create test Rating data
type RatingFactory struct{}

// NewRatingFactory creates a new RatingFactory
func NewRatingFactory() *RatingFactory {
	return &RatingFactory{}
}

// Create creates a test Rating linking the given member and project
func (f *RatingFactory) Create(memberID, projectID uuid.UUID) *models.Rating {
	score := 4
	return &models.Rating{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamMemberID: memberID,
		ProjectID:    projectID,
		Score:        &score,
		Feedback:     "Solid fieldwork",
		RatedBy:      "Field Coordinator",
	}
}

// WithScore sets a custom score for the rating
func (f *RatingFactory) WithScore(memberID, projectID uuid.UUID, score int) *models.Rating {
	rating := f.Create(memberID, projectID)
	rating.Score = &score
	return rating
}
