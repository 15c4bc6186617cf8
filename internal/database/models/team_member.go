package models

// TeamMember represents a field staff record (data collector or supervisor)
type TeamMember struct {
	BaseModel
	VECode           string           `json:"ve_code" gorm:"uniqueIndex;not null;size:10" validate:"required,max=10"`
	Name             string           `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Role             TeamMemberRole   `json:"role" gorm:"type:varchar(20);not null" validate:"required"`
	ExperienceLevel  ExperienceLevel  `json:"experience_level" gorm:"type:varchar(50);not null" validate:"required"`
	PerformanceScore int              `json:"performance_score" gorm:"not null" validate:"min=0,max=100"`
	RotationRank     int              `json:"rotation_rank" gorm:"not null" validate:"min=1"`
	Status           TeamMemberStatus `json:"status" gorm:"type:varchar(20);not null;default:'available'"`

	// ProjectsCount is a denormalized counter of projects ever joined. It is
	// incremented on assignment and recomputed (clamped at zero) on
	// unassignment, so it can exceed the live size of the Projects relation.
	ProjectsCount int `json:"projects_count" gorm:"not null;default:0"`

	// Relationships
	Projects []Project `json:"projects,omitempty" gorm:"many2many:project_assignments;constraint:OnDelete:CASCADE"`
	Ratings  []Rating  `json:"ratings,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// AssignedProjectNames returns the names of all projects in the loaded relation
func (m *TeamMember) AssignedProjectNames() []string {
	names := make([]string, 0, len(m.Projects))
	for _, p := range m.Projects {
		names = append(names, p.Name)
	}
	return names
}

// ActiveProjectsCount returns how many loaded projects carry the active status
func (m *TeamMember) ActiveProjectsCount() int {
	count := 0
	for _, p := range m.Projects {
		if p.Status == ProjectStatusActive {
			count++
		}
	}
	return count
}

// AverageRating returns the mean of all loaded ratings with a score, or nil when none
func (m *TeamMember) AverageRating() *float64 {
	sum, n := 0, 0
	for _, r := range m.Ratings {
		if r.Score != nil {
			sum += *r.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}
