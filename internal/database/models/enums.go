package models

// TeamMemberRole represents the field role of a team member
type TeamMemberRole string

const (
	RoleSupervisor    TeamMemberRole = "supervisor"
	RoleDataCollector TeamMemberRole = "data_collector"
)

// IsValid checks if the TeamMemberRole is valid
func (r TeamMemberRole) IsValid() bool {
	switch r {
	case RoleSupervisor, RoleDataCollector:
		return true
	}
	return false
}

// TeamMemberStatus represents the deployment status of a team member
type TeamMemberStatus string

const (
	StatusAvailable TeamMemberStatus = "available"
	StatusDeployed  TeamMemberStatus = "deployed"
	StatusInactive  TeamMemberStatus = "inactive"
)

// IsValid checks if the TeamMemberStatus is valid
func (s TeamMemberStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusDeployed, StatusInactive:
		return true
	}
	return false
}

// ExperienceLevel represents the field-experience category of a team member
type ExperienceLevel string

const (
	ExperienceFoa           ExperienceLevel = "Foa"
	ExperienceSupervisor    ExperienceLevel = "Supervisor"
	ExperienceBackchecker   ExperienceLevel = "Backchecker"
	ExperienceRegular       ExperienceLevel = "Regular"
	ExperienceNewEnumerator ExperienceLevel = "New Enumerator"
)

// IsValid checks if the ExperienceLevel is valid
func (e ExperienceLevel) IsValid() bool {
	switch e {
	case ExperienceFoa, ExperienceSupervisor, ExperienceBackchecker, ExperienceRegular, ExperienceNewEnumerator:
		return true
	}
	return false
}

// ProjectStatus represents the status of a staffing project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusFinalised ProjectStatus = "finalised"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusUpcoming, ProjectStatusCompleted,
		ProjectStatusOnHold, ProjectStatusPlanning, ProjectStatusFinalised:
		return true
	}
	return false
}
