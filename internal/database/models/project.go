package models

import (
	"time"
)

// Project represents a staffing engagement that team members are assigned to
type Project struct {
	BaseModel
	Name                 string        `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,max=255"`
	ScrumMaster          string        `json:"scrum_master" gorm:"size:100" validate:"max=100"`
	StartDate            *time.Time    `json:"start_date,omitempty" gorm:"type:date"`
	EndDate              *time.Time    `json:"end_date,omitempty" gorm:"type:date"`
	Status               ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'planning'"`
	NumCollectorsNeeded  int           `json:"num_collectors_needed" gorm:"not null;default:0" validate:"min=0"`
	NumSupervisorsNeeded int           `json:"num_supervisors_needed" gorm:"not null;default:0" validate:"min=0"`

	// Relationships
	TeamMembers []TeamMember `json:"team_members,omitempty" gorm:"many2many:project_assignments;constraint:OnDelete:CASCADE"`
	Ratings     []Rating     `json:"ratings,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// DurationDays returns the project duration in days, or nil when either date is missing
func (p *Project) DurationDays() *int {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}
	days := int(p.EndDate.Sub(*p.StartDate).Hours() / 24)
	return &days
}

// TotalMembersNeeded returns the combined collector and supervisor targets
func (p *Project) TotalMembersNeeded() int {
	return p.NumCollectorsNeeded + p.NumSupervisorsNeeded
}

// IsFullyStaffed reports whether the current assignment count meets the target.
// Staffing can exceed the target; there is no invariant capping it.
func (p *Project) IsFullyStaffed() bool {
	return len(p.TeamMembers) >= p.TotalMembersNeeded()
}

// DerivedStatus computes the date-derived status for the given day. The stored
// Status column is written at create/upsert time and never recomputed, so the
// two can drift apart.
func (p *Project) DerivedStatus(today time.Time) ProjectStatus {
	day := today.Truncate(24 * time.Hour)
	if p.StartDate == nil || p.EndDate == nil {
		return ProjectStatusPlanning
	}
	switch {
	case day.Before(*p.StartDate):
		return ProjectStatusUpcoming
	case day.After(*p.EndDate):
		return ProjectStatusCompleted
	default:
		return ProjectStatusActive
	}
}
