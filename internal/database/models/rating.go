package models

import (
	"github.com/google/uuid"
)

// Rating represents one team member's evaluation on one project. At most one
// rating exists per (team member, project) pair.
type Rating struct {
	BaseModel
	TeamMemberID uuid.UUID `json:"team_member_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_member_project" validate:"required"`
	ProjectID    uuid.UUID `json:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_ratings_member_project" validate:"required"`
	Score        *int      `json:"score" validate:"omitempty,min=1,max=5"`
	Feedback     string    `json:"feedback" gorm:"type:text"`
	RatedBy      string    `json:"rated_by" gorm:"size:100" validate:"max=100"`

	// Relationships
	TeamMember TeamMember `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
	Project    Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rating
func (Rating) TableName() string {
	return "ratings"
}
