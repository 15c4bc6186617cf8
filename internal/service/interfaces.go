package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamMemberServiceInterface defines the interface for team member service
type TeamMemberServiceInterface interface {
	CreateTeamMember(req *CreateTeamMemberRequest) (*TeamMemberResponse, error)
	GetTeamMemberByID(id uuid.UUID) (*TeamMemberResponse, error)
	ListTeamMembers(status string, unassigned bool) ([]TeamMemberResponse, error)
	UpdateTeamMember(id uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	DeleteTeamMember(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project assignment service
type ProjectServiceInterface interface {
	AssignProject(req *AssignProjectRequest) (*AssignProjectResponse, error)
	GetStaffingSnapshot() (*StaffingSnapshotResponse, error)
	DeleteProject(req *DeleteProjectRequest) (*DeleteProjectResponse, error)
}

// RatingServiceInterface defines the interface for rating service
type RatingServiceInterface interface {
	CreateRating(req *CreateRatingRequest) (*RatingResponse, error)
	GetRatingByID(id uuid.UUID) (*RatingResponse, error)
	ListRatings(memberID, projectID *uuid.UUID) ([]RatingResponse, error)
	UpdateRating(id uuid.UUID, req *UpdateRatingRequest) (*RatingResponse, error)
	DeleteRating(id uuid.UUID) error
}
