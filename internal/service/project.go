package service

import (
	"fmt"
	"time"

	"data-collector-backend/internal/database/models"
	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/logger"
	"data-collector-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ProjectService handles project upsert, staff assignment, staffing snapshots
// and cascading project deletion.
type ProjectService struct {
	projectRepo repository.ProjectRepositoryInterface
	memberRepo  repository.TeamMemberRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repository.ProjectRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		validator:   validator,
		log:         logger.New(),
	}
}

// AssignProjectRequest represents the assignment request body
type AssignProjectRequest struct {
	ProjectName    string `json:"projectName"`
	NumCollectors  int    `json:"numCollectors"`
	NumSupervisors int    `json:"numSupervisors"`
	ScrumMaster    string `json:"name"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

// ProjectDetails describes a project's stored and derived fields in responses
type ProjectDetails struct {
	Name                   string `json:"name"`
	ScrumMaster            string `json:"scrum_master"`
	StartDate              string `json:"start_date"`
	EndDate                string `json:"end_date"`
	DurationDays           *int   `json:"duration_days"`
	Status                 string `json:"status"`
	NumCollectorsNeeded    int    `json:"num_collectors_needed"`
	NumSupervisorsNeeded   int    `json:"num_supervisors_needed"`
	NumCollectorsAssigned  int    `json:"num_collectors_assigned"`
	NumSupervisorsAssigned int    `json:"num_supervisors_assigned"`
}

// AssignedCollectorSnapshot captures a collector at the moment of assignment,
// including the status it held before the routine flipped it to deployed
type AssignedCollectorSnapshot struct {
	Name             string `json:"name"`
	RotationRank     int    `json:"rotation_rank"`
	PerformanceScore int    `json:"performance_score"`
	PreviousStatus   string `json:"previous_status"`
	Role             string `json:"role"`
}

// AssignedSupervisorSnapshot captures a supervisor at the moment of assignment
type AssignedSupervisorSnapshot struct {
	Name             string `json:"name"`
	RotationRank     int    `json:"rotation_rank"`
	PerformanceScore int    `json:"performance_score"`
	Role             string `json:"role"`
}

// AssignProjectResponse represents the assignment summary
type AssignProjectResponse struct {
	Message             string                       `json:"message"`
	ProjectDetails      ProjectDetails               `json:"project_details"`
	AssignedCollectors  []AssignedCollectorSnapshot  `json:"assigned_collectors"`
	AssignedSupervisors []AssignedSupervisorSnapshot `json:"assigned_supervisors"`
}

// AssignProject upserts the named project and runs the selection-and-assignment
// routine for collectors and supervisors. The whole select-and-persist sequence
// runs in a single transaction; a shortfall against the requested counts is not
// an error.
func (s *ProjectService) AssignProject(req *AssignProjectRequest) (*AssignProjectResponse, error) {
	if req.ProjectName == "" || req.ScrumMaster == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, &apperrors.ValidationError{Message: "Missing data. Please provide project name, scrum master, and dates."}
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, &apperrors.ValidationError{Message: "Invalid date format. Please use YYYY-MM-DD."}
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, &apperrors.ValidationError{Message: "Invalid date format. Please use YYYY-MM-DD."}
	}
	if !endDate.After(startDate) {
		return nil, &apperrors.ValidationError{Message: "End date must be after start date."}
	}

	numCollectors := req.NumCollectors
	if numCollectors < 0 {
		numCollectors = 0
	}
	numSupervisors := req.NumSupervisors
	if numSupervisors < 0 {
		numSupervisors = 0
	}

	// Upsert: overwrite scrum master, dates, and targets on an existing
	// project; re-running with different numbers silently changes them.
	project, err := s.projectRepo.GetByName(req.ProjectName)
	if err != nil {
		project = &models.Project{Name: req.ProjectName}
	}
	project.ScrumMaster = req.ScrumMaster
	project.StartDate = &startDate
	project.EndDate = &endDate
	project.NumCollectorsNeeded = numCollectors
	project.NumSupervisorsNeeded = numSupervisors
	project.Status = project.DerivedStatus(time.Now())

	// For a fresh project the zero UUID matches no assignment rows, so the
	// eligible pool is every team member.
	eligible, err := s.projectRepo.ListEligibleMembers(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible members: %w", err)
	}

	var collectors, supervisors []*models.TeamMember
	if numCollectors > 0 {
		availableTotal, err := s.memberRepo.CountByStatus(models.StatusAvailable)
		if err != nil {
			return nil, fmt.Errorf("failed to count available members: %w", err)
		}
		collectors = selectCollectors(eligible, numCollectors, availableTotal)
	}
	if numSupervisors > 0 {
		supervisors = selectSupervisors(eligible, numSupervisors, collectors)
	}

	if len(collectors) < numCollectors {
		s.log.WithField("project", project.Name).
			Warnf("collector shortfall: requested %d, selected %d", numCollectors, len(collectors))
	}
	if len(supervisors) < numSupervisors {
		s.log.WithField("project", project.Name).
			Warnf("supervisor shortfall: requested %d, selected %d", numSupervisors, len(supervisors))
	}

	collectorSnapshots := make([]AssignedCollectorSnapshot, len(collectors))
	for i, m := range collectors {
		collectorSnapshots[i] = AssignedCollectorSnapshot{
			Name:             m.Name,
			RotationRank:     m.RotationRank,
			PerformanceScore: m.PerformanceScore,
			PreviousStatus:   string(m.Status),
			Role:             string(m.Role),
		}
	}
	supervisorSnapshots := make([]AssignedSupervisorSnapshot, len(supervisors))
	for i, m := range supervisors {
		supervisorSnapshots[i] = AssignedSupervisorSnapshot{
			Name:             m.Name,
			RotationRank:     m.RotationRank,
			PerformanceScore: m.PerformanceScore,
			Role:             string(m.Role),
		}
	}

	assigned := make([]*models.TeamMember, 0, len(collectors)+len(supervisors))
	assigned = append(assigned, collectors...)
	assigned = append(assigned, supervisors...)

	if err := s.projectRepo.ApplyAssignment(project, assigned); err != nil {
		return nil, fmt.Errorf("failed to persist assignment: %w", err)
	}

	return &AssignProjectResponse{
		Message: fmt.Sprintf("%d data collectors and %d supervisors assigned to project %s.",
			len(collectors), len(supervisors), project.Name),
		ProjectDetails: ProjectDetails{
			Name:                   project.Name,
			ScrumMaster:            project.ScrumMaster,
			StartDate:              req.StartDate,
			EndDate:                req.EndDate,
			DurationDays:           project.DurationDays(),
			Status:                 string(project.Status),
			NumCollectorsNeeded:    numCollectors,
			NumSupervisorsNeeded:   numSupervisors,
			NumCollectorsAssigned:  len(collectors),
			NumSupervisorsAssigned: len(supervisors),
		},
		AssignedCollectors:  collectorSnapshots,
		AssignedSupervisors: supervisorSnapshots,
	}, nil
}

// selectCollectors applies the tiered collector selection policy over the
// eligible pool, which is already ordered by rotation rank then score:
// available members first; when short and nobody is available system-wide,
// anyone eligible; when short but some members are free elsewhere, only
// non-available eligible members fill the remainder.
func selectCollectors(eligible []models.TeamMember, need int, availableTotal int64) []*models.TeamMember {
	selected := make([]*models.TeamMember, 0, need)
	picked := make(map[uuid.UUID]bool)

	for i := range eligible {
		if len(selected) >= need {
			break
		}
		if eligible[i].Status == models.StatusAvailable {
			selected = append(selected, &eligible[i])
			picked[eligible[i].ID] = true
		}
	}

	if len(selected) < need {
		if availableTotal == 0 {
			for i := range eligible {
				if len(selected) >= need {
					break
				}
				if !picked[eligible[i].ID] {
					selected = append(selected, &eligible[i])
					picked[eligible[i].ID] = true
				}
			}
		} else {
			for i := range eligible {
				if len(selected) >= need {
					break
				}
				if eligible[i].Status != models.StatusAvailable && !picked[eligible[i].ID] {
					selected = append(selected, &eligible[i])
					picked[eligible[i].ID] = true
				}
			}
		}
	}

	return selected
}

// selectSupervisors picks available eligible members not already taken as
// collectors, in the same priority order, with no fallback tiers.
func selectSupervisors(eligible []models.TeamMember, need int, collectors []*models.TeamMember) []*models.TeamMember {
	taken := make(map[uuid.UUID]bool, len(collectors))
	for _, c := range collectors {
		taken[c.ID] = true
	}

	selected := make([]*models.TeamMember, 0, need)
	for i := range eligible {
		if len(selected) >= need {
			break
		}
		if eligible[i].Status == models.StatusAvailable && !taken[eligible[i].ID] {
			selected = append(selected, &eligible[i])
		}
	}

	return selected
}

// ProjectInfo describes one project in the staffing snapshot
type ProjectInfo struct {
	Name                 string  `json:"name"`
	ScrumMaster          string  `json:"scrum_master"`
	StartDate            *string `json:"start_date"`
	EndDate              *string `json:"end_date"`
	DurationDays         *int    `json:"duration_days"`
	Status               string  `json:"status"`
	TotalCollectors      int     `json:"total_collectors"`
	TotalSupervisors     int     `json:"total_supervisors"`
	CollectorsNeeded     int     `json:"collectors_needed"`
	SupervisorsNeeded    int     `json:"supervisors_needed"`
	TotalMembersNeeded   int     `json:"total_members_needed"`
	AssignedMembersCount int     `json:"assigned_members_count"`
	FullyStaffed         bool    `json:"fully_staffed"`
}

// MemberSnapshot describes one assigned member in the staffing snapshot
type MemberSnapshot struct {
	Name             string `json:"name"`
	ExperienceLevel  string `json:"experience_level"`
	PerformanceScore int    `json:"performance_score"`
	RotationRank     int    `json:"rotation_rank"`
	Role             string `json:"role"`
	Status           string `json:"status"`
}

// ProjectStaffing pairs project info with its members partitioned by role
type ProjectStaffing struct {
	ProjectInfo    ProjectInfo      `json:"project_info"`
	DataCollectors []MemberSnapshot `json:"data_collectors"`
	Supervisors    []MemberSnapshot `json:"supervisors"`
}

// StaffingSnapshotResponse maps project names to their staffing state
type StaffingSnapshotResponse struct {
	ActiveProjects map[string]ProjectStaffing `json:"active_projects"`
}

// GetStaffingSnapshot returns per-project aggregate counts and member lists
// partitioned into collectors and supervisors. Pure read.
func (s *ProjectService) GetStaffingSnapshot() (*StaffingSnapshotResponse, error) {
	projects, err := s.projectRepo.GetAllWithMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	snapshot := make(map[string]ProjectStaffing, len(projects))
	for i := range projects {
		project := &projects[i]

		collectors := make([]MemberSnapshot, 0)
		supervisors := make([]MemberSnapshot, 0)
		for _, m := range project.TeamMembers {
			entry := MemberSnapshot{
				Name:             m.Name,
				ExperienceLevel:  string(m.ExperienceLevel),
				PerformanceScore: m.PerformanceScore,
				RotationRank:     m.RotationRank,
				Role:             string(m.Role),
				Status:           string(m.Status),
			}
			if m.Role == models.RoleSupervisor {
				supervisors = append(supervisors, entry)
			} else {
				collectors = append(collectors, entry)
			}
		}

		scrumMaster := project.ScrumMaster
		if scrumMaster == "" {
			scrumMaster = "Not specified"
		}

		snapshot[project.Name] = ProjectStaffing{
			ProjectInfo: ProjectInfo{
				Name:                 project.Name,
				ScrumMaster:          scrumMaster,
				StartDate:            formatDate(project.StartDate),
				EndDate:              formatDate(project.EndDate),
				DurationDays:         project.DurationDays(),
				Status:               string(project.DerivedStatus(time.Now())),
				TotalCollectors:      len(collectors),
				TotalSupervisors:     len(supervisors),
				CollectorsNeeded:     project.NumCollectorsNeeded,
				SupervisorsNeeded:    project.NumSupervisorsNeeded,
				TotalMembersNeeded:   project.TotalMembersNeeded(),
				AssignedMembersCount: len(project.TeamMembers),
				FullyStaffed:         project.IsFullyStaffed(),
			},
			DataCollectors: collectors,
			Supervisors:    supervisors,
		}
	}

	return &StaffingSnapshotResponse{ActiveProjects: snapshot}, nil
}

// DeleteProjectRequest represents the deletion request body
type DeleteProjectRequest struct {
	ProjectName string `json:"project_name"`
}

// UnassignedMember captures a member's state before unassignment
type UnassignedMember struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	VECode               string    `json:"ve_code"`
	Role                 string    `json:"role"`
	PreviousStatus       string    `json:"previous_status"`
	PreviousProjectCount int       `json:"previous_project_count"`
}

// AvailableMember identifies a member returned to the available pool
type AvailableMember struct {
	Name   string `json:"name"`
	VECode string `json:"ve_code"`
}

// DeployedMember identifies a member still deployed on other projects
type DeployedMember struct {
	Name              string   `json:"name"`
	VECode            string   `json:"ve_code"`
	RemainingProjects []string `json:"remaining_projects"`
}

// DeletionSummary aggregates the unassignment counts
type DeletionSummary struct {
	TotalUnassigned int `json:"total_unassigned"`
	MadeAvailable   int `json:"made_available"`
	StillDeployed   int `json:"still_deployed"`
}

// DeleteProjectResponse is the manifest returned after a cascade deletion
type DeleteProjectResponse struct {
	Message              string             `json:"message"`
	DeletedProject       ProjectDetails     `json:"deleted_project"`
	UnassignedMembers    []UnassignedMember `json:"unassigned_members"`
	MembersMadeAvailable []AvailableMember  `json:"members_made_available"`
	MembersStillDeployed []DeployedMember   `json:"members_still_deployed"`
	Summary              DeletionSummary    `json:"summary"`
}

// DeleteProject removes a project and transactionally unassigns all of its
// team members, recomputing their counters and status.
func (s *ProjectService) DeleteProject(req *DeleteProjectRequest) (*DeleteProjectResponse, error) {
	if req.ProjectName == "" {
		return nil, &apperrors.ValidationError{Field: "project_name", Message: "Project name is required."}
	}

	project, err := s.projectRepo.GetByNameWithMembers(req.ProjectName)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	// Capture pre-removal state for the manifest
	unassigned := make([]UnassignedMember, len(project.TeamMembers))
	for i, m := range project.TeamMembers {
		unassigned[i] = UnassignedMember{
			ID:                   m.ID,
			Name:                 m.Name,
			VECode:               m.VECode,
			Role:                 string(m.Role),
			PreviousStatus:       string(m.Status),
			PreviousProjectCount: m.ProjectsCount,
		}
	}

	details := ProjectDetails{
		Name:                 project.Name,
		ScrumMaster:          project.ScrumMaster,
		StartDate:            derefDate(project.StartDate),
		EndDate:              derefDate(project.EndDate),
		DurationDays:         project.DurationDays(),
		Status:               string(project.Status),
		NumCollectorsNeeded:  project.NumCollectorsNeeded,
		NumSupervisorsNeeded: project.NumSupervisorsNeeded,
	}

	updated, err := s.projectRepo.DeleteWithUnassignment(project)
	if err != nil {
		return nil, fmt.Errorf("failed to delete project %q: %w", project.Name, err)
	}

	madeAvailable := make([]AvailableMember, 0)
	stillDeployed := make([]DeployedMember, 0)
	for i := range updated {
		m := &updated[i]
		if m.Status == models.StatusAvailable {
			madeAvailable = append(madeAvailable, AvailableMember{Name: m.Name, VECode: m.VECode})
		} else {
			stillDeployed = append(stillDeployed, DeployedMember{
				Name:              m.Name,
				VECode:            m.VECode,
				RemainingProjects: m.AssignedProjectNames(),
			})
		}
	}

	memberCount := len(unassigned)
	plural := "s have"
	if memberCount == 1 {
		plural = " has"
	}

	return &DeleteProjectResponse{
		Message: fmt.Sprintf("Project '%s' has been successfully deleted and %d team member%s been unassigned.",
			req.ProjectName, memberCount, plural),
		DeletedProject:       details,
		UnassignedMembers:    unassigned,
		MembersMadeAvailable: madeAvailable,
		MembersStillDeployed: stillDeployed,
		Summary: DeletionSummary{
			TotalUnassigned: memberCount,
			MadeAvailable:   len(madeAvailable),
			StillDeployed:   len(stillDeployed),
		},
	}, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func derefDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
