package service_test

import (
	"testing"
	"time"

	"data-collector-backend/internal/database/models"
	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/mocks"
	"data-collector-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockMemberRepo  *mocks.MockTeamMemberRepositoryInterface
	projectService  *service.ProjectService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.projectService = service.NewProjectService(suite.mockProjectRepo, suite.mockMemberRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// member builds an eligible team member for assignment scenarios
func member(name string, rank, score int, status models.TeamMemberStatus, role models.TeamMemberRole) models.TeamMember {
	return models.TeamMember{
		BaseModel:        models.BaseModel{ID: uuid.New()},
		VECode:           "VE" + uuid.NewString()[:6],
		Name:             name,
		Role:             role,
		ExperienceLevel:  models.ExperienceRegular,
		PerformanceScore: score,
		RotationRank:     rank,
		Status:           status,
	}
}

func validAssignRequest() *service.AssignProjectRequest {
	return &service.AssignProjectRequest{
		ProjectName:    "Census Pilot",
		NumCollectors:  2,
		NumSupervisors: 0,
		ScrumMaster:    "Esther Njeri",
		StartDate:      "2026-09-01",
		EndDate:        "2026-10-15",
	}
}

// TestAssignProjectMissingFields tests that omitting any required field is rejected
func (suite *ProjectServiceTestSuite) TestAssignProjectMissingFields() {
	req := validAssignRequest()
	req.ScrumMaster = ""

	response, err := suite.projectService.AssignProject(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "Missing data. Please provide project name, scrum master, and dates.", verr.Message)
}

// TestAssignProjectInvalidDateFormat tests rejection of malformed dates
func (suite *ProjectServiceTestSuite) TestAssignProjectInvalidDateFormat() {
	req := validAssignRequest()
	req.StartDate = "01/09/2026"

	response, err := suite.projectService.AssignProject(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "Invalid date format. Please use YYYY-MM-DD.", verr.Message)
}

// TestAssignProjectEndDateNotAfterStart tests that equal dates are rejected
func (suite *ProjectServiceTestSuite) TestAssignProjectEndDateNotAfterStart() {
	req := validAssignRequest()
	req.EndDate = req.StartDate

	response, err := suite.projectService.AssignProject(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
	assert.Equal(suite.T(), "End date must be after start date.", verr.Message)
}

// TestAssignProjectOrdersByRankThenScore tests that selection follows rotation
// rank ascending, performance score descending
func (suite *ProjectServiceTestSuite) TestAssignProjectOrdersByRankThenScore() {
	req := validAssignRequest()
	req.NumCollectors = 2

	// Pool arrives pre-ordered from the repository: rank ASC, score DESC
	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusAvailable, models.RoleDataCollector),
		member("Daniel", 2, 90, models.StatusAvailable, models.RoleDataCollector),
		member("Grace", 3, 70, models.StatusAvailable, models.RoleDataCollector),
		member("Samuel", 4, 60, models.StatusAvailable, models.RoleDataCollector),
		member("Fatima", 5, 50, models.StatusAvailable, models.RoleDataCollector),
	}

	suite.mockProjectRepo.EXPECT().
		GetByName(req.ProjectName).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockProjectRepo.EXPECT().
		ListEligibleMembers(gomock.Any()).
		Return(eligible, nil).
		Times(1)
	suite.mockMemberRepo.EXPECT().
		CountByStatus(models.StatusAvailable).
		Return(int64(5), nil).
		Times(1)
	suite.mockProjectRepo.EXPECT().
		ApplyAssignment(gomock.Any(), gomock.Len(2)).
		Return(nil).
		Times(1)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.AssignedCollectors, 2)
	assert.Equal(suite.T(), "Amina", response.AssignedCollectors[0].Name)
	assert.Equal(suite.T(), "Daniel", response.AssignedCollectors[1].Name)
	assert.Equal(suite.T(), "2 data collectors and 0 supervisors assigned to project Census Pilot.", response.Message)
}

// TestAssignProjectSnapshotsPreAssignmentStatus tests that the collector
// snapshot reports the status held before the routine deployed the member
func (suite *ProjectServiceTestSuite) TestAssignProjectSnapshotsPreAssignmentStatus() {
	req := validAssignRequest()
	req.NumCollectors = 1

	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusAvailable, models.RoleDataCollector),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	suite.mockMemberRepo.EXPECT().CountByStatus(models.StatusAvailable).Return(int64(1), nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Any()).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "available", response.AssignedCollectors[0].PreviousStatus)
}

// TestAssignProjectFallbackWhenNobodyAvailable tests that an empty available
// pool system-wide pulls any eligible member regardless of status
func (suite *ProjectServiceTestSuite) TestAssignProjectFallbackWhenNobodyAvailable() {
	req := validAssignRequest()
	req.NumCollectors = 2

	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusDeployed, models.RoleDataCollector),
		member("Daniel", 2, 90, models.StatusInactive, models.RoleDataCollector),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	suite.mockMemberRepo.EXPECT().CountByStatus(models.StatusAvailable).Return(int64(0), nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(2)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.AssignedCollectors, 2)
	assert.Equal(suite.T(), "deployed", response.AssignedCollectors[0].PreviousStatus)
	assert.Equal(suite.T(), "inactive", response.AssignedCollectors[1].PreviousStatus)
}

// TestAssignProjectTopUpFromNonAvailable tests the middle tier: one member is
// available and the shortfall tops up from non-available eligible members
func (suite *ProjectServiceTestSuite) TestAssignProjectTopUpFromNonAvailable() {
	req := validAssignRequest()
	req.NumCollectors = 3

	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusDeployed, models.RoleDataCollector),
		member("Daniel", 2, 90, models.StatusAvailable, models.RoleDataCollector),
		member("Grace", 3, 70, models.StatusDeployed, models.RoleDataCollector),
		member("Samuel", 4, 60, models.StatusDeployed, models.RoleDataCollector),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	// One member is still available somewhere in the system
	suite.mockMemberRepo.EXPECT().CountByStatus(models.StatusAvailable).Return(int64(1), nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(3)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.AssignedCollectors, 3)
	// Available member is picked first, then non-available in pool order
	assert.Equal(suite.T(), "Daniel", response.AssignedCollectors[0].Name)
	assert.Equal(suite.T(), "Amina", response.AssignedCollectors[1].Name)
	assert.Equal(suite.T(), "Grace", response.AssignedCollectors[2].Name)
}

// TestAssignProjectUnderFulfillment tests that a shortfall is not an error
func (suite *ProjectServiceTestSuite) TestAssignProjectUnderFulfillment() {
	req := validAssignRequest()
	req.NumCollectors = 5

	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusAvailable, models.RoleDataCollector),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	suite.mockMemberRepo.EXPECT().CountByStatus(models.StatusAvailable).Return(int64(1), nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(1)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.AssignedCollectors, 1)
	assert.Equal(suite.T(), 5, response.ProjectDetails.NumCollectorsNeeded)
	assert.Equal(suite.T(), 1, response.ProjectDetails.NumCollectorsAssigned)
}

// TestAssignProjectSupervisorsAvailableOnly tests that supervisor selection
// never falls back to non-available members
func (suite *ProjectServiceTestSuite) TestAssignProjectSupervisorsAvailableOnly() {
	req := validAssignRequest()
	req.NumCollectors = 0
	req.NumSupervisors = 2

	eligible := []models.TeamMember{
		member("Grace", 1, 95, models.StatusAvailable, models.RoleSupervisor),
		member("Peter", 2, 85, models.StatusDeployed, models.RoleSupervisor),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(1)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.AssignedSupervisors, 1)
	assert.Equal(suite.T(), "Grace", response.AssignedSupervisors[0].Name)
}

// TestAssignProjectSupervisorsExcludeSelectedCollectors tests that a member
// picked as collector is not picked again as supervisor
func (suite *ProjectServiceTestSuite) TestAssignProjectSupervisorsExcludeSelectedCollectors() {
	req := validAssignRequest()
	req.NumCollectors = 1
	req.NumSupervisors = 1

	eligible := []models.TeamMember{
		member("Amina", 1, 80, models.StatusAvailable, models.RoleDataCollector),
		member("Grace", 2, 95, models.StatusAvailable, models.RoleSupervisor),
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return(eligible, nil)
	suite.mockMemberRepo.EXPECT().CountByStatus(models.StatusAvailable).Return(int64(2), nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(2)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Amina", response.AssignedCollectors[0].Name)
	assert.Equal(suite.T(), "Grace", response.AssignedSupervisors[0].Name)
}

// TestAssignProjectNegativeCountsClampToZero tests that negative requested
// counts behave as zero
func (suite *ProjectServiceTestSuite) TestAssignProjectNegativeCountsClampToZero() {
	req := validAssignRequest()
	req.NumCollectors = -3
	req.NumSupervisors = -1

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(nil, gorm.ErrRecordNotFound)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(gomock.Any()).Return([]models.TeamMember{}, nil)
	suite.mockProjectRepo.EXPECT().ApplyAssignment(gomock.Any(), gomock.Len(0)).Return(nil)

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.AssignedCollectors)
	assert.Empty(suite.T(), response.AssignedSupervisors)
	assert.Equal(suite.T(), 0, response.ProjectDetails.NumCollectorsNeeded)
	assert.Equal(suite.T(), 0, response.ProjectDetails.NumSupervisorsNeeded)
}

// TestAssignProjectUpsertOverwritesExisting tests that re-running the
// assignment for an existing project overwrites its fields
func (suite *ProjectServiceTestSuite) TestAssignProjectUpsertOverwritesExisting() {
	req := validAssignRequest()
	req.NumCollectors = 0
	req.ScrumMaster = "New Lead"

	existing := &models.Project{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		Name:                 req.ProjectName,
		ScrumMaster:          "Old Lead",
		NumCollectorsNeeded:  7,
		NumSupervisorsNeeded: 2,
	}

	suite.mockProjectRepo.EXPECT().GetByName(req.ProjectName).Return(existing, nil)
	suite.mockProjectRepo.EXPECT().ListEligibleMembers(existing.ID).Return([]models.TeamMember{}, nil)
	suite.mockProjectRepo.EXPECT().
		ApplyAssignment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(project *models.Project, members []*models.TeamMember) error {
			assert.Equal(suite.T(), "New Lead", project.ScrumMaster)
			assert.Equal(suite.T(), 0, project.NumCollectorsNeeded)
			assert.Equal(suite.T(), 0, project.NumSupervisorsNeeded)
			return nil
		})

	response, err := suite.projectService.AssignProject(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Lead", response.ProjectDetails.ScrumMaster)
}

// TestGetStaffingSnapshot tests the per-project staffing aggregation
func (suite *ProjectServiceTestSuite) TestGetStaffingSnapshot() {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	collector := member("Amina", 1, 80, models.StatusDeployed, models.RoleDataCollector)
	supervisor := member("Grace", 2, 95, models.StatusDeployed, models.RoleSupervisor)

	projects := []models.Project{
		{
			BaseModel:            models.BaseModel{ID: uuid.New()},
			Name:                 "Market Price Tracking",
			StartDate:            &start,
			EndDate:              &end,
			Status:               models.ProjectStatusActive,
			NumCollectorsNeeded:  1,
			NumSupervisorsNeeded: 1,
			TeamMembers:          []models.TeamMember{collector, supervisor},
		},
	}

	suite.mockProjectRepo.EXPECT().GetAllWithMembers().Return(projects, nil)

	response, err := suite.projectService.GetStaffingSnapshot()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.ActiveProjects, 1)

	staffing := response.ActiveProjects["Market Price Tracking"]
	assert.Equal(suite.T(), "Not specified", staffing.ProjectInfo.ScrumMaster)
	assert.Equal(suite.T(), 1, staffing.ProjectInfo.TotalCollectors)
	assert.Equal(suite.T(), 1, staffing.ProjectInfo.TotalSupervisors)
	assert.Equal(suite.T(), 2, staffing.ProjectInfo.TotalMembersNeeded)
	assert.True(suite.T(), staffing.ProjectInfo.FullyStaffed)
	assert.Equal(suite.T(), "Amina", staffing.DataCollectors[0].Name)
	assert.Equal(suite.T(), "Grace", staffing.Supervisors[0].Name)
}

// TestGetStaffingSnapshotEmpty tests that no projects yields an empty map
func (suite *ProjectServiceTestSuite) TestGetStaffingSnapshotEmpty() {
	suite.mockProjectRepo.EXPECT().GetAllWithMembers().Return([]models.Project{}, nil)

	response, err := suite.projectService.GetStaffingSnapshot()

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.ActiveProjects)
}

// TestDeleteProjectMissingName tests that a blank name is rejected
func (suite *ProjectServiceTestSuite) TestDeleteProjectMissingName() {
	response, err := suite.projectService.DeleteProject(&service.DeleteProjectRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	var verr *apperrors.ValidationError
	assert.ErrorAs(suite.T(), err, &verr)
}

// TestDeleteProjectNotFound tests the not-found path
func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	suite.mockProjectRepo.EXPECT().
		GetByNameWithMembers("Ghost Project").
		Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.projectService.DeleteProject(&service.DeleteProjectRequest{ProjectName: "Ghost Project"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

// TestDeleteProjectManifest tests the unassignment manifest partitioning
func (suite *ProjectServiceTestSuite) TestDeleteProjectManifest() {
	freed := member("Amina", 1, 80, models.StatusDeployed, models.RoleDataCollector)
	freed.ProjectsCount = 1
	busy := member("Daniel", 2, 90, models.StatusDeployed, models.RoleDataCollector)
	busy.ProjectsCount = 2

	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Census Pilot",
		TeamMembers: []models.TeamMember{freed, busy},
	}

	suite.mockProjectRepo.EXPECT().GetByNameWithMembers("Census Pilot").Return(project, nil)

	// Post-deletion state: Amina is free, Daniel keeps another project
	freedAfter := freed
	freedAfter.Status = models.StatusAvailable
	freedAfter.ProjectsCount = 0
	busyAfter := busy
	busyAfter.ProjectsCount = 1
	busyAfter.Projects = []models.Project{{Name: "Market Price Tracking"}}

	suite.mockProjectRepo.EXPECT().
		DeleteWithUnassignment(project).
		Return([]models.TeamMember{freedAfter, busyAfter}, nil)

	response, err := suite.projectService.DeleteProject(&service.DeleteProjectRequest{ProjectName: "Census Pilot"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Project 'Census Pilot' has been successfully deleted and 2 team members have been unassigned.", response.Message)
	assert.Len(suite.T(), response.UnassignedMembers, 2)
	assert.Equal(suite.T(), "deployed", response.UnassignedMembers[0].PreviousStatus)
	assert.Equal(suite.T(), 1, response.UnassignedMembers[0].PreviousProjectCount)

	assert.Len(suite.T(), response.MembersMadeAvailable, 1)
	assert.Equal(suite.T(), "Amina", response.MembersMadeAvailable[0].Name)
	assert.Len(suite.T(), response.MembersStillDeployed, 1)
	assert.Equal(suite.T(), "Daniel", response.MembersStillDeployed[0].Name)
	assert.Equal(suite.T(), []string{"Market Price Tracking"}, response.MembersStillDeployed[0].RemainingProjects)

	assert.Equal(suite.T(), 2, response.Summary.TotalUnassigned)
	assert.Equal(suite.T(), 1, response.Summary.MadeAvailable)
	assert.Equal(suite.T(), 1, response.Summary.StillDeployed)
}

// TestDeleteProjectSingularMessage tests the singular form of the message
func (suite *ProjectServiceTestSuite) TestDeleteProjectSingularMessage() {
	only := member("Amina", 1, 80, models.StatusDeployed, models.RoleDataCollector)
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Census Pilot",
		TeamMembers: []models.TeamMember{only},
	}

	onlyAfter := only
	onlyAfter.Status = models.StatusAvailable

	suite.mockProjectRepo.EXPECT().GetByNameWithMembers("Census Pilot").Return(project, nil)
	suite.mockProjectRepo.EXPECT().DeleteWithUnassignment(project).Return([]models.TeamMember{onlyAfter}, nil)

	response, err := suite.projectService.DeleteProject(&service.DeleteProjectRequest{ProjectName: "Census Pilot"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Project 'Census Pilot' has been successfully deleted and 1 team member has been unassigned.", response.Message)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
