package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"data-collector-backend/internal/api/handlers"
	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/mocks"
	"data-collector-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/assign-project/", suite.handler.AssignProject)
	suite.router.GET("/assign-project/", suite.handler.GetStaffingSnapshot)
	suite.router.DELETE("/assign-project/", suite.handler.DeleteProject)
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) makeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonBytes)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, url, buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestAssignProject tests a successful assignment round trip
func (suite *ProjectHandlerTestSuite) TestAssignProject() {
	req := service.AssignProjectRequest{
		ProjectName:    "Census Pilot",
		NumCollectors:  2,
		NumSupervisors: 1,
		ScrumMaster:    "Esther Njeri",
		StartDate:      "2026-09-01",
		EndDate:        "2026-10-15",
	}

	result := &service.AssignProjectResponse{
		Message: "2 data collectors and 1 supervisors assigned to project Census Pilot.",
		ProjectDetails: service.ProjectDetails{
			Name:                   "Census Pilot",
			NumCollectorsNeeded:    2,
			NumCollectorsAssigned:  2,
			NumSupervisorsNeeded:   1,
			NumSupervisorsAssigned: 1,
		},
		AssignedCollectors: []service.AssignedCollectorSnapshot{
			{Name: "Amina", RotationRank: 1, PerformanceScore: 88, PreviousStatus: "available", Role: "data_collector"},
			{Name: "Daniel", RotationRank: 2, PerformanceScore: 92, PreviousStatus: "available", Role: "data_collector"},
		},
		AssignedSupervisors: []service.AssignedSupervisorSnapshot{
			{Name: "Grace", RotationRank: 1, PerformanceScore: 95, Role: "supervisor"},
		},
	}

	suite.mockService.EXPECT().AssignProject(gomock.Any()).Return(result, nil)

	recorder := suite.makeRequest(http.MethodPost, "/assign-project/", req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.AssignProjectResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.AssignedCollectors, 2)
	assert.Len(suite.T(), response.AssignedSupervisors, 1)
	assert.Equal(suite.T(), result.Message, response.Message)
}

// TestAssignProjectValidationError tests that a validation failure maps to 400
func (suite *ProjectHandlerTestSuite) TestAssignProjectValidationError() {
	suite.mockService.EXPECT().
		AssignProject(gomock.Any()).
		Return(nil, &apperrors.ValidationError{Message: "Missing data. Please provide project name, scrum master, and dates."})

	recorder := suite.makeRequest(http.MethodPost, "/assign-project/", service.AssignProjectRequest{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Missing data. Please provide project name, scrum master, and dates.", response["message"])
}

// TestAssignProjectInternalError tests that repository failures map to 500
func (suite *ProjectHandlerTestSuite) TestAssignProjectInternalError() {
	suite.mockService.EXPECT().
		AssignProject(gomock.Any()).
		Return(nil, errors.New("failed to persist assignment: connection refused"))

	recorder := suite.makeRequest(http.MethodPost, "/assign-project/", service.AssignProjectRequest{ProjectName: "X"})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestGetStaffingSnapshot tests the snapshot endpoint
func (suite *ProjectHandlerTestSuite) TestGetStaffingSnapshot() {
	snapshot := &service.StaffingSnapshotResponse{
		ActiveProjects: map[string]service.ProjectStaffing{
			"Census Pilot": {
				ProjectInfo:    service.ProjectInfo{Name: "Census Pilot", ScrumMaster: "Esther Njeri"},
				DataCollectors: []service.MemberSnapshot{{Name: "Amina", Role: "data_collector"}},
				Supervisors:    []service.MemberSnapshot{},
			},
		},
	}

	suite.mockService.EXPECT().GetStaffingSnapshot().Return(snapshot, nil)

	recorder := suite.makeRequest(http.MethodGet, "/assign-project/", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.StaffingSnapshotResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), response.ActiveProjects, "Census Pilot")
	assert.Len(suite.T(), response.ActiveProjects["Census Pilot"].DataCollectors, 1)
}

// TestDeleteProject tests a successful deletion round trip
func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	result := &service.DeleteProjectResponse{
		Message:              "Project 'Census Pilot' has been successfully deleted and 1 team member has been unassigned.",
		MembersMadeAvailable: []service.AvailableMember{{Name: "Amina", VECode: "VE001"}},
		Summary:              service.DeletionSummary{TotalUnassigned: 1, MadeAvailable: 1},
	}

	suite.mockService.EXPECT().DeleteProject(gomock.Any()).Return(result, nil)

	recorder := suite.makeRequest(http.MethodDelete, "/assign-project/", service.DeleteProjectRequest{ProjectName: "Census Pilot"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.DeleteProjectResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Summary.TotalUnassigned)
}

// TestDeleteProjectMissingName tests that a blank name maps to 400
func (suite *ProjectHandlerTestSuite) TestDeleteProjectMissingName() {
	suite.mockService.EXPECT().
		DeleteProject(gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "project_name", Message: "Project name is required."})

	recorder := suite.makeRequest(http.MethodDelete, "/assign-project/", service.DeleteProjectRequest{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	var response map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "missing_project_name", response["error"])
}

// TestDeleteProjectNotFound tests that a missing project maps to 404
func (suite *ProjectHandlerTestSuite) TestDeleteProjectNotFound() {
	suite.mockService.EXPECT().
		DeleteProject(gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound)

	recorder := suite.makeRequest(http.MethodDelete, "/assign-project/", service.DeleteProjectRequest{ProjectName: "Ghost"})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	var response map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "project_not_found", response["error"])
	assert.Equal(suite.T(), "Project 'Ghost' not found.", response["message"])
}

// TestDeleteProjectInternalError tests that a transaction failure maps to 500
func (suite *ProjectHandlerTestSuite) TestDeleteProjectInternalError() {
	suite.mockService.EXPECT().
		DeleteProject(gomock.Any()).
		Return(nil, errors.New("deadlock detected"))

	recorder := suite.makeRequest(http.MethodDelete, "/assign-project/", service.DeleteProjectRequest{ProjectName: "Census Pilot"})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "deletion_failed", response["error"])
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
