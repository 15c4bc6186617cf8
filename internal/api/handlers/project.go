package handlers

import (
	"errors"
	"net/http"

	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project assignment
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// AssignProject creates or updates a project and assigns staff to it
// @Summary Assign staff to a project
// @Description Upsert the named project and select data collectors and supervisors for it by rotation rank (ascending) and performance score (descending). A shortfall against the requested counts is not an error; the routine proceeds with whatever it found.
// @Tags assign-project
// @Accept json
// @Produce json
// @Param request body service.AssignProjectRequest true "Assignment request"
// @Success 200 {object} service.AssignProjectResponse "Assignment summary"
// @Failure 400 {object} map[string]interface{} "Missing data, bad date format, or non-positive duration"
// @Router /assign-project/ [post]
func (h *ProjectHandler) AssignProject(c *gin.Context) {
	var req service.AssignProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.projectService.AssignProject(&req)
	if err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStaffingSnapshot returns the staffing state of every project
// @Summary Staffing snapshot
// @Description For every project, aggregate counts plus the member lists partitioned into data collectors and supervisors
// @Tags assign-project
// @Accept json
// @Produce json
// @Success 200 {object} service.StaffingSnapshotResponse "Per-project staffing state"
// @Failure 500 {object} ErrorResponse "Failed to load projects"
// @Router /assign-project/ [get]
func (h *ProjectHandler) GetStaffingSnapshot(c *gin.Context) {
	snapshot, err := h.projectService.GetStaffingSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// DeleteProject deletes a project and unassigns its team members
// @Summary Delete a project
// @Description Delete a project by name. All linked team members are unassigned in one transaction; members with no remaining projects become available again.
// @Tags assign-project
// @Accept json
// @Produce json
// @Param request body service.DeleteProjectRequest true "Deletion request"
// @Success 200 {object} service.DeleteProjectResponse "Deletion manifest"
// @Failure 400 {object} map[string]interface{} "Project name is required"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Deletion transaction failed"
// @Router /assign-project/ [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	var req service.DeleteProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Project name is required.",
			"error":   "missing_project_name",
		})
		return
	}

	result, err := h.projectService.DeleteProject(&req)
	if err != nil {
		var verr *apperrors.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": verr.Message,
				"error":   "missing_project_name",
			})
		case errors.Is(err, apperrors.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Project '" + req.ProjectName + "' not found.",
				"error":   "project_not_found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to delete project '" + req.ProjectName + "'. Error: " + err.Error(),
				"error":   "deletion_failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
