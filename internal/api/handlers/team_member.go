package handlers

import (
	"errors"
	"net/http"

	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamMemberHandler handles HTTP requests for team members
type TeamMemberHandler struct {
	memberService service.TeamMemberServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(memberService service.TeamMemberServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		memberService: memberService,
	}
}

// ListTeamMembers lists team members with optional filters
// @Summary List team members
// @Description Get all team members, optionally filtered by status or by having no assigned projects. Each entry is enriched with assigned project names, the current project, and assignment counts.
// @Tags teammembers
// @Accept json
// @Produce json
// @Param status query string false "Exact status filter (available, deployed, inactive)"
// @Param unassigned query string false "Set to 'true' to return only members with zero linked projects"
// @Success 200 {object} map[string]interface{} "Filtered team members retrieved successfully"
// @Failure 400 {object} ErrorResponse "Listing failed"
// @Router /teammembers/ [get]
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	status := c.Query("status")
	unassigned := c.Query("unassigned") == "true"

	members, err := h.memberService.ListTeamMembers(status, unassigned)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Filtered team members retrieved successfully.",
		"data":    members,
	})
}

// CreateTeamMember creates a new team member
// @Summary Create a team member
// @Description Create a new team member. Status defaults to 'available' when not provided.
// @Tags teammembers
// @Accept json
// @Produce json
// @Param member body service.CreateTeamMemberRequest true "Team member data"
// @Success 201 {object} map[string]interface{} "Team member created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure with field-level errors"
// @Router /teammembers/ [post]
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Team member creation failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	member, err := h.memberService.CreateTeamMember(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Team member creation failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Team member created successfully.",
		"data":    member,
	})
}

// GetTeamMember retrieves a team member by ID
// @Summary Get team member by ID
// @Description Get a specific team member, enriched with assigned projects and counts
// @Tags teammembers
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 200 {object} map[string]interface{} "Team member details retrieved"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Router /teammembers/{id}/ [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	member, err := h.memberService.GetTeamMemberByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team member not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team member details retrieved.",
		"data":    member,
	})
}

// UpdateTeamMember partially updates a team member
// @Summary Update a team member
// @Description Partially update a team member; only provided fields are changed
// @Tags teammembers
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Team member updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure with field-level errors"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Router /teammembers/{id}/ [patch]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Team member update failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	member, err := h.memberService.UpdateTeamMember(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team member not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Team member update failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Team member updated successfully.",
		"data":    member,
	})
}

// DeleteTeamMember deletes a team member
// @Summary Delete a team member
// @Description Delete a team member; their ratings are removed and project links cleared
// @Tags teammembers
// @Accept json
// @Produce json
// @Param id path string true "Team member ID (UUID)"
// @Success 204 "Team member deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid team member ID"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Router /teammembers/{id}/ [delete]
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
		return
	}

	if err := h.memberService.DeleteTeamMember(id); err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Team member not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
