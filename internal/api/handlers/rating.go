package handlers

import (
	"errors"
	"net/http"

	apperrors "data-collector-backend/internal/errors"
	"data-collector-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RatingHandler handles HTTP requests for ratings
type RatingHandler struct {
	ratingService service.RatingServiceInterface
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingService service.RatingServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// ListRatings lists ratings with optional filters
// @Summary List ratings
// @Description Get all ratings, optionally filtered by team member or project
// @Tags ratings
// @Accept json
// @Produce json
// @Param team_member_id query string false "Team member ID (UUID)"
// @Param project_id query string false "Project ID (UUID)"
// @Success 200 {object} map[string]interface{} "Ratings retrieved successfully"
// @Failure 400 {object} ErrorResponse "Invalid filter ID"
// @Router /ratings/ [get]
func (h *RatingHandler) ListRatings(c *gin.Context) {
	var memberID, projectID *uuid.UUID

	if raw := c.Query("team_member_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team member ID"})
			return
		}
		memberID = &id
	}
	if raw := c.Query("project_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
			return
		}
		projectID = &id
	}

	ratings, err := h.ratingService.ListRatings(memberID, projectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ratings retrieved successfully.",
		"data":    ratings,
	})
}

// CreateRating creates a new rating
// @Summary Create a rating
// @Description Create one team member's evaluation on one project. The score, if present, must lie in [1,5], and only one rating may exist per (team member, project) pair.
// @Tags ratings
// @Accept json
// @Produce json
// @Param rating body service.CreateRatingRequest true "Rating data"
// @Success 201 {object} map[string]interface{} "Rating created successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure with field-level errors"
// @Failure 404 {object} ErrorResponse "Referenced team member or project not found"
// @Router /ratings/ [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req service.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Rating creation failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	rating, err := h.ratingService.CreateRating(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamMemberNotFound) || errors.Is(err, apperrors.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Rating creation failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Rating created successfully.",
		"data":    rating,
	})
}

// GetRating retrieves a rating by ID
// @Summary Get rating by ID
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Rating ID (UUID)"
// @Success 200 {object} map[string]interface{} "Rating retrieved"
// @Failure 400 {object} ErrorResponse "Invalid rating ID"
// @Failure 404 {object} map[string]interface{} "Rating not found"
// @Router /ratings/{id}/ [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	rating, err := h.ratingService.GetRatingByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Rating not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating details retrieved.",
		"data":    rating,
	})
}

// UpdateRating updates a rating
// @Summary Update a rating
// @Description Partially update a rating's score, feedback, or rater
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Rating ID (UUID)"
// @Param rating body service.UpdateRatingRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Rating updated successfully"
// @Failure 400 {object} map[string]interface{} "Validation failure with field-level errors"
// @Failure 404 {object} map[string]interface{} "Rating not found"
// @Router /ratings/{id}/ [patch]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	var req service.UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Rating update failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	rating, err := h.ratingService.UpdateRating(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Rating not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Rating update failed.",
			"errors":  fieldErrors(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating updated successfully.",
		"data":    rating,
	})
}

// DeleteRating deletes a rating
// @Summary Delete a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Rating ID (UUID)"
// @Success 204 "Rating deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid rating ID"
// @Failure 404 {object} map[string]interface{} "Rating not found"
// @Router /ratings/{id}/ [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating ID"})
		return
	}

	if err := h.ratingService.DeleteRating(id); err != nil {
		if errors.Is(err, apperrors.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Rating not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
