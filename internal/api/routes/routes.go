package routes

import (
	"data-collector-backend/internal/api/handlers"
	"data-collector-backend/internal/api/middleware"
	"data-collector-backend/internal/config"
	"data-collector-backend/internal/repository"
	"data-collector-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	memberRepo := repository.NewTeamMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Initialize services
	memberService := service.NewTeamMemberService(memberRepo, validator)
	projectService := service.NewProjectService(projectRepo, memberRepo, validator)
	ratingService := service.NewRatingService(ratingRepo, memberRepo, projectRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	memberHandler := handlers.NewTeamMemberHandler(memberService)
	projectHandler := handlers.NewProjectHandler(projectService)
	ratingHandler := handlers.NewRatingHandler(ratingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Team member CRUD routes
	teammembers := router.Group("/teammembers")
	{
		teammembers.GET("/", memberHandler.ListTeamMembers)
		teammembers.POST("/", memberHandler.CreateTeamMember)
		teammembers.GET("/:id/", memberHandler.GetTeamMember)
		teammembers.PUT("/:id/", memberHandler.UpdateTeamMember)
		teammembers.PATCH("/:id/", memberHandler.UpdateTeamMember)
		teammembers.DELETE("/:id/", memberHandler.DeleteTeamMember)
	}

	// Project assignment routes
	assign := router.Group("/assign-project")
	{
		assign.POST("/", projectHandler.AssignProject)
		assign.GET("/", projectHandler.GetStaffingSnapshot)
		assign.DELETE("/", projectHandler.DeleteProject)
	}

	// Rating CRUD routes
	ratings := router.Group("/ratings")
	{
		ratings.GET("/", ratingHandler.ListRatings)
		ratings.POST("/", ratingHandler.CreateRating)
		ratings.GET("/:id/", ratingHandler.GetRating)
		ratings.PUT("/:id/", ratingHandler.UpdateRating)
		ratings.PATCH("/:id/", ratingHandler.UpdateRating)
		ratings.DELETE("/:id/", ratingHandler.DeleteRating)
	}

	return router
}
