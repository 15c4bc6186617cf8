package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"data-collector-backend/internal/config"
	"data-collector-backend/internal/database"
	"data-collector-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamMemberData struct {
	VECode           string `yaml:"ve_code"`
	Name             string `yaml:"name"`
	Role             string `yaml:"role"`
	ExperienceLevel  string `yaml:"experience_level"`
	PerformanceScore int    `yaml:"performance_score"`
	RotationRank     int    `yaml:"rotation_rank"`
	Status           string `yaml:"status,omitempty"`
}

type ProjectData struct {
	Name                 string `yaml:"name"`
	ScrumMaster          string `yaml:"scrum_master,omitempty"`
	StartDate            string `yaml:"start_date,omitempty"`
	EndDate              string `yaml:"end_date,omitempty"`
	Status               string `yaml:"status,omitempty"`
	NumCollectorsNeeded  int    `yaml:"num_collectors_needed"`
	NumSupervisorsNeeded int    `yaml:"num_supervisors_needed"`
}

// File structures
type TeamMembersFile struct {
	TeamMembers []TeamMemberData `yaml:"team_members"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	members, err := loadTeamMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}

	projects, err := loadProjects(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	memberCreated := 0
	for _, memberData := range members {
		_, created, err := createTeamMember(db, memberData)
		if err != nil {
			return fmt.Errorf("failed to create team member %s: %w", memberData.VECode, err)
		}
		if created {
			memberCreated++
		}
	}
	log.Printf("Team members: %d created, %d total", memberCreated, len(members))

	projectCreated := 0
	for _, projectData := range projects {
		_, created, err := createProject(db, projectData)
		if err != nil {
			log.Printf("Warning: failed to create project %s: %v", projectData.Name, err)
			continue // Continue with other projects
		}
		if created {
			projectCreated++
		}
	}
	log.Printf("Projects: %d created, %d total", projectCreated, len(projects))

	return nil
}

func loadTeamMembers(dataDir string) ([]TeamMemberData, error) {
	var allMembers []TeamMemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "team_members") {
			var file TeamMembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.TeamMembers...)
		}
		return nil
	})

	return allMembers, err
}

func loadProjects(dataDir string) ([]ProjectData, error) {
	var allProjects []ProjectData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "projects") {
			var file ProjectsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProjects = append(allProjects, file.Projects...)
		}
		return nil
	})

	return allProjects, err
}

func createTeamMember(db *gorm.DB, memberData TeamMemberData) (*models.TeamMember, bool, error) {
	var member models.TeamMember
	if err := db.Where("ve_code = ?", memberData.VECode).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.StatusAvailable
			if memberData.Status != "" {
				status = models.TeamMemberStatus(memberData.Status)
			}

			member = models.TeamMember{
				VECode:           memberData.VECode,
				Name:             memberData.Name,
				Role:             models.TeamMemberRole(memberData.Role),
				ExperienceLevel:  models.ExperienceLevel(memberData.ExperienceLevel),
				PerformanceScore: memberData.PerformanceScore,
				RotationRank:     memberData.RotationRank,
				Status:           status,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createProject(db *gorm.DB, projectData ProjectData) (*models.Project, bool, error) {
	var project models.Project
	if err := db.Where("name = ?", projectData.Name).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			startDate, err := parseDate(projectData.StartDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid start_date for project %s: %w", projectData.Name, err)
			}
			endDate, err := parseDate(projectData.EndDate)
			if err != nil {
				return nil, false, fmt.Errorf("invalid end_date for project %s: %w", projectData.Name, err)
			}

			status := models.ProjectStatusPlanning
			if projectData.Status != "" {
				status = models.ProjectStatus(projectData.Status)
			}

			project = models.Project{
				Name:                 projectData.Name,
				ScrumMaster:          projectData.ScrumMaster,
				StartDate:            startDate,
				EndDate:              endDate,
				Status:               status,
				NumCollectorsNeeded:  projectData.NumCollectorsNeeded,
				NumSupervisorsNeeded: projectData.NumSupervisorsNeeded,
			}

			if err := db.Create(&project).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create project: %w", err)
			}
			return &project, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query project: %w", err)
		}
	}

	return &project, false, nil // created = false (existing)
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
