//go:build integration
// +build integration

package repository

import (
	"testing"

	"data-collector-backend/internal/database/models"
	"data-collector-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	projectRepo   *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team member
func (suite *TeamMemberRepositoryTestSuite) TestCreate() {
	member := suite.factories.TeamMember.Create()

	err := suite.repo.Create(member)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, member.ID)
	suite.NotZero(member.CreatedAt)
	suite.NotZero(member.UpdatedAt)
}

// TestCreateDuplicateVECode tests the unique constraint on the VE code
func (suite *TeamMemberRepositoryTestSuite) TestCreateDuplicateVECode() {
	member1 := suite.factories.TeamMember.WithVECode("VE900")
	err := suite.repo.Create(member1)
	suite.NoError(err)

	member2 := suite.factories.TeamMember.WithVECode("VE900")
	member2.Name = "Different Name"

	err = suite.repo.Create(member2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByVECode tests retrieval by the unique VE code
func (suite *TeamMemberRepositoryTestSuite) TestGetByVECode() {
	member := suite.factories.TeamMember.WithVECode("VE901")
	err := suite.repo.Create(member)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByVECode("VE901")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(member.ID, retrieved.ID)
}

// TestGetByIDNotFound tests retrieving a missing member
func (suite *TeamMemberRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListWithStatusFilter tests the exact-match status filter
func (suite *TeamMemberRepositoryTestSuite) TestListWithStatusFilter() {
	available := suite.factories.TeamMember.WithStatus(models.StatusAvailable)
	deployed := suite.factories.TeamMember.WithStatus(models.StatusDeployed)
	suite.NoError(suite.repo.Create(available))
	suite.NoError(suite.repo.Create(deployed))

	members, err := suite.repo.List("available", false)

	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal(available.ID, members[0].ID)
}

// TestListUnassignedFilter tests filtering to members with zero linked projects
func (suite *TeamMemberRepositoryTestSuite) TestListUnassignedFilter() {
	linked := suite.factories.TeamMember.Create()
	free := suite.factories.TeamMember.Create()
	suite.NoError(suite.repo.Create(linked))
	suite.NoError(suite.repo.Create(free))

	project := suite.factories.Project.Create()
	err := suite.projectRepo.ApplyAssignment(project, []*models.TeamMember{linked})
	suite.NoError(err)

	members, err := suite.repo.List("", true)

	suite.NoError(err)
	suite.Len(members, 1)
	suite.Equal(free.ID, members[0].ID)
}

// TestUpdate tests persisting field changes
func (suite *TeamMemberRepositoryTestSuite) TestUpdate() {
	member := suite.factories.TeamMember.Create()
	suite.NoError(suite.repo.Create(member))

	member.PerformanceScore = 99
	member.Status = models.StatusInactive
	err := suite.repo.Update(member)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(99, retrieved.PerformanceScore)
	suite.Equal(models.StatusInactive, retrieved.Status)
}

// TestDeleteCascadesRatingsAndClearsAssignments tests that deleting a member
// removes their ratings and project links but keeps the projects
func (suite *TeamMemberRepositoryTestSuite) TestDeleteCascadesRatingsAndClearsAssignments() {
	member := suite.factories.TeamMember.Create()
	suite.NoError(suite.repo.Create(member))

	project := suite.factories.Project.Create()
	suite.NoError(suite.projectRepo.ApplyAssignment(project, []*models.TeamMember{member}))

	rating := suite.factories.Rating.Create(member.ID, project.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(rating).Error)

	err := suite.repo.Delete(member.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var ratingCount int64
	suite.baseTestSuite.DB.Model(&models.Rating{}).Where("team_member_id = ?", member.ID).Count(&ratingCount)
	suite.Zero(ratingCount)

	// The project itself survives
	survivor, err := suite.projectRepo.GetByID(project.ID)
	suite.NoError(err)
	suite.NotNil(survivor)
}

// TestCountByStatus tests the system-wide status count
func (suite *TeamMemberRepositoryTestSuite) TestCountByStatus() {
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithStatus(models.StatusAvailable)))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithStatus(models.StatusAvailable)))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.WithStatus(models.StatusDeployed)))

	total, err := suite.repo.CountByStatus(models.StatusAvailable)

	suite.NoError(err)
	suite.Equal(int64(2), total)
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
