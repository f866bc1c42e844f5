//go:build integration
// +build integration

package repository_test

import (
	"context"
	"sync"
	"testing"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/repository"
	"loadout-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// PostgresRepositoryTestSuite runs the stores against a real Postgres container
type PostgresRepositoryTestSuite struct {
	testutils.PostgresTestSuite
	likes *repository.LikeRepository
}

// SetupSuite runs before all tests in the suite
func (suite *PostgresRepositoryTestSuite) SetupSuite() {
	suite.PostgresTestSuite.SetupSuite()
	suite.likes = repository.NewLikeRepository(suite.DB, 5)
}

// TestUniqueViolationKeepsSQLState tests that the store code survives translation
func (suite *PostgresRepositoryTestSuite) TestUniqueViolationKeepsSQLState() {
	ctx := testutils.AdminContext()

	_, err := suite.Store.Insert(ctx, repository.TableAttachmentTypes,
		testutils.NewAttachmentTypeFactory().WithName(suite.Fixture.AttachmentType.Name))

	suite.Equal(apperrors.CodeUniqueViolation, apperrors.StoreCode(err))
}

// TestConcurrentLikes tests the row lock and relative update under real parallelism
func (suite *PostgresRepositoryTestSuite) TestConcurrentLikes() {
	const users = 25
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		p := testutils.NewProfileFactory().Create()
		suite.Require().NoError(suite.DB.Create(p).Error)
		wg.Add(1)
		go func(p *models.Profile) {
			defer wg.Done()
			_, err := suite.likes.Toggle(context.Background(), p.ID, suite.Fixture.Loadout.ID)
			suite.NoError(err)
		}(p)
	}
	wg.Wait()

	var rating models.LoadoutRating
	suite.NoError(suite.DB.Take(&rating, "id = ?", suite.Fixture.Loadout.ID).Error)
	suite.Equal(suite.FixtureRating+users, rating.Rating)
}

// TestFixtureIsReseededPerTest tests that each test sees exactly one seeded loadout
func (suite *PostgresRepositoryTestSuite) TestFixtureIsReseededPerTest() {
	var count int64
	suite.NoError(suite.DB.Model(&models.Loadout{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

// TestPostgresRepositoryTestSuite runs the test suite
func TestPostgresRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &PostgresRepositoryTestSuite{
		PostgresTestSuite: testutils.PostgresTestSuite{FixtureRating: 3},
	})
}
