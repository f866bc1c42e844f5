package testutils

import (
	"context"
	"fmt"
	"testing"

	"loadout-backend/internal/config"
	"loadout-backend/internal/database"
	"loadout-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private in-memory store with the full schema. The
// database lives as long as its single connection and is closed on cleanup.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := database.OpenSQLite(dsn, &database.Options{
		LogLevel:     logger.Silent,
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// SQLiteTestSuite gives every test a fresh embedded store
type SQLiteTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTest opens a new database before each test
func (s *SQLiteTestSuite) SetupTest() {
	s.DB = NewSQLiteDB(s.T())
	s.Config = TestConfig()
}

// AdminContext returns a context acting as an administrator
func AdminContext() context.Context {
	return repository.WithActor(context.Background(), repository.Actor{
		UserID:   uuid.New(),
		Username: "admin",
		Admin:    true,
	})
}

// UserContext returns a context acting as the given non-admin user
func UserContext(userID uuid.UUID, username string) context.Context {
	return repository.WithActor(context.Background(), repository.Actor{
		UserID:   userID,
		Username: username,
	})
}

// TestConfig returns the configuration tests run with
func TestConfig() *config.Config {
	return &config.Config{
		Environment:           "test",
		Port:                  "8080",
		LogLevel:              "debug",
		JWTSecret:             TestJWTSecret,
		AllowedOrigins:        []string{"http://localhost:3000"},
		FilterDebounceMS:      0,
		FilterMatchMode:       "substring",
		MaxLoadoutAttachments: 5,
		LikeTxRetries:         3,
	}
}
