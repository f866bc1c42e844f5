package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"loadout-backend/internal/config"
	"loadout-backend/internal/database"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "loadouts"
	pgPassword = "loadouts"
	pgDatabase = "loadouts_test"

	// containerTTL bounds how long an abandoned container outlives its test run
	containerTTL = 10 * 60
)

// One Postgres container serves every suite in the test binary.
var (
	pgOnce     sync.Once
	pgErr      error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
	pgConfig   *config.Config
)

// PostgresTestSuite runs against the shared container. Every test starts
// from empty tables holding a freshly seeded Fixture.
type PostgresTestSuite struct {
	suite.Suite
	DB      *gorm.DB
	Config  *config.Config
	Store   *repository.RecordStore
	Fixture *Fixture

	// FixtureRating is the rating the seeded loadout starts with
	FixtureRating int
}

// SetupSuite starts the container on first use
func (s *PostgresTestSuite) SetupSuite() {
	db, cfg, err := SharedPostgres()
	s.Require().NoError(err, "shared postgres container")
	s.DB = db
	s.Config = cfg
	s.Store = repository.NewRecordStore(db)
}

// SetupTest empties the schema and seeds the fixture
func (s *PostgresTestSuite) SetupTest() {
	s.Require().NoError(ResetPostgres(s.DB))
	fx, err := SeedFixture(s.DB, s.FixtureRating)
	s.Require().NoError(err)
	s.Fixture = fx
}

// SharedPostgres returns the migrated database and a config pointing at it,
// starting the container the first time it is called.
func SharedPostgres() (*gorm.DB, *config.Config, error) {
	pgOnce.Do(func() { pgErr = startPostgres() })
	return pgDB, pgConfig, pgErr
}

// ResetPostgres truncates every application table in one statement
func ResetPostgres(db *gorm.DB) error {
	all := database.AllModels()
	tables := make([]string, 0, len(all))
	for _, m := range all {
		named, ok := m.(interface{ TableName() string })
		if !ok {
			return fmt.Errorf("model %T has no table name", m)
		}
		tables = append(tables, `"`+named.TableName()+`"`)
	}
	return db.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
}

// CleanupSharedContainer closes the shared database and purges its container.
// TestMain calls it once the run ends.
func CleanupSharedContainer() {
	log := logger.New().WithField("component", "testutils")
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool == nil || pgResource == nil {
		return
	}
	if err := pgPool.Purge(pgResource); err != nil {
		log.WithError(err).Warn("Could not purge postgres container")
	} else {
		log.WithField("container", pgResource.Container.Name).Info("Purged postgres container")
	}
	pgPool = nil
	pgResource = nil
}

func startPostgres() error {
	log := logger.New().WithField("component", "testutils")

	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	pgPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("start postgres: %w", err)
	}
	pgResource = resource
	_ = resource.Expire(containerTTL)

	cfg := TestConfig()
	cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error { return pingPostgres(cfg.DatabaseURL) }); err != nil {
		return fmt.Errorf("postgres never accepted connections: %w", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:    gormlogger.Silent,
		AutoMigrate: true,
	})
	if err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	pgDB = db
	pgConfig = cfg

	log.WithField("port", resource.GetPort("5432/tcp")).Info("Shared postgres ready")
	return nil
}

func pingPostgres(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return std.PingContext(ctx)
}
