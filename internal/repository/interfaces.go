package repository

import (
	"context"

	"loadout-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RecordStoreInterface is the generic record store client used by the editor
// sessions and table views
type RecordStoreInterface interface {
	Get(ctx context.Context, table Table, id string, dest interface{}) error
	List(ctx context.Context, table Table, dest interface{}, opts ...ListOption) error
	Insert(ctx context.Context, table Table, record Record) (string, error)
	Update(ctx context.Context, table Table, id string, partial map[string]interface{}) error
	Delete(ctx context.Context, table Table, id string) error
}

// LikeRepositoryInterface defines the store operations of the like protocol
type LikeRepositoryInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetRating(ctx context.Context, loadoutID uuid.UUID) (*models.LoadoutRating, error)
	Toggle(ctx context.Context, userID, loadoutID uuid.UUID) (*LikeOutcome, error)
}

// LoadoutRepositoryInterface defines the interface for loadout repository operations
type LoadoutRepositoryInterface interface {
	Create(ctx context.Context, loadout *models.Loadout) error
	GetAllWithRatings(ctx context.Context) ([]models.Loadout, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Loadout, error)
}
