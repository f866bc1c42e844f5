package repository

import (
	"context"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoadoutRepository handles database operations for loadouts
type LoadoutRepository struct {
	db *gorm.DB
}

// Ensure LoadoutRepository implements LoadoutRepositoryInterface
var _ LoadoutRepositoryInterface = (*LoadoutRepository)(nil)

// NewLoadoutRepository creates a new loadout repository
func NewLoadoutRepository(db *gorm.DB) *LoadoutRepository {
	return &LoadoutRepository{db: db}
}

// Create writes the loadout, copies the owner's username onto it and opens
// its rating at zero, all in one transaction
func (r *LoadoutRepository) Create(ctx context.Context, loadout *models.Loadout) error {
	actor := ActorFromContext(ctx)
	if !actor.SignedIn() || (actor.UserID != loadout.User && !actor.Admin) {
		return permissionDenied("loadout")
	}

	return translateError("loadout", r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Select("id", "username").Take(&profile, "id = ?", loadout.User).Error; err != nil {
			return translateError("profile", err)
		}
		loadout.Username = profile.Username

		if err := tx.Omit("WeaponModel", "Rating").Create(loadout).Error; err != nil {
			return translateError("loadout", err)
		}

		rating := &models.LoadoutRating{ID: loadout.ID, Rating: 0}
		if err := tx.Create(rating).Error; err != nil {
			return translateError("loadout rating", err)
		}
		loadout.Rating = rating
		return nil
	}))
}

// GetAllWithRatings lists every loadout with its model and rating, newest first
func (r *LoadoutRepository) GetAllWithRatings(ctx context.Context) ([]models.Loadout, error) {
	var loadouts []models.Loadout
	err := r.db.WithContext(ctx).
		Preload("WeaponModel").
		Preload("Rating").
		Order("created_at DESC").
		Find(&loadouts).Error
	if err != nil {
		return nil, translateError("loadout", err)
	}
	return loadouts, nil
}

// GetByUser lists the loadouts authored by one user, newest first
func (r *LoadoutRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Loadout, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrProfileNotFound
	}
	var loadouts []models.Loadout
	err := r.db.WithContext(ctx).
		Preload("WeaponModel").
		Preload("Rating").
		Where(&models.Loadout{User: userID}).
		Order("created_at DESC").
		Find(&loadouts).Error
	if err != nil {
		return nil, translateError("loadout", err)
	}
	return loadouts, nil
}
