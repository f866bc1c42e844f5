package repository

import (
	"context"
	"fmt"
	"time"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeOutcome is the state after a like toggle committed
type LikeOutcome struct {
	Liked  bool
	Rating int
}

// LikeRepository applies like toggles. The rating moves by a relative
// update and the liked set is rewritten under a row lock on the profile,
// both inside one transaction, so concurrent toggles never lose a delta.
type LikeRepository struct {
	db      *gorm.DB
	retries int
}

// Ensure LikeRepository implements LikeRepositoryInterface
var _ LikeRepositoryInterface = (*LikeRepository)(nil)

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB, retries int) *LikeRepository {
	return &LikeRepository{db: db, retries: retries}
}

// GetProfile retrieves a profile by user id
func (r *LikeRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Take(&profile, "id = ?", userID).Error; err != nil {
		return nil, translateError("profile", err)
	}
	return &profile, nil
}

// GetRating retrieves the rating row of a loadout
func (r *LikeRepository) GetRating(ctx context.Context, loadoutID uuid.UUID) (*models.LoadoutRating, error) {
	var rating models.LoadoutRating
	if err := r.db.WithContext(ctx).Take(&rating, "id = ?", loadoutID).Error; err != nil {
		return nil, translateError("loadout rating", err)
	}
	return &rating, nil
}

// Toggle flips the user's like on the loadout
func (r *LikeRepository) Toggle(ctx context.Context, userID, loadoutID uuid.UUID) (*LikeOutcome, error) {
	var outcome LikeOutcome
	target := loadoutID.String()

	err := WithTxRetry(r.db.WithContext(ctx), r.retries, "like", func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Take(&profile, "id = ?", userID).Error; err != nil {
			return translateError("profile", err)
		}

		liked := profile.LikedSet()
		delta := 1
		next := make([]string, 0, len(liked)+1)
		for _, id := range liked {
			if id == target {
				delta = -1
				continue
			}
			next = append(next, id)
		}
		if delta > 0 {
			next = append(next, target)
		}

		result := tx.Model(&models.LoadoutRating{}).
			Where("id = ?", loadoutID).
			UpdateColumn("rating", gorm.Expr("rating + ?", delta))
		if result.Error != nil {
			return translateError("loadout rating", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrRatingNotFound
		}

		if err := tx.Model(&models.Profile{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"liked_posts": models.JoinList(next),
				"updated_at":  time.Now(),
			}).Error; err != nil {
			return translateError("profile", err)
		}

		var rating models.LoadoutRating
		if err := tx.Take(&rating, "id = ?", loadoutID).Error; err != nil {
			return translateError("loadout rating", err)
		}

		outcome = LikeOutcome{Liked: delta > 0, Rating: rating.Rating}
		return nil
	})
	if err != nil {
		return nil, likeConflict(err)
	}
	return &outcome, nil
}

// likeConflict marks a toggle whose transaction kept hitting transient
// conflicts until the retries ran out
func likeConflict(err error) error {
	if apperrors.IsRetryable(err) {
		return fmt.Errorf("%w: %w", apperrors.ErrLikeConflict, err)
	}
	return err
}
