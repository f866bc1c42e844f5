package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// LikeService runs the like protocol. The caller id always comes from the
// verified session.
type LikeService struct {
	likeRepo repository.LikeRepositoryInterface

	mu          sync.Mutex
	projections map[string]*LikeProjection
}

// Ensure LikeService implements LikeServiceInterface
var _ LikeServiceInterface = (*LikeService)(nil)

// LikeForm is the like submission
type LikeForm struct {
	Post string `form:"post" json:"post" binding:"required"`
}

// LikeResult is the answer to a like toggle or state query
type LikeResult struct {
	Success bool              `json:"success"`
	Liked   bool              `json:"liked"`
	Rating  int               `json:"rating"`
	Pending bool              `json:"pending,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NewLikeService creates a new like service
func NewLikeService(likeRepo repository.LikeRepositoryInterface) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		projections: make(map[string]*LikeProjection),
	}
}

// Toggle flips the user's like on the loadout. A missing profile or loadout
// is reported as an unsuccessful result without touching the store.
func (s *LikeService) Toggle(ctx context.Context, userID uuid.UUID, post string) (*LikeResult, error) {
	log := logger.WithContext(ctx).WithField("post", post)

	loadoutID, err := uuid.Parse(strings.TrimSpace(post))
	if err != nil {
		return &LikeResult{Errors: map[string]string{"post": "Invalid loadout id"}}, nil
	}

	current, err := s.fetch(ctx, userID, loadoutID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			log.WithError(err).Info("Like target not found")
			return &LikeResult{}, nil
		}
		return nil, fmt.Errorf("failed to load like state: %w", err)
	}

	key := userID.String() + ":" + loadoutID.String()
	proj := s.projection(key, current)
	requestID := proj.Begin()
	defer s.release(key, proj)

	outcome, err := s.likeRepo.Toggle(ctx, userID, loadoutID)
	if err != nil {
		proj.Fail(requestID)
		if apperrors.IsNotFound(err) {
			log.WithError(err).Info("Like target removed before toggle")
			return &LikeResult{}, nil
		}
		log.WithError(err).Error("Failed to toggle like")
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	confirmed := LikeState{Liked: outcome.Liked, Rating: outcome.Rating}
	proj.Settle(requestID, confirmed)

	log.WithFields(map[string]interface{}{
		"liked":  outcome.Liked,
		"rating": outcome.Rating,
	}).Info("Like toggled")

	return &LikeResult{Success: true, Liked: confirmed.Liked, Rating: confirmed.Rating}, nil
}

// State returns the displayed like state, including a toggle still in flight
func (s *LikeService) State(ctx context.Context, userID uuid.UUID, post string) (*LikeResult, error) {
	loadoutID, err := uuid.Parse(strings.TrimSpace(post))
	if err != nil {
		return &LikeResult{Errors: map[string]string{"post": "Invalid loadout id"}}, nil
	}

	s.mu.Lock()
	proj, ok := s.projections[userID.String()+":"+loadoutID.String()]
	s.mu.Unlock()
	if ok {
		shown := proj.Displayed()
		return &LikeResult{Success: true, Liked: shown.Liked, Rating: shown.Rating, Pending: proj.InFlight()}, nil
	}

	current, err := s.fetch(ctx, userID, loadoutID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return &LikeResult{}, nil
		}
		return nil, fmt.Errorf("failed to load like state: %w", err)
	}
	return &LikeResult{Success: true, Liked: current.Liked, Rating: current.Rating}, nil
}

// fetch reads the caller's profile and the loadout rating concurrently
func (s *LikeService) fetch(ctx context.Context, userID, loadoutID uuid.UUID) (LikeState, error) {
	var profile *models.Profile
	var rating *models.LoadoutRating

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.likeRepo.GetProfile(gctx, userID)
		profile = p
		return err
	})
	g.Go(func() error {
		r, err := s.likeRepo.GetRating(gctx, loadoutID)
		rating = r
		return err
	})
	if err := g.Wait(); err != nil {
		return LikeState{}, err
	}
	if profile == nil {
		return LikeState{}, apperrors.ErrProfileNotFound
	}
	if rating == nil {
		return LikeState{}, apperrors.ErrRatingNotFound
	}

	return LikeState{Liked: profile.HasLiked(loadoutID.String()), Rating: rating.Rating}, nil
}

func (s *LikeService) projection(key string, confirmed LikeState) *LikeProjection {
	s.mu.Lock()
	defer s.mu.Unlock()
	proj, ok := s.projections[key]
	if !ok {
		proj = NewLikeProjection(confirmed)
		s.projections[key] = proj
	}
	return proj
}

// release forgets a projection once its latest request settled
func (s *LikeService) release(key string, proj *LikeProjection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.projections[key] == proj && !proj.InFlight() {
		delete(s.projections, key)
	}
}
