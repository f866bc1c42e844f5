package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loadout-backend/internal/config"
	"loadout-backend/internal/database/models"
	"loadout-backend/internal/editor"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoadoutService handles loadout creation and listing
type LoadoutService struct {
	loadoutRepo    repository.LoadoutRepositoryInterface
	likeRepo       repository.LikeRepositoryInterface
	validator      *validator.Validate
	maxAttachments int
	sessions       *sessionStore[LoadoutDraft]
}

// Ensure LoadoutService implements LoadoutServiceInterface
var _ LoadoutServiceInterface = (*LoadoutService)(nil)

// LoadoutForm is the loadout creation form. Every slot holds an attachment
// id or -1 when unset.
type LoadoutForm struct {
	Name        string `form:"name" json:"name"`
	Model       int    `form:"model,default=-1" json:"model"`
	Muzzle      int    `form:"muzzle,default=-1" json:"muzzle"`
	Barrel      int    `form:"barrel,default=-1" json:"barrel"`
	Optic       int    `form:"optic,default=-1" json:"optic"`
	Stock       int    `form:"stock,default=-1" json:"stock"`
	Grip        int    `form:"grip,default=-1" json:"grip"`
	Magazine    int    `form:"magazine,default=-1" json:"magazine"`
	Underbarrel int    `form:"underbarrel,default=-1" json:"underbarrel"`
	Laser       int    `form:"laser,default=-1" json:"laser"`
	Perk        int    `form:"perk,default=-1" json:"perk"`
	Tags        string `form:"tags" json:"tags"`
}

// Slots returns the submitted slot values keyed by slot
func (f *LoadoutForm) Slots() map[models.AttachmentSlot]int {
	return map[models.AttachmentSlot]int{
		models.SlotMuzzle:      f.Muzzle,
		models.SlotBarrel:      f.Barrel,
		models.SlotOptic:       f.Optic,
		models.SlotStock:       f.Stock,
		models.SlotGrip:        f.Grip,
		models.SlotMagazine:    f.Magazine,
		models.SlotUnderbarrel: f.Underbarrel,
		models.SlotLaser:       f.Laser,
		models.SlotPerk:        f.Perk,
	}
}

// LoadoutDraft is the editable state of a new loadout. Slots only holds the
// populated slots.
type LoadoutDraft struct {
	Name  string                        `json:"name" validate:"required,max=100"`
	Model int                           `json:"model" validate:"gte=0"`
	Slots map[models.AttachmentSlot]int `json:"slots" validate:"dive,gte=0"`
	Tags  []string                      `json:"tags"`
}

// LoadoutResponse represents a loadout in API responses
type LoadoutResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	User        uuid.UUID       `json:"user"`
	Username    string          `json:"username"`
	Model       uint            `json:"model"`
	ModelName   string          `json:"model_name,omitempty"`
	Attachments map[string]uint `json:"attachments"`
	Tags        []string        `json:"tags"`
	Rating      int             `json:"rating"`
	Liked       bool            `json:"liked"`
	CreatedAt   time.Time       `json:"created_at"`
}

var loadoutMessages = fieldMessages{
	"Name":  {key: "name", message: "Name is required"},
	"Model": {key: "model", message: "Please select a model"},
	"Slots": {key: "attachment", message: "Invalid attachment selected"},
}

// NewLoadoutService creates a new loadout service
func NewLoadoutService(
	loadoutRepo repository.LoadoutRepositoryInterface,
	likeRepo repository.LikeRepositoryInterface,
	validator *validator.Validate,
	cfg *config.Config,
	tables TableRefresher,
) *LoadoutService {
	s := &LoadoutService{
		loadoutRepo:    loadoutRepo,
		likeRepo:       likeRepo,
		validator:      validator,
		maxAttachments: cfg.MaxLoadoutAttachments,
	}
	s.sessions = newSessionStore(editor.Config[LoadoutDraft]{
		Entity:    "loadout",
		Blank:     func() LoadoutDraft { return LoadoutDraft{Model: -1} },
		Validate:  s.validate,
		Insert:    s.insert,
		OnSuccess: refreshAfter(tables, repository.TableLoadouts),
	})
	return s
}

// Create validates the form and writes the loadout for the calling user
func (s *LoadoutService) Create(ctx context.Context, form *LoadoutForm) (*FormResponse, error) {
	if !repository.ActorFromContext(ctx).SignedIn() {
		return nil, apperrors.ErrUserNotInCtx
	}

	slots := make(map[models.AttachmentSlot]int)
	for slot, value := range form.Slots() {
		if value == -1 {
			continue
		}
		slots[slot] = value
	}

	draft := LoadoutDraft{
		Name:  strings.TrimSpace(form.Name),
		Model: form.Model,
		Slots: slots,
		Tags:  cleanList(form.Tags),
	}
	return s.sessions.submit(ctx, string(editor.ActionInsert), "", draft)
}

func (s *LoadoutService) validate(d LoadoutDraft) editor.FieldErrors {
	errs := validateDraft(s.validator, d, loadoutMessages)
	if len(d.Slots) > s.maxAttachments {
		if errs == nil {
			errs = editor.FieldErrors{}
		}
		errs["attachment"] = fmt.Sprintf("You can only select up to %d attachments", s.maxAttachments)
	}
	return errs
}

func (s *LoadoutService) insert(ctx context.Context, d LoadoutDraft) (string, error) {
	loadout := &models.Loadout{
		Name:    d.Name,
		User:    repository.ActorFromContext(ctx).UserID,
		ModelID: uint(d.Model),
		Tags:    models.JoinList(d.Tags),
	}
	for slot, value := range d.Slots {
		id := uint(value)
		if ref := loadout.SlotRef(slot); ref != nil {
			*ref = &id
		}
	}

	if err := s.loadoutRepo.Create(ctx, loadout); err != nil {
		return "", err
	}
	return loadout.ID.String(), nil
}

// GetAll lists every loadout with its rating, marking the ones the caller liked
func (s *LoadoutService) GetAll(ctx context.Context) ([]LoadoutResponse, error) {
	loadouts, err := s.loadoutRepo.GetAllWithRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loadouts: %w", err)
	}
	return s.toResponses(ctx, loadouts), nil
}

// GetMine lists the caller's own loadouts
func (s *LoadoutService) GetMine(ctx context.Context) ([]LoadoutResponse, error) {
	actor := repository.ActorFromContext(ctx)
	if !actor.SignedIn() {
		return nil, apperrors.ErrUserNotInCtx
	}

	loadouts, err := s.loadoutRepo.GetByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loadouts for user: %w", err)
	}
	return s.toResponses(ctx, loadouts), nil
}

func (s *LoadoutService) toResponses(ctx context.Context, loadouts []models.Loadout) []LoadoutResponse {
	var profile *models.Profile
	if actor := repository.ActorFromContext(ctx); actor.SignedIn() {
		p, err := s.likeRepo.GetProfile(ctx, actor.UserID)
		if err != nil {
			logger.WithContext(ctx).WithError(err).Warn("Failed to load profile for liked flags")
		} else {
			profile = p
		}
	}

	responses := make([]LoadoutResponse, len(loadouts))
	for i := range loadouts {
		l := &loadouts[i]
		resp := LoadoutResponse{
			ID:          l.ID,
			Name:        l.Name,
			User:        l.User,
			Username:    l.Username,
			Model:       l.ModelID,
			Attachments: make(map[string]uint),
			Tags:        models.SplitList(l.Tags),
			CreatedAt:   l.CreatedAt,
		}
		if l.WeaponModel != nil {
			resp.ModelName = l.WeaponModel.Name
		}
		if l.Rating != nil {
			resp.Rating = l.Rating.Rating
		}
		for _, slot := range models.AttachmentSlots {
			if ref := l.SlotRef(slot); ref != nil && *ref != nil {
				resp.Attachments[string(slot)] = **ref
			}
		}
		if profile != nil {
			resp.Liked = profile.HasLiked(l.ID.String())
		}
		responses[i] = resp
	}
	return responses
}
