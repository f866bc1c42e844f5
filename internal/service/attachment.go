package service

import (
	"context"
	"fmt"
	"strconv"

	"loadout-backend/internal/database/models"
	"loadout-backend/internal/editor"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// AttachmentService handles business logic for attachments
type AttachmentService struct {
	store     repository.RecordStoreInterface
	validator *validator.Validate
	sessions  *sessionStore[AttachmentDraft]
}

// Ensure AttachmentService implements AttachmentServiceInterface
var _ AttachmentServiceInterface = (*AttachmentService)(nil)

// AttachmentForm is the attachment form submission. Pros and cons are
// comma-joined; model and type are -1 when unselected.
type AttachmentForm struct {
	ID     string `form:"id" json:"id"`
	Model  int    `form:"model,default=-1" json:"model"`
	Type   int    `form:"type,default=-1" json:"type"`
	Pros   string `form:"pros" json:"pros"`
	Cons   string `form:"cons" json:"cons"`
	Intent string `form:"intent" json:"intent"`
}

// AttachmentDraft is the editable state of an attachment
type AttachmentDraft struct {
	Model int      `json:"model" validate:"gte=0"`
	Type  int      `json:"type" validate:"gte=0"`
	Pros  []string `json:"pros" validate:"dive,max=200"`
	Cons  []string `json:"cons" validate:"dive,max=200"`
}

// AttachmentResponse represents an attachment with its model and type names
type AttachmentResponse struct {
	ID        uint     `json:"id"`
	Model     uint     `json:"model"`
	ModelName string   `json:"model_name,omitempty"`
	Type      uint     `json:"type"`
	TypeName  string   `json:"type_name,omitempty"`
	Slot      string   `json:"slot,omitempty"`
	Pros      []string `json:"pros"`
	Cons      []string `json:"cons"`
}

var attachmentMessages = fieldMessages{
	"Model": {key: "model", message: "Please select a model"},
	"Type":  {key: "type", message: "Please select an attachment type"},
	"Pros":  {key: "pros", message: "Each pro must be at most 200 characters"},
	"Cons":  {key: "cons", message: "Each con must be at most 200 characters"},
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(store repository.RecordStoreInterface, validator *validator.Validate, tables TableRefresher) *AttachmentService {
	s := &AttachmentService{store: store, validator: validator}
	s.sessions = newSessionStore(editor.Config[AttachmentDraft]{
		Entity: "attachment",
		Blank: func() AttachmentDraft {
			return AttachmentDraft{Model: -1, Type: -1, Pros: []string{}, Cons: []string{}}
		},
		Validate: func(d AttachmentDraft) editor.FieldErrors {
			return validateDraft(s.validator, d, attachmentMessages)
		},
		Insert: func(ctx context.Context, d AttachmentDraft) (string, error) {
			return s.store.Insert(ctx, repository.TableAttachments, &models.Attachment{
				ModelID:         uint(d.Model),
				TypeID:          uint(d.Type),
				Characteristics: models.NewCharacteristics(d.Pros, d.Cons),
			})
		},
		Update: func(ctx context.Context, id string, d AttachmentDraft) error {
			return s.store.Update(ctx, repository.TableAttachments, id, map[string]interface{}{
				"model":           uint(d.Model),
				"type":            uint(d.Type),
				"characteristics": models.NewCharacteristics(d.Pros, d.Cons),
			})
		},
		Delete: func(ctx context.Context, id string) error {
			return s.store.Delete(ctx, repository.TableAttachments, id)
		},
		OnSuccess: refreshAfter(tables, repository.TableAttachments),
	})
	return s
}

// Submit runs the attachment form through the caller's editor session
func (s *AttachmentService) Submit(ctx context.Context, form *AttachmentForm) (*FormResponse, error) {
	draft := AttachmentDraft{
		Model: form.Model,
		Type:  form.Type,
		Pros:  cleanList(form.Pros),
		Cons:  cleanList(form.Cons),
	}
	return s.sessions.submit(ctx, form.Intent, form.ID, draft)
}

// GetAll retrieves every attachment with its model and type names
func (s *AttachmentService) GetAll(ctx context.Context) ([]AttachmentResponse, error) {
	var rows []models.Attachment
	err := s.store.List(ctx, repository.TableAttachments, &rows, repository.Preload("WeaponModel", "AttachmentType"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	responses := make([]AttachmentResponse, len(rows))
	for i := range rows {
		responses[i] = *toAttachmentResponse(&rows[i])
	}
	return responses, nil
}

// GetByID retrieves one attachment for the edit flow. The model and type
// names are looked up alongside.
func (s *AttachmentService) GetByID(ctx context.Context, id string) (*AttachmentResponse, error) {
	var a models.Attachment
	if err := s.store.Get(ctx, repository.TableAttachments, id, &a); err != nil {
		return nil, err
	}

	var m models.Model
	var t models.AttachmentType
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ignoreNotFound(s.store.Get(gctx, repository.TableModels, strconv.FormatUint(uint64(a.ModelID), 10), &m))
	})
	g.Go(func() error {
		return ignoreNotFound(s.store.Get(gctx, repository.TableAttachmentTypes, strconv.FormatUint(uint64(a.TypeID), 10), &t))
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve attachment references: %w", err)
	}
	if m.ID != 0 {
		a.WeaponModel = &m
	}
	if t.ID != 0 {
		a.AttachmentType = &t
	}
	return toAttachmentResponse(&a), nil
}

func toAttachmentResponse(a *models.Attachment) *AttachmentResponse {
	c := a.Characteristics.Data()
	resp := &AttachmentResponse{
		ID:    a.ID,
		Model: a.ModelID,
		Type:  a.TypeID,
		Pros:  c.Pros,
		Cons:  c.Cons,
	}
	if resp.Pros == nil {
		resp.Pros = []string{}
	}
	if resp.Cons == nil {
		resp.Cons = []string{}
	}
	if a.WeaponModel != nil {
		resp.ModelName = a.WeaponModel.Name
	}
	if a.AttachmentType != nil {
		resp.TypeName = a.AttachmentType.Name
		resp.Slot = string(a.AttachmentType.Type)
	}
	return resp
}

func ignoreNotFound(err error) error {
	if apperrors.IsNotFound(err) {
		return nil
	}
	return err
}
