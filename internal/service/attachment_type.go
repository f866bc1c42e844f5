package service

import (
	"context"
	"fmt"
	"strings"

	"loadout-backend/internal/database/models"
	"loadout-backend/internal/editor"
	"loadout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// AttachmentTypeService handles business logic for attachment types.
// Names are unique; the store reports a duplicate as a conflict.
type AttachmentTypeService struct {
	store     repository.RecordStoreInterface
	validator *validator.Validate
	sessions  *sessionStore[AttachmentTypeDraft]
}

// Ensure AttachmentTypeService implements AttachmentTypeServiceInterface
var _ AttachmentTypeServiceInterface = (*AttachmentTypeService)(nil)

// AttachmentTypeForm is the attachment type form submission
type AttachmentTypeForm struct {
	ID     string `form:"id" json:"id"`
	Name   string `form:"name" json:"name"`
	Type   string `form:"type" json:"type"`
	Intent string `form:"intent" json:"intent"`
}

// AttachmentTypeDraft is the editable state of an attachment type
type AttachmentTypeDraft struct {
	Name string `json:"name" validate:"required,max=100"`
	Slot string `json:"type" validate:"required,oneof=muzzle barrel optic stock grip magazine underbarrel laser perk"`
}

// AttachmentTypeResponse represents an attachment type in API responses
type AttachmentTypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

var attachmentTypeMessages = fieldMessages{
	"Name": {key: "name", message: "Name is required"},
	"Slot": {key: "type", message: "Please select an attachment slot"},
}

// NewAttachmentTypeService creates a new attachment type service
func NewAttachmentTypeService(store repository.RecordStoreInterface, validator *validator.Validate, tables TableRefresher) *AttachmentTypeService {
	s := &AttachmentTypeService{store: store, validator: validator}
	s.sessions = newSessionStore(editor.Config[AttachmentTypeDraft]{
		Entity:      "attachment type",
		Blank:       func() AttachmentTypeDraft { return AttachmentTypeDraft{} },
		UniqueField: "name",
		Validate: func(d AttachmentTypeDraft) editor.FieldErrors {
			return validateDraft(s.validator, d, attachmentTypeMessages)
		},
		Insert: func(ctx context.Context, d AttachmentTypeDraft) (string, error) {
			return s.store.Insert(ctx, repository.TableAttachmentTypes, &models.AttachmentType{
				Name: d.Name,
				Type: models.AttachmentSlot(d.Slot),
			})
		},
		Update: func(ctx context.Context, id string, d AttachmentTypeDraft) error {
			return s.store.Update(ctx, repository.TableAttachmentTypes, id, map[string]interface{}{
				"name": d.Name,
				"type": d.Slot,
			})
		},
		Delete: func(ctx context.Context, id string) error {
			return s.store.Delete(ctx, repository.TableAttachmentTypes, id)
		},
		OnSuccess: refreshAfter(tables, repository.TableAttachmentTypes),
	})
	return s
}

// Submit runs the attachment type form through the caller's editor session
func (s *AttachmentTypeService) Submit(ctx context.Context, form *AttachmentTypeForm) (*FormResponse, error) {
	draft := AttachmentTypeDraft{
		Name: strings.TrimSpace(form.Name),
		Slot: strings.ToLower(strings.TrimSpace(form.Type)),
	}
	return s.sessions.submit(ctx, form.Intent, form.ID, draft)
}

// GetAll retrieves every attachment type in id order
func (s *AttachmentTypeService) GetAll(ctx context.Context) ([]AttachmentTypeResponse, error) {
	var rows []models.AttachmentType
	if err := s.store.List(ctx, repository.TableAttachmentTypes, &rows); err != nil {
		return nil, fmt.Errorf("failed to list attachment types: %w", err)
	}

	responses := make([]AttachmentTypeResponse, len(rows))
	for i, t := range rows {
		responses[i] = AttachmentTypeResponse{ID: t.ID, Name: t.Name, Type: string(t.Type)}
	}
	return responses, nil
}

// GetByID retrieves one attachment type for the edit flow
func (s *AttachmentTypeService) GetByID(ctx context.Context, id string) (*AttachmentTypeResponse, error) {
	var t models.AttachmentType
	if err := s.store.Get(ctx, repository.TableAttachmentTypes, id, &t); err != nil {
		return nil, err
	}
	return &AttachmentTypeResponse{ID: t.ID, Name: t.Name, Type: string(t.Type)}, nil
}
