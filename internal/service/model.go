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

// ModelService handles business logic for weapon models
type ModelService struct {
	store     repository.RecordStoreInterface
	validator *validator.Validate
	sessions  *sessionStore[ModelDraft]
}

// Ensure ModelService implements ModelServiceInterface
var _ ModelServiceInterface = (*ModelService)(nil)

// ModelForm is the weapon model form submission
type ModelForm struct {
	ID     string `form:"id" json:"id"`
	Name   string `form:"name" json:"name"`
	Type   string `form:"type" json:"type"`
	Intent string `form:"intent" json:"intent"`
}

// ModelDraft is the editable state of a weapon model
type ModelDraft struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,oneof=assault sniper lmg smg shotgun marksman"`
}

// ModelResponse represents a weapon model in API responses
type ModelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

var modelMessages = fieldMessages{
	"Name": {key: "name", message: "Name is required"},
	"Type": {key: "type", message: "Please select a weapon category"},
}

// NewModelService creates a new weapon model service
func NewModelService(store repository.RecordStoreInterface, validator *validator.Validate, tables TableRefresher) *ModelService {
	s := &ModelService{store: store, validator: validator}
	s.sessions = newSessionStore(editor.Config[ModelDraft]{
		Entity:      "model",
		Blank:       func() ModelDraft { return ModelDraft{} },
		UniqueField: "name",
		Validate: func(d ModelDraft) editor.FieldErrors {
			return validateDraft(s.validator, d, modelMessages)
		},
		Insert: func(ctx context.Context, d ModelDraft) (string, error) {
			return s.store.Insert(ctx, repository.TableModels, &models.Model{
				Name: d.Name,
				Type: models.WeaponCategory(d.Type),
			})
		},
		Update: func(ctx context.Context, id string, d ModelDraft) error {
			return s.store.Update(ctx, repository.TableModels, id, map[string]interface{}{
				"name": d.Name,
				"type": d.Type,
			})
		},
		Delete: func(ctx context.Context, id string) error {
			return s.store.Delete(ctx, repository.TableModels, id)
		},
		OnSuccess: refreshAfter(tables, repository.TableModels),
	})
	return s
}

// Submit runs the model form through the caller's editor session
func (s *ModelService) Submit(ctx context.Context, form *ModelForm) (*FormResponse, error) {
	draft := ModelDraft{
		Name: strings.TrimSpace(form.Name),
		Type: strings.ToLower(strings.TrimSpace(form.Type)),
	}
	return s.sessions.submit(ctx, form.Intent, form.ID, draft)
}

// GetAll retrieves every weapon model in id order
func (s *ModelService) GetAll(ctx context.Context) ([]ModelResponse, error) {
	var rows []models.Model
	if err := s.store.List(ctx, repository.TableModels, &rows); err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	responses := make([]ModelResponse, len(rows))
	for i := range rows {
		responses[i] = *s.toResponse(&rows[i])
	}
	return responses, nil
}

// GetByID retrieves one weapon model for the edit flow
func (s *ModelService) GetByID(ctx context.Context, id string) (*ModelResponse, error) {
	var m models.Model
	if err := s.store.Get(ctx, repository.TableModels, id, &m); err != nil {
		return nil, err
	}
	return s.toResponse(&m), nil
}

func (s *ModelService) toResponse(m *models.Model) *ModelResponse {
	return &ModelResponse{
		ID:   m.ID,
		Name: m.Name,
		Type: string(m.Type),
	}
}
