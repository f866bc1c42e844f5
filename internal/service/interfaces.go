package service

import (
	"context"

	"loadout-backend/internal/table"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ModelServiceInterface defines the interface for weapon model service
type ModelServiceInterface interface {
	Submit(ctx context.Context, form *ModelForm) (*FormResponse, error)
	GetAll(ctx context.Context) ([]ModelResponse, error)
	GetByID(ctx context.Context, id string) (*ModelResponse, error)
}

// AttachmentTypeServiceInterface defines the interface for attachment type service
type AttachmentTypeServiceInterface interface {
	Submit(ctx context.Context, form *AttachmentTypeForm) (*FormResponse, error)
	GetAll(ctx context.Context) ([]AttachmentTypeResponse, error)
	GetByID(ctx context.Context, id string) (*AttachmentTypeResponse, error)
}

// AttachmentServiceInterface defines the interface for attachment service
type AttachmentServiceInterface interface {
	Submit(ctx context.Context, form *AttachmentForm) (*FormResponse, error)
	GetAll(ctx context.Context) ([]AttachmentResponse, error)
	GetByID(ctx context.Context, id string) (*AttachmentResponse, error)
}

// LoadoutServiceInterface defines the interface for loadout service
type LoadoutServiceInterface interface {
	Create(ctx context.Context, form *LoadoutForm) (*FormResponse, error)
	GetAll(ctx context.Context) ([]LoadoutResponse, error)
	GetMine(ctx context.Context) ([]LoadoutResponse, error)
}

// LikeServiceInterface defines the interface for the like protocol
type LikeServiceInterface interface {
	Toggle(ctx context.Context, userID uuid.UUID, post string) (*LikeResult, error)
	State(ctx context.Context, userID uuid.UUID, post string) (*LikeResult, error)
}

// TableServiceInterface defines the interface for server-held table views
type TableServiceInterface interface {
	Tables() []string
	Snapshot(ctx context.Context, session, name string) (*table.Snapshot, error)
	Dispatch(ctx context.Context, session, name string, intent table.Intent) (*IntentResponse, error)
	RefreshTable(ctx context.Context, name string)
	Drop(session string)
}

// TableRefresher marks every open view of a table for reload after a
// committed mutation
type TableRefresher interface {
	RefreshTable(ctx context.Context, name string)
}
