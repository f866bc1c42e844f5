package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceModel provides the store-assigned numeric key shared by the
// reference tables (models, attachment types, attachments)
type ReferenceModel struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
}

// RecordID returns the primary key as the string form used by the record store
func (r ReferenceModel) RecordID() string {
	if r.ID == 0 {
		return ""
	}
	return uintToString(r.ID)
}

// OwnedModel provides UUID primary keys for user-authored rows
type OwnedModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *OwnedModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// RecordID returns the primary key as the string form used by the record store
func (base OwnedModel) RecordID() string {
	if base.ID == uuid.Nil {
		return ""
	}
	return base.ID.String()
}
