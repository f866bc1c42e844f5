package models

import (
	"github.com/google/uuid"
)

// Loadout is a user-authored weapon configuration
type Loadout struct {
	OwnedModel
	Name     string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	User     uuid.UUID `json:"user" gorm:"column:user;type:uuid;not null;index"`
	Username string    `json:"username" gorm:"size:40"`
	ModelID  uint      `json:"model" gorm:"column:model;not null"`
	Tags     string    `json:"tags"`

	Muzzle      *uint `json:"muzzle"`
	Barrel      *uint `json:"barrel"`
	Optic       *uint `json:"optic"`
	Stock       *uint `json:"stock"`
	Grip        *uint `json:"grip"`
	Magazine    *uint `json:"magazine"`
	Underbarrel *uint `json:"underbarrel"`
	Laser       *uint `json:"laser"`
	Perk        *uint `json:"perk"`

	WeaponModel *Model         `json:"model_detail,omitempty" gorm:"foreignKey:ModelID"`
	Rating      *LoadoutRating `json:"rating,omitempty" gorm:"foreignKey:ID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Loadout
func (Loadout) TableName() string {
	return "loadouts"
}

// SlotRef returns a pointer to the attachment reference stored for slot
func (l *Loadout) SlotRef(slot AttachmentSlot) **uint {
	switch slot {
	case SlotMuzzle:
		return &l.Muzzle
	case SlotBarrel:
		return &l.Barrel
	case SlotOptic:
		return &l.Optic
	case SlotStock:
		return &l.Stock
	case SlotGrip:
		return &l.Grip
	case SlotMagazine:
		return &l.Magazine
	case SlotUnderbarrel:
		return &l.Underbarrel
	case SlotLaser:
		return &l.Laser
	case SlotPerk:
		return &l.Perk
	}
	return nil
}

// AttachmentCount returns how many slots are populated
func (l *Loadout) AttachmentCount() int {
	count := 0
	for _, slot := range AttachmentSlots {
		if ref := l.SlotRef(slot); ref != nil && *ref != nil {
			count++
		}
	}
	return count
}

// LoadoutRating is the like counter of a loadout and shares its id
type LoadoutRating struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Rating int       `json:"rating" gorm:"not null;default:0"`
}

// TableName returns the table name for LoadoutRating
func (LoadoutRating) TableName() string {
	return "loadout_ratings"
}

// RecordID returns the primary key as the string form used by the record store
func (r LoadoutRating) RecordID() string {
	return r.ID.String()
}
