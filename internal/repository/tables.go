package repository

import (
	"strconv"

	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"

	"github.com/google/uuid"
)

// Table names a table the record store can reach
type Table string

const (
	TableModels          Table = "models"
	TableAttachmentTypes Table = "attachment_names"
	TableAttachments     Table = "attachments"
	TableLoadouts        Table = "loadouts"
	TableLoadoutRatings  Table = "loadout_ratings"
	TableProfiles        Table = "profiles"
)

// Record is a row that can be inserted through the record store
type Record interface {
	TableName() string
	RecordID() string
}

type keyKind int

const (
	keyNumeric keyKind = iota
	keyUUID
)

type tableSpec struct {
	entity      string
	key         keyKind
	newRow      func() interface{}
	adminOnly   bool
	ownerColumn string
}

var registry = map[Table]tableSpec{
	TableModels: {
		entity:    "model",
		key:       keyNumeric,
		newRow:    func() interface{} { return &models.Model{} },
		adminOnly: true,
	},
	TableAttachmentTypes: {
		entity:    "attachment type",
		key:       keyNumeric,
		newRow:    func() interface{} { return &models.AttachmentType{} },
		adminOnly: true,
	},
	TableAttachments: {
		entity:    "attachment",
		key:       keyNumeric,
		newRow:    func() interface{} { return &models.Attachment{} },
		adminOnly: true,
	},
	TableLoadouts: {
		entity:      "loadout",
		key:         keyUUID,
		newRow:      func() interface{} { return &models.Loadout{} },
		ownerColumn: "user",
	},
	TableLoadoutRatings: {
		entity:    "loadout rating",
		key:       keyUUID,
		newRow:    func() interface{} { return &models.LoadoutRating{} },
		adminOnly: true,
	},
	TableProfiles: {
		entity:      "profile",
		key:         keyUUID,
		newRow:      func() interface{} { return &models.Profile{} },
		ownerColumn: "id",
	},
}

// IsValid reports whether the table is registered
func (t Table) IsValid() bool {
	_, ok := registry[t]
	return ok
}

// Entity returns the human readable entity name stored in the table
func (t Table) Entity() string {
	if spec, ok := registry[t]; ok {
		return spec.entity
	}
	return string(t)
}

func lookup(t Table) (tableSpec, error) {
	spec, ok := registry[t]
	if !ok {
		return tableSpec{}, apperrors.ErrTableNotFound
	}
	return spec, nil
}

// parseKey converts the string id to the column's native key type
func (s tableSpec) parseKey(id string) (interface{}, error) {
	switch s.key {
	case keyNumeric:
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			return nil, apperrors.NewValidationError("id", "Invalid "+s.entity+" id")
		}
		return n, nil
	default:
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, apperrors.NewValidationError("id", "Invalid "+s.entity+" id")
		}
		return u, nil
	}
}
