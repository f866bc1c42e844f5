package repository

import (
	"context"
	"fmt"

	apperrors "loadout-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordStore is the generic, table-named data access client. Every failure
// passes through translateError.
type RecordStore struct {
	db *gorm.DB
}

// Ensure RecordStore implements RecordStoreInterface
var _ RecordStoreInterface = (*RecordStore)(nil)

// NewRecordStore creates a new record store
func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// ListOption adjusts a List query
type ListOption struct {
	preloads []string
}

// Preload eager-loads the named associations into the listed rows
func Preload(associations ...string) ListOption {
	return ListOption{preloads: associations}
}

// Get loads the row with the given id into dest
func (s *RecordStore) Get(ctx context.Context, table Table, id string, dest interface{}) error {
	spec, err := lookup(table)
	if err != nil {
		return err
	}
	key, err := spec.parseKey(id)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Table(string(table)).Where("id = ?", key).Take(dest).Error
	return translateError(spec.entity, err)
}

// List loads every row of the table into dest, ordered by id ascending
func (s *RecordStore) List(ctx context.Context, table Table, dest interface{}, opts ...ListOption) error {
	spec, err := lookup(table)
	if err != nil {
		return err
	}

	query := s.db.WithContext(ctx).Table(string(table))
	for _, opt := range opts {
		for _, assoc := range opt.preloads {
			query = query.Preload(assoc)
		}
	}

	err = query.Order("id ASC").Find(dest).Error
	return translateError(spec.entity, err)
}

// Insert creates the record and returns its store-assigned id
func (s *RecordStore) Insert(ctx context.Context, table Table, record Record) (string, error) {
	spec, err := lookup(table)
	if err != nil {
		return "", err
	}
	if record.TableName() != string(table) {
		return "", fmt.Errorf("record for %s cannot be inserted into %s", record.TableName(), table)
	}
	if err := s.authorize(ctx, table, spec, nil); err != nil {
		return "", err
	}

	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", translateError(spec.entity, err)
	}
	return record.RecordID(), nil
}

// Update applies partial to the row with the given id. The id column is
// never rewritten.
func (s *RecordStore) Update(ctx context.Context, table Table, id string, partial map[string]interface{}) error {
	spec, err := lookup(table)
	if err != nil {
		return err
	}
	key, err := spec.parseKey(id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, table, spec, key); err != nil {
		return err
	}

	updates := make(map[string]interface{}, len(partial))
	for column, value := range partial {
		if column == "id" {
			continue
		}
		updates[column] = value
	}
	if len(updates) == 0 {
		return s.exists(ctx, table, spec, key)
	}

	result := s.db.WithContext(ctx).Model(spec.newRow()).Where("id = ?", key).Updates(updates)
	if result.Error != nil {
		return translateError(spec.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(spec.entity)
	}
	return nil
}

// Delete removes the row with the given id
func (s *RecordStore) Delete(ctx context.Context, table Table, id string) error {
	spec, err := lookup(table)
	if err != nil {
		return err
	}
	key, err := spec.parseKey(id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, table, spec, key); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("id = ?", key).Delete(spec.newRow())
	if result.Error != nil {
		return translateError(spec.entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(spec.entity)
	}
	return nil
}

// authorize enforces row-level permissions for mutations. Reference tables
// are admin-only; owned tables may only be changed by their owner. key is
// nil for inserts.
func (s *RecordStore) authorize(ctx context.Context, table Table, spec tableSpec, key interface{}) error {
	actor := ActorFromContext(ctx)
	if actor.Admin {
		return nil
	}
	if spec.adminOnly || !actor.SignedIn() {
		return permissionDenied(spec.entity)
	}
	if spec.ownerColumn == "" || key == nil {
		return nil
	}

	if err := s.exists(ctx, table, spec, key); err != nil {
		return err
	}
	var owned int64
	err := s.db.WithContext(ctx).Table(string(table)).
		Where("id = ?", key).
		Where(clause.Eq{Column: clause.Column{Name: spec.ownerColumn}, Value: actor.UserID}).
		Count(&owned).Error
	if err != nil {
		return translateError(spec.entity, err)
	}
	if owned == 0 {
		return permissionDenied(spec.entity)
	}
	return nil
}

func (s *RecordStore) exists(ctx context.Context, table Table, spec tableSpec, key interface{}) error {
	var count int64
	if err := s.db.WithContext(ctx).Table(string(table)).Where("id = ?", key).Count(&count).Error; err != nil {
		return translateError(spec.entity, err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError(spec.entity)
	}
	return nil
}
