package table

import (
	"context"
	"sync"

	apperrors "loadout-backend/internal/errors"
)

// Loader fetches the full row set of a table
type Loader[R any] func(ctx context.Context) ([]R, error)

// Fetcher fetches one row by id for the edit flow
type Fetcher[R any] func(ctx context.Context, id string) (R, error)

// EditTarget is the row currently open in the editor
type EditTarget[R any] struct {
	ID     string `json:"id"`
	Record *R     `json:"record,omitempty"`
}

// View owns the rows, sort state and filter state of one table instance.
// Async results carry the version they were requested at and are dropped
// if a newer request was started since.
type View[R any] struct {
	schema Schema[R]
	opts   Options
	load   Loader[R]
	fetch  Fetcher[R]

	mu          sync.RWMutex
	rows        []R
	sort        SortState
	filter      FilterState
	rowsVersion uint64
	editVersion uint64
	editing     *EditTarget[R]
}

// NewView creates a view over schema. fetch may be nil when the table has
// no edit flow.
func NewView[R any](schema Schema[R], opts Options, load Loader[R], fetch Fetcher[R]) *View[R] {
	return &View[R]{
		schema: schema,
		opts:   opts,
		load:   load,
		fetch:  fetch,
	}
}

// Schema returns the column set of the view
func (v *View[R]) Schema() Schema[R] {
	return v.schema
}

// Sort returns the current sort state
func (v *View[R]) Sort() SortState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.sort
}

// Filter returns the current filter state
func (v *View[R]) Filter() FilterState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filter
}

// UpdateSort applies a sort transition
func (v *View[R]) UpdateSort(fn func(SortState) SortState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = fn(v.sort)
}

// UpdateFilter applies a filter transition
func (v *View[R]) UpdateFilter(fn func(FilterState) FilterState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = fn(v.filter)
}

// BeginRefresh starts a row refresh and returns its version token
func (v *View[R]) BeginRefresh() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rowsVersion++
	return v.rowsVersion
}

// ApplyRefresh installs rows loaded for version. It reports false and
// leaves the view untouched when a newer refresh has begun.
func (v *View[R]) ApplyRefresh(version uint64, rows []R) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if version != v.rowsVersion {
		return false
	}
	v.rows = rows
	return true
}

// Refresh reloads the rows through the view's loader. It fails with
// ErrStaleResult when a newer refresh started while this one was loading.
func (v *View[R]) Refresh(ctx context.Context) error {
	version := v.BeginRefresh()
	rows, err := v.load(ctx)
	if err != nil {
		return err
	}
	if !v.ApplyRefresh(version, rows) {
		return apperrors.ErrStaleResult
	}
	return nil
}

// BeginEdit opens the editor on id and returns the fetch version token. An
// empty id opens a blank insert draft.
func (v *View[R]) BeginEdit(id string) uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editVersion++
	v.editing = &EditTarget[R]{ID: id}
	return v.editVersion
}

// ApplyEdit installs the fetched record for version, unless superseded
func (v *View[R]) ApplyEdit(version uint64, record R) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if version != v.editVersion || v.editing == nil {
		return false
	}
	v.editing = &EditTarget[R]{ID: v.editing.ID, Record: &record}
	return true
}

// Edit opens the editor on id and fetches the record for it. It fails with
// ErrStaleResult when the editor was closed or moved to another row before
// the fetch returned.
func (v *View[R]) Edit(ctx context.Context, id string) error {
	version := v.BeginEdit(id)
	if id == "" || v.fetch == nil {
		return nil
	}
	record, err := v.fetch(ctx, id)
	if err != nil {
		return err
	}
	if !v.ApplyEdit(version, record) {
		return apperrors.ErrStaleResult
	}
	return nil
}

// CloseEditor dismisses the editor
func (v *View[R]) CloseEditor() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editVersion++
	v.editing = nil
}

// Editing returns the open edit target, if any
func (v *View[R]) Editing() (EditTarget[R], bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.editing == nil {
		return EditTarget[R]{}, false
	}
	return *v.editing, true
}

// Projection returns the filtered, ordered rows
func (v *View[R]) Projection() (Projection[R], error) {
	v.mu.RLock()
	rows, sort, filter := v.rows, v.sort, v.filter
	v.mu.RUnlock()
	return Project(rows, v.schema, sort, filter, v.opts)
}

// Versions returns the current refresh and edit versions
func (v *View[R]) Versions() (rows uint64, edit uint64) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rowsVersion, v.editVersion
}
