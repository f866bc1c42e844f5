package table

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	apperrors "loadout-backend/internal/errors"
)

// TableView is a type-erased table instance the registry can hold
type TableView interface {
	Name() string
	Dispatch(ctx context.Context, intent Intent) (Effect, error)
	Refresh(ctx context.Context) error
	// Invalidate marks the rows as outdated; RefreshIfStale reloads them
	Invalidate()
	RefreshIfStale(ctx context.Context) error
	Snapshot() (Snapshot, error)
	Close()
}

// Snapshot is the serializable state of a table view
type Snapshot struct {
	Table   string        `json:"table"`
	Columns []ColumnInfo  `json:"columns"`
	Rows    []SnapshotRow `json:"rows"`
	Empty   bool          `json:"empty"`
	Sort    []SortKey     `json:"sort"`
	Filters []FilterEntry `json:"filters"`
	Editing *SnapshotEdit `json:"editing,omitempty"`
	Version uint64        `json:"version"`
}

// SnapshotRow is one rendered row
type SnapshotRow struct {
	EditID string            `json:"edit_id"`
	Cells  map[string]string `json:"cells"`
}

// SnapshotEdit is the editor target of a snapshot
type SnapshotEdit struct {
	ID     string      `json:"id"`
	Record interface{} `json:"record,omitempty"`
}

// Instance binds a view to its controls under a table name
type Instance[R any] struct {
	name     string
	view     *View[R]
	controls *Controls[R]
	stale    atomic.Bool
}

// Ensure Instance implements TableView
var _ TableView = (*Instance[struct{}])(nil)

// NewInstance creates a named table instance
func NewInstance[R any](name string, view *View[R], debouncer *Debouncer) *Instance[R] {
	return &Instance[R]{
		name:     name,
		view:     view,
		controls: NewControls(view, debouncer),
	}
}

// Name returns the table name
func (i *Instance[R]) Name() string {
	return i.name
}

// View returns the underlying view
func (i *Instance[R]) View() *View[R] {
	return i.view
}

// Dispatch forwards intent to the controls
func (i *Instance[R]) Dispatch(ctx context.Context, intent Intent) (Effect, error) {
	return i.controls.Dispatch(ctx, intent)
}

// Refresh reloads the rows
func (i *Instance[R]) Refresh(ctx context.Context) error {
	return i.view.Refresh(ctx)
}

// Invalidate marks the rows as outdated
func (i *Instance[R]) Invalidate() {
	i.stale.Store(true)
}

// RefreshIfStale reloads the rows when they were invalidated. A reload
// superseded by a newer one counts as done.
func (i *Instance[R]) RefreshIfStale(ctx context.Context) error {
	if !i.stale.CompareAndSwap(true, false) {
		return nil
	}
	err := i.view.Refresh(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrStaleResult) {
		i.stale.Store(true)
		return err
	}
	return nil
}

// Snapshot renders the current projection
func (i *Instance[R]) Snapshot() (Snapshot, error) {
	projection, err := i.view.Projection()
	if err != nil {
		return Snapshot{}, err
	}

	rows := make([]SnapshotRow, 0, len(projection.Rows))
	for _, r := range projection.Rows {
		rows = append(rows, SnapshotRow{EditID: r.EditID, Cells: r.Cells})
	}
	version, _ := i.view.Versions()

	snap := Snapshot{
		Table:   i.name,
		Columns: projection.Columns,
		Rows:    rows,
		Empty:   projection.Empty(),
		Sort:    i.view.Sort().Keys(),
		Filters: i.view.Filter().Entries(),
		Version: version,
	}
	if target, ok := i.view.Editing(); ok {
		edit := &SnapshotEdit{ID: target.ID}
		if target.Record != nil {
			edit.Record = target.Record
		}
		snap.Editing = edit
	}
	return snap, nil
}

// Close stops pending debounced work
func (i *Instance[R]) Close() {
	i.controls.Stop()
}

// Factory builds a fresh table view by name
type Factory func(table string) (TableView, error)

// Registry keeps one independent view per (session, table). Sessions left
// untouched for longer than the idle window are evicted.
type Registry struct {
	factory Factory
	idle    time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionViews
}

type sessionViews struct {
	views    map[string]TableView
	lastUsed time.Time
}

// NewRegistry creates a registry that builds views with factory. An idle
// window of zero keeps sessions until they are dropped.
func NewRegistry(factory Factory, idle time.Duration) *Registry {
	return &Registry{
		factory:  factory,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[string]*sessionViews),
	}
}

// Get returns the session's view of table, creating and loading it on first
// use and reloading it when it was invalidated since
func (r *Registry) Get(ctx context.Context, session, table string) (TableView, error) {
	r.mu.Lock()
	now := r.now()
	r.evictIdleLocked(now)
	if sv, ok := r.sessions[session]; ok {
		sv.lastUsed = now
		if view, ok := sv.views[table]; ok {
			r.mu.Unlock()
			if err := view.RefreshIfStale(ctx); err != nil {
				return nil, err
			}
			return view, nil
		}
	}
	r.mu.Unlock()

	view, err := r.factory(table)
	if err != nil {
		return nil, err
	}
	if err := view.Refresh(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	sv, ok := r.sessions[session]
	if !ok {
		sv = &sessionViews{views: make(map[string]TableView)}
		r.sessions[session] = sv
	}
	sv.lastUsed = r.now()
	if existing, ok := sv.views[table]; ok {
		view.Close()
		return existing, nil
	}
	sv.views[table] = view
	return view, nil
}

// Drop discards every view of a session
func (r *Registry) Drop(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dropLocked(session)
}

// Invalidate marks every open view of table as outdated. Each view reloads
// on its next use.
func (r *Registry) Invalidate(table string) {
	for _, view := range r.Views(table) {
		view.Invalidate()
	}
}

// Views returns every open view of table across sessions
func (r *Registry) Views(table string) []TableView {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TableView
	for _, sv := range r.sessions {
		if view, ok := sv.views[table]; ok {
			out = append(out, view)
		}
	}
	return out
}

// Sessions returns how many sessions hold views
func (r *Registry) Sessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) evictIdleLocked(now time.Time) {
	if r.idle <= 0 {
		return
	}
	for session, sv := range r.sessions {
		if now.Sub(sv.lastUsed) > r.idle {
			r.dropLocked(session)
		}
	}
}

func (r *Registry) dropLocked(session string) {
	sv, ok := r.sessions[session]
	if !ok {
		return
	}
	for _, view := range sv.views {
		view.Close()
	}
	delete(r.sessions, session)
}
