package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"loadout-backend/internal/config"
	"loadout-backend/internal/database/models"
	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/logger"
	"loadout-backend/internal/repository"
	"loadout-backend/internal/table"
)

// TableService keeps the server-held table views of every session
type TableService struct {
	store    repository.RecordStoreInterface
	registry *table.Registry
	opts     table.Options
	debounce time.Duration
}

// Ensure TableService implements TableServiceInterface
var _ TableServiceInterface = (*TableService)(nil)

// IntentResponse is the effect of a dispatched intent and the table after it
type IntentResponse struct {
	Effect   table.Effect   `json:"effect"`
	Snapshot table.Snapshot `json:"table"`
}

var tableNames = []string{
	string(repository.TableModels),
	string(repository.TableAttachmentTypes),
	string(repository.TableAttachments),
	string(repository.TableLoadouts),
}

// NewTableService creates a new table service
func NewTableService(store repository.RecordStoreInterface, cfg *config.Config) *TableService {
	s := &TableService{
		store:    store,
		debounce: cfg.FilterDebounce(),
	}
	if cfg.ExactFilterMatch() {
		s.opts.Match = table.MatchExact
	}
	s.registry = table.NewRegistry(s.build, cfg.TableViewIdle())
	return s
}

// Tables returns the names of the tables that can be viewed
func (s *TableService) Tables() []string {
	return append([]string(nil), tableNames...)
}

// Snapshot returns the caller's view of the table
func (s *TableService) Snapshot(ctx context.Context, session, name string) (*table.Snapshot, error) {
	view, err := s.view(ctx, session, name)
	if err != nil {
		return nil, err
	}
	snap, err := view.Snapshot()
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Dispatch applies intent to the caller's view of the table
func (s *TableService) Dispatch(ctx context.Context, session, name string, intent table.Intent) (*IntentResponse, error) {
	if !intent.Kind.IsValid() {
		return nil, apperrors.ErrInvalidIntent
	}
	view, err := s.view(ctx, session, name)
	if err != nil {
		return nil, err
	}

	effect, err := view.Dispatch(ctx, intent)
	if err != nil {
		return nil, err
	}
	snap, err := view.Snapshot()
	if err != nil {
		return nil, err
	}
	return &IntentResponse{Effect: effect, Snapshot: snap}, nil
}

// RefreshTable marks every open view of the table as outdated. Each view
// reloads on its next snapshot or intent.
func (s *TableService) RefreshTable(ctx context.Context, name string) {
	s.registry.Invalidate(name)
	logger.WithContext(ctx).WithField("table", name).Debug("Invalidated open table views")
}

// Drop discards the views of a session
func (s *TableService) Drop(session string) {
	s.registry.Drop(session)
}

// view enforces table access and returns the session's view. Reference
// tables need an admin; loadouts are open to any signed-in user.
func (s *TableService) view(ctx context.Context, session, name string) (table.TableView, error) {
	actor := repository.ActorFromContext(ctx)
	if !actor.SignedIn() {
		return nil, apperrors.ErrUserNotInCtx
	}
	if name != string(repository.TableLoadouts) && !actor.Admin {
		return nil, apperrors.ErrAdminRequired
	}
	return s.registry.Get(ctx, session, name)
}

func (s *TableService) build(name string) (table.TableView, error) {
	debouncer := table.NewDebouncer(s.debounce)
	switch repository.Table(name) {
	case repository.TableModels:
		return table.NewInstance(name, table.NewView(modelSchema(), s.opts,
			listLoader[models.Model](s.store, repository.TableModels),
			getFetcher[models.Model](s.store, repository.TableModels)), debouncer), nil
	case repository.TableAttachmentTypes:
		return table.NewInstance(name, table.NewView(attachmentTypeSchema(), s.opts,
			listLoader[models.AttachmentType](s.store, repository.TableAttachmentTypes),
			getFetcher[models.AttachmentType](s.store, repository.TableAttachmentTypes)), debouncer), nil
	case repository.TableAttachments:
		return table.NewInstance(name, table.NewView(attachmentSchema(), s.opts,
			listLoader[models.Attachment](s.store, repository.TableAttachments, repository.Preload("WeaponModel", "AttachmentType")),
			getFetcher[models.Attachment](s.store, repository.TableAttachments)), debouncer), nil
	case repository.TableLoadouts:
		return table.NewInstance(name, table.NewView(loadoutSchema(), s.opts,
			listLoader[models.Loadout](s.store, repository.TableLoadouts, repository.Preload("WeaponModel", "Rating")),
			getFetcher[models.Loadout](s.store, repository.TableLoadouts)), debouncer), nil
	}
	return nil, apperrors.ErrTableNotFound
}

func listLoader[R any](store repository.RecordStoreInterface, name repository.Table, opts ...repository.ListOption) table.Loader[R] {
	return func(ctx context.Context) ([]R, error) {
		var rows []R
		if err := store.List(ctx, name, &rows, opts...); err != nil {
			return nil, err
		}
		return rows, nil
	}
}

func getFetcher[R any](store repository.RecordStoreInterface, name repository.Table) table.Fetcher[R] {
	return func(ctx context.Context, id string) (R, error) {
		var row R
		err := store.Get(ctx, name, id, &row)
		return row, err
	}
}

func idColumn[R any](id func(R) uint) table.Column[R] {
	return table.Column[R]{
		Key:        "id",
		Header:     "ID",
		Accessor:   func(r R) table.Value { return table.Int(int64(id(r))) },
		Sortable:   true,
		Filterable: true,
	}
}

func textColumn[R any](key, header string, text func(R) string) table.Column[R] {
	return table.Column[R]{
		Key:        key,
		Header:     header,
		Accessor:   func(r R) table.Value { return table.Text(text(r)) },
		Sortable:   true,
		Filterable: true,
	}
}

func modelSchema() table.Schema[models.Model] {
	return table.Schema[models.Model]{
		Columns: []table.Column[models.Model]{
			idColumn(func(m models.Model) uint { return m.ID }),
			textColumn("name", "Name", func(m models.Model) string { return m.Name }),
			textColumn("type", "Category", func(m models.Model) string { return string(m.Type) }),
		},
		ID: func(m models.Model) string { return m.RecordID() },
	}
}

func attachmentTypeSchema() table.Schema[models.AttachmentType] {
	return table.Schema[models.AttachmentType]{
		Columns: []table.Column[models.AttachmentType]{
			idColumn(func(t models.AttachmentType) uint { return t.ID }),
			textColumn("name", "Name", func(t models.AttachmentType) string { return t.Name }),
			textColumn("type", "Slot", func(t models.AttachmentType) string { return string(t.Type) }),
		},
		ID: func(t models.AttachmentType) string { return t.RecordID() },
	}
}

func attachmentSchema() table.Schema[models.Attachment] {
	listColumn := func(key, header string, pick func(models.Characteristics) []string) table.Column[models.Attachment] {
		return table.Column[models.Attachment]{
			Key:    key,
			Header: header,
			Accessor: func(a models.Attachment) table.Value {
				return table.Text(strings.Join(pick(a.Characteristics.Data()), ", "))
			},
			Filterable: true,
		}
	}

	return table.Schema[models.Attachment]{
		Columns: []table.Column[models.Attachment]{
			idColumn(func(a models.Attachment) uint { return a.ID }),
			textColumn("model", "Model", func(a models.Attachment) string {
				if a.WeaponModel != nil {
					return a.WeaponModel.Name
				}
				return strconv.FormatUint(uint64(a.ModelID), 10)
			}),
			textColumn("type", "Type", func(a models.Attachment) string {
				if a.AttachmentType != nil {
					return a.AttachmentType.Name
				}
				return strconv.FormatUint(uint64(a.TypeID), 10)
			}),
			listColumn("pros", "Pros", func(c models.Characteristics) []string { return c.Pros }),
			listColumn("cons", "Cons", func(c models.Characteristics) []string { return c.Cons }),
		},
		ID: func(a models.Attachment) string { return a.RecordID() },
	}
}

func loadoutSchema() table.Schema[models.Loadout] {
	return table.Schema[models.Loadout]{
		Columns: []table.Column[models.Loadout]{
			textColumn("name", "Name", func(l models.Loadout) string { return l.Name }),
			textColumn("username", "Author", func(l models.Loadout) string { return l.Username }),
			textColumn("model", "Model", func(l models.Loadout) string {
				if l.WeaponModel != nil {
					return l.WeaponModel.Name
				}
				return strconv.FormatUint(uint64(l.ModelID), 10)
			}),
			{
				Key:      "attachments",
				Header:   "Attachments",
				Accessor: func(l models.Loadout) table.Value { return table.Int(int64(l.AttachmentCount())) },
				Sortable: true,
			},
			textColumn("tags", "Tags", func(l models.Loadout) string { return l.Tags }),
			{
				Key:    "rating",
				Header: "Rating",
				Accessor: func(l models.Loadout) table.Value {
					if l.Rating == nil {
						return table.Int(0)
					}
					return table.Int(int64(l.Rating.Rating))
				},
				Sortable:   true,
				Filterable: true,
			},
			{
				Key:      "created_at",
				Header:   "Created",
				Accessor: func(l models.Loadout) table.Value { return table.Int(l.CreatedAt.UnixMilli()) },
				Render:   func(l models.Loadout) string { return l.CreatedAt.UTC().Format(time.RFC3339) },
				Sortable: true,
			},
		},
		ID: func(l models.Loadout) string { return l.RecordID() },
	}
}
