package editor

import (
	"context"
	"errors"
	"sync"
	"testing"

	apperrors "loadout-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Name  string
	Model int
}

type fakeStore struct {
	mu      sync.Mutex
	inserts int
	updates int
	deletes int
	err     error
	gate    chan struct{}
	entered chan struct{}
	unique  string
	saved   []string
}

func (f *fakeStore) config() Config[draft] {
	return Config[draft]{
		Entity:      "attachment",
		Blank:       func() draft { return draft{Model: -1} },
		UniqueField: f.unique,
		Validate: func(d draft) FieldErrors {
			errs := FieldErrors{}
			if d.Model == -1 {
				errs["model"] = "Please select a model"
			}
			if d.Name == "" {
				errs["name"] = "Name is required"
			}
			return errs
		},
		Insert: func(ctx context.Context, d draft) (string, error) {
			if f.entered != nil {
				f.entered <- struct{}{}
			}
			if f.gate != nil {
				<-f.gate
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			f.inserts++
			f.saved = append(f.saved, d.Name)
			if f.err != nil {
				return "", f.err
			}
			return "42", nil
		},
		Update: func(ctx context.Context, id string, d draft) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.updates++
			f.saved = append(f.saved, id+":"+d.Name)
			return f.err
		},
		Delete: func(ctx context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.deletes++
			return f.err
		},
	}
}

func TestSessionOpensBlank(t *testing.T) {
	s := New((&fakeStore{}).config())

	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, draft{Model: -1}, s.Draft())
	assert.Equal(t, "", s.ID())
}

func TestSessionValidationNeverReachesStore(t *testing.T) {
	store := &fakeStore{}
	s := New(store.config())
	s.SetDraft(draft{Name: "Suppressor", Model: -1})

	res, err := s.Submit(context.Background(), ActionInsert)

	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.Errors, "model")
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, 0, store.inserts)
	assert.Equal(t, draft{Name: "Suppressor", Model: -1}, s.Draft())
}

func TestSessionInsertSucceeds(t *testing.T) {
	store := &fakeStore{}
	cfg := store.config()
	var refreshed []Action
	cfg.OnSuccess = func(ctx context.Context, action Action, id string) { refreshed = append(refreshed, action) }
	s := New(cfg)
	s.SetDraft(draft{Name: "Suppressor", Model: 3})

	res, err := s.Submit(context.Background(), ActionInsert)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "42", res.ID)
	assert.Equal(t, StateSucceeded, s.State())
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, []Action{ActionInsert}, refreshed)
}

func TestSessionUpdateRequiresID(t *testing.T) {
	store := &fakeStore{}
	s := New(store.config())
	s.SetDraft(draft{Name: "x", Model: 1})

	res, err := s.Submit(context.Background(), ActionUpdate)

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{KeyRequest: "Invalid attachment id"}, res.Errors)
	assert.Equal(t, 0, store.updates)
}

func TestSessionDeleteSkipsFieldValidation(t *testing.T) {
	store := &fakeStore{}
	s := New(store.config())
	s.Open(&draft{Model: -1}, "7")

	res, err := s.Submit(context.Background(), ActionDelete)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, store.deletes)
}

func TestSessionUnknownAction(t *testing.T) {
	s := New((&fakeStore{}).config())

	res, err := s.Submit(context.Background(), Action("upsert"))

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{KeyRequest: MsgInvalidSubmission}, res.Errors)
}

func TestSessionStoreFailuresMapToMessages(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		unique string
		key    string
		msg    string
		banner string
	}{
		{"unique name", apperrors.NewStoreError(apperrors.CodeUniqueViolation, "", nil), "name", "name", apperrors.MsgDuplicateName, ""},
		{"unique without a name field", apperrors.NewStoreError(apperrors.CodeUniqueViolation, "", nil), "", KeyServer, apperrors.MsgDuplicateRecord, apperrors.MsgDuplicateRecord},
		{"permission", apperrors.NewStoreError(apperrors.CodeInsufficientPrivilege, "", nil), "", KeyServer, apperrors.MsgPermissionDenied, apperrors.MsgPermissionDenied},
		{"transport", errors.New("connection refused"), "", KeyServer, apperrors.MsgGeneric, apperrors.MsgGeneric},
		{"bad id", apperrors.NewValidationError("id", "bad"), "", KeyRequest, "Invalid attachment id", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{err: tt.err, unique: tt.unique}
			s := New(store.config())
			s.Open(&draft{Name: "Laser", Model: 2}, "5")

			res, err := s.Submit(context.Background(), ActionUpdate)

			require.NoError(t, err)
			assert.False(t, res.Success)
			assert.Equal(t, FieldErrors{tt.key: tt.msg}, res.Errors)
			assert.Equal(t, tt.banner, s.Banner())
			assert.Equal(t, StateFailed, s.State())
			assert.Equal(t, draft{Name: "Laser", Model: 2}, s.Draft())
		})
	}
}

func TestSessionRejectsDuplicateSubmit(t *testing.T) {
	store := &fakeStore{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	s := New(store.config())
	s.SetDraft(draft{Name: "Grip", Model: 1})

	done := make(chan Result)
	go func() {
		res, _ := s.Submit(context.Background(), ActionInsert)
		done <- res
	}()
	<-store.entered

	assert.Equal(t, StateSubmitting, s.State())
	_, err := s.Submit(context.Background(), ActionInsert)
	assert.ErrorIs(t, err, apperrors.ErrSubmitInFlight)

	s.SetDraft(draft{Name: "ignored", Model: 1})
	close(store.gate)
	res := <-done

	assert.True(t, res.Success)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, "Grip", s.Draft().Name)
}

func TestSessionSubmitDraftKeepsEachCallersDraft(t *testing.T) {
	store := &fakeStore{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	s := New(store.config())

	done := make(chan Result)
	go func() {
		res, _ := s.SubmitDraft(context.Background(), ActionInsert, "", draft{Name: "Alpha", Model: 1})
		done <- res
	}()
	<-store.entered

	_, err := s.SubmitDraft(context.Background(), ActionUpdate, "3", draft{Name: "Bravo", Model: 2})
	assert.ErrorIs(t, err, apperrors.ErrSubmitInFlight)
	assert.False(t, s.Idle())

	close(store.gate)
	res := <-done
	require.True(t, res.Success)
	assert.Equal(t, "42", res.ID)
	assert.True(t, s.Idle())

	res, err = s.SubmitDraft(context.Background(), ActionUpdate, "3", draft{Name: "Bravo", Model: 2})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []string{"Alpha", "3:Bravo"}, store.saved)
	assert.Equal(t, "3", s.ID())
	assert.Equal(t, draft{Name: "Bravo", Model: 2}, s.Draft())
}

func TestSessionSubmitDraftValidatesTheGivenDraft(t *testing.T) {
	store := &fakeStore{}
	s := New(store.config())
	s.Open(&draft{Name: "Stale", Model: 4}, "8")

	res, err := s.SubmitDraft(context.Background(), ActionUpdate, "", draft{Name: "Fresh", Model: 4})

	require.NoError(t, err)
	assert.Equal(t, FieldErrors{KeyRequest: "Invalid attachment id"}, res.Errors)
	assert.Equal(t, 0, store.updates)
	assert.Equal(t, "Fresh", s.Draft().Name)
}

func TestSessionReopenResetsToIdle(t *testing.T) {
	store := &fakeStore{}
	s := New(store.config())
	_, _ = s.Submit(context.Background(), ActionInsert)
	require.Equal(t, StateFailed, s.State())

	s.Open(nil, "")

	assert.Equal(t, StateIdle, s.State())
	assert.Nil(t, s.Errors())
	assert.Equal(t, "", s.Banner())
}

func TestSessionLoadRefusesWhileInFlight(t *testing.T) {
	store := &fakeStore{gate: make(chan struct{}), entered: make(chan struct{}, 1)}
	s := New(store.config())
	require.NoError(t, s.Load(&draft{Name: "Stock", Model: 3}, ""))

	done := make(chan Result)
	go func() {
		res, _ := s.Submit(context.Background(), ActionInsert)
		done <- res
	}()
	<-store.entered

	err := s.Load(&draft{Name: "other", Model: 4}, "")
	assert.ErrorIs(t, err, apperrors.ErrSubmitInFlight)
	assert.Equal(t, StateSubmitting, s.State())

	close(store.gate)
	res := <-done
	assert.True(t, res.Success)
	assert.Equal(t, "Stock", s.Draft().Name)

	require.NoError(t, s.Load(&draft{Name: "other", Model: 4}, "9"))
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, "9", s.ID())
}
