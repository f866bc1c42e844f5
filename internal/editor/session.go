package editor

import (
	"context"
	"fmt"
	"sync"

	apperrors "loadout-backend/internal/errors"
	"loadout-backend/internal/logger"
)

// State is a step of the editor lifecycle
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Action is the mutation a submission performs
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// IsValid checks if the Action is valid
func (a Action) IsValid() bool {
	switch a {
	case ActionInsert, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Error keys that are not form fields
const (
	KeyRequest = "request"
	KeyServer  = "server"
)

// MsgInvalidSubmission is reported for an unknown submission type
const MsgInvalidSubmission = "Invalid submission type"

// FieldErrors maps a field (or "request"/"server") to its message
type FieldErrors map[string]string

// Config wires a session to its entity. Validate returns nil or an empty
// map when the draft is acceptable.
type Config[D any] struct {
	Entity   string
	Blank    func() D
	Validate func(D) FieldErrors
	Insert   func(ctx context.Context, draft D) (string, error)
	Update   func(ctx context.Context, id string, draft D) error
	Delete   func(ctx context.Context, id string) error

	// UniqueField is the form field a unique violation is reported under.
	// Empty reports it on the server banner.
	UniqueField string

	// OnSuccess runs after a committed mutation, typically to refresh the
	// table the row belongs to
	OnSuccess func(ctx context.Context, action Action, id string)
}

// Result is the outcome of one submission
type Result struct {
	Success bool        `json:"success"`
	ID      string      `json:"id,omitempty"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Session is the insert/update/delete workflow of one entity draft
type Session[D any] struct {
	cfg Config[D]

	mu     sync.Mutex
	state  State
	id     string
	draft  D
	errors FieldErrors
	banner string
}

// New creates an idle session holding a blank draft
func New[D any](cfg Config[D]) *Session[D] {
	s := &Session[D]{cfg: cfg}
	s.Open(nil, "")
	return s
}

// Open resets the session to Idle with a draft from snapshot, or a blank
// draft when snapshot is nil. id is empty for inserts.
func (s *Session[D]) Open(snapshot *D, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open(snapshot, id)
}

// Load is Open for shared sessions: it fails with ErrSubmitInFlight instead
// of resetting a session whose submission has not settled.
func (s *Session[D]) Load(snapshot *D, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight() {
		return apperrors.ErrSubmitInFlight
	}
	s.open(snapshot, id)
	return nil
}

func (s *Session[D]) open(snapshot *D, id string) {
	if snapshot != nil {
		s.draft = *snapshot
	} else if s.cfg.Blank != nil {
		s.draft = s.cfg.Blank()
	} else {
		var zero D
		s.draft = zero
	}
	s.id = id
	s.state = StateIdle
	s.errors = nil
	s.banner = ""
}

// SetDraft replaces the draft. Ignored while a submission is in flight.
func (s *Session[D]) SetDraft(draft D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight() {
		return
	}
	s.draft = draft
}

// Submit validates the draft and performs action against the store.
// A second submit while one is in flight fails with ErrSubmitInFlight.
func (s *Session[D]) Submit(ctx context.Context, action Action) (Result, error) {
	s.mu.Lock()
	if s.inFlight() {
		s.mu.Unlock()
		return Result{}, apperrors.ErrSubmitInFlight
	}
	s.state = StateValidating
	draft, id := s.draft, s.id
	s.mu.Unlock()

	return s.run(ctx, action, id, draft), nil
}

// SubmitDraft installs draft and id and submits them with action, all under
// one claim of the session. A concurrent caller can neither replace the
// draft between the two steps nor run alongside it.
func (s *Session[D]) SubmitDraft(ctx context.Context, action Action, id string, draft D) (Result, error) {
	s.mu.Lock()
	if s.inFlight() {
		s.mu.Unlock()
		return Result{}, apperrors.ErrSubmitInFlight
	}
	s.draft = draft
	s.id = id
	s.errors = nil
	s.banner = ""
	s.state = StateValidating
	s.mu.Unlock()

	return s.run(ctx, action, id, draft), nil
}

// run carries a claimed submission from Validating to a settled state
func (s *Session[D]) run(ctx context.Context, action Action, id string, draft D) Result {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"entity": s.cfg.Entity,
		"action": string(action),
	})

	if errs := s.check(action, id, draft); len(errs) > 0 {
		log.WithField("errors", errs).Debug("submission rejected by validation")
		return s.fail(errs)
	}

	s.mu.Lock()
	s.state = StateSubmitting
	s.mu.Unlock()

	newID, err := s.perform(ctx, action, id, draft)
	if err != nil {
		mapped := apperrors.MapStoreError(err, s.cfg.UniqueField)
		if apperrors.IsValidation(err) {
			mapped = apperrors.FieldError{Field: KeyRequest, Message: s.invalidID()}
		}
		log.WithError(err).WithField("code", apperrors.StoreCode(err)).Error("submission failed")
		return s.fail(FieldErrors{mapped.Field: mapped.Message})
	}

	s.mu.Lock()
	s.state = StateSucceeded
	s.errors = nil
	s.banner = ""
	if newID != "" {
		s.id = newID
	}
	s.mu.Unlock()

	log.WithField("id", newID).Info("submission committed")
	if s.cfg.OnSuccess != nil {
		s.cfg.OnSuccess(ctx, action, newID)
	}
	return Result{Success: true, ID: newID}
}

// Idle reports whether no submission is in flight
func (s *Session[D]) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.inFlight()
}

// State returns the current lifecycle state
func (s *Session[D]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Errors returns a copy of the field errors of the last failed submission
func (s *Session[D]) Errors() FieldErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errors == nil {
		return nil
	}
	out := make(FieldErrors, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Banner returns the form-level message of the last failure, if any
func (s *Session[D]) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// Draft returns the current draft. Drafts survive failures.
func (s *Session[D]) Draft() D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// ID returns the id the session is bound to
func (s *Session[D]) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session[D]) inFlight() bool {
	return s.state == StateValidating || s.state == StateSubmitting
}

func (s *Session[D]) check(action Action, id string, draft D) FieldErrors {
	switch action {
	case ActionInsert:
	case ActionUpdate, ActionDelete:
		if id == "" {
			return FieldErrors{KeyRequest: s.invalidID()}
		}
	default:
		return FieldErrors{KeyRequest: MsgInvalidSubmission}
	}

	if action == ActionDelete || s.cfg.Validate == nil {
		return nil
	}
	return s.cfg.Validate(draft)
}

func (s *Session[D]) perform(ctx context.Context, action Action, id string, draft D) (string, error) {
	switch action {
	case ActionInsert:
		if s.cfg.Insert == nil {
			return "", fmt.Errorf("%s does not support insert", s.cfg.Entity)
		}
		return s.cfg.Insert(ctx, draft)
	case ActionUpdate:
		if s.cfg.Update == nil {
			return "", fmt.Errorf("%s does not support update", s.cfg.Entity)
		}
		return id, s.cfg.Update(ctx, id, draft)
	default:
		if s.cfg.Delete == nil {
			return "", fmt.Errorf("%s does not support delete", s.cfg.Entity)
		}
		return id, s.cfg.Delete(ctx, id)
	}
}

func (s *Session[D]) fail(errs FieldErrors) Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.errors = errs
	s.banner = errs[KeyServer]
	out := make(FieldErrors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return Result{Success: false, Errors: out}
}

func (s *Session[D]) invalidID() string {
	return fmt.Sprintf("Invalid %s id", s.cfg.Entity)
}
