package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"loadout-backend/internal/database/models"
	"loadout-backend/internal/editor"
	"loadout-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// FormResponse is the answer to every form submission
type FormResponse struct {
	Success bool              `json:"success"`
	ID      string            `json:"id,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func newFormResponse(res editor.Result) *FormResponse {
	return &FormResponse{
		Success: res.Success,
		ID:      res.ID,
		Errors:  res.Errors,
	}
}

// fieldMessage is the form key and user-facing message reported when a
// draft field fails validation
type fieldMessage struct {
	key     string
	message string
}

type fieldMessages map[string]fieldMessage

// validateDraft runs the struct tags of draft and reports the first failure
// per form field
func validateDraft(v *validator.Validate, draft interface{}, messages fieldMessages) editor.FieldErrors {
	err := v.Struct(draft)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return editor.FieldErrors{editor.KeyRequest: editor.MsgInvalidSubmission}
	}

	errs := editor.FieldErrors{}
	for _, fe := range verrs {
		// elements of a dived slice report as Field[i]
		field := fe.StructField()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		msg, ok := messages[field]
		if !ok {
			key := strings.ToLower(field)
			msg = fieldMessage{key: key, message: fmt.Sprintf("Invalid %s", key)}
		}
		if _, seen := errs[msg.key]; !seen {
			errs[msg.key] = msg.message
		}
	}
	return errs
}

// cleanList splits a comma-joined form value, trimming entries and dropping
// blanks and repeats
func cleanList(raw string) []string {
	parts := models.SplitList(raw)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// sessionStore keeps one editor session per actor for an entity so a second
// submission from the same user is refused while the first is in flight.
// Sessions live only while a request holds them.
type sessionStore[D any] struct {
	cfg editor.Config[D]

	mu       sync.Mutex
	sessions map[string]*heldSession[D]
}

type heldSession[D any] struct {
	session *editor.Session[D]
	holders int
}

func newSessionStore[D any](cfg editor.Config[D]) *sessionStore[D] {
	return &sessionStore[D]{
		cfg:      cfg,
		sessions: make(map[string]*heldSession[D]),
	}
}

func (s *sessionStore[D]) acquire(ctx context.Context) (*editor.Session[D], func()) {
	key := repository.ActorFromContext(ctx).UserID.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	held, ok := s.sessions[key]
	if !ok {
		held = &heldSession[D]{session: editor.New(s.cfg)}
		s.sessions[key] = held
	}
	held.holders++

	return held.session, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		held.holders--
		if held.holders == 0 && s.sessions[key] == held {
			delete(s.sessions, key)
		}
	}
}

// active returns how many actors hold a session
func (s *sessionStore[D]) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// submit runs intent on draft in the caller's session
func (s *sessionStore[D]) submit(ctx context.Context, intent, id string, draft D) (*FormResponse, error) {
	sess, release := s.acquire(ctx)
	defer release()

	action := editor.Action(strings.ToLower(strings.TrimSpace(intent)))
	res, err := sess.SubmitDraft(ctx, action, strings.TrimSpace(id), draft)
	if err != nil {
		return nil, err
	}
	return newFormResponse(res), nil
}

// refreshAfter returns the editor success hook that reloads open views of
// table
func refreshAfter(tables TableRefresher, name repository.Table) func(ctx context.Context, action editor.Action, id string) {
	return func(ctx context.Context, action editor.Action, id string) {
		if tables != nil {
			tables.RefreshTable(ctx, string(name))
		}
	}
}
