package table

import (
	"context"
	"fmt"

	apperrors "loadout-backend/internal/errors"
)

// IntentKind names a user intent raised by the controls bar or a row
type IntentKind string

const (
	IntentSortAdd      IntentKind = "sort.add"
	IntentSortRemove   IntentKind = "sort.remove"
	IntentSortToggle   IntentKind = "sort.toggle"
	IntentFilterToggle IntentKind = "filter.toggle"
	IntentFilterSet    IntentKind = "filter.set"
	IntentInsert       IntentKind = "insert"
	IntentRefresh      IntentKind = "refresh"
	IntentEdit         IntentKind = "edit"
	IntentClose        IntentKind = "close"
)

// IsValid checks if the IntentKind is valid
func (k IntentKind) IsValid() bool {
	switch k {
	case IntentSortAdd, IntentSortRemove, IntentSortToggle, IntentFilterToggle,
		IntentFilterSet, IntentInsert, IntentRefresh, IntentEdit, IntentClose:
		return true
	}
	return false
}

// Intent is one dispatched user action
type Intent struct {
	Kind   IntentKind `json:"kind" binding:"required"`
	Column string     `json:"column,omitempty"`
	Value  string     `json:"value,omitempty"`
	ID     string     `json:"id,omitempty"`
}

// Effect tells the host what a dispatched intent changed
type Effect struct {
	Kind          IntentKind `json:"kind"`
	EditorOpen    bool       `json:"editor_open"`
	EditID        string     `json:"edit_id,omitempty"`
	FilterPending bool       `json:"filter_pending,omitempty"`
}

// Controls translates intents into view transitions. Free-text filter
// values go through the debouncer, keyed by column.
type Controls[R any] struct {
	view      *View[R]
	debouncer *Debouncer
}

// NewControls creates controls bound to view
func NewControls[R any](view *View[R], debouncer *Debouncer) *Controls[R] {
	if debouncer == nil {
		debouncer = NewDebouncer(0)
	}
	return &Controls[R]{view: view, debouncer: debouncer}
}

// Dispatch applies intent to the view
func (c *Controls[R]) Dispatch(ctx context.Context, intent Intent) (Effect, error) {
	effect := Effect{Kind: intent.Kind}

	switch intent.Kind {
	case IntentSortAdd:
		if err := c.requireColumn(intent.Column, true); err != nil {
			return effect, err
		}
		c.view.UpdateSort(func(s SortState) SortState { return s.Add(intent.Column) })

	case IntentSortRemove:
		c.view.UpdateSort(SortState.Remove)

	case IntentSortToggle:
		if err := c.requireColumn(intent.Column, true); err != nil {
			return effect, err
		}
		c.view.UpdateSort(func(s SortState) SortState { return s.ToggleDirection(intent.Column) })

	case IntentFilterToggle:
		if err := c.requireColumn(intent.Column, false); err != nil {
			return effect, err
		}
		c.debouncer.Cancel(intent.Column)
		c.view.UpdateFilter(func(f FilterState) FilterState { return f.Toggle(intent.Column) })

	case IntentFilterSet:
		if err := c.requireColumn(intent.Column, false); err != nil {
			return effect, err
		}
		column, value := intent.Column, intent.Value
		c.debouncer.Trigger(column, func() {
			c.view.UpdateFilter(func(f FilterState) FilterState { return f.Update(column, value) })
		})
		effect.FilterPending = c.debouncer.Pending() > 0

	case IntentInsert:
		c.view.BeginEdit("")
		effect.EditorOpen = true

	case IntentEdit:
		if intent.ID == "" {
			return effect, fmt.Errorf("edit without id: %w", apperrors.ErrInvalidIntent)
		}
		if err := c.view.Edit(ctx, intent.ID); err != nil {
			return effect, err
		}
		effect.EditorOpen = true
		effect.EditID = intent.ID

	case IntentClose:
		c.view.CloseEditor()

	case IntentRefresh:
		if err := c.view.Refresh(ctx); err != nil {
			return effect, err
		}

	default:
		return effect, fmt.Errorf("%q: %w", intent.Kind, apperrors.ErrInvalidIntent)
	}

	return effect, nil
}

// Flush applies pending debounced filter values now
func (c *Controls[R]) Flush() {
	c.debouncer.Flush()
}

// Stop drops pending debounced filter values
func (c *Controls[R]) Stop() {
	c.debouncer.Stop()
}

func (c *Controls[R]) requireColumn(key string, sortable bool) error {
	col, ok := c.view.Schema().Column(key)
	if !ok {
		return fmt.Errorf("column %q: %w", key, apperrors.ErrInvalidColumn)
	}
	if sortable && !col.Sortable {
		return fmt.Errorf("column %q is not sortable: %w", key, apperrors.ErrInvalidColumn)
	}
	if !sortable && !col.Filterable {
		return fmt.Errorf("column %q is not filterable: %w", key, apperrors.ErrInvalidColumn)
	}
	return nil
}
