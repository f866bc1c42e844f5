package table

import (
	"fmt"
	"slices"
	"strings"

	apperrors "loadout-backend/internal/errors"
)

// MatchMode selects how a filter value is compared with a cell
type MatchMode int

const (
	// MatchSubstring keeps rows whose cell contains the filter value
	MatchSubstring MatchMode = iota
	// MatchExact keeps rows whose cell equals the filter value
	MatchExact
)

// Options fixes the filter matching rules of a projection
type Options struct {
	Match         MatchMode
	CaseSensitive bool
}

// Row is one projected row. EditID is the id handed to the editor when the
// row's edit affordance is used.
type Row[R any] struct {
	Record R                 `json:"-"`
	EditID string            `json:"edit_id"`
	Cells  map[string]string `json:"cells"`
}

// Projection is the filtered, ordered view of a row set
type Projection[R any] struct {
	Columns []ColumnInfo `json:"columns"`
	Rows    []Row[R]     `json:"rows"`
}

// Empty reports the explicit "no rows" state
func (p Projection[R]) Empty() bool {
	return len(p.Rows) == 0
}

// Records returns the projected records in order
func (p Projection[R]) Records() []R {
	out := make([]R, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, r.Record)
	}
	return out
}

// Project filters rows by every filter entry, then orders them by the
// active sort key. Sorting is stable and no sort keeps store order. An
// empty filter value matches every row.
func Project[R any](rows []R, schema Schema[R], sort SortState, filter FilterState, opts Options) (Projection[R], error) {
	checks := make([]filterCheck[R], 0, filter.Len())
	for _, e := range filter.Entries() {
		col, ok := schema.Column(e.Column)
		if !ok || !col.Filterable {
			return Projection[R]{}, fmt.Errorf("filter on %q: %w", e.Column, apperrors.ErrInvalidColumn)
		}
		if e.Value == "" {
			continue
		}
		value := e.Value
		if !opts.CaseSensitive {
			value = strings.ToLower(value)
		}
		checks = append(checks, filterCheck[R]{column: col, value: value})
	}

	kept := make([]R, 0, len(rows))
	for _, row := range rows {
		if matchesAll(row, checks, opts) {
			kept = append(kept, row)
		}
	}

	if key, ok := sort.Active(); ok {
		col, found := schema.Column(key.Column)
		if !found || !col.Sortable {
			return Projection[R]{}, fmt.Errorf("sort on %q: %w", key.Column, apperrors.ErrInvalidColumn)
		}
		slices.SortStableFunc(kept, func(a, b R) int {
			cmp := col.Accessor(a).Compare(col.Accessor(b))
			if key.Descending {
				return -cmp
			}
			return cmp
		})
	}

	out := Projection[R]{
		Columns: schema.Info(),
		Rows:    make([]Row[R], 0, len(kept)),
	}
	for _, row := range kept {
		cells := make(map[string]string, len(schema.Columns))
		for _, c := range schema.Columns {
			cells[c.Key] = c.Cell(row)
		}
		editID := ""
		if schema.ID != nil {
			editID = schema.ID(row)
		}
		out.Rows = append(out.Rows, Row[R]{Record: row, EditID: editID, Cells: cells})
	}
	return out, nil
}

type filterCheck[R any] struct {
	column Column[R]
	value  string
}

func matchesAll[R any](row R, checks []filterCheck[R], opts Options) bool {
	for _, check := range checks {
		cell := check.column.Accessor(row).String()
		if !opts.CaseSensitive {
			cell = strings.ToLower(cell)
		}
		switch opts.Match {
		case MatchExact:
			if cell != check.value {
				return false
			}
		default:
			if !strings.Contains(cell, check.value) {
				return false
			}
		}
	}
	return true
}
