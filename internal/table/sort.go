package table

// SortKey is one active (column, direction) pair
type SortKey struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending"`
}

// SortState holds at most one active sort key. Transitions return a new
// state and never mutate the receiver.
type SortState struct {
	keys []SortKey
}

// Add activates an ascending sort on column when nothing is sorted yet.
// Adding while any sort is active is a no-op.
func (s SortState) Add(column string) SortState {
	if len(s.keys) > 0 {
		return s
	}
	return SortState{keys: []SortKey{{Column: column}}}
}

// Remove clears the sort
func (s SortState) Remove() SortState {
	return SortState{}
}

// ToggleDirection flips the direction of the active key. On a column that
// is not active it activates that column descending.
func (s SortState) ToggleDirection(column string) SortState {
	if key, ok := s.Active(); ok && key.Column == column {
		return SortState{keys: []SortKey{{Column: column, Descending: !key.Descending}}}
	}
	return SortState{keys: []SortKey{{Column: column, Descending: true}}}
}

// Active returns the active sort key, if any
func (s SortState) Active() (SortKey, bool) {
	if len(s.keys) == 0 {
		return SortKey{}, false
	}
	return s.keys[0], true
}

// Keys returns a copy of the active keys
func (s SortState) Keys() []SortKey {
	out := make([]SortKey, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of active keys, always 0 or 1
func (s SortState) Len() int {
	return len(s.keys)
}
