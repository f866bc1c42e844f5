package table

// FilterEntry is the filter value typed for one column
type FilterEntry struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// FilterState holds at most one entry per column, in the order the filters
// were enabled. Transitions return a new state.
type FilterState struct {
	entries []FilterEntry
}

// Toggle removes the column's entry if present, otherwise adds it with an
// empty value
func (f FilterState) Toggle(column string) FilterState {
	out := make([]FilterEntry, 0, len(f.entries)+1)
	found := false
	for _, e := range f.entries {
		if e.Column == column {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		out = append(out, FilterEntry{Column: column})
	}
	return FilterState{entries: out}
}

// Update replaces the value of an existing entry. Updating a column without
// an entry is a no-op.
func (f FilterState) Update(column, value string) FilterState {
	idx := f.index(column)
	if idx < 0 {
		return f
	}
	out := make([]FilterEntry, len(f.entries))
	copy(out, f.entries)
	out[idx].Value = value
	return FilterState{entries: out}
}

// Value returns the filter value of column and whether it has an entry
func (f FilterState) Value(column string) (string, bool) {
	if idx := f.index(column); idx >= 0 {
		return f.entries[idx].Value, true
	}
	return "", false
}

// Entries returns a copy of the entries
func (f FilterState) Entries() []FilterEntry {
	out := make([]FilterEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of active filters
func (f FilterState) Len() int {
	return len(f.entries)
}

// Equal reports whether both states hold the same column/value pairs
func (f FilterState) Equal(other FilterState) bool {
	if len(f.entries) != len(other.entries) {
		return false
	}
	for _, e := range f.entries {
		if v, ok := other.Value(e.Column); !ok || v != e.Value {
			return false
		}
	}
	return true
}

func (f FilterState) index(column string) int {
	for i, e := range f.entries {
		if e.Column == column {
			return i
		}
	}
	return -1
}
