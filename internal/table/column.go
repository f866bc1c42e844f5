package table

import (
	"strconv"
	"strings"
)

// Value is a cell value. Numeric values compare numerically, text values
// lexicographically.
type Value struct {
	num     float64
	text    string
	numeric bool
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{num: n, numeric: true}
}

// Int creates a numeric value from an integer
func Int(n int64) Value {
	return Number(float64(n))
}

// Text creates a string value
func Text(s string) Value {
	return Value{text: s}
}

// IsNumeric reports whether the value is numeric
func (v Value) IsNumeric() bool {
	return v.numeric
}

// String returns the display form of the value
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.text
}

// Compare returns -1, 0 or 1. Numbers sort before text when kinds differ.
func (v Value) Compare(other Value) int {
	switch {
	case v.numeric && other.numeric:
		switch {
		case v.num < other.num:
			return -1
		case v.num > other.num:
			return 1
		}
		return 0
	case v.numeric:
		return -1
	case other.numeric:
		return 1
	}
	return strings.Compare(v.text, other.text)
}

// Column describes one table column over rows of type R
type Column[R any] struct {
	Key        string
	Header     string
	Accessor   func(R) Value
	Render     func(R) string
	Sortable   bool
	Filterable bool
}

// Cell returns the rendered cell text for row
func (c Column[R]) Cell(row R) string {
	if c.Render != nil {
		return c.Render(row)
	}
	return c.Accessor(row).String()
}

// ColumnInfo is the serializable header of a column
type ColumnInfo struct {
	Key        string `json:"key"`
	Header     string `json:"header"`
	Sortable   bool   `json:"sortable"`
	Filterable bool   `json:"filterable"`
}

// Schema is the column set of a table plus the row identity used by the
// edit affordance
type Schema[R any] struct {
	Columns []Column[R]
	ID      func(R) string
}

// Column returns the descriptor for key
func (s Schema[R]) Column(key string) (Column[R], bool) {
	for _, c := range s.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[R]{}, false
}

// Info returns the serializable headers of every column
func (s Schema[R]) Info() []ColumnInfo {
	out := make([]ColumnInfo, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, ColumnInfo{Key: c.Key, Header: c.Header, Sortable: c.Sortable, Filterable: c.Filterable})
	}
	return out
}
