package table

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterToggleAddsEmptyEntry(t *testing.T) {
	f := FilterState{}.Toggle("name")

	v, ok := f.Value("name")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestFilterToggleRemovesEntry(t *testing.T) {
	f := FilterState{}.Toggle("name").Update("name", "m4").Toggle("name")

	_, ok := f.Value("name")
	assert.False(t, ok)
	assert.Equal(t, 0, f.Len())
}

func TestFilterReEnableResetsValue(t *testing.T) {
	f := FilterState{}.Toggle("name").Update("name", "ak").Toggle("name").Toggle("name")

	v, ok := f.Value("name")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestFilterUpdateWithoutEntryIsNoop(t *testing.T) {
	f := FilterState{}.Toggle("type")

	after := f.Update("name", "ak")

	assert.True(t, f.Equal(after))
}

func TestFilterUpdateKeepsOtherEntries(t *testing.T) {
	f := FilterState{}.Toggle("name").Toggle("type").Update("type", "smg")

	assert.Equal(t, []FilterEntry{{Column: "name"}, {Column: "type", Value: "smg"}}, f.Entries())
}

func TestFilterTransitionsDoNotMutate(t *testing.T) {
	f := FilterState{}.Toggle("name")
	_ = f.Update("name", "x")
	_ = f.Toggle("name")

	assert.Equal(t, []FilterEntry{{Column: "name"}}, f.Entries())
}

func TestFilterToggleIsSelfInverse(t *testing.T) {
	columns := []string{"id", "name", "type", "model", "slot"}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 200; run++ {
		f := FilterState{}
		for step := 0; step < 20; step++ {
			col := columns[rng.Intn(len(columns))]
			if rng.Intn(2) == 0 {
				f = f.Toggle(col)
			} else {
				f = f.Update(col, string(rune('a'+rng.Intn(26))))
			}
		}

		for _, col := range columns {
			if _, active := f.Value(col); active {
				continue
			}
			assert.True(t, f.Equal(f.Toggle(col).Toggle(col)), "toggle twice on %q", col)
		}
	}
}

func TestFilterToggleTwiceOnActiveEmptyEntry(t *testing.T) {
	f := FilterState{}.Toggle("name").Toggle("type")

	assert.True(t, f.Equal(f.Toggle("name").Toggle("name")))
}

func TestFilterEqualIgnoresOrder(t *testing.T) {
	a := FilterState{}.Toggle("name").Toggle("type")
	b := FilterState{}.Toggle("type").Toggle("name")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(b.Update("type", "x")))
}
