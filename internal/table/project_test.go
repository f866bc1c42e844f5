package table

import (
	"strconv"
	"testing"

	apperrors "loadout-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID     int
	Name   string
	Rating int
}

func testSchema() Schema[testRow] {
	return Schema[testRow]{
		ID: func(r testRow) string { return strconv.Itoa(r.ID) },
		Columns: []Column[testRow]{
			{Key: "id", Header: "ID", Accessor: func(r testRow) Value { return Int(int64(r.ID)) }, Sortable: true},
			{Key: "name", Header: "Name", Accessor: func(r testRow) Value { return Text(r.Name) }, Sortable: true, Filterable: true},
			{
				Key:      "rating",
				Header:   "Rating",
				Accessor: func(r testRow) Value { return Int(int64(r.Rating)) },
				Render:   func(r testRow) string { return strconv.Itoa(r.Rating) + " likes" },
				Sortable: true, Filterable: true,
			},
		},
	}
}

func sampleRows() []testRow {
	return []testRow{{ID: 1, Name: "B"}, {ID: 2, Name: "A"}, {ID: 3, Name: "A"}}
}

func ids(p Projection[testRow]) []int {
	out := []int{}
	for _, r := range p.Records() {
		out = append(out, r.ID)
	}
	return out
}

func TestProjectStableSort(t *testing.T) {
	p, err := Project(sampleRows(), testSchema(), SortState{}.Add("name"), FilterState{}, Options{})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1}, ids(p))
}

func TestProjectStableSortDescending(t *testing.T) {
	p, err := Project(sampleRows(), testSchema(), SortState{}.ToggleDirection("name"), FilterState{}, Options{})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(p))
}

func TestProjectNoSortKeepsStoreOrder(t *testing.T) {
	rows := []testRow{{ID: 3}, {ID: 1}, {ID: 2}}

	p, err := Project(rows, testSchema(), SortState{}, FilterState{}, Options{})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids(p))
}

func TestProjectNumericSort(t *testing.T) {
	rows := []testRow{{ID: 1, Rating: 10}, {ID: 2, Rating: 9}, {ID: 3, Rating: -1}}

	p, err := Project(rows, testSchema(), SortState{}.Add("rating"), FilterState{}, Options{})

	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, ids(p))
}

func TestProjectSubstringFilterIsCaseInsensitive(t *testing.T) {
	filter := FilterState{}.Toggle("name").Update("name", "a")

	p, err := Project(sampleRows(), testSchema(), SortState{}, filter, Options{})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(p))
}

func TestProjectExactFilter(t *testing.T) {
	rows := []testRow{{ID: 1, Name: "AK-47"}, {ID: 2, Name: "ak"}, {ID: 3, Name: "AK"}}
	filter := FilterState{}.Toggle("name").Update("name", "ak")

	p, err := Project(rows, testSchema(), SortState{}, filter, Options{Match: MatchExact})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(p))

	p, err = Project(rows, testSchema(), SortState{}, filter, Options{Match: MatchExact, CaseSensitive: true})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(p))
}

func TestProjectFilterUsesAccessorNotRender(t *testing.T) {
	rows := []testRow{{ID: 1, Rating: 12}, {ID: 2, Rating: 3}}
	filter := FilterState{}.Toggle("rating").Update("rating", "likes")

	p, err := Project(rows, testSchema(), SortState{}, filter, Options{})

	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestProjectEmptyFilterValueMatchesEverything(t *testing.T) {
	p, err := Project(sampleRows(), testSchema(), SortState{}, FilterState{}.Toggle("name"), Options{Match: MatchExact})

	require.NoError(t, err)
	assert.Len(t, p.Rows, 3)
}

func TestProjectEmptyState(t *testing.T) {
	filter := FilterState{}.Toggle("name").Update("name", "zzz")

	p, err := Project(sampleRows(), testSchema(), SortState{}, filter, Options{})

	require.NoError(t, err)
	assert.True(t, p.Empty())
	assert.NotNil(t, p.Rows)
	assert.Len(t, p.Columns, 3)
}

func TestProjectRowsCarryEditIDAndCells(t *testing.T) {
	p, err := Project([]testRow{{ID: 9, Name: "M4", Rating: 2}}, testSchema(), SortState{}, FilterState{}, Options{})

	require.NoError(t, err)
	require.Len(t, p.Rows, 1)
	assert.Equal(t, "9", p.Rows[0].EditID)
	assert.Equal(t, map[string]string{"id": "9", "name": "M4", "rating": "2 likes"}, p.Rows[0].Cells)
}

func TestProjectDoesNotReorderInput(t *testing.T) {
	rows := sampleRows()

	_, err := Project(rows, testSchema(), SortState{}.Add("name"), FilterState{}, Options{})

	require.NoError(t, err)
	assert.Equal(t, sampleRows(), rows)
}

func TestProjectUnknownColumns(t *testing.T) {
	_, err := Project(sampleRows(), testSchema(), SortState{}.Add("missing"), FilterState{}, Options{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)

	_, err = Project(sampleRows(), testSchema(), SortState{}, FilterState{}.Toggle("id"), Options{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
}

func TestValueCompare(t *testing.T) {
	assert.Equal(t, -1, Int(2).Compare(Int(10)))
	assert.Equal(t, -1, Text("10").Compare(Text("2")))
	assert.Equal(t, 0, Text("a").Compare(Text("a")))
	assert.Equal(t, -1, Int(100).Compare(Text("1")))
	assert.Equal(t, "2.5", Number(2.5).String())
}
