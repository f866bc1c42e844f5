package table

import (
	"context"
	"testing"
	"time"

	apperrors "loadout-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestControls(window time.Duration) (*Controls[testRow], *View[testRow]) {
	v := newTestView(sampleRows())
	_ = v.Refresh(context.Background())
	return NewControls(v, NewDebouncer(window)), v
}

func TestControlsSortIntents(t *testing.T) {
	c, v := newTestControls(0)
	ctx := context.Background()

	_, err := c.Dispatch(ctx, Intent{Kind: IntentSortAdd, Column: "name"})
	require.NoError(t, err)
	_, err = c.Dispatch(ctx, Intent{Kind: IntentSortAdd, Column: "rating"})
	require.NoError(t, err)

	key, _ := v.Sort().Active()
	assert.Equal(t, "name", key.Column)

	_, err = c.Dispatch(ctx, Intent{Kind: IntentSortToggle, Column: "name"})
	require.NoError(t, err)
	key, _ = v.Sort().Active()
	assert.True(t, key.Descending)

	_, err = c.Dispatch(ctx, Intent{Kind: IntentSortRemove})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sort().Len())
}

func TestControlsRejectsUnknownColumn(t *testing.T) {
	c, _ := newTestControls(0)

	_, err := c.Dispatch(context.Background(), Intent{Kind: IntentSortAdd, Column: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)

	_, err = c.Dispatch(context.Background(), Intent{Kind: IntentFilterToggle, Column: "id"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidColumn)
}

func TestControlsRejectsUnknownIntent(t *testing.T) {
	c, _ := newTestControls(0)

	_, err := c.Dispatch(context.Background(), Intent{Kind: "sort.multi"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidIntent)
	assert.False(t, IntentKind("sort.multi").IsValid())
}

func TestControlsFilterImmediate(t *testing.T) {
	c, v := newTestControls(0)
	ctx := context.Background()

	_, err := c.Dispatch(ctx, Intent{Kind: IntentFilterToggle, Column: "name"})
	require.NoError(t, err)
	_, err = c.Dispatch(ctx, Intent{Kind: IntentFilterSet, Column: "name", Value: "a"})
	require.NoError(t, err)

	p, err := v.Projection()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, ids(p))
}

func TestControlsFilterIsDebounced(t *testing.T) {
	c, v := newTestControls(time.Hour)
	ctx := context.Background()

	_, err := c.Dispatch(ctx, Intent{Kind: IntentFilterToggle, Column: "name"})
	require.NoError(t, err)
	effect, err := c.Dispatch(ctx, Intent{Kind: IntentFilterSet, Column: "name", Value: "b"})
	require.NoError(t, err)
	assert.True(t, effect.FilterPending)

	value, _ := v.Filter().Value("name")
	assert.Equal(t, "", value)

	c.Flush()
	value, _ = v.Filter().Value("name")
	assert.Equal(t, "b", value)
}

func TestControlsToggleCancelsPendingValue(t *testing.T) {
	c, v := newTestControls(time.Hour)
	ctx := context.Background()

	_, _ = c.Dispatch(ctx, Intent{Kind: IntentFilterToggle, Column: "name"})
	_, _ = c.Dispatch(ctx, Intent{Kind: IntentFilterSet, Column: "name", Value: "stale"})
	_, _ = c.Dispatch(ctx, Intent{Kind: IntentFilterToggle, Column: "name"})
	_, _ = c.Dispatch(ctx, Intent{Kind: IntentFilterToggle, Column: "name"})
	c.Flush()

	value, ok := v.Filter().Value("name")
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestControlsEditorIntents(t *testing.T) {
	c, v := newTestControls(0)
	ctx := context.Background()

	effect, err := c.Dispatch(ctx, Intent{Kind: IntentInsert})
	require.NoError(t, err)
	assert.True(t, effect.EditorOpen)
	target, ok := v.Editing()
	require.True(t, ok)
	assert.Equal(t, "", target.ID)

	effect, err = c.Dispatch(ctx, Intent{Kind: IntentEdit, ID: "2"})
	require.NoError(t, err)
	assert.Equal(t, "2", effect.EditID)
	target, _ = v.Editing()
	require.NotNil(t, target.Record)
	assert.Equal(t, "A", target.Record.Name)

	_, err = c.Dispatch(ctx, Intent{Kind: IntentEdit})
	assert.ErrorIs(t, err, apperrors.ErrInvalidIntent)

	_, err = c.Dispatch(ctx, Intent{Kind: IntentClose})
	require.NoError(t, err)
	_, ok = v.Editing()
	assert.False(t, ok)
}

func TestControlsRefresh(t *testing.T) {
	c, v := newTestControls(0)
	before, _ := v.Versions()

	_, err := c.Dispatch(context.Background(), Intent{Kind: IntentRefresh})

	require.NoError(t, err)
	after, _ := v.Versions()
	assert.Equal(t, before+1, after)
}
