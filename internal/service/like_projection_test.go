package service_test

import (
	"testing"

	"loadout-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestLikeProjection(t *testing.T) {
	t.Run("begin shows the toggle before it settles", func(t *testing.T) {
		p := service.NewLikeProjection(service.LikeState{Liked: false, Rating: 7})

		id := p.Begin()

		assert.Equal(t, service.LikeState{Liked: true, Rating: 8}, p.Displayed())
		assert.Equal(t, 1, p.Pending())
		assert.True(t, p.Settle(id, service.LikeState{Liked: true, Rating: 9}))
		assert.Equal(t, service.LikeState{Liked: true, Rating: 9}, p.Displayed())
		assert.Equal(t, 0, p.Pending())
	})

	t.Run("double toggle nets to zero", func(t *testing.T) {
		p := service.NewLikeProjection(service.LikeState{Liked: true, Rating: 2})

		p.Begin()
		p.Begin()

		assert.Equal(t, service.LikeState{Liked: true, Rating: 2}, p.Displayed())
		assert.Equal(t, uint64(2), p.RequestID())
		assert.Equal(t, 0, p.Pending())
		assert.True(t, p.InFlight())
	})

	t.Run("in flight until the latest request settles", func(t *testing.T) {
		p := service.NewLikeProjection(service.LikeState{Rating: 5})
		assert.False(t, p.InFlight())

		first := p.Begin()
		second := p.Begin()
		assert.False(t, p.Settle(first, service.LikeState{Liked: true, Rating: 6}))
		assert.True(t, p.InFlight())

		assert.True(t, p.Fail(second))
		assert.False(t, p.InFlight())
	})

	t.Run("stale response does not clear pending", func(t *testing.T) {
		p := service.NewLikeProjection(service.LikeState{Rating: 0})

		first := p.Begin()
		second := p.Begin()
		third := p.Begin()

		assert.False(t, p.Settle(first, service.LikeState{Liked: true, Rating: 1}))
		assert.False(t, p.Settle(second, service.LikeState{Liked: false, Rating: 0}))
		assert.Equal(t, service.LikeState{Liked: true, Rating: 1}, p.Displayed())
		assert.Equal(t, service.LikeState{Rating: 0}, p.Confirmed())

		assert.True(t, p.Settle(third, service.LikeState{Liked: true, Rating: 1}))
		assert.Equal(t, 0, p.Pending())
	})

	t.Run("failure restores the confirmed state", func(t *testing.T) {
		p := service.NewLikeProjection(service.LikeState{Liked: true, Rating: 4})

		id := p.Begin()
		assert.Equal(t, service.LikeState{Liked: false, Rating: 3}, p.Displayed())

		assert.True(t, p.Fail(id))
		assert.Equal(t, service.LikeState{Liked: true, Rating: 4}, p.Displayed())
	})
}
