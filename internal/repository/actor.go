package repository

import (
	"context"

	"github.com/google/uuid"
)

type actorKey struct{}

// Actor is the authenticated caller on whose behalf a store operation runs
type Actor struct {
	UserID   uuid.UUID
	Username string
	Admin    bool
}

// SignedIn reports whether the actor carries a user id
func (a Actor) SignedIn() bool {
	return a.UserID != uuid.Nil
}

// WithActor returns a context carrying the actor
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored in ctx. The zero Actor is
// anonymous and holds no privileges.
func ActorFromContext(ctx context.Context) Actor {
	if ctx == nil {
		return Actor{}
	}
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}
