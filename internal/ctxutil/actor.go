// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// ConsoleName is the actor name used when no actor is set.
const ConsoleName = "Console"

// ActorKey is the context key for the acting player.
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// Actor identifies who performed a logged action.
type Actor struct {
	ID   uuid.UUID
	Name string
}

// Console returns the actor used for actions issued outside a player session.
func Console() Actor {
	return Actor{ID: uuid.Nil, Name: ConsoleName}
}

// WithActor returns a context with the actor embedded.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the actor from context, or the console actor if not set.
func ActorFromContext(ctx context.Context) Actor {
	if v, ok := ctx.Value(ActorKey{}).(Actor); ok {
		return v
	}
	return Console()
}
