// Package cli provides CLI commands for permlog.
package cli

import (
	gocontext "context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/ctxutil"
)

// globalActor stores the actor for the current CLI invocation.
// Set once at startup by StoreActor().
var globalActor = ctxutil.Console()

// StoreActor records the actor named by the --actor and --actor-name flags.
// An empty id keeps the console actor.
func StoreActor(id, name string) error {
	actor, err := parseActor(id, name)
	if err != nil {
		return err
	}
	globalActor = actor
	return nil
}

func parseActor(id, name string) (ctxutil.Actor, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		if name != "" {
			return ctxutil.Actor{}, fmt.Errorf("--actor-name requires --actor")
		}
		return ctxutil.Console(), nil
	}

	parsed, ok := identity.ParseIdentifier(id)
	if !ok || parsed == uuid.Nil {
		return ctxutil.Actor{}, fmt.Errorf("invalid actor uuid %q", id)
	}
	if name == "" {
		name = parsed.String()
	}
	return ctxutil.Actor{ID: parsed, Name: name}, nil
}

// NewContext creates a context.Background() with the current actor embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return ctxutil.WithActor(gocontext.Background(), globalActor)
}
