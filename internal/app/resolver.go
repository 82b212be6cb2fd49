package app

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/logging"
	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/ports/secondary"
)

// ResolveOptions carries the server settings that shape target resolution.
type ResolveOptions struct {
	// AllowInvalidNames switches from the strict to the lenient username test.
	AllowInvalidNames bool
	// UseFallbackLookup enables the external directory when the cache misses.
	UseFallbackLookup bool
}

// TargetResolver turns a raw target string into a player UUID.
type TargetResolver interface {
	Resolve(ctx context.Context, raw string, opts ResolveOptions) (uuid.UUID, error)
}

// IdentifierResolver resolves targets by direct parse, then the username
// cache, then the external profile directory.
type IdentifierResolver struct {
	players  secondary.PlayerRepository
	profiles secondary.ProfileLookup
	logger   *zap.Logger
}

// NewIdentifierResolver creates a new IdentifierResolver.
// profiles may be nil, in which case the fallback lookup never finds anything.
func NewIdentifierResolver(players secondary.PlayerRepository, profiles secondary.ProfileLookup, logger *zap.Logger) *IdentifierResolver {
	return &IdentifierResolver{
		players:  players,
		profiles: profiles,
		logger:   logging.OrNop(logger),
	}
}

// Resolve returns the UUID for raw. Failures are *primary.ResolveError.
func (r *IdentifierResolver) Resolve(ctx context.Context, raw string, opts ResolveOptions) (uuid.UUID, error) {
	if id, ok := identity.ParseIdentifier(raw); ok {
		return id, nil
	}

	valid := identity.StrictUsername
	if opts.AllowInvalidNames {
		valid = identity.LenientUsername
	}
	if !valid(raw) {
		return uuid.Nil, r.fail(raw, primary.ReasonInvalidName, nil)
	}

	id, found, err := r.players.LookupUUID(ctx, strings.ToLower(raw))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return uuid.Nil, r.fail(raw, primary.ReasonLookupFailed, err)
	}
	if found {
		return id, nil
	}

	if !opts.UseFallbackLookup || r.profiles == nil {
		return uuid.Nil, r.fail(raw, primary.ReasonNotFound, nil)
	}

	id, found, err = r.profiles.LookupUUID(ctx, raw)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return uuid.Nil, r.fail(raw, primary.ReasonLookupFailed, err)
	}
	if !found {
		return uuid.Nil, r.fail(raw, primary.ReasonNotFound, nil)
	}
	return id, nil
}

func (r *IdentifierResolver) fail(raw string, reason primary.ResolveReason, err error) error {
	r.logger.Debug("target not resolved",
		zap.String("target", raw),
		zap.Stringer("reason", reason),
		zap.Error(err),
	)
	return &primary.ResolveError{Target: raw, Reason: reason, Err: err}
}

// Ensure IdentifierResolver implements the interface
var _ TargetResolver = (*IdentifierResolver)(nil)
