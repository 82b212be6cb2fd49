package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/ports/secondary"
)

// PlayerServiceImpl implements the PlayerService interface.
type PlayerServiceImpl struct {
	playerRepo secondary.PlayerRepository
}

// NewPlayerService creates a new PlayerService with injected dependencies.
func NewPlayerService(playerRepo secondary.PlayerRepository) *PlayerServiceImpl {
	return &PlayerServiceImpl{playerRepo: playerRepo}
}

// SavePlayer records that id was last seen as username. Usernames are stored lower-cased.
func (s *PlayerServiceImpl) SavePlayer(ctx context.Context, id uuid.UUID, username string) error {
	if id == uuid.Nil {
		return fmt.Errorf("player uuid cannot be nil")
	}
	if !identity.LenientUsername(username) {
		return fmt.Errorf("invalid username %q", username)
	}
	if err := s.playerRepo.SaveUsername(ctx, id, strings.ToLower(username)); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}
	return nil
}

// Ensure PlayerServiceImpl implements the interface
var _ primary.PlayerService = (*PlayerServiceImpl)(nil)
