package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/permlog/internal/core/identity"
	"github.com/example/permlog/internal/wire"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Maintain the username cache",
}

var playerSetCmd = &cobra.Command{
	Use:   "set <username> <uuid>",
	Short: "Record the UUID a username belongs to",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, ok := identity.ParseIdentifier(args[1])
		if !ok {
			return fmt.Errorf("invalid uuid %q", args[1])
		}

		if err := wire.PlayerService().SavePlayer(NewContext(), id, args[0]); err != nil {
			return fmt.Errorf("failed to save player: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is now %s\n", args[0], id)
		return nil
	},
}

// PlayerCmd returns the player command
func PlayerCmd() *cobra.Command {
	playerCmd.AddCommand(playerSetCmd)
	return playerCmd
}
