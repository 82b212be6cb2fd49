package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/wire"
)

// historyViewer renders one page of a user's history.
type historyViewer interface {
	UserHistory(ctx context.Context, target string, page *string) error
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View and manage the action log",
	Long:  "Look up user history, record actions and prune old entries",
}

var logUserHistoryCmd = &cobra.Command{
	Use:   "userhistory <user|uuid> [page]",
	Short: "Show a user's action history",
	Long: `Show one page of the actions taken on a user, oldest first.
Without a page the most recent page is shown.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserHistory(NewContext(), wire.HistoryAdapterWithOutput(cmd.OutOrStdout()), args)
	},
}

func runUserHistory(ctx context.Context, viewer historyViewer, args []string) error {
	var page *string
	if len(args) > 1 {
		page = &args[1]
	}
	return viewer.UserHistory(ctx, args[0], page)
}

var logRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Append an entry to the action log",
	Long:  "Append an entry to the action log, attributed to --actor (default console)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		req := primary.RecordActionRequest{}
		req.Type, _ = cmd.Flags().GetString("type")
		req.Target, _ = cmd.Flags().GetString("target")
		req.Name, _ = cmd.Flags().GetString("name")
		req.Action, _ = cmd.Flags().GetString("action")

		if err := wire.LogService().RecordAction(ctx, req); err != nil {
			return fmt.Errorf("failed to record action: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Recorded [%s] %s --> %s\n", req.Type, req.Target, req.Action)
		return nil
	},
}

var logPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old log entries",
	Long:  "Delete log entries older than N days",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		days, _ := cmd.Flags().GetInt("days")

		count, err := wire.LogService().PruneLogs(ctx, days)
		if err != nil {
			return fmt.Errorf("failed to prune logs: %w", err)
		}

		if count == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No log entries older than %d days found.\n", days)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d log entries older than %d days.\n", count, days)
		}
		return nil
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	logRecordCmd.Flags().String("type", "U", "Entry type: U (user), G (group) or T (track)")
	logRecordCmd.Flags().String("target", "", "User UUID, or group/track name")
	logRecordCmd.Flags().String("name", "", "Display name of a user target")
	logRecordCmd.Flags().String("action", "", "Action description")
	_ = logRecordCmd.MarkFlagRequired("target")
	_ = logRecordCmd.MarkFlagRequired("action")

	logPruneCmd.Flags().Int("days", 30, "Delete entries older than N days")

	logCmd.AddCommand(logUserHistoryCmd)
	logCmd.AddCommand(logRecordCmd)
	logCmd.AddCommand(logPruneCmd)

	return logCmd
}
