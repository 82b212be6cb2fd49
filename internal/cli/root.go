package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/permlog/internal/config"
	"github.com/example/permlog/internal/version"
	"github.com/example/permlog/internal/wire"
)

// RootCmd returns the permlog root command with all subcommands attached.
func RootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:     "permlog",
		Short:   "Browse and maintain the permission action log",
		Version: version.String(),
		Long: `permlog records administrative actions taken on users, groups and tracks,
and lets operators page through a user's history.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			wire.Configure(cfg)

			actorID, _ := cmd.Flags().GetString("actor")
			actorName, _ := cmd.Flags().GetString("actor-name")
			return StoreActor(actorID, actorName)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.permlog/config.yaml)")
	flags.String("db", "", "Database path (default ~/.permlog/permlog.db)")
	flags.String("log-level", "warn", "Log level: debug, info, warn, error")
	flags.Bool("allow-invalid-usernames", false, "Accept usernames outside the strict format")
	flags.Bool("use-uuid-lookup", false, "Fall back to the profile directory for unknown usernames")
	flags.String("actor", "", "UUID of the player performing the action (default console)")
	flags.String("actor-name", "", "Display name of the acting player")

	_ = v.BindPFlag(config.KeyDatabasePath, flags.Lookup("db"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyAllowInvalidUsernames, flags.Lookup("allow-invalid-usernames"))
	_ = v.BindPFlag(config.KeyUseServerUUIDCache, flags.Lookup("use-uuid-lookup"))

	rootCmd.AddCommand(LogCmd())
	rootCmd.AddCommand(PlayerCmd())
	rootCmd.AddCommand(ServeCmd(v))

	return rootCmd
}
