// Package wire provides dependency injection for permlog.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	cliadapter "github.com/example/permlog/internal/adapters/cli"
	"github.com/example/permlog/internal/adapters/httpapi"
	"github.com/example/permlog/internal/adapters/profiles"
	"github.com/example/permlog/internal/adapters/sqlite"
	"github.com/example/permlog/internal/app"
	"github.com/example/permlog/internal/config"
	"github.com/example/permlog/internal/db"
	"github.com/example/permlog/internal/logging"
	"github.com/example/permlog/internal/ports/primary"
	"github.com/example/permlog/internal/ports/secondary"
)

var (
	cfg            *config.Config
	logger         *zap.Logger
	historyService primary.HistoryService
	logService     primary.LogService
	playerService  primary.PlayerService
	once           sync.Once
)

// Configure sets the configuration services are built from.
// It must be called before the first service accessor to take effect.
func Configure(c *config.Config) {
	cfg = c
}

// Config returns the active configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// LogService returns the singleton LogService instance.
func LogService() primary.LogService {
	once.Do(initServices)
	return logService
}

// PlayerService returns the singleton PlayerService instance.
func PlayerService() primary.PlayerService {
	once.Do(initServices)
	return playerService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		loaded, err := config.Load(viper.New(), "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var err error
	logger, err = logging.New(cfg.Log.Level)
	if err != nil {
		logger = zap.NewNop()
	}

	database, err := db.GetDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.String("path", cfg.Database.Path), zap.Error(err))
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	logRepo := sqlite.NewActionLogRepository(database)
	playerRepo := sqlite.NewPlayerRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(logRepo)

	// The directory lookup stays a nil interface unless enabled.
	var profileLookup secondary.ProfileLookup
	if cfg.UseServerUUIDCache {
		client, err := profiles.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout)
		if err != nil {
			logger.Fatal("failed to create profile lookup client", zap.Error(err))
		}
		profileLookup = client
	}

	opts := app.ResolveOptions{
		AllowInvalidNames: cfg.AllowInvalidUsernames,
		UseFallbackLookup: cfg.UseServerUUIDCache,
	}
	resolver := app.NewIdentifierResolver(playerRepo, profileLookup, logger)

	// Create services (primary ports implementation)
	historyService = app.NewHistoryService(resolver, logRepo, opts, logger)
	logService = app.NewLogService(logWriter, logRepo)
	playerService = app.NewPlayerService(playerRepo)
}

// HistoryAdapter returns a new HistoryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func HistoryAdapter() *cliadapter.HistoryAdapter {
	return HistoryAdapterWithOutput(os.Stdout)
}

// HistoryAdapterWithOutput returns a new HistoryAdapter writing to the given output.
func HistoryAdapterWithOutput(out io.Writer) *cliadapter.HistoryAdapter {
	once.Do(initServices)
	return cliadapter.NewHistoryAdapter(historyService, out)
}

// HistoryHandler returns a new HTTP handler for history lookups.
func HistoryHandler() *httpapi.HistoryHandler {
	once.Do(initServices)
	return httpapi.NewHistoryHandler(historyService, logger)
}
