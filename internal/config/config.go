package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PERMLOG_ALLOW_INVALID_USERNAMES.
const EnvPrefix = "PERMLOG"

// Config keys
const (
	KeyAllowInvalidUsernames = "allow_invalid_usernames"
	KeyUseServerUUIDCache    = "use_server_uuid_cache"
	KeyLookupBaseURL         = "lookup.base_url"
	KeyLookupTimeout         = "lookup.timeout"
	KeyDatabasePath          = "database.path"
	KeyLogLevel              = "log.level"
	KeyServerAddr            = "server.addr"
)

// Config represents the permlog configuration
type Config struct {
	// AllowInvalidUsernames relaxes username validation for offline-mode servers.
	AllowInvalidUsernames bool `mapstructure:"allow_invalid_usernames"`
	// UseServerUUIDCache falls back to the profile directory when the cache has no mapping.
	UseServerUUIDCache bool           `mapstructure:"use_server_uuid_cache"`
	Lookup             LookupConfig   `mapstructure:"lookup"`
	Database           DatabaseConfig `mapstructure:"database"`
	Log                LogConfig      `mapstructure:"log"`
	Server             ServerConfig   `mapstructure:"server"`
}

type LookupConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAllowInvalidUsernames, false)
	v.SetDefault(KeyUseServerUUIDCache, false)
	v.SetDefault(KeyLookupBaseURL, "https://api.mojang.com")
	v.SetDefault(KeyLookupTimeout, 5*time.Second)
	v.SetDefault(KeyDatabasePath, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyServerAddr, "127.0.0.1:8089")
}

// Load reads configuration into v and returns the result.
// Resolution order: flags bound on v, PERMLOG_* environment (a .env file in
// the working directory is loaded first), the config file, defaults.
// configPath may be empty, in which case ~/.permlog/config.{yaml,toml,json}
// is used if present.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if dir, err := DefaultDir(); err == nil {
		v.SetConfigName("config")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Database.Path = filepath.Join(dir, "permlog.db")
	}

	return &cfg, nil
}

// DefaultDir returns the directory holding permlog's config and database.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".permlog"), nil
}
