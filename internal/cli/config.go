package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/scriptbin/scriptbin/internal/ident"
	"github.com/scriptbin/scriptbin/internal/scripts"
	"github.com/scriptbin/scriptbin/internal/store"
)

// Config is the optional YAML configuration file.
//
// Example:
//
//	database: /var/lib/scriptbin/scriptbin.db
//	denylist:
//	  - brewery
//	  - internalcode
type Config struct {
	// Database is the SQLite path. The --db flag takes precedence.
	Database string `yaml:"database"`

	// Denylist holds extra disallowed substrings merged into the built-in
	// identifier denylist.
	Denylist []string `yaml:"denylist"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// openService resolves configuration, opens the database, and builds the
// storage service. The caller must Close the returned store.
func openService(opts *RootOptions) (*scripts.Service, *store.Store, error) {
	cfg := &Config{}
	if opts.Config != "" {
		loaded, err := LoadConfig(opts.Config)
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	dbPath := opts.Database
	if dbPath == "" {
		dbPath = cfg.Database
	}
	if dbPath == "" {
		return nil, nil, WrapExitError(ExitCommandError, "no database configured", fmt.Errorf("pass --db or set database in the config file"))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	alloc := ident.New(ident.NewDenylist(cfg.Denylist...))
	return scripts.New(st, alloc), st, nil
}

// opLogger configures slog per the verbose flag and returns a logger tagged
// with a fresh operation token, so concurrent invocations against the same
// database are distinguishable in shared logs.
func opLogger(opts *RootOptions) *slog.Logger {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler).With("op", uuid.Must(uuid.NewV7()).String())
}
