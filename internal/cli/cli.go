// Package cli implements the boggle command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LGimbel/boggle-solver/pkg/buildinfo"
	"github.com/LGimbel/boggle-solver/pkg/cache"
	"github.com/LGimbel/boggle-solver/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "boggle"

	// boardSize is the side length of the classic board the CLI accepts.
	boardSize = 4
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and configuration
// loaded from the user's config file (defaults apply when none exists).
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	cfg, err := LoadConfig("")
	if err != nil {
		logger.Warnf("Config file ignored: %v", err)
		cfg = DefaultConfig()
	}
	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "boggle",
		Short:        "Boggle finds every dictionary word hidden in a letter grid",
		Long:         `Boggle solves letter grids: it loads a word list into a prefix trie, walks every path of adjacent cells, and reports the words the grid contains, longest first.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.pathsCommand())
	root.AddCommand(c.dictCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if addr := c.Config.Cache.Redis.Addr; addr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     addr,
			Password: c.Config.Cache.Redis.Password,
			DB:       c.Config.Cache.Redis.DB,
		})
		if err != nil {
			c.Logger.Warnf("Redis cache unavailable, falling back to files: %v", err)
		} else {
			return rc, nil
		}
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/boggle/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/boggle/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions builds pipeline options from CLI flags, falling back to
// the configured dictionary when the flag is empty.
func (c *CLI) pipelineOptions(rows []string, dictionary string, refresh bool) pipeline.Options {
	if dictionary == "" {
		dictionary = c.Config.Dictionary
	}
	return pipeline.Options{
		Rows:       rows,
		Dictionary: dictionary,
		Refresh:    refresh,
		Logger:     c.Logger,
	}
}
