package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewalign/pkg/buildinfo"
	"github.com/matzehuels/viewalign/pkg/cache"
	"github.com/matzehuels/viewalign/pkg/pipeline"
	"github.com/matzehuels/viewalign/pkg/settings"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "viewalign"

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

	// configPath overrides the settings file location when set.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Viewalign lines up objects on a drawing sheet",
		Long:         `Viewalign computes alignment, distribution and untangling plans for the views and tags of a drawing sheet, and rotates model views to match a reference orientation.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/viewalign/settings.toml)")

	root.AddCommand(c.alignCommand())
	root.AddCommand(c.distributeCommand())
	root.AddCommand(c.untangleCommand())
	root.AddCommand(c.orientCommand())
	root.AddCommand(c.tagsCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.settingsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, cache.NewScopedKeyer(nil, buildinfo.CacheScope()), c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Settings
// =============================================================================

// settingsPath returns the --config value or the default location.
func (c *CLI) settingsPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return settings.DefaultPath()
}

// loadSettings reads the settings file, returning defaults when it is absent.
func (c *CLI) loadSettings() (settings.Settings, error) {
	path, err := c.settingsPath()
	if err != nil {
		return settings.Default(), nil
	}
	s, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s, nil
}
