// Package cli implements the github-search command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jam-magsuci/github-search/pkg/buildinfo"
	"github.com/jam-magsuci/github-search/pkg/github"
	"github.com/jam-magsuci/github-search/pkg/httputil"
)

// appName is the application name used for directories and display.
const appName = "github-search"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	demo    bool
	noCache bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Search a GitHub user's public repositories from the terminal",
		Long:         `github-search fetches a user's public repositories from the GitHub API and renders them as cards: name, description, language, star and fork counts, topics, and last-updated date.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVar(&c.demo, "demo", false, "use placeholder data instead of the GitHub API")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "bypass the API response cache")

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newSource creates the repository source for a command invocation: the
// demo fixture source when --demo (or the config default) is set, otherwise
// the live API client with an optional response cache.
func (c *CLI) newSource() github.RepoSource {
	cfg := LoadConfig(c.Logger)

	if c.demo || cfg.Demo {
		c.Logger.Debug("Using demo source")
		return github.NewDemo()
	}

	var cache *httputil.Cache
	if !c.noCache {
		dir, err := cacheDir()
		if err == nil {
			cache, err = httputil.NewCache(dir, cfg.CacheTTL)
		}
		if err != nil {
			c.Logger.Debug("Cache unavailable, continuing without", "err", err)
			cache = nil
		}
	}

	return github.NewClient(cfg.Token, cache)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/github-search/).
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
