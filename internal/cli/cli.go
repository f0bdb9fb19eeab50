package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/coopcast/flocktree/pkg/buildinfo"
	"github.com/coopcast/flocktree/pkg/cache"
	"github.com/coopcast/flocktree/pkg/config"
	"github.com/coopcast/flocktree/pkg/observability"
	"github.com/coopcast/flocktree/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "flocktree"

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

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline, cache
// and reload events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetSourceHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flocktree draws poultry family trees from GEDCOM files",
		Long:         `Flocktree reads a GEDCOM pedigree of a flock, checks its cross-references and renders it as a generational family tree or a Graphviz node-link diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flocktree/config.toml)")

	// Register all subcommands
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file named by --config, or the
// default one when present.
func (c *CLI) loadConfig() error {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("configuration loaded", "path", c.configPath, "viewport", cfg.Viewport, "viz_type", cfg.VizType)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, backed by the file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	fc, err := c.newFileCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(fc, c.newKeyer(), c.Logger), nil
}

// newServerRunner creates a runner for the HTTP server. Redis is used when
// an address is configured, otherwise the file cache.
func (c *CLI) newServerRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc := c.cfg.Cache
	if noCache || cc.Disabled || cc.RedisAddr == "" {
		return c.newRunner(noCache)
	}
	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     cc.RedisAddr,
		Password: cc.RedisPassword,
		DB:       cc.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Info("using redis cache", "addr", cc.RedisAddr)
	return pipeline.NewRunner(cache.WithTTL(rc, cc.TTL.Std()), c.newKeyer(), c.Logger), nil
}

func (c *CLI) newFileCache(noCache bool) (cache.Cache, error) {
	if noCache || c.cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return cache.WithTTL(fc, c.cfg.Cache.TTL.Std()), nil
}

func (c *CLI) newKeyer() cache.Keyer {
	if p := c.cfg.Cache.Prefix; p != "" {
		return cache.NewScopedKeyer(cache.NewDefaultKeyer(), p)
	}
	return cache.NewDefaultKeyer()
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default
// (~/.cache/flocktree/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.cfg.Cache.Dir; dir != "" {
		return dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/flocktree/).
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

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return splitList(s)
}

// parseVizTypes parses a comma-separated visualization type string.
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultVizType}
	}
	return splitList(s)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
