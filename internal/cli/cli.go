// Package cli implements the docprint command-line interface.
//
// This package provides commands for rendering docspec documents to text,
// visualizing their document-tree structure, serving a render API over
// HTTP, and managing the on-disk render cache. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Lay out a docspec document at a given width
//   - tree: Render a docspec document's tree structure as an SVG (debug tool)
//   - serve: Expose rendering over an HTTP API
//   - bench: Measure layout throughput against a synthetic corpus
//   - tui: Interactively preview a document across print widths
//   - cache: Inspect or clear the on-disk render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/relsqui/prettydoc/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/relsqui/prettydoc/pkg/buildinfo"
	"github.com/relsqui/prettydoc/pkg/ppcache"
	"github.com/relsqui/prettydoc/pkg/ppconfig"
	"github.com/relsqui/prettydoc/pkg/pperrors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "docprint"
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
	var configPath string

	root := &cobra.Command{
		Use:          "docprint",
		Short:        "docprint lays out structured documents at a target width",
		Long:         `docprint is a CLI tool around a Wadler/Oppen-style pretty-printing engine: it renders docspec documents to text, visualizes their tree structure, and serves rendering over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (PRETTYDOC_* env vars override it)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := ppconfig.Load(configPath)
		if err != nil {
			return err
		}
		ctx := withLogger(cmd.Context(), c.Logger)
		ctx = withConfig(ctx, cfg)
		cmd.SetContext(ctx)
		return nil
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.cacheCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the render cache backend selected by cfg.CacheBackend
// ("memory", "file", "redis", or "off"), overridden to "off" when noCache is
// set.
func newCache(cfg ppconfig.Config, noCache bool) (ppcache.Cache, error) {
	backend := cfg.CacheBackend
	if noCache {
		backend = "off"
	}

	switch backend {
	case "off", "":
		return ppcache.NewNullCache(), nil

	case "memory":
		return ppcache.NewMemoryCache(), nil

	case "redis":
		opts := &redis.Options{Addr: cfg.RedisAddr}
		if strings.Contains(cfg.RedisAddr, "://") {
			parsed, err := redis.ParseURL(cfg.RedisAddr)
			if err != nil {
				return nil, pperrors.Wrap(pperrors.ErrCodeConfig, err, "parse redis address %q", cfg.RedisAddr)
			}
			opts = parsed
		}
		return ppcache.NewRedisCache(redis.NewClient(opts)), nil

	case "file":
		dir := cfg.CacheDir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return ppcache.NewNullCache(), nil
			}
		}
		return ppcache.NewFileCache(dir)

	default:
		return nil, pperrors.New(pperrors.ErrCodeConfig, "unrecognized cache backend %q", backend)
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using the XDG standard (~/.cache/docprint/).
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
