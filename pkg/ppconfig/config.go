// Package ppconfig loads docprint's configuration, layering a TOML file
// under a PRETTYDOC_-prefixed environment override for each field.
package ppconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"

	"github.com/relsqui/prettydoc/pkg/pp"
	"github.com/relsqui/prettydoc/pkg/pperrors"
)

const appName = "docprint"

// Config holds docprint's runtime configuration, shared by the CLI and the
// server.
//
// Fields carry no envDefault tag: defaults are applied once by defaultConfig
// before the TOML and environment layers are merged in, so an unset
// environment variable never clobbers a value the TOML file already set.
type Config struct {
	// DefaultWidth is the line width used when a render request does not
	// specify one.
	DefaultWidth int `toml:"default_width" env:"PRETTYDOC_DEFAULT_WIDTH"`
	// DefaultEOL is the end-of-line style used when a render request does
	// not specify one: "lf" or "crlf".
	DefaultEOL string `toml:"default_eol" env:"PRETTYDOC_DEFAULT_EOL"`
	// DefaultIndent is the indent width used by a docspec "indent" node
	// that omits its own count.
	DefaultIndent int `toml:"default_indent" env:"PRETTYDOC_DEFAULT_INDENT"`
	// CacheBackend selects the render cache: "memory", "file", "redis", or
	// "off".
	CacheBackend string `toml:"cache_backend" env:"PRETTYDOC_CACHE_BACKEND"`
	// CacheDir is the directory used by the file cache backend.
	CacheDir string `toml:"cache_dir" env:"PRETTYDOC_CACHE_DIR"`
	// RedisAddr is the address used by the redis cache backend, e.g.
	// "localhost:6379".
	RedisAddr string `toml:"redis_addr" env:"PRETTYDOC_REDIS_ADDR"`
	// HistoryBackend selects the render history store: "memory" or "mongo".
	HistoryBackend string `toml:"history_backend" env:"PRETTYDOC_HISTORY_BACKEND"`
	// HistoryCapacity bounds the in-memory history store; 0 is unbounded.
	HistoryCapacity int `toml:"history_capacity" env:"PRETTYDOC_HISTORY_CAPACITY"`
	// MongoURI is the connection string used by the mongo history backend.
	MongoURI string `toml:"mongo_uri" env:"PRETTYDOC_MONGO_URI"`
	// MongoDatabase names the database holding the history collection.
	MongoDatabase string `toml:"mongo_database" env:"PRETTYDOC_MONGO_DATABASE"`
	// ServeAddr is the address the HTTP server listens on.
	ServeAddr string `toml:"serve_addr" env:"PRETTYDOC_SERVE_ADDR"`
}

// defaultConfig returns the built-in defaults, applied before the TOML and
// environment layers are merged in.
func defaultConfig() Config {
	return Config{
		DefaultWidth:    80,
		DefaultEOL:      "lf",
		DefaultIndent:   pp.DefaultIndent,
		CacheBackend:    "file",
		RedisAddr:       "localhost:6379",
		HistoryBackend:  "memory",
		HistoryCapacity: 1000,
		MongoDatabase:   "docprint",
		ServeAddr:       ":8080",
	}
}

// Load builds a Config from, in increasing priority: built-in defaults, the
// TOML file at path (skipped if path is empty or the file doesn't exist),
// and PRETTYDOC_-prefixed environment variables.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, pperrors.Wrap(pperrors.ErrCodeConfig, err, "failed to parse config file %s", path)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, pperrors.Wrap(pperrors.ErrCodeConfig, err, "failed to stat config file %s", path)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, pperrors.Wrap(pperrors.ErrCodeConfig, err, "failed to parse environment overrides")
	}

	if cfg.CacheDir == "" {
		dir, err := defaultCacheDir()
		if err == nil {
			cfg.CacheDir = dir
		}
	}

	return cfg, nil
}

// defaultCacheDir returns the cache directory using the XDG standard
// (~/.cache/docprint/).
func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
