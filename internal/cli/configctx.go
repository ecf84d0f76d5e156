package cli

import (
	"context"

	"github.com/relsqui/prettydoc/pkg/ppconfig"
)

// configKey is the context key for storing a loaded ppconfig.Config.
const configKey ctxKey = 1

// withConfig returns a new context with cfg attached. The config can be
// retrieved later with configFromContext.
func withConfig(ctx context.Context, cfg ppconfig.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx. If none is attached (a
// command run without going through RootCommand's PersistentPreRunE, as in
// tests), it falls back to ppconfig.Load("")'s built-in defaults.
func configFromContext(ctx context.Context) ppconfig.Config {
	if cfg, ok := ctx.Value(configKey).(ppconfig.Config); ok {
		return cfg
	}
	cfg, _ := ppconfig.Load("")
	return cfg
}
