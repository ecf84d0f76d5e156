package ppconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaultsWithNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultWidth != 80 {
		t.Errorf("DefaultWidth = %d, want 80", cfg.DefaultWidth)
	}
	if cfg.CacheBackend != "file" {
		t.Errorf("CacheBackend = %q, want %q", cfg.CacheBackend, "file")
	}
	if cfg.CacheDir == "" {
		t.Error("CacheDir should default to a non-empty XDG-derived path")
	}
	if cfg.DefaultIndent != 2 {
		t.Errorf("DefaultIndent = %d, want 2", cfg.DefaultIndent)
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultWidth != 80 {
		t.Errorf("DefaultWidth = %d, want 80", cfg.DefaultWidth)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docprint.toml")
	content := "default_width = 120\ncache_backend = \"redis\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultWidth != 120 {
		t.Errorf("DefaultWidth = %d, want 120", cfg.DefaultWidth)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("CacheBackend = %q, want %q", cfg.CacheBackend, "redis")
	}
	// A key the file didn't set should keep its built-in default.
	if cfg.ServeAddr != ":8080" {
		t.Errorf("ServeAddr = %q, want %q", cfg.ServeAddr, ":8080")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docprint.toml")
	content := "default_width = 120\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	t.Setenv("PRETTYDOC_DEFAULT_WIDTH", "200")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.DefaultWidth != 200 {
		t.Errorf("DefaultWidth = %d, want 200 (env should win over file)", cfg.DefaultWidth)
	}
}

func TestLoadUnsetEnvDoesNotClobberFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docprint.toml")
	content := "cache_backend = \"redis\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("CacheBackend = %q, want %q (unset env must not override the file)", cfg.CacheBackend, "redis")
	}
}
