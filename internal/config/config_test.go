// ABOUTME: Tests for configuration loading and path resolution.
// ABOUTME: Covers env overrides, ~ expansion, and save/load round-trips.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/nosh", filepath.Join(home, "nosh")},
		{"/var/lib/nosh", "/var/lib/nosh"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDBPath(t *testing.T) {
	c := &Config{DataDir: "/data"}
	if got := c.GetDBPath(); got != filepath.Join("/data", "nosh.db") {
		t.Errorf("GetDBPath = %q, want /data/nosh.db", got)
	}

	c = &Config{DataDir: "/data", DBPath: "/elsewhere/journal.db"}
	if got := c.GetDBPath(); got != "/elsewhere/journal.db" {
		t.Errorf("DBPath override ignored: got %q", got)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NOSH_DATA_DIR", "")
	t.Setenv("NOSH_DB_PATH", "")

	saved := &Config{DataDir: "/from-file"}
	if err := saved.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/from-file" {
		t.Errorf("DataDir = %q, want /from-file", cfg.DataDir)
	}

	t.Setenv("NOSH_DATA_DIR", "/from-env")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/from-env" {
		t.Errorf("DataDir = %q, want env value /from-env", cfg.DataDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NOSH_DATA_DIR", "")
	t.Setenv("NOSH_DB_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}
	if cfg.DataDir != "" || cfg.DBPath != "" {
		t.Errorf("expected empty defaults, got %+v", cfg)
	}
}

func TestOpenStorage(t *testing.T) {
	dir := t.TempDir()
	c := &Config{DBPath: filepath.Join(dir, "nosh.db")}

	db, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "nosh.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}
