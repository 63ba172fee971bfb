package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at a temp dir and clears every NOTESAVER_ variable
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"NOTESAVER_CONFIG",
		"NOTESAVER_DIR",
		"NOTESAVER_SLUG_MAX_LEN",
		"NOTESAVER_LOG_DIR",
		"NOTESAVER_LOG_LEVEL",
		"NOTESAVER_DISABLE_WATCH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Default(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(home, "notesaver", "notes")
	if cfg.NotesDir != expected {
		t.Errorf("expected notes dir %q, got %q", expected, cfg.NotesDir)
	}
	if cfg.LogDir != filepath.Join(home, "notesaver") {
		t.Errorf("expected log dir next to notes dir, got %q", cfg.LogDir)
	}
	if cfg.SlugMaxLen != 40 {
		t.Errorf("expected slug max len 40, got %d", cfg.SlugMaxLen)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.LogLevel)
	}
	if cfg.DisableWatch {
		t.Error("expected watcher enabled by default")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "notes_dir: /tmp/file-notes\nslug_max_len: 20\nlog_level: debug\n")

	cfg, err := Load(CLIFlags{ConfigPath: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NotesDir != "/tmp/file-notes" {
		t.Errorf("expected /tmp/file-notes, got %q", cfg.NotesDir)
	}
	if cfg.SlugMaxLen != 20 {
		t.Errorf("expected 20, got %d", cfg.SlugMaxLen)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "notes_dir: /tmp/file-notes\nslug_max_len: 20\n")
	t.Setenv("NOTESAVER_CONFIG", path)
	t.Setenv("NOTESAVER_DIR", "/tmp/env-notes")
	t.Setenv("NOTESAVER_DISABLE_WATCH", "true")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.NotesDir != "/tmp/env-notes" {
		t.Errorf("expected /tmp/env-notes, got %q", cfg.NotesDir)
	}
	// file still fills what env leaves unset
	if cfg.SlugMaxLen != 20 {
		t.Errorf("expected 20 from file, got %d", cfg.SlugMaxLen)
	}
	if !cfg.DisableWatch {
		t.Error("expected watcher disabled from env")
	}
}

func TestLoad_CLIFlags(t *testing.T) {
	isolate(t)
	t.Setenv("NOTESAVER_DIR", "/tmp/env-notes")

	cfg, err := Load(CLIFlags{NotesDir: "/tmp/cli-notes", LogLevel: "warn"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// CLI flags should override env vars
	if cfg.NotesDir != "/tmp/cli-notes" {
		t.Errorf("expected /tmp/cli-notes, got %q", cfg.NotesDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected warn, got %q", cfg.LogLevel)
	}
}

func TestLoad_PathExpansion(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{NotesDir: "~/my-notes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := filepath.Join(home, "my-notes")
	if cfg.NotesDir != expected {
		t.Errorf("expected %q, got %q", expected, cfg.NotesDir)
	}
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	isolate(t)

	_, err := Load(CLIFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)

	path := writeConfig(t, "slug_max_len: -3\n")
	if _, err := Load(CLIFlags{ConfigPath: path}); err == nil {
		t.Error("expected error for negative slug_max_len")
	}

	if _, err := Load(CLIFlags{LogLevel: "shouty"}); err == nil {
		t.Error("expected error for unknown log level")
	}

	bad := writeConfig(t, "notes_dir: [unclosed\n")
	if _, err := Load(CLIFlags{ConfigPath: bad}); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(home, ".config", "notesaver", "config.yaml")
	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("expected readable config file: %v", err)
	}
	if cfg.SlugMaxLen != 40 {
		t.Errorf("expected default slug length in file, got %d", cfg.SlugMaxLen)
	}

	// second call leaves the file alone
	os.WriteFile(path, []byte("notes_dir: /custom\n"), 0644)
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "notes_dir: /custom\n" {
		t.Errorf("existing config was overwritten: %q", data)
	}
}
