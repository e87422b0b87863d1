package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/todolist/internal/config"
)

func TestEnvReader_Defaults(t *testing.T) {
	for _, k := range []string{"TODO_ENV", "TODO_LOG_LEVEL", "TODO_THEME", "TODO_TITLE", "TODO_NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if cfg.Env != config.EnvProd || cfg.LogLevel != "warn" || cfg.Theme != "classic" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Title != "Today's Todos" || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestEnvReader_Overrides(t *testing.T) {
	t.Setenv("TODO_THEME", "neon")
	t.Setenv("TODO_NO_COLOR", "true")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme != "neon" || !cfg.NoColor {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestFileReader_YAML(t *testing.T) {
	t.Setenv("TODO_THEME", "")
	os.Unsetenv("TODO_THEME")
	p := filepath.Join(t.TempDir(), "todo.yaml")
	if err := os.WriteFile(p, []byte("env: local\ntheme: mono\ntitle: Errands\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != config.EnvLocal || cfg.Theme != "mono" || cfg.Title != "Errands" {
		t.Fatalf("file not applied: %+v", cfg)
	}
}

func TestFileReader_Missing(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
