package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "easeed/internal/platform/errors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"EASEED_BACKEND_URL", "EASEED_TIMEOUT", "EASEED_THEME", "EASEED_LOG_FILE", "EASEED_ENV", "EASEED_MAX_UPLOAD_MB"} {
		t.Setenv(key, "")
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "backend_url: http://file.example:9000/\ntimeout: 5s\ntheme: light\n")

	cfg, err := Load(Overrides{ConfigPath: path})
	if err != nil {
		t.Fatalf("load from file: %v", err)
	}
	if cfg.BackendURL != "http://file.example:9000" || cfg.Timeout != 5*time.Second || cfg.Theme != ThemeLight {
		t.Fatalf("unexpected file config: %+v", cfg)
	}

	t.Setenv("EASEED_BACKEND_URL", "https://env.example")
	t.Setenv("EASEED_THEME", "DARK")
	cfg, err = Load(Overrides{ConfigPath: path})
	if err != nil {
		t.Fatalf("load with env: %v", err)
	}
	if cfg.BackendURL != "https://env.example" || cfg.Theme != ThemeDark || cfg.Timeout != 5*time.Second {
		t.Fatalf("env should override file: %+v", cfg)
	}

	cfg, err = Load(Overrides{ConfigPath: path, BackendURL: "http://flag.example", Theme: "light", Timeout: time.Minute})
	if err != nil {
		t.Fatalf("load with overrides: %v", err)
	}
	if cfg.BackendURL != "http://flag.example" || cfg.Theme != ThemeLight || cfg.Timeout != time.Minute {
		t.Fatalf("flags should override env: %+v", cfg)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	if _, err := Load(Overrides{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Fatalf("explicit missing config should fail")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "backend_url: localhost:8000\n")
	_, err := Load(Overrides{ConfigPath: path})
	if !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected invalid config for schemeless url, got %v", err)
	}

	path = writeFile(t, "timeout: soon\n")
	if _, err := Load(Overrides{ConfigPath: path}); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected invalid config for bad timeout, got %v", err)
	}

	path = writeFile(t, "theme: solarized\n")
	if _, err := Load(Overrides{ConfigPath: path}); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("expected invalid config for unknown theme, got %v", err)
	}
}

func TestMergeEnv(t *testing.T) {
	t.Parallel()
	env := map[string]string{
		"EASEED_TIMEOUT":       "45s",
		"EASEED_MAX_UPLOAD_MB": "3",
		"EASEED_ENV":           "production",
		"EASEED_LOG_FILE":      "/tmp/easeed.log",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := Default()
	if err := mergeEnv(&cfg, lookup); err != nil {
		t.Fatalf("merge env: %v", err)
	}
	if cfg.Timeout != 45*time.Second || cfg.MaxUploadBytes != 3*1024*1024 || !cfg.IsProduction() || cfg.LogFile != "/tmp/easeed.log" {
		t.Fatalf("unexpected merged config: %+v", cfg)
	}

	env["EASEED_MAX_UPLOAD_MB"] = "-1"
	if err := mergeEnv(&cfg, lookup); !errors.Is(err, apperrors.ErrInvalidConfig) {
		t.Fatalf("negative upload size should fail, got %v", err)
	}
}

func TestYAMLRoundTripsThroughFile(t *testing.T) {
	clearEnv(t)
	cfg := Default()
	cfg.BackendURL = "https://api.example"
	cfg.Timeout = 12 * time.Second
	out, err := cfg.YAML()
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(out, "timeout: 12s") {
		t.Fatalf("timeout should render as a duration string:\n%s", out)
	}
	loaded, err := Load(Overrides{ConfigPath: writeFile(t, out)})
	if err != nil {
		t.Fatalf("load rendered yaml: %v", err)
	}
	if loaded.BackendURL != cfg.BackendURL || loaded.Timeout != cfg.Timeout {
		t.Fatalf("rendered yaml did not load back: %+v", loaded)
	}
}
