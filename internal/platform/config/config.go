package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "easeed/internal/platform/errors"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"

	DefaultTimeout        = 30 * time.Second
	DefaultMaxUploadBytes = 10 * 1024 * 1024
)

type Config struct {
	BackendURL     string
	Timeout        time.Duration
	Theme          string
	LogFile        string
	Environment    string
	MaxUploadBytes int64
}

// Overrides carries values set on the command line. Empty fields are ignored.
type Overrides struct {
	ConfigPath string
	BackendURL string
	Theme      string
	Timeout    time.Duration
}

func Default() Config {
	return Config{
		BackendURL:     "http://localhost:8000",
		Timeout:        DefaultTimeout,
		Theme:          ThemeDark,
		LogFile:        filepath.Join(stateDir(), "easeed", "easeed.log"),
		Environment:    "development",
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// Load resolves the configuration: defaults, then the YAML file, then .env and the
// process environment, then command-line overrides.
func Load(o Overrides) (Config, error) {
	cfg := Default()

	path := o.ConfigPath
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if err := mergeFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()
	if err := mergeEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}

	if o.BackendURL != "" {
		cfg.BackendURL = o.BackendURL
	}
	if o.Theme != "" {
		cfg.Theme = o.Theme
	}
	if o.Timeout > 0 {
		cfg.Timeout = o.Timeout
	}

	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: backend url %q must be an absolute http(s) url", apperrors.ErrInvalidConfig, c.BackendURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", apperrors.ErrInvalidConfig)
	}
	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("%w: theme %q must be dark or light", apperrors.ErrInvalidConfig, c.Theme)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", apperrors.ErrInvalidConfig)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production") || strings.EqualFold(c.Environment, "prod")
}

// YAML renders the configuration in the same shape the config file accepts.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(fileConfig{
		BackendURL:     c.BackendURL,
		Timeout:        c.Timeout.String(),
		Theme:          c.Theme,
		LogFile:        c.LogFile,
		Environment:    c.Environment,
		MaxUploadBytes: c.MaxUploadBytes,
	})
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}

func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".easeed", "config.yaml")
	}
	return filepath.Join(dir, "easeed", "config.yaml")
}

// fileConfig mirrors Config with a human-friendly duration string.
type fileConfig struct {
	BackendURL     string `yaml:"backend_url,omitempty"`
	Timeout        string `yaml:"timeout,omitempty"`
	Theme          string `yaml:"theme,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	Environment    string `yaml:"environment,omitempty"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes,omitempty"`
}

func mergeFile(cfg *Config, path string, required bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if fc.BackendURL != "" {
		cfg.BackendURL = fc.BackendURL
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", apperrors.ErrInvalidConfig, fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Environment != "" {
		cfg.Environment = fc.Environment
	}
	if fc.MaxUploadBytes > 0 {
		cfg.MaxUploadBytes = fc.MaxUploadBytes
	}
	return nil
}

func mergeEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}
	if v := get("EASEED_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := get("EASEED_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: EASEED_TIMEOUT %q: %v", apperrors.ErrInvalidConfig, v, err)
		}
		cfg.Timeout = d
	}
	if v := get("EASEED_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := get("EASEED_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := get("EASEED_ENV"); v != "" {
		cfg.Environment = v
	}
	if v := get("EASEED_MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.Atoi(v)
		if err != nil || mb <= 0 {
			return fmt.Errorf("%w: EASEED_MAX_UPLOAD_MB %q", apperrors.ErrInvalidConfig, v)
		}
		cfg.MaxUploadBytes = int64(mb) * 1024 * 1024
	}
	return nil
}

func stateDir() string {
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}
	return os.TempDir()
}
