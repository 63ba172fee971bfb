package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"notesaver/internal/logs"
	"notesaver/internal/notes"
)

// Config holds the unified application configuration
type Config struct {
	NotesDir     string `yaml:"notes_dir" env:"NOTESAVER_DIR"`
	SlugMaxLen   int    `yaml:"slug_max_len" env:"NOTESAVER_SLUG_MAX_LEN"`
	LogDir       string `yaml:"log_dir" env:"NOTESAVER_LOG_DIR"`
	LogLevel     string `yaml:"log_level" env:"NOTESAVER_LOG_LEVEL"`
	DisableWatch bool   `yaml:"disable_watch" env:"NOTESAVER_DISABLE_WATCH"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	ConfigPath   string
	NotesDir     string
	LogLevel     string
	DisableWatch bool
}

const configPathEnv = "NOTESAVER_CONFIG"

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	var errs error

	layers := []*Config{{
		NotesDir:     flags.NotesDir,
		LogLevel:     flags.LogLevel,
		DisableWatch: flags.DisableWatch,
	}}

	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		errs = errors.Join(errs, fmt.Errorf("parse env config: %w", err))
	} else {
		layers = append(layers, envCfg)
	}

	configPath, explicit, err := resolveConfigPath(flags.ConfigPath)
	if err != nil {
		errs = errors.Join(errs, err)
	} else if fileCfg, err := loadConfigFile(configPath); err == nil {
		layers = append(layers, fileCfg)
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		// a missing default file is fine; a broken or missing explicit one is not
		errs = errors.Join(errs, err)
	}

	defaults, err := Defaults()
	if err != nil {
		errs = errors.Join(errs, err)
	} else {
		layers = append(layers, defaults)
	}

	if errs != nil {
		return nil, errs
	}

	cfg := &Config{}
	for _, layer := range layers {
		if err := mergo.Merge(cfg, layer); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
	}

	cfg.NotesDir = expandPath(cfg.NotesDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Dir(cfg.NotesDir)
	}
	cfg.LogDir = expandPath(cfg.LogDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns the configuration used when nothing else is set
func Defaults() (*Config, error) {
	defaultDir, err := GetDefaultDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		NotesDir:   filepath.Join(defaultDir, "notes"),
		SlugMaxLen: notes.DefaultSlugMaxLen,
		LogLevel:   "info",
	}, nil
}

// Validate rejects values the rest of the program cannot work with
func (c *Config) Validate() error {
	var errs error
	if strings.TrimSpace(c.NotesDir) == "" {
		errs = errors.Join(errs, errors.New("notes_dir must not be empty"))
	}
	if c.SlugMaxLen < 0 {
		errs = errors.Join(errs, fmt.Errorf("slug_max_len must not be negative, got %d", c.SlugMaxLen))
	}
	if _, err := logs.ParseLevel(c.LogLevel); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// EnsureNotesDir ensures the notes directory exists (creates it if missing)
func (c *Config) EnsureNotesDir() error {
	return os.MkdirAll(c.NotesDir, 0755)
}

// GetDefaultDir returns the default directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "notesaver"), nil
}

// ConfigPath returns the path to the configuration file
func ConfigPath() (string, error) {
	path, _, err := resolveConfigPath("")
	return path, err
}

func resolveConfigPath(flagPath string) (path string, explicit bool, err error) {
	if flagPath != "" {
		return expandPath(flagPath), true, nil
	}
	if envPath := os.Getenv(configPathEnv); envPath != "" {
		return expandPath(envPath), true, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(homeDir, ".config", "notesaver", "config.yaml"), false, nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	return &cfg, nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaults, err := Defaults()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
