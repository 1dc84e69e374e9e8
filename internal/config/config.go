package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// HomeEnv overrides the application directory.
const HomeEnv = "APPART_HOME"

type Config struct {
	Language   string `toml:"language"`
	Currency   string `toml:"currency"`
	DateLayout string `toml:"date_layout"`
	LogLevel   string `toml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Language:   "fr",
		Currency:   "EUR",
		DateLayout: "02/01/2006",
		LogLevel:   "info",
	}
}

func AppDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return expandPath(dir), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".appart"), nil
}

func ConfigPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func DatabasePath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "db", "appart.sqlite"), nil
}

func LogPath() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "appart.log"), nil
}

func EnsureDirectories() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create db subdirectory
	if err := os.MkdirAll(filepath.Join(dir, "db"), 0755); err != nil {
		return err
	}

	return nil
}

func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := EnsureDirectories(); err != nil {
			return nil, err
		}
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, err
	}

	// Keys removed from the file fall back to defaults
	def := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.DateLayout == "" {
		cfg.DateLayout = def.DateLayout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}

	return cfg, nil
}

func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, _ := os.UserHomeDir()
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
