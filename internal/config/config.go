// Package config loads and saves the budgetbuddy TOML configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/budgetbuddy/internal/report"
)

const appName = "budgetbuddy"

// Environment overrides, checked before the config file.
const (
	EnvConfigPath = "BUDGETBUDDY_CONFIG"
	EnvOutput     = "BUDGETBUDDY_OUTPUT"
	EnvTheme      = "BUDGETBUDDY_THEME"
	EnvLogLevel   = "BUDGETBUDDY_LOG_LEVEL"
)

// Config holds all budgetbuddy configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Budget     BudgetConfig     `toml:"budget"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	OutputFile   string `toml:"output_file"`
	PlainPrompts bool   `toml:"plain_prompts"`
}

// BudgetConfig holds the default monthly budget offered at session start.
type BudgetConfig struct {
	Monthly *decimal.Decimal `toml:"monthly,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			OutputFile: report.DefaultFile,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG config directory for budgetbuddy.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's config file
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory if needed.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // path is the user's config file
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// OutputPath returns the summary file from env var or config, in that order.
func OutputPath(cfg Config) string {
	if p := os.Getenv(EnvOutput); p != "" {
		return p
	}
	if cfg.General.OutputFile != "" {
		return cfg.General.OutputFile
	}
	return report.DefaultFile
}

// ThemeName returns the theme from env var or config, in that order.
func ThemeName(cfg Config) string {
	if name := os.Getenv(EnvTheme); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}

// LogLevel returns the log level from env var or config. Unknown names fall
// back to warn.
func LogLevel(cfg Config) slog.Level {
	name := cfg.Log.Level
	if env := os.Getenv(EnvLogLevel); env != "" {
		name = env
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn
	}
	return level
}
