package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents codenav configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`
}

// DisplayConfig controls how versions are rendered
type DisplayConfig struct {
	TimestampLayout string `json:"timestamp"`
	Color           bool   `json:"color"`
	Names           bool   `json:"names"`
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

// Environment variables that override file settings.
const (
	EnvTimestampLayout = "CODENAV_TIMESTAMP_LAYOUT"
	EnvColor           = "CODENAV_COLOR"
	EnvNames           = "CODENAV_NAMES"
	EnvLogLevel        = "CODENAV_LOG_LEVEL"
	EnvLogPretty       = "CODENAV_LOG_PRETTY"
)

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			TimestampLayout: "2006-01-02 15:04:05",
			Color:           true,
			Names:           true,
		},
		Log: LogConfig{
			Level:  "warn",
			Pretty: true,
		},
	}
}

// globalConfigPath returns the path to the global config file
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".codenavconfig"), nil
}

// LoadConfig builds the effective configuration: defaults, then the global
// config file, then a .env file in the working directory, then the process
// environment.
func LoadConfig() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}

	// A missing .env file is the normal case.
	_ = godotenv.Load()

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads the global config file over the defaults. A missing file
// is not an error; a malformed one is.
func loadFile() (*Config, error) {
	cfg := DefaultConfig()

	path, err := globalConfigPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := ValidateLayout(cfg.Display.TimestampLayout); err != nil {
		return nil, fmt.Errorf("invalid display.timestamp in %s: %w", path, err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	for _, key := range Keys() {
		env := envFor(key)
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := set(cfg, key, value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}

func envFor(key string) string {
	switch key {
	case "display.timestamp":
		return EnvTimestampLayout
	case "display.color":
		return EnvColor
	case "display.names":
		return EnvNames
	case "log.level":
		return EnvLogLevel
	case "log.pretty":
		return EnvLogPretty
	}
	return ""
}

// SaveGlobalConfig saves configuration to the global config file
func SaveGlobalConfig(cfg *Config) error {
	path, err := globalConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Keys lists every supported key in display order.
func Keys() []string {
	return []string{"display.timestamp", "display.color", "display.names", "log.level", "log.pretty"}
}

// Get returns the value of key in cfg.
func (cfg *Config) Get(key string) (string, error) {
	switch key {
	case "display.timestamp":
		return cfg.Display.TimestampLayout, nil
	case "display.color":
		return strconv.FormatBool(cfg.Display.Color), nil
	case "display.names":
		return strconv.FormatBool(cfg.Display.Names), nil
	case "log.level":
		return cfg.Log.Level, nil
	case "log.pretty":
		return strconv.FormatBool(cfg.Log.Pretty), nil
	default:
		return "", unknownKey(key)
	}
}

// GetValue retrieves a configuration value by key (e.g., "log.level")
func GetValue(key string) (string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.Get(key)
}

// SetValue stores a value in the global config file. Environment overrides
// are not written back.
func SetValue(key, value string) error {
	cfg, err := loadFile()
	if err != nil {
		return err
	}
	if err := set(cfg, key, value); err != nil {
		return err
	}
	return SaveGlobalConfig(cfg)
}

func set(cfg *Config, key, value string) error {
	switch key {
	case "display.timestamp":
		if err := ValidateLayout(value); err != nil {
			return err
		}
		cfg.Display.TimestampLayout = value
	case "display.color":
		return setBool(&cfg.Display.Color, value)
	case "display.names":
		return setBool(&cfg.Display.Names, value)
	case "log.level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "error", "off":
			cfg.Log.Level = strings.ToLower(value)
		default:
			return fmt.Errorf("unknown log level: %s (expected debug, info, warn, error or off)", value)
		}
	case "log.pretty":
		return setBool(&cfg.Log.Pretty, value)
	default:
		return unknownKey(key)
	}
	return nil
}

// layoutSamples differ in every field a layout can print, so a layout with
// at least one time field formats them differently.
var layoutSamples = [2]time.Time{
	time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC),
	time.Date(2012, time.November, 20, 17, 38, 49, 123456789, time.UTC),
}

// ValidateLayout reports whether layout is usable as a display timestamp.
func ValidateLayout(layout string) error {
	if strings.TrimSpace(layout) == "" {
		return fmt.Errorf("timestamp layout cannot be empty")
	}
	if layoutSamples[0].Format(layout) == layoutSamples[1].Format(layout) {
		return fmt.Errorf("timestamp layout %q has no time fields", layout)
	}
	return nil
}

func setBool(dst *bool, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("expected true or false, got %q", value)
	}
	*dst = b
	return nil
}

func unknownKey(key string) error {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return fmt.Errorf("invalid config key: %s (expected format: section.key)", key)
	}
	return fmt.Errorf("unknown config key: %s", key)
}
