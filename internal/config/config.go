// Package config provides configuration types, defaults, and loading for kilo.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override, e.g. KILO_TAB_STOP.
const EnvPrefix = "KILO"

// Config holds all configuration options for kilo.
type Config struct {
	TabStop        int           `mapstructure:"tab_stop"`
	QuitTimes      int           `mapstructure:"quit_times"`
	MessageTimeout time.Duration `mapstructure:"message_timeout"`
	Log            LogConfig     `mapstructure:"log"`
}

// LogConfig configures the debug log. An empty File disables logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"` // debug, info (default), warn, error
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TabStop:        8,
		QuitTimes:      3,
		MessageTimeout: 5 * time.Second,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration into a Config.
//
// Lookup order for the file: path if non-empty, then $KILO_CONFIG, then
// config.yaml in $XDG_CONFIG_HOME/kilo and ~/.config/kilo. A missing file is
// not an error. Environment variables override file values.
func Load(v *viper.Viper, path string) (Config, error) {
	defaults := Defaults()
	v.SetDefault("tab_stop", defaults.TabStop)
	v.SetDefault("quit_times", defaults.QuitTimes)
	v.SetDefault("message_timeout", defaults.MessageTimeout)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("log.level", defaults.Log.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TabStop < 1 || c.TabStop > 32 {
		return fmt.Errorf("%w: tab_stop must be in [1, 32], got %d", ErrInvalid, c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("%w: quit_times must not be negative, got %d", ErrInvalid, c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("%w: message_timeout must be positive, got %s", ErrInvalid, c.MessageTimeout)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ParseLevel maps a level name to a slog level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "kilo"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "kilo"))
	}
	return dirs
}
