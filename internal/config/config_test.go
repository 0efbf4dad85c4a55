package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("KILO_CONFIG", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_ReadsFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tab_stop: 4\nquit_times: 1\nmessage_timeout: 2s\nlog:\n  file: /tmp/kilo.log\n  level: debug\n")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.TabStop)
	require.Equal(t, 1, cfg.QuitTimes)
	require.Equal(t, 2*time.Second, cfg.MessageTimeout)
	require.Equal(t, "/tmp/kilo.log", cfg.Log.File)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DiscoversXDGConfig(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "kilo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tab_stop: 2\n"), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, 2, cfg.TabStop)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tab_stop: 4\n")
	t.Setenv("KILO_TAB_STOP", "6")
	t.Setenv("KILO_LOG_LEVEL", "warn")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.TabStop)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KILO_CONFIG", writeConfig(t, "quit_times: 0\n"))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, 0, cfg.QuitTimes)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tab_stop: [\n")

	_, err := Load(viper.New(), path)
	require.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tab_stop: 0\n")

	_, err := Load(viper.New(), path)
	require.True(t, errors.Is(err, ErrInvalid), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "tab stop too large", mutate: func(c *Config) { c.TabStop = 33 }},
		{name: "negative quit times", mutate: func(c *Config) { c.QuitTimes = -1 }},
		{name: "zero timeout", mutate: func(c *Config) { c.MessageTimeout = 0 }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	require.NoError(t, Defaults().Validate())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "level %q", tt.in)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
