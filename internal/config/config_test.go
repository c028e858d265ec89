package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir and clears codenav variables.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range Keys() {
		t.Setenv(envFor(key), "")
	}
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSetValuePersistsToGlobalFile(t *testing.T) {
	home := isolate(t)

	require.NoError(t, SetValue("log.level", "DEBUG"))
	require.NoError(t, SetValue("display.names", "false"))

	_, err := os.Stat(filepath.Join(home, ".codenavconfig"))
	require.NoError(t, err)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Display.Names)
	assert.True(t, cfg.Display.Color)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, SetValue("log.level", "info"))

	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvTimestampLayout, "15:04")

	level, err := GetValue("log.level")
	require.NoError(t, err)
	assert.Equal(t, "error", level)

	layout, err := GetValue("display.timestamp")
	require.NoError(t, err)
	assert.Equal(t, "15:04", layout)
}

func TestInvalidEnvironmentValue(t *testing.T) {
	isolate(t)
	t.Setenv(EnvColor, "sometimes")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvColor)
}

func TestMalformedConfigFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".codenavconfig"), []byte("{not json"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSetValueRejectsBadInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		key, value, msg string
	}{
		{"display.timestamp", "", "cannot be empty"},
		{"display.timestamp", "no fields", "no time fields"},
		{"display.color", "maybe", "expected true or false"},
		{"log.level", "loud", "unknown log level"},
		{"log.colour", "true", "unknown config key"},
		{"nosection", "x", "expected format"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			err := SetValue(tt.key, tt.value)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGetEveryKey(t *testing.T) {
	cfg := DefaultConfig()
	for _, key := range Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}
}

func TestValidateLayoutAcceptsDateOnlyFields(t *testing.T) {
	for _, layout := range []string{"Jan", "Monday", "2006", "15:04", DefaultConfig().Display.TimestampLayout} {
		assert.NoError(t, ValidateLayout(layout), layout)
	}

	assert.ErrorContains(t, ValidateLayout("no fields"), "no time fields")
	assert.ErrorContains(t, ValidateLayout("   "), "cannot be empty")
}

func TestSetValueAcceptsMonthLayout(t *testing.T) {
	isolate(t)

	require.NoError(t, SetValue("display.timestamp", "Jan 2"))

	layout, err := GetValue("display.timestamp")
	require.NoError(t, err)
	assert.Equal(t, "Jan 2", layout)
}

func TestConfigFileLayoutIsValidated(t *testing.T) {
	home := isolate(t)
	data := []byte(`{"display": {"timestamp": "no fields"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".codenavconfig"), data, 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display.timestamp")
	assert.Contains(t, err.Error(), ".codenavconfig")
}
