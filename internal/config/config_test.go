package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "desktop", cfg.Layout)
	assert.True(t, cfg.Animate)
	assert.Empty(t, cfg.Durations)
	assert.Equal(t, "signupdesk", cfg.OTelServiceName)
}

func TestLoad_MissingNamedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yml")
	_, err := Load(path)
	assert.ErrorContains(t, err, path)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
layout: mobile
animate: false
durations:
  - 30 min
  - 1 hour
  - 2 hours
log-file: /tmp/signupdesk.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mobile", cfg.Layout)
	assert.False(t, cfg.Animate)
	assert.Equal(t, []string{"30 min", "1 hour", "2 hours"}, cfg.Durations)
	assert.Equal(t, "/tmp/signupdesk.log", cfg.LogFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "layout: desktop\n")
	t.Setenv("SIGNUPDESK_LAYOUT", "mobile")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mobile", cfg.Layout)
	assert.Equal(t, "localhost:4318", cfg.OTelEndpoint)
}

func TestLoad_RejectsUnknownLayout(t *testing.T) {
	path := writeConfig(t, "layout: tablet\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "layout")
}

func TestValidate_BlankDuration(t *testing.T) {
	cfg := Config{Layout: "desktop", Durations: []string{"30 min", " "}}
	assert.ErrorContains(t, cfg.Validate(), "durations[1]")
}
