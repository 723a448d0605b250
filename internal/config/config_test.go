package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metalagman/entrygen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "entrygen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
generator:
  output_path: /tmp/out.json
  entry_count: 10
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, entrygen.Config{
		OutputPath: "/tmp/out.json",
		EntryCount: 10,
		EntryValue: entrygen.DefaultEntryValue,
	}, cfg.Generator)
	assert.Equal(t, Log{Level: "info", Format: "json"}, cfg.Log)
}

func TestLoadAllFields(t *testing.T) {
	path := writeConfig(t, `
generator:
  output_path: out.json
  entry_count: 0
  entry_value: ABC
  canonical_empty: true
  atomic: true
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, entrygen.Config{
		OutputPath:     "out.json",
		EntryCount:     0,
		EntryValue:     "ABC",
		CanonicalEmpty: true,
		Atomic:         true,
	}, cfg.Generator)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "malformed", content: "generator: [unclosed"},
		{name: "negative count", content: "generator:\n  entry_count: -5\n", wantErr: entrygen.ErrNegativeCount},
		{name: "empty path", content: "generator:\n  output_path: \"\"\n", wantErr: entrygen.ErrOutputPathEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
