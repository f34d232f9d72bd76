package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeFile(t, "bytes:\n  width: 7\n  height: 7\n  fallen: 12\nrace:\n  min_saving: 50\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Bytes = BytesConfig{Width: 7, Height: 7, Fallen: 12}
	want.Race.MinSaving = 50
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeFile(t, "maze: [not a map\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ZeroCosts", func(c *Config) { c.Maze = MazeConfig{} }},
		{"ZeroWidth", func(c *Config) { c.Bytes.Width = 0 }},
		{"NegativeFallen", func(c *Config) { c.Bytes.Fallen = -1 }},
		{"ShortCheat", func(c *Config) { c.Race.MaxCheat = 1 }},
		{"NegativeSaving", func(c *Config) { c.Race.MinSaving = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
