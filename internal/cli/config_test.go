package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skeletrack/track"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "cfg.yaml", "mode: segment\nworkers: 2\nradius: 3\nformat: json\n"},
		{"toml", "cfg.toml", "mode = \"segment\"\nworkers = 2\nradius = 3\nformat = \"json\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(writeFile(t, dir, tt.file, tt.content))
			require.NoError(t, err)
			require.Equal(t, "segment", cfg.Mode)
			require.Equal(t, 2, cfg.Workers)
			require.Equal(t, formatJSON, cfg.Format)
			require.NotNil(t, cfg.Radius)
			require.Equal(t, 3, *cfg.Radius)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
	require.Nil(t, cfg.Radius)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := loadConfig(writeFile(t, dir, "cfg.ini", "mode=node"))
	require.ErrorIs(t, err, errConfigFormat)

	_, err = loadConfig(writeFile(t, dir, "bad.yaml", "mode: ring\n"))
	require.ErrorIs(t, err, track.ErrOptionViolation)

	_, err = loadConfig(writeFile(t, dir, "bad.toml", "format = \"xml\"\n"))
	require.Error(t, err)

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
