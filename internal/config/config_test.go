package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"source_dir": "assets/goblin",
		"preview_size": 256,
		"workers": 3
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "assets/goblin", cfg.SourceDir)
	require.Equal(t, 256, cfg.PreviewSize)
	require.Equal(t, 3, cfg.Workers)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := Load(path)
	require.ErrorContains(t, err, "parse")
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	require.Equal(t, ".", cfg.SourceDir)
	require.Equal(t, filepath.Join(".", "rig.toml"), cfg.RigFile)
	require.Equal(t, filepath.Join(".", "mesh.json"), cfg.OutputFile)
	require.Equal(t, 512, cfg.PreviewSize)
	require.Equal(t, 2, cfg.Supersample)
	require.Positive(t, cfg.Workers)
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{SourceDir: "from-file", Workers: 2}
	cfg.Resolve(Flags{
		SourceDir: "from-flag",
		RigFile:   "custom.toml",
		Workers:   8,
	})

	require.Equal(t, "from-flag", cfg.SourceDir)
	require.Equal(t, filepath.Join("from-flag", "custom.toml"), cfg.RigFile)
	require.Equal(t, 8, cfg.Workers)
}
