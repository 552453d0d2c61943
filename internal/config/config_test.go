package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	cfg := Default()

	assert.True(t, filepath.IsAbs(cfg.BackupDir))
	assert.Equal(t, "main", cfg.Git.DefaultBranch)
	assert.NotEmpty(t, cfg.Packages.Pacman)
	assert.NotEmpty(t, cfg.Packages.Apt)
	assert.NotEmpty(t, cfg.Packages.Dnf)
	assert.Contains(t, cfg.Services, "NetworkManager")
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromOverridesSubset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
backup_dir: /mnt/backups
git:
  name: Jo Developer
  email: jo@example.org
packages:
  aur:
    - some-aur-tool
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/backups", cfg.BackupDir)
	assert.Equal(t, "Jo Developer", cfg.Git.Name)
	assert.Equal(t, "jo@example.org", cfg.Git.Email)
	assert.Equal(t, []string{"some-aur-tool"}, cfg.Packages.AUR)

	// Everything the file does not mention keeps its default.
	assert.Equal(t, "main", cfg.Git.DefaultBranch)
	assert.Equal(t, Default().Packages.Pacman, cfg.Packages.Pacman)
	assert.Equal(t, Default().Services, cfg.Services)
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backup_dir: [unclosed"), 0o644))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
