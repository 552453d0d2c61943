package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// DefaultPath returns the user settings file location,
// $XDG_CONFIG_HOME/linux-setup/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "linux-setup", "config.yaml")
}

// Default returns the built-in settings used when no config file exists.
// The package lists mirror what the interactive installer steps expect on a
// fresh machine; a user file overrides any subset of this.
func Default() *Settings {
	return &Settings{
		BackupDir:    filepath.Join(xdg.Home, "backups"),
		DotfilesRepo: "",
		Git: GitIdentity{
			DefaultBranch: "main",
		},
		NAS: NASShare{
			RemotePath: "/volume1/documents",
			LocalPath:  filepath.Join(xdg.Home, "Documents"),
		},
		Packages: PackageSets{
			Pacman: []string{
				"base-devel", "git", "rsync", "zsh", "htop", "fzf", "ripgrep",
				"bat", "eza", "firefox", "kitty", "pipewire", "pipewire-pulse",
				"wireplumber", "bluez", "bluez-utils", "networkmanager",
			},
			AUR: []string{
				"visual-studio-code-bin", "brave-bin",
			},
			Apt: []string{
				"build-essential", "git", "rsync", "zsh", "htop", "fzf",
				"ripgrep", "bat", "firefox-esr", "kitty", "network-manager",
			},
			Dnf: []string{
				"git", "rsync", "zsh", "htop", "fzf", "ripgrep", "bat",
				"firefox", "kitty", "NetworkManager",
			},
		},
		Services: []string{"NetworkManager", "bluetooth", "systemd-timesyncd"},
	}
}

// Load reads the user settings file over the defaults. A missing file is
// fine; an unreadable or malformed one is a configuration error the caller
// treats as fatal.
func Load() (*Settings, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom is Load with an explicit path, for tests and one-off overrides.
func LoadFrom(path string) (*Settings, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("[DEBUG] No settings file at %s, using defaults\n", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	// Unmarshalling into the default struct keeps any field the file omits.
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Loaded settings from %s\n", path)
	return cfg, nil
}
