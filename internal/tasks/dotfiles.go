package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// DeployDotfiles clones or updates the configured dotfiles repository and
// copies its tree over the home directory.
func DeployDotfiles(ctx *runner.Context) bool {
	repo := ctx.Config.DotfilesRepo
	if repo == "" {
		logger.Info("[INFO] No dotfiles repository configured, skipping\n")
		return true
	}

	checkout := filepath.Join(xdg.Home, ".dotfiles")
	if _, err := os.Stat(checkout); err == nil {
		if ctx.Execute(fmt.Sprintf("git -C %s pull --ff-only", checkout), "update the dotfiles checkout") != 0 {
			return false
		}
	} else {
		if ctx.Execute(fmt.Sprintf("git clone %s %s", repo, checkout), "clone the dotfiles repository") != 0 {
			return false
		}
	}
	cmd := fmt.Sprintf("rsync -a --exclude .git %s/ %s/", checkout, xdg.Home)
	return ctx.Execute(cmd, "copy dotfiles into the home directory") == 0
}

// ConfigureShell installs zsh, makes it the login shell, and on pacman
// systems adds the usual plugins.
func ConfigureShell(ctx *runner.Context) bool {
	cmd, ok := installCommand(ctx.Env.Distro, "zsh")
	if !ok {
		logger.Warn("[WARN] No package manager known for this distro, skipping the shell setup\n")
		return true
	}
	allOk := true
	if ctx.Execute(cmd, "install zsh") != 0 {
		allOk = false
	}

	if shell := os.Getenv("SHELL"); !strings.Contains(shell, "zsh") {
		if ctx.Execute(`chsh -s "$(command -v zsh)"`, "make zsh the login shell") != 0 {
			allOk = false
		}
	} else {
		logger.Info("[INFO] zsh is already the login shell\n")
	}

	switch ctx.Env.Distro {
	case system.DistroArch, system.DistroEndeavourOS:
		plugins := "sudo pacman -S --needed --noconfirm zsh-autosuggestions zsh-syntax-highlighting"
		if ctx.Execute(plugins, "install the zsh plugins") != 0 {
			allOk = false
		}
	default:
		logger.Info("[INFO] Shell plugins are only packaged here for pacman systems, skipping\n")
	}
	return allOk
}

// ConfigureSSH makes sure ~/.ssh exists with strict permissions and
// generates an ed25519 key when there is none.
func ConfigureSSH(ctx *runner.Context) bool {
	sshDir := filepath.Join(xdg.Home, ".ssh")
	ok := ctx.Apply("create ~/.ssh with strict permissions", func() error {
		return os.MkdirAll(sshDir, 0o700)
	})

	keyPath := filepath.Join(sshDir, "id_ed25519")
	if _, err := os.Stat(keyPath); err == nil {
		logger.Info("[INFO] SSH key already present, not generating a new one\n")
		return ok
	}

	comment := ctx.Config.Git.Email
	if comment == "" {
		comment = "linux-setup"
	}
	cmd := fmt.Sprintf("ssh-keygen -t ed25519 -N '' -C %q -f %s", comment, keyPath)
	if ctx.Execute(cmd, "generate an ed25519 SSH key") != 0 {
		ok = false
	}
	return ok
}
