package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/cleanup"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// UpdateMirrors ranks the pacman mirrors with reflector when it is
// available and force-refreshes the package databases.
func UpdateMirrors(ctx *runner.Context) bool {
	if ctx.HasCommand("reflector") {
		cmd := "sudo reflector --latest 20 --protocol https --sort rate --save /etc/pacman.d/mirrorlist"
		if ctx.Execute(cmd, "rank mirrors with reflector") != 0 {
			return false
		}
	} else {
		logger.Info("[INFO] reflector is not installed, keeping the current mirrorlist\n")
	}
	return ctx.Execute("sudo pacman -Syy", "force-refresh the pacman databases") == 0
}

// ConfigurePacman switches on colored output and parallel downloads.
func ConfigurePacman(ctx *runner.Context) bool {
	ok := true
	if ctx.Execute(`sudo sed -i 's/^#Color$/Color/' /etc/pacman.conf`, "enable colored pacman output") != 0 {
		ok = false
	}
	if ctx.Execute(`sudo sed -i 's/^#ParallelDownloads.*/ParallelDownloads = 5/' /etc/pacman.conf`, "enable parallel downloads") != 0 {
		ok = false
	}
	return ok
}

// EnableMultilib appends the multilib section to pacman.conf unless it is
// already there, then refreshes the databases.
func EnableMultilib(ctx *runner.Context) bool {
	if !ctx.DryRun() {
		if _, err := ctx.Capture(`grep -E '^\[multilib\]' /etc/pacman.conf`); err == nil {
			logger.Info("[INFO] multilib repository is already enabled\n")
			return true
		}
	}
	cmd := `printf '\n[multilib]\nInclude = /etc/pacman.d/mirrorlist\n' | sudo tee -a /etc/pacman.conf >/dev/null`
	if ctx.Execute(cmd, "enable the multilib repository") != 0 {
		return false
	}
	return ctx.Execute("sudo pacman -Sy", "refresh the package databases") == 0
}

// InstallBasePackages installs the configured pacman set in one
// transaction; --needed keeps the call idempotent.
func InstallBasePackages(ctx *runner.Context) bool {
	pkgs := ctx.Config.Packages.Pacman
	if len(pkgs) == 0 {
		logger.Info("[INFO] No pacman packages configured\n")
		return true
	}
	logger.Info("[INFO] Installing %d packages with pacman\n", len(pkgs))
	cmd := "sudo pacman -S --needed --noconfirm " + strings.Join(pkgs, " ")
	return ctx.Execute(cmd, fmt.Sprintf("install %d pacman packages", len(pkgs))) == 0
}

// InstallAURHelper builds yay from the AUR. The build directory is
// transient and removed on exit.
func InstallAURHelper(ctx *runner.Context) bool {
	if ctx.HasCommand("yay") {
		logger.Info("[INFO] yay is already installed\n")
		return true
	}
	if ctx.Execute("sudo pacman -S --needed --noconfirm base-devel git", "install the AUR build prerequisites") != 0 {
		return false
	}
	buildDir := filepath.Join(os.TempDir(), "yay-build")
	cleanup.Register(buildDir)
	if ctx.Execute(fmt.Sprintf("git clone --depth 1 https://aur.archlinux.org/yay.git %s", buildDir), "clone the yay repository") != 0 {
		return false
	}
	return ctx.Execute(fmt.Sprintf("cd %s && makepkg -si --noconfirm", buildDir), "build and install yay") == 0
}

// InstallAURPackages installs the configured AUR set through yay.
func InstallAURPackages(ctx *runner.Context) bool {
	pkgs := ctx.Config.Packages.AUR
	if len(pkgs) == 0 {
		logger.Info("[INFO] No AUR packages configured\n")
		return true
	}
	if !ctx.DryRun() && !ctx.HasCommand("yay") {
		logger.Warn("[WARN] yay is not installed, cannot install AUR packages\n")
		return false
	}
	cmd := "yay -S --needed --noconfirm " + strings.Join(pkgs, " ")
	return ctx.Execute(cmd, fmt.Sprintf("install %d AUR packages", len(pkgs))) == 0
}

// CleanupOrphans removes packages nothing depends on anymore.
func CleanupOrphans(ctx *runner.Context) bool {
	if !ctx.DryRun() {
		// pacman -Qtdq exits non-zero when there are no orphans.
		orphans, err := ctx.Capture("pacman -Qtdq")
		if err != nil || orphans == "" {
			logger.Info("[INFO] No orphaned packages to remove\n")
			return true
		}
	}
	return ctx.Execute("pacman -Qtdq | sudo pacman -Rns --noconfirm -", "remove orphaned packages") == 0
}
