package tasks

import (
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// fontPackages per distro family; names differ between repos.
func fontPackages(d system.Distro) []string {
	switch d {
	case system.DistroArch, system.DistroEndeavourOS:
		return []string{"ttf-jetbrains-mono-nerd", "noto-fonts", "noto-fonts-emoji"}
	case system.DistroDebian, system.DistroUbuntu:
		return []string{"fonts-jetbrains-mono", "fonts-noto", "fonts-noto-color-emoji"}
	case system.DistroFedora, system.DistroCentOS, system.DistroRHEL:
		return []string{"jetbrains-mono-fonts", "google-noto-sans-fonts", "google-noto-emoji-color-fonts"}
	default:
		return nil
	}
}

// ConfigureFonts installs the terminal and UI fonts and rebuilds the font
// cache.
func ConfigureFonts(ctx *runner.Context) bool {
	pkgs := fontPackages(ctx.Env.Distro)
	if len(pkgs) == 0 {
		logger.Warn("[WARN] No font packages known for this distro, skipping\n")
		return true
	}
	cmd, _ := installCommand(ctx.Env.Distro, pkgs...)
	if ctx.Execute(cmd, "install the font packages") != 0 {
		return false
	}
	return ctx.Execute("fc-cache -f", "rebuild the font cache") == 0
}

// ConfigurePower installs power-profiles-daemon and selects the balanced
// profile.
func ConfigurePower(ctx *runner.Context) bool {
	cmd, ok := installCommand(ctx.Env.Distro, "power-profiles-daemon")
	if !ok {
		logger.Warn("[WARN] No package manager known for this distro, skipping power setup\n")
		return true
	}
	allOk := true
	if ctx.Execute(cmd, "install power-profiles-daemon") != 0 {
		allOk = false
	}
	if ctx.Execute("sudo systemctl enable --now power-profiles-daemon.service", "enable the power profiles daemon") != 0 {
		allOk = false
	}
	if ctx.Execute("powerprofilesctl set balanced", "select the balanced power profile") != 0 {
		allOk = false
	}
	return allOk
}

// InstallNvidiaDrivers installs the proprietary driver stack when an
// NVIDIA GPU is present.
func InstallNvidiaDrivers(ctx *runner.Context) bool {
	if !ctx.DryRun() {
		if out, err := ctx.Capture("lspci"); err == nil && !strings.Contains(strings.ToLower(out), "nvidia") {
			logger.Info("[INFO] No NVIDIA GPU found, skipping the driver install\n")
			return true
		}
	}
	cmd := "sudo pacman -S --needed --noconfirm nvidia nvidia-utils nvidia-settings"
	return ctx.Execute(cmd, "install the NVIDIA driver stack") == 0
}

// ConfigureAudio installs PipeWire and enables its user services.
func ConfigureAudio(ctx *runner.Context) bool {
	install := "sudo pacman -S --needed --noconfirm pipewire pipewire-alsa pipewire-pulse wireplumber"
	if ctx.Execute(install, "install the PipeWire stack") != 0 {
		return false
	}
	enable := "systemctl --user enable --now pipewire pipewire-pulse wireplumber"
	return ctx.Execute(enable, "enable the PipeWire user services") == 0
}
