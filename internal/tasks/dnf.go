package tasks

import (
	"fmt"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// ConfigureDnf turns on parallel downloads and mirror selection in
// /etc/dnf/dnf.conf, once.
func ConfigureDnf(ctx *runner.Context) bool {
	if !ctx.DryRun() {
		if _, err := ctx.Capture("grep -E '^max_parallel_downloads' /etc/dnf/dnf.conf"); err == nil {
			logger.Info("[INFO] dnf is already tuned\n")
			return true
		}
	}
	cmd := `printf 'max_parallel_downloads=10\nfastestmirror=True\n' | sudo tee -a /etc/dnf/dnf.conf >/dev/null`
	return ctx.Execute(cmd, "enable dnf parallel downloads and mirror selection") == 0
}

// EnableRPMFusion adds the free and nonfree RPM Fusion repositories for
// the release the machine is running.
func EnableRPMFusion(ctx *runner.Context) bool {
	var cmd string
	switch ctx.Env.Distro {
	case system.DistroFedora:
		cmd = "sudo dnf install -y " +
			"https://mirrors.rpmfusion.org/free/fedora/rpmfusion-free-release-$(rpm -E %fedora).noarch.rpm " +
			"https://mirrors.rpmfusion.org/nonfree/fedora/rpmfusion-nonfree-release-$(rpm -E %fedora).noarch.rpm"
	case system.DistroCentOS, system.DistroRHEL:
		cmd = "sudo dnf install -y " +
			"https://mirrors.rpmfusion.org/free/el/rpmfusion-free-release-$(rpm -E %rhel).noarch.rpm " +
			"https://mirrors.rpmfusion.org/nonfree/el/rpmfusion-nonfree-release-$(rpm -E %rhel).noarch.rpm"
	default:
		logger.Warn("[WARN] RPM Fusion is only available on RPM distros\n")
		return false
	}
	return ctx.Execute(cmd, "enable the RPM Fusion repositories") == 0
}

// InstallDnfPackages installs the configured dnf set in one transaction.
func InstallDnfPackages(ctx *runner.Context) bool {
	pkgs := ctx.Config.Packages.Dnf
	if len(pkgs) == 0 {
		logger.Info("[INFO] No dnf packages configured\n")
		return true
	}
	logger.Info("[INFO] Installing %d packages with dnf\n", len(pkgs))
	cmd := "sudo dnf install -y " + strings.Join(pkgs, " ")
	return ctx.Execute(cmd, fmt.Sprintf("install %d dnf packages", len(pkgs))) == 0
}

// InstallFlatpak sets up Flatpak with the Flathub remote on the distros
// that do not ship it preconfigured.
func InstallFlatpak(ctx *runner.Context) bool {
	cmd, ok := installCommand(ctx.Env.Distro, "flatpak")
	if !ok {
		logger.Warn("[WARN] No package manager known for this distro, skipping Flatpak\n")
		return true
	}
	if ctx.Execute(cmd, "install flatpak") != 0 {
		return false
	}
	remote := "flatpak remote-add --if-not-exists flathub https://dl.flathub.org/repo/flathub.flatpakrepo"
	return ctx.Execute(remote, "add the Flathub remote") == 0
}
