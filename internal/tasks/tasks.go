// Package tasks implements the step catalog: one function per step id,
// grouped into files by area. Every change a task makes goes through the
// runner's Context primitives; a task returning false marks its step
// failed without stopping the run.
package tasks

import (
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// Registry binds every catalog step id to its implementation. The runner
// treats ids without an entry as skipped, so trimming a line here is a
// safe way to retire a step.
func Registry() map[string]runner.Task {
	return map[string]runner.Task{
		// Packages
		"update_mirrors":                runner.Func(UpdateMirrors),
		"configure_pacman":              runner.Func(ConfigurePacman),
		"enable_multilib":               runner.Func(EnableMultilib),
		"install_base_packages":         runner.Func(InstallBasePackages),
		"install_aur_helper":            runner.Func(InstallAURHelper),
		"install_aur_packages":          runner.Func(InstallAURPackages),
		"cleanup_orphans":               runner.Func(CleanupOrphans),
		"update_apt_sources":            runner.Func(UpdateAptSources),
		"install_apt_packages":          runner.Func(InstallAptPackages),
		"configure_unattended_upgrades": runner.Func(ConfigureUnattendedUpgrades),
		"configure_dnf":                 runner.Func(ConfigureDnf),
		"enable_rpmfusion":              runner.Func(EnableRPMFusion),
		"install_dnf_packages":          runner.Func(InstallDnfPackages),
		"install_flatpak":               runner.Func(InstallFlatpak),

		// System
		"deploy_dotfiles":        runner.Func(DeployDotfiles),
		"configure_shell":        runner.Func(ConfigureShell),
		"configure_ssh":          runner.Func(ConfigureSSH),
		"configure_fonts":        runner.Func(ConfigureFonts),
		"configure_power":        runner.Func(ConfigurePower),
		"install_nvidia_drivers": runner.Func(InstallNvidiaDrivers),
		"configure_audio":        runner.Func(ConfigureAudio),

		// Services
		"enable_services":    runner.Func(EnableServices),
		"configure_firewall": runner.Func(ConfigureFirewall),
		"setup_timesync":     runner.Func(SetupTimesync),

		// Desktop
		"configure_hyprland":       runner.Func(ConfigureHyprland),
		"configure_waybar":         runner.Func(ConfigureWaybar),
		"configure_hyprpaper":      runner.Func(ConfigureHyprpaper),
		"configure_wofi":           runner.Func(ConfigureWofi),
		"configure_bluetooth":      runner.Func(ConfigureBluetooth),
		"configure_kde_theme":      runner.Func(ConfigureKDETheme),
		"configure_kwin":           runner.Func(ConfigureKwin),
		"configure_dolphin":        runner.Func(ConfigureDolphin),
		"configure_gnome_settings": runner.Func(ConfigureGnomeSettings),
		"install_gnome_extensions": runner.Func(InstallGnomeExtensions),
		"configure_xfce_panel":     runner.Func(ConfigureXfcePanel),

		// Development
		"configure_git":          runner.Func(ConfigureGit),
		"install_rust_toolchain": runner.Func(InstallRustToolchain),
		"install_go_tools":       runner.Func(InstallGoTools),
		"configure_docker":       runner.Func(ConfigureDocker),

		// Backup & Sync
		"backup_package_lists": runner.Func(BackupPackageLists),
		"backup_home":          runner.Func(BackupHome),
		"restore_backup":       runner.Func(RestoreBackup),
		"sync_nas":             runner.Func(SyncNAS),
	}
}

// installCommand builds the package-manager install command for the
// detected distro family. ok is false on distros without a known manager;
// callers usually skip with a notice in that case.
func installCommand(d system.Distro, pkgs ...string) (string, bool) {
	list := strings.Join(pkgs, " ")
	switch d {
	case system.DistroArch, system.DistroEndeavourOS:
		return "sudo pacman -S --needed --noconfirm " + list, true
	case system.DistroDebian, system.DistroUbuntu:
		return "sudo apt-get install -y " + list, true
	case system.DistroFedora, system.DistroCentOS, system.DistroRHEL:
		return "sudo dnf install -y " + list, true
	default:
		return "", false
	}
}
