package steps

import "github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"

// Tag groups shared by several catalog entries. Families are spelled out
// distro by distro so matching stays exact; there is no substring logic.
var (
	archFamily   = []system.Distro{system.DistroArch, system.DistroEndeavourOS}
	debianFamily = []system.Distro{system.DistroDebian, system.DistroUbuntu}
	rpmFamily    = []system.Distro{system.DistroFedora, system.DistroCentOS, system.DistroRHEL}

	allPackaged = []system.Distro{
		system.DistroArch, system.DistroEndeavourOS,
		system.DistroDebian, system.DistroUbuntu,
		system.DistroFedora, system.DistroCentOS, system.DistroRHEL,
	}
)

// catalog is the full step registry. Declaration order is the catalog
// order used by --list; the menu sorts by description and the execution
// order is defined separately by canonicalOrder.
var catalog = []Step{
	// Packages
	{ID: "update_mirrors", Description: "Update pacman mirrorlist", Category: "Packages", Distros: archFamily},
	{ID: "configure_pacman", Description: "Tune pacman options", Category: "Packages", Distros: archFamily},
	{ID: "enable_multilib", Description: "Enable the multilib repository", Category: "Packages", Distros: archFamily},
	{ID: "install_base_packages", Description: "Install base packages (pacman)", Category: "Packages", Distros: archFamily},
	{ID: "install_aur_helper", Description: "Install the yay AUR helper", Category: "Packages", Distros: archFamily},
	{ID: "install_aur_packages", Description: "Install AUR packages", Category: "Packages", Distros: archFamily},
	{ID: "cleanup_orphans", Description: "Remove orphaned packages", Category: "Packages", Distros: archFamily},
	{ID: "update_apt_sources", Description: "Refresh APT package sources", Category: "Packages", Distros: debianFamily},
	{ID: "install_apt_packages", Description: "Install base packages (apt)", Category: "Packages", Distros: debianFamily},
	{ID: "configure_unattended_upgrades", Description: "Configure unattended security upgrades", Category: "Packages", Distros: []system.Distro{system.DistroDebian}},
	{ID: "configure_dnf", Description: "Tune dnf options", Category: "Packages", Distros: rpmFamily},
	{ID: "enable_rpmfusion", Description: "Enable RPM Fusion repositories", Category: "Packages", Distros: rpmFamily},
	{ID: "install_dnf_packages", Description: "Install base packages (dnf)", Category: "Packages", Distros: rpmFamily},
	{ID: "install_flatpak", Description: "Set up Flatpak with Flathub", Category: "Packages", Distros: append(append([]system.Distro{}, debianFamily...), rpmFamily...)},

	// System
	{ID: "deploy_dotfiles", Description: "Deploy dotfiles from the repository", Category: "System", Core: true},
	{ID: "configure_shell", Description: "Configure zsh and shell plugins", Category: "System", Core: true},
	{ID: "configure_ssh", Description: "Configure the SSH client", Category: "System", Core: true},
	{ID: "configure_fonts", Description: "Install terminal and UI fonts", Category: "System", Core: true},
	{ID: "configure_power", Description: "Configure power management profiles", Category: "System", Core: true},
	{ID: "install_nvidia_drivers", Description: "Install NVIDIA drivers", Category: "System", Distros: archFamily},
	{ID: "configure_audio", Description: "Configure the PipeWire audio stack", Category: "System", Distros: archFamily},

	// Services
	{ID: "enable_services", Description: "Enable essential systemd services", Category: "Services", Core: true},
	{ID: "configure_firewall", Description: "Configure the firewall", Category: "Services", Core: true},
	{ID: "setup_timesync", Description: "Enable NTP time synchronization", Category: "Services", Core: true},

	// Desktop
	{ID: "configure_hyprland", Description: "Configure the Hyprland compositor", Category: "Desktop", Desktops: []system.Desktop{system.DesktopHyprland}},
	{ID: "configure_waybar", Description: "Configure the Waybar status bar", Category: "Desktop", Desktops: []system.Desktop{system.DesktopHyprland}},
	{ID: "configure_hyprpaper", Description: "Configure Hyprpaper wallpapers", Category: "Desktop", Desktops: []system.Desktop{system.DesktopHyprland}},
	{ID: "configure_wofi", Description: "Configure the wofi launcher", Category: "Desktop", Desktops: []system.Desktop{system.DesktopHyprland}},
	{ID: "configure_bluetooth", Description: "Configure bluetooth", Category: "Desktop", Desktops: []system.Desktop{system.DesktopHyprland}},
	{ID: "configure_kde_theme", Description: "Apply the KDE Plasma theme", Category: "Desktop", Desktops: []system.Desktop{system.DesktopKDE}},
	{ID: "configure_kwin", Description: "Configure KWin window rules", Category: "Desktop", Desktops: []system.Desktop{system.DesktopKDE}},
	{ID: "configure_dolphin", Description: "Configure the Dolphin file manager", Category: "Desktop", Desktops: []system.Desktop{system.DesktopKDE}},
	{ID: "configure_gnome_settings", Description: "Apply GNOME desktop settings", Category: "Desktop", Desktops: []system.Desktop{system.DesktopGNOME}},
	{ID: "install_gnome_extensions", Description: "Install GNOME Shell extensions", Category: "Desktop", Desktops: []system.Desktop{system.DesktopGNOME}},
	{ID: "configure_xfce_panel", Description: "Configure the XFCE panel", Category: "Desktop", Desktops: []system.Desktop{system.DesktopXFCE}},

	// Development
	{ID: "configure_git", Description: "Configure git identity and defaults", Category: "Development", Core: true},
	{ID: "install_rust_toolchain", Description: "Install the Rust toolchain", Category: "Development", Core: true},
	{ID: "install_go_tools", Description: "Install Go developer tools", Category: "Development", Core: true},
	{ID: "configure_docker", Description: "Install and enable Docker", Category: "Development", Distros: allPackaged},

	// Backup & Sync
	{ID: "backup_package_lists", Description: "Back up installed package lists", Category: "Backup & Sync", Distros: archFamily},
	{ID: "backup_home", Description: "Back up the home directory", Category: "Backup & Sync", Core: true},
	{ID: "restore_backup", Description: "Restore files from the latest backup", Category: "Backup & Sync", Core: true},
	{ID: "sync_nas", Description: "Sync documents with the NAS", Category: "Backup & Sync", Core: true},
}

// canonicalOrder is the master execution sequence: package sources before
// package installs, installs before the configuration that depends on them,
// backups last. Selected steps run in this relative order; a selected step
// not listed here runs after all listed ones.
var canonicalOrder = []string{
	"update_mirrors",
	"configure_pacman",
	"enable_multilib",
	"install_base_packages",
	"install_aur_helper",
	"install_aur_packages",
	"update_apt_sources",
	"install_apt_packages",
	"configure_dnf",
	"enable_rpmfusion",
	"install_dnf_packages",
	"install_flatpak",
	"install_nvidia_drivers",
	"configure_audio",
	"enable_services",
	"configure_firewall",
	"setup_timesync",
	"configure_power",
	"configure_fonts",
	"configure_git",
	"configure_ssh",
	"deploy_dotfiles",
	"configure_shell",
	"configure_docker",
	"install_rust_toolchain",
	"install_go_tools",
	"configure_hyprland",
	"configure_waybar",
	"configure_hyprpaper",
	"configure_bluetooth",
	"configure_kde_theme",
	"configure_kwin",
	"configure_gnome_settings",
	"install_gnome_extensions",
	"configure_xfce_panel",
	"configure_unattended_upgrades",
	"cleanup_orphans",
	"backup_package_lists",
	"backup_home",
	"sync_nas",
	"restore_backup",
}

// defaultRun is the curated preset behind --default: a conservative pass
// that refreshes packages and applies the base configuration without
// touching backups of user data or desktop-specific theming.
var defaultRun = []string{
	"update_mirrors",
	"configure_pacman",
	"install_base_packages",
	"update_apt_sources",
	"install_apt_packages",
	"configure_dnf",
	"install_dnf_packages",
	"configure_git",
	"configure_ssh",
	"deploy_dotfiles",
	"configure_shell",
	"enable_services",
	"setup_timesync",
	"backup_package_lists",
}
