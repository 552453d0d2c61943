package tasks

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// Base configs written when the user has none yet. Deliberately minimal;
// the dotfiles step is the place for a full setup.
const baseHyprlandConf = `# Generated by linux-setup; edit freely.
monitor = ,preferred,auto,1
exec-once = waybar
exec-once = hyprpaper
input {
    kb_layout = us
}
general {
    gaps_in = 4
    gaps_out = 8
}
bind = SUPER, Return, exec, kitty
bind = SUPER, D, exec, wofi --show drun
bind = SUPER, Q, killactive
`

const baseWaybarConf = `{
    "layer": "top",
    "position": "top",
    "modules-left": ["hyprland/workspaces"],
    "modules-center": ["clock"],
    "modules-right": ["pulseaudio", "network", "battery", "tray"]
}
`

const baseHyprpaperConf = `preload = ~/Pictures/wallpaper.png
wallpaper = ,~/Pictures/wallpaper.png
splash = false
`

const baseWofiConf = `width=600
height=400
allow_images=true
insensitive=true
`

// writeIfAbsent writes a config file through the simulation primitive
// unless the user already has one. Existing files are never overwritten.
func writeIfAbsent(ctx *runner.Context, path, content, what string) bool {
	if _, err := os.Stat(path); err == nil {
		logger.Info("[INFO] %s already exists, leaving it alone\n", path)
		return true
	}
	return ctx.Apply("write a starter "+what, func() error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		return os.WriteFile(path, []byte(content), 0o644)
	})
}

// ConfigureHyprland writes a starter hyprland.conf when none exists and
// reloads the compositor.
func ConfigureHyprland(ctx *runner.Context) bool {
	confPath := filepath.Join(xdg.ConfigHome, "hypr", "hyprland.conf")
	if !writeIfAbsent(ctx, confPath, baseHyprlandConf, "hyprland.conf") {
		return false
	}
	return ctx.Execute("hyprctl reload", "reload the Hyprland configuration") == 0
}

// ConfigureWaybar writes a starter bar config and restarts waybar.
func ConfigureWaybar(ctx *runner.Context) bool {
	confPath := filepath.Join(xdg.ConfigHome, "waybar", "config.jsonc")
	if !writeIfAbsent(ctx, confPath, baseWaybarConf, "waybar config") {
		return false
	}
	return ctx.Execute("pkill waybar; hyprctl dispatch exec waybar", "restart waybar") == 0
}

// ConfigureHyprpaper writes a starter wallpaper config and restarts the
// daemon.
func ConfigureHyprpaper(ctx *runner.Context) bool {
	confPath := filepath.Join(xdg.ConfigHome, "hypr", "hyprpaper.conf")
	if !writeIfAbsent(ctx, confPath, baseHyprpaperConf, "hyprpaper.conf") {
		return false
	}
	return ctx.Execute("pkill hyprpaper; hyprctl dispatch exec hyprpaper", "restart hyprpaper") == 0
}

// ConfigureWofi writes a starter launcher config.
func ConfigureWofi(ctx *runner.Context) bool {
	confPath := filepath.Join(xdg.ConfigHome, "wofi", "config")
	return writeIfAbsent(ctx, confPath, baseWofiConf, "wofi config")
}

// ConfigureBluetooth installs the bluetooth stack and enables the service.
func ConfigureBluetooth(ctx *runner.Context) bool {
	cmd, ok := installCommand(ctx.Env.Distro, "bluez", "bluez-utils")
	if !ok {
		logger.Warn("[WARN] No package manager known for this distro, skipping bluetooth\n")
		return true
	}
	allOk := true
	if ctx.Execute(cmd, "install the bluetooth stack") != 0 {
		allOk = false
	}
	if ctx.Execute("sudo systemctl enable --now bluetooth.service", "enable the bluetooth service") != 0 {
		allOk = false
	}
	return allOk
}
