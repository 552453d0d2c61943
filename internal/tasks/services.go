package tasks

import (
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// EnableServices enables and starts every unit from the settings. One
// stubborn unit does not stop the others.
func EnableServices(ctx *runner.Context) bool {
	services := ctx.Config.Services
	if len(services) == 0 {
		logger.Info("[INFO] No services configured\n")
		return true
	}
	allOk := true
	for _, svc := range services {
		if ctx.Execute("sudo systemctl enable --now "+svc, "enable "+svc) != 0 {
			allOk = false
		}
	}
	return allOk
}

// ConfigureFirewall installs ufw and applies a deny-incoming default.
func ConfigureFirewall(ctx *runner.Context) bool {
	if ctx.HasCommand("ufw") {
		logger.Info("[INFO] ufw is already installed\n")
	} else {
		cmd, ok := installCommand(ctx.Env.Distro, "ufw")
		if !ok {
			logger.Warn("[WARN] No package manager known for this distro, skipping the firewall\n")
			return true
		}
		if ctx.Execute(cmd, "install ufw") != 0 {
			return false
		}
	}

	allOk := true
	if ctx.Execute("sudo ufw default deny incoming", "deny incoming connections by default") != 0 {
		allOk = false
	}
	if ctx.Execute("sudo ufw default allow outgoing", "allow outgoing connections by default") != 0 {
		allOk = false
	}
	if ctx.Execute("sudo ufw --force enable", "enable the firewall") != 0 {
		allOk = false
	}
	return allOk
}

// SetupTimesync switches on NTP synchronization via systemd-timesyncd.
func SetupTimesync(ctx *runner.Context) bool {
	allOk := true
	if ctx.Execute("sudo systemctl enable --now systemd-timesyncd.service", "enable systemd-timesyncd") != 0 {
		allOk = false
	}
	if ctx.Execute("sudo timedatectl set-ntp true", "switch on NTP synchronization") != 0 {
		allOk = false
	}
	return allOk
}
