package tasks

import (
	"fmt"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// UpdateAptSources refreshes the APT package indexes.
func UpdateAptSources(ctx *runner.Context) bool {
	return ctx.Execute("sudo apt-get update", "refresh the APT package indexes") == 0
}

// InstallAptPackages installs the configured apt set in one transaction.
func InstallAptPackages(ctx *runner.Context) bool {
	pkgs := ctx.Config.Packages.Apt
	if len(pkgs) == 0 {
		logger.Info("[INFO] No apt packages configured\n")
		return true
	}
	logger.Info("[INFO] Installing %d packages with apt\n", len(pkgs))
	cmd := "sudo apt-get install -y " + strings.Join(pkgs, " ")
	return ctx.Execute(cmd, fmt.Sprintf("install %d apt packages", len(pkgs))) == 0
}

// ConfigureUnattendedUpgrades installs unattended-upgrades and enables the
// periodic security-update job.
func ConfigureUnattendedUpgrades(ctx *runner.Context) bool {
	ok := true
	if ctx.Execute("sudo apt-get install -y unattended-upgrades", "install unattended-upgrades") != 0 {
		ok = false
	}
	cmd := `printf 'APT::Periodic::Update-Package-Lists "1";\nAPT::Periodic::Unattended-Upgrade "1";\n' | sudo tee /etc/apt/apt.conf.d/20auto-upgrades >/dev/null`
	if ctx.Execute(cmd, "enable periodic unattended upgrades") != 0 {
		ok = false
	}
	return ok
}
