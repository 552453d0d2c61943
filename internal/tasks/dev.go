package tasks

import (
	"fmt"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// ConfigureGit writes the configured identity and defaults into the global
// git config. Identity fields left empty in the settings are not touched.
func ConfigureGit(ctx *runner.Context) bool {
	ok := true
	ident := ctx.Config.Git

	if ident.Name != "" {
		if ctx.Execute(fmt.Sprintf("git config --global user.name %q", ident.Name), "set git user.name") != 0 {
			ok = false
		}
	} else {
		logger.Info("[INFO] No git user name configured, leaving it as is\n")
	}
	if ident.Email != "" {
		if ctx.Execute(fmt.Sprintf("git config --global user.email %q", ident.Email), "set git user.email") != 0 {
			ok = false
		}
	} else {
		logger.Info("[INFO] No git email configured, leaving it as is\n")
	}
	if ident.DefaultBranch != "" {
		if ctx.Execute(fmt.Sprintf("git config --global init.defaultBranch %q", ident.DefaultBranch), "set the default branch name") != 0 {
			ok = false
		}
	}
	if ctx.Execute("git config --global pull.rebase false", "set the pull strategy to merge") != 0 {
		ok = false
	}
	return ok
}

// InstallRustToolchain installs rustup and the stable toolchain, or just
// updates when rustup is already present.
func InstallRustToolchain(ctx *runner.Context) bool {
	if ctx.HasCommand("rustup") {
		return ctx.Execute("rustup update", "update the Rust toolchain") == 0
	}
	cmd := "curl --proto '=https' --tlsv1.2 -sSf https://sh.rustup.rs | sh -s -- -y --no-modify-path"
	return ctx.Execute(cmd, "install rustup and the stable toolchain") == 0
}

// InstallGoTools installs the Go developer tools used day to day.
func InstallGoTools(ctx *runner.Context) bool {
	if !ctx.DryRun() && !ctx.HasCommand("go") {
		logger.Warn("[WARN] go is not installed, cannot install Go tools\n")
		return false
	}
	tools := []string{
		"golang.org/x/tools/gopls@latest",
		"honnef.co/go/tools/cmd/staticcheck@latest",
		"golang.org/x/tools/cmd/goimports@latest",
	}
	allOk := true
	for _, tool := range tools {
		if ctx.Execute("go install "+tool, "install "+tool) != 0 {
			allOk = false
		}
	}
	return allOk
}

// ConfigureDocker installs the engine, starts it, and puts the user in the
// docker group. The group change needs a re-login to take effect.
func ConfigureDocker(ctx *runner.Context) bool {
	cmd, ok := installCommand(ctx.Env.Distro, "docker")
	if !ok {
		logger.Warn("[WARN] No package manager known for this distro, skipping Docker\n")
		return true
	}
	if ctx.Execute(cmd, "install the Docker engine") != 0 {
		return false
	}
	allOk := true
	if ctx.Execute("sudo systemctl enable --now docker.service", "enable the Docker service") != 0 {
		allOk = false
	}
	if ctx.Execute(`sudo usermod -aG docker "$USER"`, "add the user to the docker group") != 0 {
		allOk = false
	}
	return allOk
}
