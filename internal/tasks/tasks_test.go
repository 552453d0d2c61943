package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// dryContext builds a simulating task context on an Arch/Hyprland
// environment, the most fully covered combination in the catalog.
func dryContext(stepID string, cfg *config.Settings) (*runner.Context, *runner.Report) {
	rep := runner.NewReport(runner.ModeDryRun, "test-run")
	env := system.Environment{Distro: system.DistroArch, Desktop: system.DesktopHyprland}
	return runner.NewContext(stepID, runner.ModeDryRun, env, cfg, rep), rep
}

// withTempConfigHome points XDG_CONFIG_HOME at a fresh directory so tasks
// that write starter configs cannot see the host's real files. The Reload
// cleanup is registered before Setenv so it runs after the variable has
// been restored.
func withTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	return dir
}

func TestRegistryCoversEveryCatalogStep(t *testing.T) {
	registry := Registry()

	for _, step := range steps.All() {
		assert.Contains(t, registry, step.ID, "catalog step %s has no implementation", step.ID)
	}
	assert.Len(t, registry, steps.Count(), "registry binds ids the catalog does not know")
}

func TestConfigureGitDryRunDefaults(t *testing.T) {
	// The default settings carry no identity, so only the branch and pull
	// strategy are touched.
	ctx, rep := dryContext("configure_git", config.Default())

	require.True(t, ConfigureGit(ctx))

	ops := rep.OperationsFor("configure_git")
	require.Len(t, ops, 2)
	assert.Contains(t, ops[0].Command, `init.defaultBranch "main"`)
	assert.Equal(t, "set the pull strategy to merge", ops[1].Description)
}

func TestConfigureGitDryRunFullIdentity(t *testing.T) {
	cfg := config.Default()
	cfg.Git.Name = "Jane Doe"
	cfg.Git.Email = "jane@example.com"
	ctx, rep := dryContext("configure_git", cfg)

	require.True(t, ConfigureGit(ctx))

	ops := rep.OperationsFor("configure_git")
	require.Len(t, ops, 4)
	assert.Contains(t, ops[0].Command, `user.name "Jane Doe"`)
	assert.Contains(t, ops[1].Command, `user.email "jane@example.com"`)
}

func TestBackupPackageListsDryRunTouchesNothing(t *testing.T) {
	cfg := config.Default()
	cfg.BackupDir = filepath.Join(t.TempDir(), "backups")
	ctx, rep := dryContext("backup_package_lists", cfg)

	require.True(t, BackupPackageLists(ctx))

	ops := rep.OperationsFor("backup_package_lists")
	require.Len(t, ops, 2)
	assert.Contains(t, ops[0].Description, "explicitly installed packages")
	assert.Contains(t, ops[0].Description, "pkglist_")
	assert.Contains(t, ops[1].Description, "foreign packages")
	assert.Contains(t, ops[1].Description, "aurpkglist_")
	// In-process actions carry no shell command.
	assert.Empty(t, ops[0].Command)

	assert.NoDirExists(t, cfg.BackupDir, "simulation must not create the backup directory")
}

func TestRestoreBackupWithoutArchives(t *testing.T) {
	cfg := config.Default()
	cfg.BackupDir = filepath.Join(t.TempDir(), "missing")
	ctx, rep := dryContext("restore_backup", cfg)

	assert.False(t, RestoreBackup(ctx), "a missing backup directory is a step failure")
	assert.Empty(t, rep.OperationsFor("restore_backup"))

	cfg.BackupDir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BackupDir, "notes.txt"), []byte("x"), 0o644))
	ctx, _ = dryContext("restore_backup", cfg)
	assert.False(t, RestoreBackup(ctx), "non-archive files do not count as backups")
}

func TestRestoreBackupDryRunStagesNothing(t *testing.T) {
	cfg := config.Default()
	cfg.BackupDir = t.TempDir()
	// Bogus content proves the archive is never opened while simulating.
	archivePath := filepath.Join(cfg.BackupDir, "home_backup_20240101_120000.tar.gz")
	require.NoError(t, os.WriteFile(archivePath, []byte("not really a tarball"), 0o644))

	ctx, rep := dryContext("restore_backup", cfg)
	require.True(t, RestoreBackup(ctx))

	ops := rep.OperationsFor("restore_backup")
	require.Len(t, ops, 2)
	assert.Contains(t, ops[0].Description, "staging directory")
	assert.Empty(t, ops[0].Command)
	assert.Contains(t, ops[1].Command, "<staging>")
	assert.Contains(t, ops[1].Command, "rsync -a")
}

func TestSyncNAS(t *testing.T) {
	t.Run("no host configured", func(t *testing.T) {
		ctx, rep := dryContext("sync_nas", config.Default())

		assert.True(t, SyncNAS(ctx), "an unconfigured NAS is a skip, not a failure")
		assert.Empty(t, rep.OperationsFor("sync_nas"))
	})

	t.Run("records the rsync push", func(t *testing.T) {
		cfg := config.Default()
		cfg.NAS.Host = "nas"
		ctx, rep := dryContext("sync_nas", cfg)

		require.True(t, SyncNAS(ctx))

		ops := rep.OperationsFor("sync_nas")
		require.Len(t, ops, 1)
		assert.Contains(t, ops[0].Command, "rsync -az --delete")
		assert.Contains(t, ops[0].Command, "nas:/volume1/documents/")
	})
}

func TestInstallBasePackages(t *testing.T) {
	t.Run("empty set is a notice", func(t *testing.T) {
		cfg := config.Default()
		cfg.Packages.Pacman = nil
		ctx, rep := dryContext("install_base_packages", cfg)

		assert.True(t, InstallBasePackages(ctx))
		assert.Empty(t, rep.OperationsFor("install_base_packages"))
	})

	t.Run("one transaction for the whole set", func(t *testing.T) {
		cfg := config.Default()
		ctx, rep := dryContext("install_base_packages", cfg)

		require.True(t, InstallBasePackages(ctx))

		ops := rep.OperationsFor("install_base_packages")
		require.Len(t, ops, 1)
		assert.Contains(t, ops[0].Command, "sudo pacman -S --needed --noconfirm")
		assert.Contains(t, ops[0].Command, "base-devel")
		assert.Equal(t, fmt.Sprintf("install %d pacman packages", len(cfg.Packages.Pacman)), ops[0].Description)
	})
}

func TestInstallAptPackagesDryRun(t *testing.T) {
	cfg := config.Default()
	ctx, rep := dryContext("install_apt_packages", cfg)

	require.True(t, InstallAptPackages(ctx))

	ops := rep.OperationsFor("install_apt_packages")
	require.Len(t, ops, 1)
	assert.Contains(t, ops[0].Command, "sudo apt-get install -y")
	assert.Contains(t, ops[0].Command, "build-essential")
}

func TestInstallAURPackagesDryRunSkipsHelperCheck(t *testing.T) {
	// Without yay on PATH the real run fails fast; the simulation still
	// records what would happen.
	ctx, rep := dryContext("install_aur_packages", config.Default())

	require.True(t, InstallAURPackages(ctx))

	ops := rep.OperationsFor("install_aur_packages")
	require.Len(t, ops, 1)
	assert.Contains(t, ops[0].Command, "yay -S --needed --noconfirm")
}

func TestCleanupOrphansDryRunSkipsQuery(t *testing.T) {
	// The orphan query needs pacman; while simulating it is skipped and the
	// removal is recorded unconditionally.
	ctx, rep := dryContext("cleanup_orphans", config.Default())

	require.True(t, CleanupOrphans(ctx))

	ops := rep.OperationsFor("cleanup_orphans")
	require.Len(t, ops, 1)
	assert.Contains(t, ops[0].Command, "pacman -Rns")
}

func TestEnableMultilibDryRunSkipsQuery(t *testing.T) {
	ctx, rep := dryContext("enable_multilib", config.Default())

	require.True(t, EnableMultilib(ctx))

	ops := rep.OperationsFor("enable_multilib")
	require.Len(t, ops, 2)
	assert.Contains(t, ops[0].Command, "[multilib]")
	assert.Contains(t, ops[1].Command, "pacman -Sy")
}

func TestEnableServices(t *testing.T) {
	t.Run("no units configured", func(t *testing.T) {
		cfg := config.Default()
		cfg.Services = nil
		ctx, rep := dryContext("enable_services", cfg)

		assert.True(t, EnableServices(ctx))
		assert.Empty(t, rep.OperationsFor("enable_services"))
	})

	t.Run("one operation per unit", func(t *testing.T) {
		cfg := config.Default()
		cfg.Services = []string{"sshd.service", "cups.service"}
		ctx, rep := dryContext("enable_services", cfg)

		require.True(t, EnableServices(ctx))

		ops := rep.OperationsFor("enable_services")
		require.Len(t, ops, 2)
		assert.Equal(t, "enable sshd.service", ops[0].Description)
		assert.Equal(t, "sudo systemctl enable --now sshd.service", ops[0].Command)
		assert.Equal(t, "enable cups.service", ops[1].Description)
	})
}

func TestInstallGoToolsDryRun(t *testing.T) {
	ctx, rep := dryContext("install_go_tools", config.Default())

	require.True(t, InstallGoTools(ctx))

	ops := rep.OperationsFor("install_go_tools")
	require.Len(t, ops, 3)
	for _, op := range ops {
		assert.Contains(t, op.Command, "go install ")
	}
}

func TestWriteIfAbsent(t *testing.T) {
	t.Run("existing file is left alone", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config")
		require.NoError(t, os.WriteFile(path, []byte("user content"), 0o644))
		ctx, rep := dryContext("configure_wofi", config.Default())

		assert.True(t, writeIfAbsent(ctx, path, "starter content", "wofi config"))
		assert.Empty(t, rep.OperationsFor("configure_wofi"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "user content", string(data))
	})

	t.Run("absent file is recorded, not written", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hypr", "hyprland.conf")
		ctx, rep := dryContext("configure_hyprland", config.Default())

		assert.True(t, writeIfAbsent(ctx, path, "starter content", "hyprland.conf"))

		ops := rep.OperationsFor("configure_hyprland")
		require.Len(t, ops, 1)
		assert.Equal(t, "write a starter hyprland.conf", ops[0].Description)
		assert.NoFileExists(t, path)
	})
}

func TestConfigureWofiDryRun(t *testing.T) {
	confHome := withTempConfigHome(t)
	ctx, rep := dryContext("configure_wofi", config.Default())

	require.True(t, ConfigureWofi(ctx))

	require.Len(t, rep.OperationsFor("configure_wofi"), 1)
	assert.NoFileExists(t, filepath.Join(confHome, "wofi", "config"))
}

func TestInstallCommand(t *testing.T) {
	tests := []struct {
		distro system.Distro
		want   string
		ok     bool
	}{
		{system.DistroArch, "sudo pacman -S --needed --noconfirm htop", true},
		{system.DistroEndeavourOS, "sudo pacman -S --needed --noconfirm htop", true},
		{system.DistroDebian, "sudo apt-get install -y htop", true},
		{system.DistroUbuntu, "sudo apt-get install -y htop", true},
		{system.DistroFedora, "sudo dnf install -y htop", true},
		{system.DistroRHEL, "sudo dnf install -y htop", true},
		{system.Distro("gentoo"), "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.distro), func(t *testing.T) {
			got, ok := installCommand(tt.distro, "htop")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigureDockerUnknownDistroSkips(t *testing.T) {
	rep := runner.NewReport(runner.ModeDryRun, "test-run")
	env := system.Environment{Distro: system.Distro("gentoo"), Desktop: system.DesktopUnknown}
	ctx := runner.NewContext("configure_docker", runner.ModeDryRun, env, config.Default(), rep)

	assert.True(t, ConfigureDocker(ctx), "an unknown package manager skips the step without failing it")
	assert.Empty(t, rep.OperationsFor("configure_docker"))
}
