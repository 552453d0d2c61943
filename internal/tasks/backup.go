package tasks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/archive"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/cleanup"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/pkglist"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// BackupPackageLists snapshots the explicitly installed and foreign
// package sets into timestamped files in the backup directory. The
// reporter verifies against the newest of these after later runs.
func BackupPackageLists(ctx *runner.Context) bool {
	now := time.Now()

	snapshot := func(prefix, query, what string) bool {
		desc := fmt.Sprintf("snapshot %s to %s", what, pkglist.FileName(prefix, now))
		return ctx.Apply(desc, func() error {
			out, err := ctx.Capture(query)
			if err != nil {
				return fmt.Errorf("listing %s: %w", what, err)
			}
			pkgs := strings.Fields(out)
			path, err := pkglist.Write(ctx.Config.BackupDir, prefix, now, pkgs)
			if err != nil {
				return err
			}
			logger.Info("[INFO] Wrote %d packages to %s\n", len(pkgs), path)
			return nil
		})
	}

	ok := snapshot(pkglist.PacmanPrefix, "pacman -Qqen", "explicitly installed packages")
	if !snapshot(pkglist.AURPrefix, "pacman -Qqem", "foreign packages") {
		ok = false
	}
	return ok
}

// BackupHome archives the home directory into the backup directory,
// leaving out caches and the backups themselves.
func BackupHome(ctx *runner.Context) bool {
	dir := ctx.Config.BackupDir
	stamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(dir, "home_backup_"+stamp+".tar.gz")

	cmd := fmt.Sprintf(
		"mkdir -p %s && tar --exclude='./.cache' --exclude='./backups' --exclude='./.local/share/Trash' -czf %s -C %s .",
		dir, dest, xdg.Home,
	)
	return ctx.Execute(cmd, "archive the home directory to "+dest) == 0
}

// RestoreBackup extracts the newest backup archive into a transient
// staging directory and copies the restored tree over the home directory.
// The staging directory is removed on exit.
func RestoreBackup(ctx *runner.Context) bool {
	newest, err := newestArchive(ctx.Config.BackupDir)
	if err != nil {
		logger.Warn("[WARN] %v\n", err)
		return false
	}
	logger.Info("[INFO] Restoring from %s\n", filepath.Base(newest))

	var restoreRoot string
	ok := ctx.Apply(fmt.Sprintf("extract %s into a staging directory", filepath.Base(newest)), func() error {
		staging, err := os.MkdirTemp("", "linux-setup-restore-")
		if err != nil {
			return err
		}
		cleanup.Register(staging)
		restoreRoot, err = archive.Extract(newest, staging)
		return err
	})
	if !ok {
		return false
	}

	if ctx.DryRun() {
		restoreRoot = "<staging>"
	}
	cmd := fmt.Sprintf("rsync -a %s/ %s/", restoreRoot, xdg.Home)
	return ctx.Execute(cmd, "copy the restored files into the home directory") == 0
}

// newestArchive picks the most recently modified supported archive in the
// backup directory.
func newestArchive(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("no backups found: %v", err)
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, e := range entries {
		if e.IsDir() || !archive.Supported(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = e.Name()
			bestTime = info.ModTime()
		}
	}
	if best == "" {
		return "", fmt.Errorf("no backup archives in %s", dir)
	}
	return filepath.Join(dir, best), nil
}

// SyncNAS pushes the local documents directory to the NAS share over
// rsync. Requires the NAS host to be reachable over SSH.
func SyncNAS(ctx *runner.Context) bool {
	nas := ctx.Config.NAS
	if nas.Host == "" {
		logger.Info("[INFO] No NAS host configured, skipping the sync\n")
		return true
	}
	cmd := fmt.Sprintf("rsync -az --delete %s/ %s:%s/", nas.LocalPath, nas.Host, nas.RemotePath)
	return ctx.Execute(cmd, fmt.Sprintf("sync %s to %s", nas.LocalPath, nas.Host)) == 0
}
