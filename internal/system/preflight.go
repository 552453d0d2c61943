package system

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// MinFreeBytes is the free-space floor for the home filesystem. Backups and
// dotfile staging need working room; below this the run refuses to start.
const MinFreeBytes = 500 * 1024 * 1024

// requiredTools must be resolvable on PATH before any step runs. Every task
// shells out through bash, and most of the catalog leans on these.
var requiredTools = []string{"bash"}

// Preflight verifies the host is safe to provision: not running as root,
// required tooling on PATH, and enough free space in the home filesystem.
// Any violation is an EnvironmentError and aborts the run.
func Preflight() error {
	if os.Geteuid() == 0 {
		return &EnvironmentError{Reason: "refusing to run as root; run as your regular user (sudo is invoked where needed)"}
	}

	for _, tool := range requiredTools {
		if _, err := exec.LookPath(tool); err != nil {
			return &EnvironmentError{Reason: "required tool not found on PATH: " + tool, Err: err}
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return &EnvironmentError{Reason: "cannot resolve home directory", Err: err}
	}
	free, err := freeBytes(home)
	if err != nil {
		// Statfs failing is unusual but not worth refusing the run over.
		logger.Warn("[WARN] Cannot check free disk space for %s: %v\n", home, err)
		return nil
	}
	if free < MinFreeBytes {
		return &EnvironmentError{
			Reason: fmt.Sprintf("insufficient disk space in %s: %d MiB free, need at least %d MiB",
				home, free/(1024*1024), MinFreeBytes/(1024*1024)),
		}
	}
	logger.Debug("[DEBUG] Preflight OK: %d MiB free in %s\n", free/(1024*1024), home)
	return nil
}

func freeBytes(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
