package main

import (
	"os"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/cmd"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/cleanup"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing
// and the whole run, then tears down and exits with the code Execute chose.
//
// linux-setup is a personal Linux workstation provisioning tool that:
//   - Detects the running distribution from /etc/os-release and the desktop
//     environment from session variables (with process probes as fallback)
//   - Keeps a catalog of provisioning steps tagged core, per-distro, or
//     per-desktop, and only ever offers the ones that apply to this machine
//   - Presents an interactive menu for picking steps (all, all-with-
//     exceptions, a curated default set, several by number, or one), or runs
//     non-interactively via --default and --function
//   - Executes the chosen steps strictly in a fixed dependency-aware order,
//     funneling every shell command and file change through one primitive so
//     that --dry-run can record the full plan without touching anything
//   - Summarizes outcomes at the end, verifies installed packages against
//     the newest package-list snapshots on pacman systems, and persists a
//     small last-run record under the XDG state directory
//
// Error handling strategy:
//   - A failing step is logged, recorded, and does not stop the run; the
//     summary shows what failed and the exit code stays zero
//   - Environment problems (unknown distro, running as root, missing bash,
//     low disk), an aborted confirmation, an empty selection, and unknown
//     step ids or flags are fatal and exit with status 1
//
// Teardown runs here rather than in deferred calls because os.Exit skips
// defers: transient staging directories are removed and the run log closed
// on every path.
func main() {
	code := cmd.Execute()
	cleanup.Run()
	logger.Close()
	os.Exit(code)
}
