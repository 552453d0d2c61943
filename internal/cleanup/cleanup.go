package cleanup

import (
	"os"
	"sync"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// This package tracks transient working directories (archive staging areas,
// build scratch space) so they are removed on every exit path. main calls Run
// explicitly before os.Exit, since os.Exit would skip deferred calls.

var (
	mu    sync.Mutex
	paths []string
	funcs []func()
)

// Register marks a path for removal when the process finishes.
func Register(path string) {
	mu.Lock()
	defer mu.Unlock()
	paths = append(paths, path)
}

// Defer queues an arbitrary finalizer to run when the process finishes.
func Defer(f func()) {
	mu.Lock()
	defer mu.Unlock()
	funcs = append(funcs, f)
}

// Run removes every registered path and runs queued finalizers, newest first.
// It is idempotent: a second call finds nothing left to do.
func Run() {
	mu.Lock()
	ps := paths
	fs := funcs
	paths = nil
	funcs = nil
	mu.Unlock()

	for i := len(fs) - 1; i >= 0; i-- {
		fs[i]()
	}
	for i := len(ps) - 1; i >= 0; i-- {
		if err := os.RemoveAll(ps[i]); err != nil {
			logger.Warn("[WARN] Failed to remove working directory %s: %v\n", ps[i], err)
			continue
		}
		logger.Debug("[DEBUG] Removed working directory %s\n", ps[i])
	}
}
