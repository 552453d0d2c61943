package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// Context is what a task gets to work with: the detected environment, the
// effective settings, and the execution primitives. Every change a task
// makes must go through Execute or Apply, so simulation cannot be bypassed
// by any step.
type Context struct {
	StepID string
	Env    system.Environment
	Config *config.Settings

	mode   Mode
	report *Report
}

// NewContext binds a task context to one step and one report.
func NewContext(stepID string, mode Mode, env system.Environment, cfg *config.Settings, report *Report) *Context {
	return &Context{StepID: stepID, Env: env, Config: cfg, mode: mode, report: report}
}

// DryRun reports whether the run is simulating.
func (c *Context) DryRun() bool { return c.mode == ModeDryRun }

// Execute runs a shell command and returns its exit code. While simulating
// it spawns nothing: the operation is recorded against the step and the
// return is 0. A non-zero exit is logged as a warning, never an abort; the
// caller decides what the code means for its step.
func (c *Context) Execute(command, description string) int {
	if c.mode == ModeDryRun {
		logger.Info("[DRY] Would run: %s\n", description)
		c.report.addOperation(Operation{StepID: c.StepID, Description: description, Command: command})
		return 0
	}

	logger.Debug("[DEBUG] Running: %s\n", command)
	out, err := exec.Command("bash", "-c", command).CombinedOutput()
	if err == nil {
		return 0
	}

	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	if text := strings.TrimSpace(string(out)); text != "" {
		logger.Warn("[WARN] %s failed (exit %d): %v\n%s\n", description, code, err, text)
	} else {
		logger.Warn("[WARN] %s failed (exit %d): %v\n", description, code, err)
	}
	return code
}

// Apply performs an in-process change, or records it while simulating.
// Library-backed actions (file writes, archive extraction) go through
// here so they honor simulation exactly like shell commands do.
func (c *Context) Apply(description string, fn func() error) bool {
	if c.mode == ModeDryRun {
		logger.Info("[DRY] Would apply: %s\n", description)
		c.report.addOperation(Operation{StepID: c.StepID, Description: description})
		return true
	}

	if err := fn(); err != nil {
		logger.Warn("[WARN] %s failed: %v\n", description, err)
		return false
	}
	return true
}

// Capture runs a read-only shell command and returns its trimmed stdout.
// Tasks use it for idempotence and discovery queries, never for changes;
// while simulating, tasks are expected to skip these queries and record
// their operations unconditionally.
func (c *Context) Capture(command string) (string, error) {
	out, err := exec.Command("bash", "-c", command).Output()
	if err != nil {
		return "", fmt.Errorf("running %q: %w", command, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HasCommand reports whether an executable is on PATH. A PATH lookup, not
// a subprocess, so it is safe in either mode.
func (c *Context) HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
