// Package state persists a small record of the last real run to the XDG
// state directory, so the next invocation can mention an earlier failure.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
)

// StepResult is one step's outcome in the persisted record.
type StepResult struct {
	StepID  string `json:"step_id"`
	Outcome string `json:"outcome"`
}

// LastRun is the persisted summary of the most recent real run.
type LastRun struct {
	RunID     string       `json:"run_id"`
	StartedAt time.Time    `json:"started_at"`
	Mode      string       `json:"mode"`
	Failures  int          `json:"failures"`
	Steps     []StepResult `json:"steps"`
}

// Path returns the record location under the XDG state directory.
func Path() string {
	return filepath.Join(xdg.StateHome, "linux-setup", "last_run.json")
}

// FromReport flattens a finished run into the persisted form.
func FromReport(rep *runner.Report) *LastRun {
	lr := &LastRun{
		RunID:     rep.RunID,
		StartedAt: rep.StartedAt,
		Mode:      rep.Mode.String(),
		Failures:  len(rep.Failures()),
	}
	for _, rec := range rep.Records {
		lr.Steps = append(lr.Steps, StepResult{StepID: rec.StepID, Outcome: rec.Outcome.String()})
	}
	return lr
}

// Load reads the record at path. A missing or unreadable file means there
// is nothing to report, so it returns nil rather than an error.
func Load(path string) *LastRun {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var lr LastRun
	if err := json.Unmarshal(raw, &lr); err != nil {
		logger.Debug("[DEBUG] Ignoring unreadable last-run record %s: %v\n", path, err)
		return nil
	}
	return &lr
}

// Save writes the record. Failures are logged, never propagated; a run
// that cannot note itself down is still a finished run.
func Save(path string, lr *LastRun) {
	raw, err := json.MarshalIndent(lr, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal last-run record: %v\n", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Error("[ERROR] Failed to create state directory: %v\n", err)
		return
	}
	logger.Debug("[DEBUG] Writing last-run record to %s\n", path)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		logger.Error("[ERROR] Failed to write last-run record %s: %v\n", path, err)
	}
}
