// Package runner is the execution engine: it takes a selection of steps,
// projects it onto the canonical execution order, and runs the registered
// task for each step strictly one at a time. Tasks report a boolean verdict;
// a failure is recorded and the run keeps going. All side effects flow
// through the Context primitives, which is what makes --dry-run exact.
package runner

import (
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// Mode selects between doing and describing.
type Mode int

const (
	// ModeReal executes commands on the host.
	ModeReal Mode = iota
	// ModeDryRun records every would-be action and touches nothing.
	ModeDryRun
)

func (m Mode) String() string {
	if m == ModeDryRun {
		return "dry-run"
	}
	return "real"
}

// Task is one registered step implementation. The boolean is the step's
// overall verdict; partial trouble inside a task is the task's own business
// to log and weigh.
type Task interface {
	Run(ctx *Context) bool
}

// Func adapts a plain function to Task.
type Func func(ctx *Context) bool

// Run implements Task.
func (f Func) Run(ctx *Context) bool { return f(ctx) }

// Runner drives one run over a task registry.
type Runner struct {
	mode  Mode
	env   system.Environment
	cfg   *config.Settings
	tasks map[string]Task
}

// New builds a runner for the given mode, environment and registry.
func New(mode Mode, env system.Environment, cfg *config.Settings, tasks map[string]Task) *Runner {
	return &Runner{mode: mode, env: env, cfg: cfg, tasks: tasks}
}

// RunAll executes the selection in canonical execution order and returns
// the report. A selected step with no registered task is recorded as
// skipped and the run continues; a failing task is recorded and the run
// continues. Execution problems are outcomes, not errors.
func (r *Runner) RunAll(selection []steps.Step) *Report {
	report := NewReport(r.mode, logger.RunID())
	ordered := steps.ExecutionOrder(selection)

	if r.mode == ModeDryRun {
		logger.Info("[INFO] Dry run: commands are recorded, nothing is executed\n")
	}

	for i, s := range ordered {
		logger.Plain("\n")
		logger.Info("[INFO] (%d/%d) %s\n", i+1, len(ordered), s.Description)

		task, ok := r.tasks[s.ID]
		if !ok {
			logger.Warn("[WARN] Step %s has no implementation, skipping\n", s.ID)
			report.addRecord(Record{
				StepID:      s.ID,
				Description: s.Description,
				Category:    s.Category,
				Outcome:     OutcomeSkipped,
				Message:     "no implementation registered",
			})
			continue
		}

		ctx := NewContext(s.ID, r.mode, r.env, r.cfg, report)
		outcome := OutcomeSuccess
		if !task.Run(ctx) {
			outcome = OutcomeFailure
			logger.Error("[ERROR] Step failed: %s\n", s.Description)
		}
		report.addRecord(Record{
			StepID:      s.ID,
			Description: s.Description,
			Category:    s.Category,
			Outcome:     outcome,
		})
	}
	return report
}
