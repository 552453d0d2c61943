package runner

import "time"

// Outcome classifies one attempted step.
type Outcome int

const (
	// OutcomeSuccess means the task ran and reported true.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means the task ran and reported false.
	OutcomeFailure
	// OutcomeSkipped means the selection named a step with no registered
	// implementation; the run continues past it.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeSkipped:
		return "skipped (no implementation)"
	default:
		return "unknown"
	}
}

// Record is the result of one attempted step, in execution order.
type Record struct {
	StepID      string
	Description string
	Category    string
	Outcome     Outcome
	Message     string
}

// Operation is one action a task would have performed, recorded instead of
// executed while simulating. Command is empty for in-process actions.
type Operation struct {
	StepID      string
	Description string
	Command     string
}

// Report accumulates everything a run produced. The runner owns it and
// hands it to the reporter when the run finishes; nothing global.
type Report struct {
	Mode          Mode
	RunID         string
	StartedAt     time.Time
	Records       []Record
	Operations    []Operation
	NotApplicable []string
}

// NewReport starts an empty report for one run.
func NewReport(mode Mode, runID string) *Report {
	return &Report{
		Mode:      mode,
		RunID:     runID,
		StartedAt: time.Now(),
	}
}

// Failures returns the records of failed steps, in execution order.
func (r *Report) Failures() []Record {
	return r.withOutcome(OutcomeFailure)
}

// Skipped returns the records of steps without implementations.
func (r *Report) Skipped() []Record {
	return r.withOutcome(OutcomeSkipped)
}

func (r *Report) withOutcome(o Outcome) []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Outcome == o {
			out = append(out, rec)
		}
	}
	return out
}

// HasFailures reports whether any step failed.
func (r *Report) HasFailures() bool {
	return len(r.Failures()) > 0
}

// OperationsFor returns the simulated operations recorded by one step.
func (r *Report) OperationsFor(stepID string) []Operation {
	var out []Operation
	for _, op := range r.Operations {
		if op.StepID == stepID {
			out = append(out, op)
		}
	}
	return out
}

func (r *Report) addRecord(rec Record) {
	r.Records = append(r.Records, rec)
}

func (r *Report) addOperation(op Operation) {
	r.Operations = append(r.Operations, op)
}
