// Package menu is the interactive selection engine. It presents the
// applicable steps as a numbered list and turns the user's answers into a
// selection for the runner. The menu only ever shows steps that apply to
// the detected environment; everything else has been filtered out before
// this package is involved.
package menu

import (
	"bufio"
	"errors"
	"strconv"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
)

var (
	// ErrAborted means the user answered no to a confirmation.
	ErrAborted = errors.New("selection aborted")
	// ErrNoStepsSelected means a selection path ended with nothing to run.
	ErrNoStepsSelected = errors.New("no steps selected")
)

// Select runs the menu loop against the reader and returns the chosen
// steps. quit is true when the user asked to leave without running
// anything; err carries ErrAborted or ErrNoStepsSelected for the paths
// that end the program with a failure.
func Select(in *bufio.Reader, applicable []steps.Step) (selection []steps.Step, quit bool, err error) {
	s := &session{in: in, applicable: applicable}
	return s.run()
}

type session struct {
	in         *bufio.Reader
	applicable []steps.Step
}

func (s *session) run() ([]steps.Step, bool, error) {
	for {
		s.printMenu()

		line, ok := s.readLine()
		if !ok {
			// Input ended at the main prompt; same as quitting.
			return nil, true, nil
		}

		switch line {
		case "q":
			return nil, true, nil
		case "a":
			return s.selectAll()
		case "e":
			return s.selectExceptions()
		case "d":
			return s.selectDefault()
		case "m":
			sel, back, err := s.selectMulti()
			if back {
				continue
			}
			return sel, false, err
		case "":
			logger.Warn("[WARN] Please choose an option\n")
		default:
			sel, handled := s.selectSingle(line)
			if handled {
				return sel, false, nil
			}
		}
	}
}

func (s *session) printMenu() {
	logger.Plain("\nAvailable steps:\n")
	for i, step := range s.applicable {
		logger.Plain("  %2d) %s\n", i+1, step.Description)
	}
	logger.Plain("\n  a) run all steps\n")
	logger.Plain("  e) run all steps with exceptions\n")
	logger.Plain("  d) run the default set\n")
	logger.Plain("  m) pick several steps\n")
	logger.Plain("  q) quit\n")
	logger.Plain("\nChoose a step number or an option: ")
}

// selectSingle handles a bare number at the main prompt. handled is false
// when the input was not a valid choice, in which case the menu is shown
// again.
func (s *session) selectSingle(line string) ([]steps.Step, bool) {
	n, err := strconv.Atoi(line)
	if err != nil {
		logger.Warn("[WARN] %q is not a valid choice\n", line)
		return nil, false
	}
	if n < 1 || n > len(s.applicable) {
		logger.Warn("[WARN] %d is out of range (1-%d)\n", n, len(s.applicable))
		return nil, false
	}
	return []steps.Step{s.applicable[n-1]}, true
}

func (s *session) selectAll() ([]steps.Step, bool, error) {
	if len(s.applicable) == 0 {
		return nil, false, ErrNoStepsSelected
	}
	return steps.ExecutionOrder(s.applicable), false, nil
}

// selectExceptions reads excluded indices until "done", then asks for
// confirmation. Duplicate and invalid indices are reported and ignored.
func (s *session) selectExceptions() ([]steps.Step, bool, error) {
	excluded := make(map[int]bool)

	logger.Plain("\nEnter step numbers to exclude, then 'done':\n")
	for {
		logger.Plain("exclude> ")
		line, ok := s.readLine()
		if !ok {
			return nil, false, ErrAborted
		}
		if line == "done" {
			break
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				logger.Warn("[WARN] %q is not a number\n", tok)
				continue
			}
			if n < 1 || n > len(s.applicable) {
				logger.Warn("[WARN] %d is out of range (1-%d)\n", n, len(s.applicable))
				continue
			}
			if excluded[n] {
				logger.Info("[INFO] %d is already excluded\n", n)
				continue
			}
			excluded[n] = true
		}
	}

	var remaining []steps.Step
	for i, step := range s.applicable {
		if !excluded[i+1] {
			remaining = append(remaining, step)
		}
	}
	if len(remaining) == 0 {
		return nil, false, ErrNoStepsSelected
	}

	logger.Plain("\nRunning %d of %d steps (%d excluded).\n", len(remaining), len(s.applicable), len(excluded))
	if !s.confirm("Proceed?") {
		return nil, false, ErrAborted
	}
	return remaining, false, nil
}

// selectDefault intersects the default preset with the applicable set.
// Preset entries that do not apply here are reported and dropped.
func (s *session) selectDefault() ([]steps.Step, bool, error) {
	byID := make(map[string]steps.Step, len(s.applicable))
	for _, step := range s.applicable {
		byID[step.ID] = step
	}

	var selection []steps.Step
	for _, id := range steps.DefaultPreset() {
		step, ok := byID[id]
		if !ok {
			logger.Warn("[WARN] Default step %s does not apply here, skipping\n", id)
			continue
		}
		selection = append(selection, step)
	}
	if len(selection) == 0 {
		return nil, false, ErrNoStepsSelected
	}
	return selection, false, nil
}

// selectMulti reads one line of indices. Invalid tokens are reported and
// skipped; if nothing valid remains the caller returns to the main menu.
func (s *session) selectMulti() (selection []steps.Step, backToMenu bool, err error) {
	logger.Plain("Enter step numbers separated by spaces: ")
	line, ok := s.readLine()
	if !ok {
		return nil, false, ErrAborted
	}

	seen := make(map[int]bool)
	var chosen []steps.Step
	for _, tok := range strings.Fields(line) {
		n, convErr := strconv.Atoi(tok)
		if convErr != nil {
			logger.Warn("[WARN] %q is not a number\n", tok)
			continue
		}
		if n < 1 || n > len(s.applicable) {
			logger.Warn("[WARN] %d is out of range (1-%d)\n", n, len(s.applicable))
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		chosen = append(chosen, s.applicable[n-1])
	}

	if len(chosen) == 0 {
		logger.Warn("[WARN] No valid steps picked\n")
		return nil, true, nil
	}

	logger.Plain("\nSelected steps:\n")
	for _, step := range chosen {
		logger.Plain("  - %s\n", step.Description)
	}
	if !s.confirm("Proceed?") {
		return nil, false, ErrAborted
	}
	return chosen, false, nil
}

// confirm asks a yes/no question. Empty input means yes; anything other
// than y/yes means no.
func (s *session) confirm(prompt string) bool {
	logger.Plain("%s [Y/n]: ", prompt)
	line, _ := s.readLine()
	switch strings.ToLower(line) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// readLine reads one trimmed line. ok is false only when input is
// exhausted and nothing was read.
func (s *session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}
