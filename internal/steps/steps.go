package steps

import (
	"fmt"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// Step is one provisioning unit the orchestrator can schedule: a stable id
// used for dispatch and --function, a human description shown in the menu,
// a catalog category for --list grouping, and the applicability tags.
// A core step applies everywhere; otherwise the step applies when at least
// one of its distro or desktop tags matches the detected environment.
// Steps are defined once in the catalog and never mutated.
type Step struct {
	ID          string
	Description string
	Category    string
	Core        bool
	Distros     []system.Distro
	Desktops    []system.Desktop
}

// IsCore reports whether the step applies on every machine.
func (s Step) IsCore() bool { return s.Core }

// MatchesDistro reports an exact distro tag match.
func (s Step) MatchesDistro(d system.Distro) bool {
	for _, want := range s.Distros {
		if want == d {
			return true
		}
	}
	return false
}

// MatchesDesktop reports an exact desktop tag match.
func (s Step) MatchesDesktop(d system.Desktop) bool {
	for _, want := range s.Desktops {
		if want == d {
			return true
		}
	}
	return false
}

// AppliesTo is the applicability rule: core, or any tag matching the
// detected environment. A step with no matching tag is invisible to both
// the menu and selection.
func (s Step) AppliesTo(env system.Environment) bool {
	return s.Core || s.MatchesDistro(env.Distro) || s.MatchesDesktop(env.Desktop)
}

// UnknownStepError reports a step id that is not in the catalog, e.g. a typo
// passed to --function.
type UnknownStepError struct {
	ID string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q", e.ID)
}

// index provides id lookup over the catalog.
var index = func() map[string]Step {
	m := make(map[string]Step, len(catalog))
	for _, s := range catalog {
		if _, dup := m[s.ID]; dup {
			panic("duplicate step id in catalog: " + s.ID)
		}
		m[s.ID] = s
	}
	return m
}()

// All returns every registered step in catalog declaration order.
func All() []Step {
	out := make([]Step, len(catalog))
	copy(out, catalog)
	return out
}

// Get resolves a step id, returning UnknownStepError when absent.
func Get(id string) (Step, error) {
	s, ok := index[id]
	if !ok {
		return Step{}, &UnknownStepError{ID: id}
	}
	return s, nil
}

// Has reports whether the id is registered.
func Has(id string) bool {
	_, ok := index[id]
	return ok
}

// Count returns the catalog size.
func Count() int { return len(catalog) }
