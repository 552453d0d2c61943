package steps

import (
	"sort"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// Applicable returns every catalog step that applies to the environment,
// sorted by description. This is the set the interactive menu presents;
// steps for other distros or desktops are filtered out before the user
// ever sees them.
func Applicable(env system.Environment) []Step {
	var out []Step
	for _, s := range catalog {
		if s.AppliesTo(env) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Description < out[j].Description
	})
	return out
}

// ExecutionOrder reorders a selection for running: steps named in the
// master sequence first, in the sequence's relative order, then the
// remainder in their incoming relative order. Selection order in the menu
// therefore never changes what runs before what.
func ExecutionOrder(selection []Step) []Step {
	pos := make(map[string]int, len(canonicalOrder))
	for i, id := range canonicalOrder {
		pos[id] = i
	}

	var ordered, appended []Step
	for _, s := range selection {
		if _, ok := pos[s.ID]; ok {
			ordered = append(ordered, s)
		} else {
			appended = append(appended, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return pos[ordered[i].ID] < pos[ordered[j].ID]
	})
	return append(ordered, appended...)
}

// DefaultSelection resolves the --default preset against the environment.
// Preset entries that are not applicable here, or that name no catalog
// step, are returned as dropped ids so the caller can report them; the
// selected steps come back in preset order.
func DefaultSelection(env system.Environment) (selected []Step, dropped []string) {
	for _, id := range defaultRun {
		s, ok := index[id]
		if !ok || !s.AppliesTo(env) {
			dropped = append(dropped, id)
			continue
		}
		selected = append(selected, s)
	}
	return selected, dropped
}

// DefaultPreset returns the ids behind --default in preset order. Callers
// that already hold the applicable set intersect against it themselves.
func DefaultPreset() []string {
	out := make([]string, len(defaultRun))
	copy(out, defaultRun)
	return out
}

// Categories returns the catalog categories in first-appearance order.
func Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range catalog {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// InCategory returns the category's steps in catalog order.
func InCategory(category string) []Step {
	var out []Step
	for _, s := range catalog {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
