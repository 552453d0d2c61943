package cmd

import (
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
)

// printApplicable lists the steps that apply on this machine, grouped by
// category. This is what --list prints.
func printApplicable(applicable []steps.Step) {
	inSelection := make(map[string]bool, len(applicable))
	for _, s := range applicable {
		inSelection[s.ID] = true
	}

	logger.Plain("Steps applicable on this machine:\n")
	for _, cat := range steps.Categories() {
		var lines []steps.Step
		for _, s := range steps.InCategory(cat) {
			if inSelection[s.ID] {
				lines = append(lines, s)
			}
		}
		if len(lines) == 0 {
			continue
		}
		logger.Plain("\n%s:\n", cat)
		for _, s := range lines {
			logger.Plain("  %-30s %s\n", s.ID, s.Description)
		}
	}
}

// printCatalog lists every registered step grouped by category, shown when
// --function names an unknown id.
func printCatalog() {
	for _, cat := range steps.Categories() {
		logger.Plain("\n%s:\n", cat)
		for _, s := range steps.InCategory(cat) {
			logger.Plain("  %-30s %s\n", s.ID, s.Description)
		}
	}
}
