package steps

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

var (
	archHyprland = system.Environment{Distro: system.DistroArch, Desktop: system.DesktopHyprland}
	debianKDE    = system.Environment{Distro: system.DistroDebian, Desktop: system.DesktopKDE}
)

func ids(sel []Step) []string {
	out := make([]string, len(sel))
	for i, s := range sel {
		out[i] = s.ID
	}
	return out
}

func TestApplicableMatchesTagRule(t *testing.T) {
	applicable := Applicable(archHyprland)
	member := make(map[string]bool)
	for _, s := range applicable {
		member[s.ID] = true
	}

	// Exactly the steps whose tags match are in the set, no more, no less.
	for _, s := range All() {
		assert.Equal(t, s.AppliesTo(archHyprland), member[s.ID], "step %s", s.ID)
	}
}

func TestApplicableOnArchHyprland(t *testing.T) {
	got := ids(Applicable(archHyprland))

	assert.Contains(t, got, "configure_git", "core steps always apply")
	assert.Contains(t, got, "update_mirrors", "arch steps apply on arch")
	assert.Contains(t, got, "configure_bluetooth", "hyprland steps apply under Hyprland")
	assert.NotContains(t, got, "configure_unattended_upgrades", "debian-only step must not appear")
	assert.NotContains(t, got, "configure_kde_theme", "kde step must not appear under Hyprland")
}

func TestApplicableOnDebianKDE(t *testing.T) {
	got := ids(Applicable(debianKDE))

	assert.Contains(t, got, "configure_git")
	assert.Contains(t, got, "configure_unattended_upgrades")
	assert.Contains(t, got, "configure_kde_theme")
	assert.NotContains(t, got, "update_mirrors")
	assert.NotContains(t, got, "configure_hyprland")
}

func TestApplicableSortedByDescription(t *testing.T) {
	applicable := Applicable(archHyprland)
	assert.True(t, sort.SliceIsSorted(applicable, func(i, j int) bool {
		return applicable[i].Description < applicable[j].Description
	}))
}

func TestApplicableIsIdempotent(t *testing.T) {
	assert.Equal(t, Applicable(archHyprland), Applicable(archHyprland))
}

func TestExecutionOrderFollowsCanonicalSequence(t *testing.T) {
	ordered := ExecutionOrder(Applicable(archHyprland))

	pos := make(map[string]int)
	for i, id := range canonicalOrder {
		pos[id] = i
	}

	lastCanonical := -1
	seenAppended := false
	for _, s := range ordered {
		p, inCanonical := pos[s.ID]
		if inCanonical {
			assert.False(t, seenAppended, "canonical step %s came after an appended one", s.ID)
			assert.Greater(t, p, lastCanonical, "canonical order violated at %s", s.ID)
			lastCanonical = p
			continue
		}
		seenAppended = true
	}
}

func TestExecutionOrderIgnoresSelectionOrder(t *testing.T) {
	applicable := Applicable(archHyprland)
	reversed := make([]Step, len(applicable))
	for i, s := range applicable {
		reversed[len(applicable)-1-i] = s
	}

	// On arch+Hyprland only configure_wofi sits outside the canonical
	// sequence, so reordering the input cannot change the projection.
	assert.Equal(t, ids(ExecutionOrder(applicable)), ids(ExecutionOrder(reversed)))
}

func TestExecutionOrderAppendsUnlistedSteps(t *testing.T) {
	ordered := ids(ExecutionOrder(Applicable(archHyprland)))

	require.Contains(t, ordered, "configure_wofi")
	assert.Equal(t, "configure_wofi", ordered[len(ordered)-1],
		"steps outside the canonical sequence run last")
}

func TestDefaultSelectionOnArch(t *testing.T) {
	selected, dropped := DefaultSelection(archHyprland)

	assert.Equal(t, []string{
		"update_mirrors",
		"configure_pacman",
		"install_base_packages",
		"configure_git",
		"configure_ssh",
		"deploy_dotfiles",
		"configure_shell",
		"enable_services",
		"setup_timesync",
		"backup_package_lists",
	}, ids(selected))

	assert.Equal(t, []string{
		"update_apt_sources",
		"install_apt_packages",
		"configure_dnf",
		"install_dnf_packages",
	}, dropped)
}

func TestDefaultSelectionOnDebian(t *testing.T) {
	selected, dropped := DefaultSelection(debianKDE)

	assert.Contains(t, ids(selected), "update_apt_sources")
	assert.Contains(t, ids(selected), "configure_git")
	assert.Contains(t, dropped, "update_mirrors")
	assert.Contains(t, dropped, "backup_package_lists")
	assert.NotContains(t, ids(selected), "configure_dnf")
}

func TestCategoriesCoverEveryStep(t *testing.T) {
	var total int
	for _, cat := range Categories() {
		total += len(InCategory(cat))
	}
	assert.Equal(t, Count(), total)
}
