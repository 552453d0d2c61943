package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	descriptions := make(map[string]bool)
	for _, s := range All() {
		assert.False(t, seen[s.ID], "duplicate step id %s", s.ID)
		seen[s.ID] = true

		assert.NotEmpty(t, s.Description, "step %s has no description", s.ID)
		assert.False(t, descriptions[s.Description], "duplicate description %q", s.Description)
		descriptions[s.Description] = true

		assert.NotEmpty(t, s.Category, "step %s has no category", s.ID)

		if !s.Core {
			assert.True(t, len(s.Distros) > 0 || len(s.Desktops) > 0,
				"step %s is neither core nor tagged", s.ID)
		}
	}
}

func TestCanonicalOrderNamesRealSteps(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range canonicalOrder {
		assert.True(t, Has(id), "canonical order references unknown step %s", id)
		assert.False(t, seen[id], "canonical order lists %s twice", id)
		seen[id] = true
	}
}

func TestDefaultPresetNamesRealSteps(t *testing.T) {
	seen := make(map[string]bool)
	for _, id := range DefaultPreset() {
		assert.True(t, Has(id), "default preset references unknown step %s", id)
		assert.False(t, seen[id], "default preset lists %s twice", id)
		seen[id] = true
	}
}

func TestGet(t *testing.T) {
	s, err := Get("configure_git")
	require.NoError(t, err)
	assert.Equal(t, "configure_git", s.ID)
	assert.True(t, s.Core)

	_, err = Get("no_such_step")
	require.Error(t, err)

	var unknown *UnknownStepError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "no_such_step", unknown.ID)
	assert.Contains(t, err.Error(), "no_such_step")
}

func TestAllReturnsACopy(t *testing.T) {
	first := All()
	first[0].ID = "mutated"
	assert.NotEqual(t, "mutated", All()[0].ID)
}
