package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

var testEnv = system.Environment{Distro: system.DistroArch, Desktop: system.DesktopHyprland}

func mustStep(t *testing.T, id string) steps.Step {
	t.Helper()
	s, err := steps.Get(id)
	require.NoError(t, err)
	return s
}

func TestRunAllDryRunRecordsOperations(t *testing.T) {
	var codes []int
	registry := map[string]Task{
		"configure_git": Func(func(ctx *Context) bool {
			codes = append(codes, ctx.Execute("git config --global user.name x", "set git user.name"))
			codes = append(codes, ctx.Execute("git config --global user.email y", "set git user.email"))
			return true
		}),
	}

	r := New(ModeDryRun, testEnv, config.Default(), registry)
	rep := r.RunAll([]steps.Step{mustStep(t, "configure_git")})

	assert.Equal(t, []int{0, 0}, codes, "simulated commands report success")
	require.Len(t, rep.Records, 1)
	assert.Equal(t, OutcomeSuccess, rep.Records[0].Outcome)

	ops := rep.OperationsFor("configure_git")
	require.Len(t, ops, 2)
	assert.Equal(t, "set git user.name", ops[0].Description)
	assert.Equal(t, "set git user.email", ops[1].Description)
}

func TestDryRunExecuteSpawnsNothing(t *testing.T) {
	rep := NewReport(ModeDryRun, "test")
	ctx := NewContext("configure_git", ModeDryRun, testEnv, config.Default(), rep)

	// A command that cannot exist still reports success: nothing ran.
	code := ctx.Execute("definitely-not-a-real-command-xyz --flag", "do the impossible")
	assert.Equal(t, 0, code)
	require.Len(t, rep.Operations, 1)
	assert.Equal(t, "do the impossible", rep.Operations[0].Description)
}

func TestRunAllContinuesPastFailure(t *testing.T) {
	var invoked []string
	task := func(id string, result bool) Task {
		return Func(func(ctx *Context) bool {
			invoked = append(invoked, id)
			return result
		})
	}
	registry := map[string]Task{
		"update_mirrors":  task("update_mirrors", true),
		"deploy_dotfiles": task("deploy_dotfiles", false),
		"configure_shell": task("configure_shell", true),
	}

	selection := []steps.Step{
		mustStep(t, "update_mirrors"),
		mustStep(t, "deploy_dotfiles"),
		mustStep(t, "configure_shell"),
	}
	rep := New(ModeReal, testEnv, config.Default(), registry).RunAll(selection)

	assert.Equal(t, []string{"update_mirrors", "deploy_dotfiles", "configure_shell"}, invoked,
		"a failing step does not stop the ones after it")

	require.Len(t, rep.Records, 3)
	assert.Equal(t, OutcomeSuccess, rep.Records[0].Outcome)
	assert.Equal(t, OutcomeFailure, rep.Records[1].Outcome)
	assert.Equal(t, OutcomeSuccess, rep.Records[2].Outcome)
	assert.True(t, rep.HasFailures())

	failures := rep.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "deploy_dotfiles", failures[0].StepID)
}

func TestRunAllRecordsMissingImplementations(t *testing.T) {
	registry := map[string]Task{
		"configure_git": Func(func(ctx *Context) bool { return true }),
	}
	selection := []steps.Step{
		mustStep(t, "configure_git"),
		mustStep(t, "configure_ssh"),
	}
	rep := New(ModeDryRun, testEnv, config.Default(), registry).RunAll(selection)

	require.Len(t, rep.Records, 2)
	skipped := rep.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, "configure_ssh", skipped[0].StepID)
	assert.Equal(t, "no implementation registered", skipped[0].Message)
	assert.False(t, rep.HasFailures(), "a missing implementation is not a failure")
}

func TestRunAllProjectsCanonicalOrder(t *testing.T) {
	var invoked []string
	note := func(id string) Task {
		return Func(func(ctx *Context) bool {
			invoked = append(invoked, id)
			return true
		})
	}
	registry := map[string]Task{
		"update_mirrors":  note("update_mirrors"),
		"deploy_dotfiles": note("deploy_dotfiles"),
		"configure_wofi":  note("configure_wofi"),
	}

	// Selection arrives in menu (description) order; execution must not.
	selection := []steps.Step{
		mustStep(t, "configure_wofi"),
		mustStep(t, "deploy_dotfiles"),
		mustStep(t, "update_mirrors"),
	}
	New(ModeDryRun, testEnv, config.Default(), registry).RunAll(selection)

	assert.Equal(t, []string{"update_mirrors", "deploy_dotfiles", "configure_wofi"}, invoked)
}

func TestExecuteRealReturnsExitCode(t *testing.T) {
	rep := NewReport(ModeReal, "test")
	ctx := NewContext("configure_git", ModeReal, testEnv, config.Default(), rep)

	assert.Equal(t, 0, ctx.Execute("true", "succeed"))
	assert.Equal(t, 7, ctx.Execute("exit 7", "fail with a specific code"))
	assert.Empty(t, rep.Operations, "real mode records nothing")
}

func TestApplyHonorsMode(t *testing.T) {
	dryRep := NewReport(ModeDryRun, "test")
	dryCtx := NewContext("configure_ssh", ModeDryRun, testEnv, config.Default(), dryRep)

	called := false
	assert.True(t, dryCtx.Apply("create a directory", func() error {
		called = true
		return nil
	}))
	assert.False(t, called, "simulation must not run the function")
	require.Len(t, dryRep.Operations, 1)
	assert.Equal(t, "create a directory", dryRep.Operations[0].Description)

	realRep := NewReport(ModeReal, "test")
	realCtx := NewContext("configure_ssh", ModeReal, testEnv, config.Default(), realRep)

	assert.True(t, realCtx.Apply("works", func() error { return nil }))
	assert.False(t, realCtx.Apply("breaks", func() error { return errors.New("boom") }))
	assert.Empty(t, realRep.Operations)
}

func TestCaptureReturnsTrimmedOutput(t *testing.T) {
	ctx := NewContext("x", ModeReal, testEnv, config.Default(), NewReport(ModeReal, "test"))

	out, err := ctx.Capture("printf 'hello world\n'")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)

	_, err = ctx.Capture("exit 3")
	assert.Error(t, err)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "real", ModeReal.String())
	assert.Equal(t, "dry-run", ModeDryRun.String())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "failure", OutcomeFailure.String())
	assert.Equal(t, "skipped (no implementation)", OutcomeSkipped.String())
}
