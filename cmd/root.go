package cmd

import (
	"bufio"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/menu"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/report"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/state"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/steps"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/tasks"
)

// Flag values, bound in init and read by run.
var (
	dryRun     bool
	verbose    bool
	listSteps  bool
	defaultSet bool
	function   string
)

// rootCmd is the whole CLI: one command whose flags choose between the
// interactive menu, the default set, a single step, and listing.
var rootCmd = &cobra.Command{
	Use:   "linux-setup",
	Short: "Personal Linux workstation provisioning",
	Long: `linux-setup detects the distribution and desktop it is running on,
offers the provisioning steps that apply there, and runs the chosen ones
in a fixed, dependency-aware order. With --dry-run it records what every
step would do instead of doing it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, uuid.NewString())
	},
	RunE: run,
}

// normalizeFlags accepts --dry as an alias for --dry-run. The historical
// single-dash -dry spelling cannot be expressed as a shorthand, since
// shorthands are single letters.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "dry" {
		name = "dry-run"
	}
	return pflag.NormalizedName(name)
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Record what would change without touching the system")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")
	rootCmd.Flags().BoolVarP(&listSteps, "list", "l", false, "List the steps applicable on this machine and exit")
	rootCmd.Flags().BoolVarP(&defaultSet, "default", "d", false, "Run the default step set without the menu")
	rootCmd.Flags().StringVarP(&function, "function", "f", "", "Run a single step by id")
	rootCmd.Flags().SetNormalizeFunc(normalizeFlags)
}

// Execute parses the command line and runs. The returned value is the
// process exit status; main owns the only os.Exit.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	env, err := system.Detect()
	if err != nil {
		return err
	}
	logger.Info("[INFO] Detected distro %s, desktop %s\n", env.Distro, env.Desktop)

	if err := system.Preflight(); err != nil {
		return err
	}

	if prior := state.Load(state.Path()); prior != nil && prior.Failures > 0 {
		logger.Info("[INFO] The previous run on %s had %d failed steps\n",
			prior.StartedAt.Format("2006-01-02"), prior.Failures)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	applicable := steps.Applicable(env)

	if listSteps {
		printApplicable(applicable)
		return nil
	}
	if function != "" {
		return runSingle(env, cfg, function)
	}

	var (
		selection     []steps.Step
		notApplicable []string
	)
	if defaultSet {
		selection, notApplicable = steps.DefaultSelection(env)
		for _, id := range notApplicable {
			logger.Warn("[WARN] Default step %s does not apply here, skipping\n", id)
		}
		if len(selection) == 0 {
			return menu.ErrNoStepsSelected
		}
	} else {
		var quit bool
		selection, quit, err = menu.Select(bufio.NewReader(os.Stdin), applicable)
		if err != nil {
			return err
		}
		if quit {
			logger.Info("[INFO] Nothing to do\n")
			return nil
		}
	}

	execute(env, cfg, selection, notApplicable)
	return nil
}

// runSingle runs one step by id, skipping the applicability filter: naming
// a step explicitly is taken as knowing better than the tags.
func runSingle(env system.Environment, cfg *config.Settings, id string) error {
	step, err := steps.Get(id)
	if err != nil {
		var unknown *steps.UnknownStepError
		if errors.As(err, &unknown) {
			logger.Error("[ERROR] Unknown step %q. Registered steps:\n", id)
			printCatalog()
		}
		return err
	}
	execute(env, cfg, []steps.Step{step}, nil)
	return nil
}

// execute runs the selection and reports. Step failures influence the
// summary, never the exit code; only fatals before execution do that.
func execute(env system.Environment, cfg *config.Settings, selection []steps.Step, notApplicable []string) {
	mode := runner.ModeReal
	if dryRun {
		mode = runner.ModeDryRun
	}

	r := runner.New(mode, env, cfg, tasks.Registry())
	rep := r.RunAll(selection)
	rep.NotApplicable = notApplicable

	report.Summarize(rep, env, cfg)

	if mode == runner.ModeReal {
		state.Save(state.Path(), state.FromReport(rep))
	}
}
