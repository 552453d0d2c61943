// Package report renders the end-of-run summary. Reporting is purely
// observational: it reads the finished report, prints through the logger,
// and never fails the run.
package report

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/config"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/pkglist"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/runner"
	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/system"
)

// installedPackages lists every installed package name; swapped in tests.
var installedPackages = func() ([]string, error) {
	out, err := exec.Command("bash", "-c", "pacman -Qq").Output()
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}

// Summarize prints the final summary for a finished run.
func Summarize(rep *runner.Report, env system.Environment, cfg *config.Settings) {
	logger.Plain("\n")
	logger.Info("[INFO] Run summary (%s)\n", rep.Mode)

	if rep.Mode == runner.ModeDryRun {
		summarizeDryRun(rep)
		return
	}
	summarizeReal(rep, env, cfg)
}

func summarizeReal(rep *runner.Report, env system.Environment, cfg *config.Settings) {
	var pkgFailures []runner.Record
	for _, rec := range rep.Failures() {
		if rec.Category == "Packages" {
			pkgFailures = append(pkgFailures, rec)
		}
	}
	if len(pkgFailures) > 0 {
		logger.Error("[ERROR] Package steps that failed:\n")
		for _, rec := range pkgFailures {
			logger.Error("[ERROR]   - %s\n", rec.Description)
		}
	}

	for _, rec := range rep.Records {
		switch rec.Outcome {
		case runner.OutcomeSuccess:
			logger.Info("[INFO] ok      %s\n", rec.Description)
		case runner.OutcomeFailure:
			logger.Error("[ERROR] failed  %s\n", rec.Description)
		case runner.OutcomeSkipped:
			logger.Warn("[WARN] skipped %s (no implementation)\n", rec.Description)
		}
	}

	if len(rep.NotApplicable) > 0 {
		logger.Info("[INFO] Not applicable on this system: %s\n", strings.Join(rep.NotApplicable, ", "))
	}

	if failed := len(rep.Failures()); failed > 0 {
		logger.Warn("[WARN] %d of %d steps failed\n", failed, len(rep.Records))
	} else if len(rep.Records) > 0 {
		logger.Info("[INFO] All %d steps completed\n", len(rep.Records))
	}

	verifyPackages(env, cfg)
}

// verifyPackages diffs the newest package-list snapshots against what
// pacman reports as installed. Only meaningful where pacman exists; on
// other distros it stays quiet.
func verifyPackages(env system.Environment, cfg *config.Settings) {
	if env.Distro != system.DistroArch && env.Distro != system.DistroEndeavourOS {
		logger.Debug("[DEBUG] Package verification only runs on pacman systems\n")
		return
	}

	installed, err := installedPackages()
	if err != nil {
		logger.Warn("[WARN] Could not list installed packages: %v\n", err)
		return
	}

	for _, prefix := range []string{pkglist.PacmanPrefix, pkglist.AURPrefix} {
		path, _, err := pkglist.Newest(cfg.BackupDir, prefix)
		if errors.Is(err, pkglist.ErrNoSnapshot) {
			logger.Info("[INFO] No %s snapshot to verify against\n", prefix)
			continue
		}
		if err != nil {
			logger.Warn("[WARN] Could not locate %s snapshot: %v\n", prefix, err)
			continue
		}
		snapshot, err := pkglist.Read(path)
		if err != nil {
			logger.Warn("[WARN] Could not read %s: %v\n", path, err)
			continue
		}
		missing := pkglist.Missing(snapshot, installed)
		if len(missing) == 0 {
			logger.Info("[INFO] All %d packages from %s are installed\n", len(snapshot), filepath.Base(path))
			continue
		}
		logger.Warn("[WARN] %d of %d packages from %s are not installed: %s\n",
			len(missing), len(snapshot), filepath.Base(path), strings.Join(missing, " "))
	}
}

func summarizeDryRun(rep *runner.Report) {
	for _, rec := range rep.Records {
		if rec.Outcome == runner.OutcomeSkipped {
			logger.Warn("[WARN] %s: no implementation registered\n", rec.Description)
			continue
		}
		ops := rep.OperationsFor(rec.StepID)
		logger.Plain("\n%s (%d operations):\n", rec.Description, len(ops))
		for _, op := range ops {
			logger.Plain("  - %s\n", op.Description)
		}
		if len(ops) == 0 {
			logger.Plain("  (nothing to do)\n")
		}
	}
	logger.Plain("\n")
	logger.Info("[INFO] Dry run finished, no changes were made\n")
}
