// Package pkglist reads and writes the package-list snapshot files kept in
// the backup directory, one package name per line, stamped into the file
// name so the newest snapshot can be found without any extra bookkeeping.
package pkglist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// PacmanPrefix marks snapshots of explicitly installed repo packages.
	PacmanPrefix = "pkglist"
	// AURPrefix marks snapshots of foreign (AUR) packages.
	AURPrefix = "aurpkglist"

	timeLayout = "20060102_150405"
)

// ErrNoSnapshot is returned when the backup directory holds no snapshot
// for the requested prefix.
var ErrNoSnapshot = errors.New("no package list snapshot found")

// FileName builds the snapshot name for a prefix and a point in time,
// e.g. pkglist_20260823_141502.txt.
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.txt", prefix, t.Format(timeLayout))
}

// Write stores a snapshot in dir and returns its full path. The directory
// is created when missing.
func Write(dir, prefix string, t time.Time, packages []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}
	path := filepath.Join(dir, FileName(prefix, t))
	content := strings.Join(packages, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Newest returns the snapshot with the latest embedded timestamp for the
// prefix. File names that do not parse are ignored; no candidate at all
// yields ErrNoSnapshot.
func Newest(dir, prefix string) (string, time.Time, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: reading %s: %v", ErrNoSnapshot, dir, err)
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		t, ok := parseName(e.Name(), prefix)
		if !ok {
			continue
		}
		if best == "" || t.After(bestTime) {
			best = e.Name()
			bestTime = t
		}
	}
	if best == "" {
		return "", time.Time{}, fmt.Errorf("%w: %s_*.txt in %s", ErrNoSnapshot, prefix, dir)
	}
	return filepath.Join(dir, best), bestTime, nil
}

func parseName(name, prefix string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(name, prefix+"_")
	if !ok {
		return time.Time{}, false
	}
	stamp, ok := strings.CutSuffix(rest, ".txt")
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(timeLayout, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Read loads a snapshot back into package names, skipping blank lines.
func Read(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var pkgs []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			pkgs = append(pkgs, line)
		}
	}
	return pkgs, nil
}

// Missing returns the snapshot entries not present in the installed set,
// sorted, so the reporter can say exactly what disappeared since the
// snapshot was taken.
func Missing(snapshot, installed []string) []string {
	have := make(map[string]bool, len(installed))
	for _, p := range installed {
		have[p] = true
	}
	var missing []string
	for _, p := range snapshot {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	sort.Strings(missing)
	return missing
}
