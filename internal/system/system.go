package system

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Firstp1ck/Open-Linux-Setup-sub001/internal/logger"
)

// Distro identifies the detected OS distribution.
type Distro string

const (
	DistroArch        Distro = "arch"
	DistroEndeavourOS Distro = "endeavouros"
	DistroDebian      Distro = "debian"
	DistroUbuntu      Distro = "ubuntu"
	DistroFedora      Distro = "fedora"
	DistroCentOS      Distro = "centos"
	DistroRHEL        Distro = "rhel"
	DistroUnknown     Distro = "unknown"
)

// Desktop identifies the detected desktop environment or compositor.
type Desktop string

const (
	DesktopHyprland Desktop = "hyprland"
	DesktopKDE      Desktop = "kde"
	DesktopGNOME    Desktop = "gnome"
	DesktopXFCE     Desktop = "xfce"
	DesktopUnknown  Desktop = "unknown"
)

// Environment holds the facts detected once at startup. It is computed by
// Detect, never mutated afterwards, and passed down explicitly to the step
// filter and the tasks.
type Environment struct {
	Distro  Distro
	Desktop Desktop
}

// EnvironmentError reports an unrecoverable problem with the host: the
// distribution cannot be determined, required tooling is missing, or the
// machine is in a state this tool refuses to touch. It is always fatal.
type EnvironmentError struct {
	Reason string
	Err    error
}

func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// SimulateEnv is the host-override switch: setting LINUX_SETUP_SIMULATE_ARCH=1
// makes DetectDistro report Arch without consulting /etc/os-release, so the
// tool can be exercised on unsupported platforms.
const SimulateEnv = "LINUX_SETUP_SIMULATE_ARCH"

// osReleasePath is a variable so tests can point the probe at a fixture.
var osReleasePath = "/etc/os-release"

// processRunning reports whether a process with the exact name exists.
// Overridable in tests; the default shells out to pgrep, which is how the
// session managers are found when no session variable is exported.
var processRunning = func(name string) bool {
	return exec.Command("pgrep", "-x", name).Run() == nil
}

// Detect probes the host once and returns the immutable Environment.
func Detect() (Environment, error) {
	distro, err := DetectDistro()
	if err != nil {
		return Environment{}, err
	}
	desktop := DetectDesktop()
	logger.Debug("[DEBUG] Detected environment: distro=%s desktop=%s\n", distro, desktop)
	return Environment{Distro: distro, Desktop: desktop}, nil
}

// DetectDistro reads /etc/os-release and maps its ID (or, failing that, the
// first recognized ID_LIKE token) onto the supported distribution set. An
// undeterminable distribution is fatal unless the simulate override is set,
// in which case Arch is assumed.
func DetectDistro() (Distro, error) {
	if os.Getenv(SimulateEnv) == "1" {
		logger.Warn("[WARN] %s is set: assuming Arch Linux on this host\n", SimulateEnv)
		return DistroArch, nil
	}

	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return DistroUnknown, &EnvironmentError{Reason: "cannot read " + osReleasePath, Err: err}
	}
	distro := parseOSRelease(string(data))
	if distro == DistroUnknown {
		return DistroUnknown, &EnvironmentError{Reason: "unsupported distribution in " + osReleasePath}
	}
	return distro, nil
}

// parseOSRelease extracts ID and ID_LIKE from os-release content and maps
// them to a Distro. Exact ID match wins; otherwise the first ID_LIKE token
// that names a supported distribution is used.
func parseOSRelease(content string) Distro {
	var id, idLike string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if k, v, ok := strings.Cut(line, "="); ok {
			v = strings.Trim(v, `"`)
			switch k {
			case "ID":
				id = strings.ToLower(v)
			case "ID_LIKE":
				idLike = strings.ToLower(v)
			}
		}
	}

	if d := distroFromID(id); d != DistroUnknown {
		return d
	}
	for _, tok := range strings.Fields(idLike) {
		if d := distroFromID(tok); d != DistroUnknown {
			return d
		}
	}
	return DistroUnknown
}

func distroFromID(id string) Distro {
	switch id {
	case "arch":
		return DistroArch
	case "endeavouros":
		return DistroEndeavourOS
	case "debian":
		return DistroDebian
	case "ubuntu":
		return DistroUbuntu
	case "fedora":
		return DistroFedora
	case "centos":
		return DistroCentOS
	case "rhel":
		return DistroRHEL
	default:
		return DistroUnknown
	}
}

// DetectDesktop checks, in priority order: the session-type variable
// XDG_CURRENT_DESKTOP, the session-name variables XDG_SESSION_DESKTOP and
// DESKTOP_SESSION, and finally running session-manager processes. Unknown is
// a valid answer, not an error: desktop-tagged steps simply do not apply.
func DetectDesktop() Desktop {
	for _, env := range []string{"XDG_CURRENT_DESKTOP", "XDG_SESSION_DESKTOP", "DESKTOP_SESSION"} {
		if d := desktopFromName(os.Getenv(env)); d != DesktopUnknown {
			logger.Debug("[DEBUG] Desktop %s identified via %s\n", d, env)
			return d
		}
	}

	probes := []struct {
		process string
		desktop Desktop
	}{
		{"Hyprland", DesktopHyprland},
		{"plasmashell", DesktopKDE},
		{"gnome-shell", DesktopGNOME},
		{"xfce4-session", DesktopXFCE},
	}
	for _, p := range probes {
		if processRunning(p.process) {
			logger.Debug("[DEBUG] Desktop %s identified via running process %s\n", p.desktop, p.process)
			return p.desktop
		}
	}
	return DesktopUnknown
}

// desktopFromName maps a session variable value onto a Desktop. Values such
// as "KDE", "plasma" or "ubuntu:GNOME" all resolve by substring.
func desktopFromName(name string) Desktop {
	n := strings.ToLower(name)
	switch {
	case n == "":
		return DesktopUnknown
	case strings.Contains(n, "hyprland"):
		return DesktopHyprland
	case strings.Contains(n, "kde"), strings.Contains(n, "plasma"):
		return DesktopKDE
	case strings.Contains(n, "gnome"):
		return DesktopGNOME
	case strings.Contains(n, "xfce"):
		return DesktopXFCE
	default:
		return DesktopUnknown
	}
}
