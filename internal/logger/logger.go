package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// Colorized console printers for the four log levels.
// Green for normal progress, bright magenta for warnings, red for errors,
// cyan for debug chatter. These write to the terminal only; the file copy
// of every line is handled by the zerolog writer below.
var (
	infoc  = color.New(color.FgGreen).PrintfFunc()
	warnc  = color.New(color.FgHiMagenta).PrintfFunc()
	errorc = color.New(color.FgRed).PrintfFunc()
	debugc = color.New(color.FgCyan).PrintfFunc()
)

var (
	verbose bool
	runID   string
	logPath string
	logFile *os.File
	filelog = zerolog.Nop()
)

// Init sets up console verbosity and the per-run log file. The log file lives
// under the XDG state directory (~/.local/state/linux-setup/linux-setup.log by
// default), is opened in append mode, and receives a timestamped, leveled copy
// of every line printed for the whole run. If the file cannot be opened the
// run continues with console output only.
func Init(enableVerbose bool, id string) {
	verbose = enableVerbose
	runID = id

	logPath = filepath.Join(xdg.StateHome, "linux-setup", "linux-setup.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		warnc("[WARN] Cannot create log directory %s: %v\n", filepath.Dir(logPath), err)
		return
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		warnc("[WARN] Cannot open log file %s, logging to console only: %v\n", logPath, err)
		return
	}
	logFile = f
	filelog = zerolog.New(f).With().Timestamp().Str("run_id", runID).Logger()
	filelog.Info().Msg("logger initialized")
}

// Close flushes and releases the log file. Safe to call when Init never ran.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
		filelog = zerolog.Nop()
	}
}

// RunID returns the identifier assigned to this run at startup.
func RunID() string { return runID }

// Path returns the active log file path, or "" when file logging is off.
func Path() string {
	if logFile == nil {
		return ""
	}
	return logPath
}

// Verbose reports whether --verbose diagnostics are enabled.
func Verbose() bool { return verbose }

// Info logs informational messages in green.
func Info(format string, a ...any) {
	infoc(format, a...)
	filelog.Info().Msg(fileLine(format, a...))
}

// Warn logs warning messages in bright magenta. Warnings never stop the run.
func Warn(format string, a ...any) {
	warnc(format, a...)
	filelog.Warn().Msg(fileLine(format, a...))
}

// Error logs error messages in red.
func Error(format string, a ...any) {
	errorc(format, a...)
	filelog.Error().Msg(fileLine(format, a...))
}

// Debug logs diagnostic messages in cyan when --verbose is set. The file copy
// is always written so a quiet console run still leaves a full trail.
func Debug(format string, a ...any) {
	if verbose {
		debugc(format, a...)
	}
	filelog.Debug().Msg(fileLine(format, a...))
}

// Plain prints uncolored user-facing output (menus, catalogs, summaries) to
// stdout and files it at info level, so the log captures the whole session.
func Plain(format string, a ...any) {
	fmt.Printf(format, a...)
	filelog.Info().Msg(fileLine(format, a...))
}

// fileLine renders a call-site format string into the message stored in the
// log file: the console level tag and surrounding whitespace are dropped
// because zerolog carries the level itself.
func fileLine(format string, a ...any) string {
	msg := strings.TrimSpace(fmt.Sprintf(format, a...))
	for _, tag := range []string{"[INFO]", "[WARN]", "[ERROR]", "[DEBUG]"} {
		if strings.HasPrefix(msg, tag) {
			msg = strings.TrimSpace(strings.TrimPrefix(msg, tag))
			break
		}
	}
	return msg
}
