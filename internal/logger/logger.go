// Package logger provides leveled, colorized console output for setup-git.
// All user-facing progress, warnings, and errors flow through these printers
// so every message carries a consistent level label and color.
package logger

import (
	"github.com/fatih/color"
)

// The level printers are package-level printf-style functions built on
// fatih/color. Callers include the level label in the format string, e.g.
// logger.Info("[INFO] Installed git %s\n", version).

// Info prints progress and success messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn prints advisory messages in bright magenta. Warnings never stop the
// run; they flag conveniences (credential helper, ssh-agent) that failed.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints fatal-path messages in red. The cmd layer prints one of
// these and exits 1 for every fatal error.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints diagnostic messages in cyan when debug logging is enabled.
// It defaults to a no-op so packages can log before Init runs.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug output. It is called once from the root
// command's PersistentPreRun based on the --debug flag.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
