// Package platform classifies the host operating system and, on Linux, the
// distribution family. Classification is pure string matching over a single
// environment indicator so it can be tested without touching the host.
package platform

import (
	"os"
	"runtime"
	"strings"

	"setup-git/internal/logger"
)

// OS is the coarse operating-system classification the rest of the program
// dispatches on. Exactly one value is derived at startup and never changes.
type OS string

const (
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSWindows OS = "windows"
	OSUnknown OS = "unknown"
)

// Distro is the Linux distribution family, derived by probing for marker
// files. It is only meaningful when the OS classification is OSLinux.
type Distro string

const (
	DistroDebian      Distro = "debian"
	DistroFedora      Distro = "fedora"
	DistroRedHat      Distro = "redhat"
	DistroUnsupported Distro = "unsupported"
)

// Distribution marker files, probed in priority order. The Debian marker is
// checked first because derivative distributions (Ubuntu, Mint) carry it too.
const (
	markerDebian = "/etc/debian_version"
	markerFedora = "/etc/fedora-release"
	markerRedHat = "/etc/redhat-release"
)

// ClassifyOS maps an OSTYPE-style indicator string to an OS value by
// case-insensitive prefix match. Unrecognized input yields OSUnknown; there
// is no error path, the caller decides how to handle an unknown host.
func ClassifyOS(indicator string) OS {
	s := strings.ToLower(strings.TrimSpace(indicator))
	switch {
	case strings.HasPrefix(s, "linux-gnu"):
		return OSLinux
	case strings.HasPrefix(s, "darwin"):
		return OSMacOS
	case strings.HasPrefix(s, "cygwin"), strings.HasPrefix(s, "msys"), strings.HasPrefix(s, "win32"):
		return OSWindows
	default:
		return OSUnknown
	}
}

// IsPosixLayer reports whether the indicator shows the process is running
// inside a POSIX-compatible shell layer on Windows (Git Bash / MSYS2 /
// Cygwin). Those layers ship their own git, so no package manager is needed.
func IsPosixLayer(indicator string) bool {
	s := strings.ToLower(strings.TrimSpace(indicator))
	return strings.HasPrefix(s, "msys") || strings.HasPrefix(s, "cygwin")
}

// Indicator returns the environment string used for OS classification.
// OSTYPE is a shell variable and frequently not exported to child processes,
// so when it is unset an equivalent indicator is synthesized from
// runtime.GOOS. ClassifyOS remains the single source of truth either way.
func Indicator() string {
	if v := os.Getenv("OSTYPE"); v != "" {
		logger.Debug("[DEBUG] OSTYPE=%s\n", v)
		return v
	}
	switch runtime.GOOS {
	case "linux":
		return "linux-gnu"
	case "darwin":
		return "darwin"
	case "windows":
		return "win32"
	default:
		return runtime.GOOS
	}
}

// DetectDistro probes for distribution marker files in fixed priority order
// using the supplied existence probe. Pass FileExists outside of tests.
func DetectDistro(probe func(string) bool) Distro {
	switch {
	case probe(markerDebian):
		return DistroDebian
	case probe(markerFedora):
		return DistroFedora
	case probe(markerRedHat):
		return DistroRedHat
	default:
		return DistroUnsupported
	}
}

// FileExists is the production probe for DetectDistro.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
