// Package verify implements the optional connectivity check against GitHub.
// Both sub-checks are informational: neither influences the process exit
// code, they only tell the user whether their setup can reach the service.
package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"setup-git/internal/logger"
	"setup-git/internal/shell"
)

// testRepo is a small public repository used for the unauthenticated
// HTTPS reachability check.
const testRepo = "https://github.com/octocat/Hello-World.git"

// Checker runs the connectivity checks.
type Checker struct {
	Run shell.Runner
	// Out receives the raw ssh handshake output; defaults to stdout.
	Out io.Writer
}

// Check performs the authenticated SSH handshake test followed by an
// unauthenticated HTTPS remote listing.
func (c *Checker) Check() {
	w := c.Out
	if w == nil {
		w = os.Stdout
	}

	// GitHub's SSH endpoint always refuses the shell, so the handshake
	// output is shown as-is instead of interpreting the exit status.
	logger.Info("[INFO] Testing SSH authentication to github.com...\n")
	out, _ := c.Run.Run("ssh", "-T", "git@github.com")
	if msg := strings.TrimSpace(string(out)); msg != "" {
		fmt.Fprintln(w, msg)
	}

	logger.Info("[INFO] Testing HTTPS access to GitHub...\n")
	if _, err := c.Run.Run("git", "ls-remote", testRepo); err != nil {
		logger.Warn("[WARN] Could not reach %s.\n", testRepo)
		logger.Warn("[WARN] This usually points to a network or proxy problem rather than a git misconfiguration.\n")
		return
	}
	logger.Info("[INFO] HTTPS connectivity to GitHub looks good.\n")
}
