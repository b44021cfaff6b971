// Package shell wraps external command execution behind a small Runner
// interface so the installer, configurator, and SSH setup can be exercised
// in tests without spawning real processes.
package shell

import (
	"os"
	"os/exec"
	"strings"

	"setup-git/internal/logger"
)

// Runner executes external commands. Exec is the production implementation;
// tests substitute a recording fake.
type Runner interface {
	// Run executes the command and returns its combined stdout/stderr.
	Run(name string, args ...string) ([]byte, error)
	// RunInteractive executes the command with the user's terminal attached,
	// for commands that prompt on their own (the Homebrew bootstrap script,
	// sudo password entry).
	RunInteractive(name string, args ...string) error
	// LookPath reports where a binary resolves on the command search path.
	LookPath(name string) (string, error)
}

// Exec runs commands via os/exec.
type Exec struct{}

// Run executes the command, logging the full command line at debug level and
// capturing combined output for error reporting.
func (Exec) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// RunInteractive executes the command wired to the current process's stdio.
func (Exec) RunInteractive(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	logger.Debug("[DEBUG] Running interactive command: %s\n", strings.Join(cmd.Args, " "))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath resolves a binary on PATH.
func (Exec) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
