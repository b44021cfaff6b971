package main

import (
	"setup-git/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The setup-git project is an interactive first-run setup assistant for git that:
//   - Detects the host operating system (and, on Linux, the distribution family)
//     from a single environment indicator
//   - Ensures git is installed, driving the native package manager for the detected
//     platform (apt/dnf/yum on Linux, Homebrew on macOS, winget/choco on Windows)
//     and falling back to manual instructions where no automated path exists
//   - Walks the user through identity configuration (name, email) plus optional
//     preferences (default branch, editor, HTTPS-to-SSH URL rewriting) written to
//     git's own global configuration
//   - Optionally generates an SSH key pair, registers it with a key agent, and
//     prints the public key for manual registration with GitHub
//   - Optionally tests SSH and HTTPS connectivity to GitHub
//
// Error handling strategy:
//   - Required steps (package-manager installs, identity configuration writes,
//     key generation) are fatal on failure: a labeled error is printed and the
//     process exits with a non-zero status
//   - Convenience steps (credential helper, ssh-agent registration) log a warning
//     on failure and let the run continue
//   - A user declining to proceed is a deliberate stop, not an error: the process
//     exits zero without attempting further automated action
//
// Integration points:
//   - Shells out to the platform package managers, the git binary itself,
//     ssh-keygen, ssh-agent and ssh-add; no installation logic is reimplemented
//   - All persistent state lives in external tools (git's global configuration,
//     files under ~/.ssh); the program itself keeps nothing between runs
//
// The flow is strictly linear and prompt-driven: detect, install, configure,
// optional SSH setup, optional connectivity check. No step runs twice.
func main() {
	cmd.Execute()
}
