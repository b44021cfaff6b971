// Package sshkey implements the optional SSH key step: resolve a key path,
// generate an ed25519 key pair when needed, register it with ssh-agent, and
// show the public key for manual registration with GitHub.
package sshkey

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"setup-git/internal/gitcfg"
	"setup-git/internal/logger"
	"setup-git/internal/prompt"
	"setup-git/internal/shell"
	"setup-git/internal/ui"
)

// keysURL is where a generated public key must be registered by hand.
const keysURL = "https://github.com/settings/keys"

// Setup holds the injected collaborators for the SSH key step.
type Setup struct {
	Run    shell.Runner
	Prompt prompt.Prompter
	// Store supplies the configured user.email as the fallback key comment.
	Store gitcfg.Store
	// Home overrides the home directory used for ~ expansion; empty means
	// os.UserHomeDir.
	Home string
	// Out receives the public key display; defaults to stdout.
	Out io.Writer
}

// EnsureKey resolves the key location, then either reuses the existing key
// pair or generates a new one. Reusing an existing key is a normal outcome,
// not an error. Key generation failure is fatal; agent registration failure
// is advisory.
func (s *Setup) EnsureKey(defaultPath string) error {
	path := defaultPath
	if s.Prompt.Confirm("Store the key somewhere other than the default location?", false) {
		if custom := strings.TrimSpace(s.Prompt.Ask("Key file path", defaultPath)); custom != "" {
			path = custom
		}
	}
	abs, err := s.expand(path)
	if err != nil {
		return fmt.Errorf("could not resolve the key path: %w", err)
	}

	// The .ssh directory must be owner-only or sshd-side tooling complains.
	if err := os.MkdirAll(filepath.Dir(abs), 0o700); err != nil {
		return fmt.Errorf("could not create %s: %w", filepath.Dir(abs), err)
	}

	pub := abs + ".pub"
	if _, err := os.Stat(pub); err == nil {
		if !s.Prompt.Confirm(fmt.Sprintf("A key already exists at %s. Generate a new one over it?", abs), false) {
			logger.Info("[INFO] Reusing the existing key.\n")
			return s.printPublicKey(pub)
		}
		// ssh-keygen refuses to overwrite silently, so clear the old pair.
		_ = os.Remove(abs)
		_ = os.Remove(pub)
	}

	email := s.Prompt.Ask("Email to embed in the key comment", "")
	if email == "" {
		if v, err := s.Store.Get("user.email"); err == nil {
			email = v
			logger.Debug("[DEBUG] Using configured user.email %s for the key comment\n", email)
		}
	}

	logger.Info("[INFO] Generating an ed25519 key pair at %s...\n", abs)
	if out, err := s.Run.Run("ssh-keygen", "-t", "ed25519", "-C", email, "-f", abs, "-N", ""); err != nil {
		logger.Error("[ERROR] ssh-keygen failed: %v\nOutput: %s\n", err, out)
		return fmt.Errorf("ssh-keygen failed: %w", err)
	}

	s.registerWithAgent(abs)
	return s.printPublicKey(pub)
}

// expand resolves a leading ~ against the home directory.
func (s *Setup) expand(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home := s.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// registerWithAgent starts a key agent and adds the new key to it. The
// agent is detached and left running past process exit. Both steps are
// conveniences: a failure warns and the run continues.
func (s *Setup) registerWithAgent(keyPath string) {
	out, err := s.Run.Run("ssh-agent", "-s")
	if err != nil {
		logger.Warn("[WARN] Could not start ssh-agent: %v\n", err)
		return
	}
	// ssh-agent -s prints sh-style exports; ssh-add needs them in our
	// environment to find the agent socket.
	for name, value := range parseAgentEnv(string(out)) {
		if err := os.Setenv(name, value); err != nil {
			logger.Warn("[WARN] Could not set %s: %v\n", name, err)
		}
	}
	if out, err := s.Run.Run("ssh-add", keyPath); err != nil {
		logger.Warn("[WARN] Could not add the key to ssh-agent: %v\nOutput: %s\n", err, out)
		return
	}
	logger.Info("[INFO] Key added to ssh-agent.\n")
}

// parseAgentEnv extracts NAME=VALUE assignments from ssh-agent -s output,
// e.g. "SSH_AUTH_SOCK=/tmp/ssh-x/agent.1; export SSH_AUTH_SOCK;".
func parseAgentEnv(out string) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		for _, token := range strings.Split(line, ";") {
			token = strings.TrimSpace(token)
			name, value, ok := strings.Cut(token, "=")
			if !ok || name == "" || strings.Contains(name, " ") {
				continue
			}
			env[name] = value
		}
	}
	return env
}

// printPublicKey shows the public key verbatim with a pointer to GitHub's
// key registration page.
func (s *Setup) printPublicKey(pubPath string) error {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return fmt.Errorf("could not read the public key %s: %w", pubPath, err)
	}
	w := s.Out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintln(w, ui.KeyBlock(strings.TrimRight(string(data), "\n")))
	logger.Info("[INFO] Add this public key to your GitHub account: %s\n", keysURL)
	return nil
}
