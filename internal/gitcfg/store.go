// Package gitcfg applies the interactive configuration step: identity,
// optional preferences, and the platform credential helper, all written to
// git's global configuration.
package gitcfg

import (
	"fmt"
	"strings"

	"setup-git/internal/shell"
)

// Store is the global configuration collaborator. git's own config file is
// an external system of record, so the setup logic only ever talks to this
// interface; tests swap in an in-memory fake.
type Store interface {
	// Set writes a global key. A failed write surfaces as an error the
	// caller classifies as fatal or advisory.
	Set(key, value string) error
	// Get reads a single global key.
	Get(key string) (string, error)
	// GetRegexp returns "key value" lines for keys matching pattern, like
	// git config --global --get-regexp.
	GetRegexp(pattern string) (string, error)
}

// ExecStore implements Store by shelling out to git config --global,
// leaving the file format and location entirely to git.
type ExecStore struct {
	Run shell.Runner
}

// Set writes key to the global configuration.
func (s *ExecStore) Set(key, value string) error {
	out, err := s.Run.Run("git", "config", "--global", key, value)
	if err != nil {
		return fmt.Errorf("git config --global %s failed: %w (output: %s)", key, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Get reads key from the global configuration.
func (s *ExecStore) Get(key string) (string, error) {
	out, err := s.Run.Run("git", "config", "--global", "--get", key)
	if err != nil {
		return "", fmt.Errorf("git config --global --get %s failed: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRegexp lists matching keys from the global configuration.
func (s *ExecStore) GetRegexp(pattern string) (string, error) {
	out, err := s.Run.Run("git", "config", "--global", "--get-regexp", pattern)
	if err != nil {
		return "", fmt.Errorf("git config --global --get-regexp %s failed: %w", pattern, err)
	}
	return strings.TrimSpace(string(out)), nil
}
