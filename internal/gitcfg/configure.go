package gitcfg

import (
	"fmt"

	"setup-git/internal/config"
	"setup-git/internal/logger"
	"setup-git/internal/platform"
	"setup-git/internal/prompt"
)

// GitHub remote prefixes for the optional HTTPS-to-SSH URL rewrite.
const (
	SSHPrefix   = "git@github.com:"
	HTTPSPrefix = "https://github.com/"
)

// Configurator drives the identity and preferences step.
type Configurator struct {
	Store    Store
	Prompt   prompt.Prompter
	Defaults config.Defaults
}

// Apply collects the required identity, the optional preferences, and the
// platform credential helper, writing each to the global configuration.
// Identity and preference writes are fatal on failure; the credential
// helper is a convenience and only warns.
func (c *Configurator) Apply(osc platform.OS) error {
	// Identity is mandatory. The prompts re-ask until non-empty; no format
	// validation beyond that, git and the hosting service validate emails
	// themselves.
	name := c.Prompt.AskRequired("Your full name")
	if name == "" {
		return fmt.Errorf("a non-empty name is required")
	}
	email := c.Prompt.AskRequired("Your email address")
	if email == "" {
		return fmt.Errorf("a non-empty email address is required")
	}
	if err := c.Store.Set("user.name", name); err != nil {
		return err
	}
	if err := c.Store.Set("user.email", email); err != nil {
		return err
	}
	logger.Info("[INFO] Identity set: %s <%s>\n", name, email)

	if c.Prompt.Confirm(fmt.Sprintf("Set the default branch name for new repositories to %q?", c.Defaults.Branch), true) {
		if err := c.Store.Set("init.defaultBranch", c.Defaults.Branch); err != nil {
			return err
		}
		logger.Info("[INFO] Default branch set to %s\n", c.Defaults.Branch)
	}

	if c.Prompt.Confirm("Set a default editor for commit messages?", false) {
		// Stored verbatim with no existence check; the user may name an
		// editor that is installed later.
		editor := c.Prompt.Ask("Editor command", c.Defaults.Editor)
		if editor != "" {
			if err := c.Store.Set("core.editor", editor); err != nil {
				return err
			}
			logger.Info("[INFO] Editor set to %s\n", editor)
		}
	}

	if c.Prompt.Confirm("Rewrite GitHub HTTPS URLs to SSH automatically?", false) {
		if err := c.Store.Set("url."+SSHPrefix+".insteadOf", HTTPSPrefix); err != nil {
			return err
		}
		logger.Info("[INFO] %s will be rewritten to %s on every remote operation\n", HTTPSPrefix, SSHPrefix)
	}

	c.applyCredentialHelper(osc)
	c.printSummary()
	return nil
}

// CredentialHelper returns the helper applied for an OS classification:
// platform-native secure storage on macOS and Windows, a one-hour in-memory
// cache on Linux.
func CredentialHelper(osc platform.OS) string {
	switch osc {
	case platform.OSMacOS:
		return "osxkeychain"
	case platform.OSWindows:
		return "manager"
	default:
		return "cache --timeout=3600"
	}
}

// applyCredentialHelper configures credential caching for the platform.
// This is a convenience, so failure is advisory: warn and keep going.
func (c *Configurator) applyCredentialHelper(osc platform.OS) {
	helper := CredentialHelper(osc)
	if err := c.Store.Set("credential.helper", helper); err != nil {
		logger.Warn("[WARN] Could not configure the credential helper: %v\n", err)
		logger.Warn("[WARN] You will be asked for credentials on every HTTPS operation.\n")
		return
	}
	logger.Info("[INFO] Credential helper set to %s\n", helper)
}

// printSummary re-reads the identity and URL keys and shows them to the
// user as confirmation of what was written. Informational only.
func (c *Configurator) printSummary() {
	out, err := c.Store.GetRegexp("user|url")
	if err != nil || out == "" {
		logger.Debug("[DEBUG] No user/url configuration to summarize: %v\n", err)
		return
	}
	logger.Info("[INFO] Your global git configuration now contains:\n")
	fmt.Println(out)
}
