// Package installer ensures git is present on the host, driving the
// OS-appropriate native package manager and degrading to manual
// instructions when no supported mechanism exists.
package installer

import (
	"errors"
	"fmt"
	"strings"

	"setup-git/internal/logger"
	"setup-git/internal/platform"
	"setup-git/internal/prompt"
	"setup-git/internal/shell"
)

// ErrStop marks a deliberate early stop chosen by the user (declining to
// continue with an installed git, declining the Homebrew bootstrap). The
// cmd layer exits 0 for it instead of treating it as a failure.
var ErrStop = errors.New("setup stopped by user")

// brewInstallURL is the official Homebrew bootstrap script.
const brewInstallURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

// Installer holds the injected collaborators for the installation step.
type Installer struct {
	Run    shell.Runner
	Prompt prompt.Prompter
	// Probe checks for distribution marker files; defaults to the real
	// filesystem in New.
	Probe func(string) bool
}

// New builds an Installer with the production file probe.
func New(run shell.Runner, p prompt.Prompter) *Installer {
	return &Installer{Run: run, Prompt: p, Probe: platform.FileExists}
}

// EnsureGit makes sure git is available on PATH for the classified OS.
// posixLayer reports whether a Windows host is running inside a POSIX
// shell layer (Git Bash / Cygwin), where git ships with the layer itself.
// After any install attempt the presence of git is re-verified; absence at
// that point is fatal.
func (i *Installer) EnsureGit(osc platform.OS, posixLayer bool) error {
	if path, err := i.Run.LookPath("git"); err == nil {
		version := i.gitVersion()
		logger.Info("[INFO] git is already installed: %s (%s)\n", version, path)
		if !i.Prompt.Confirm("Continue and configure this installation?", true) {
			logger.Info("[INFO] Nothing to do.\n")
			return ErrStop
		}
		return nil
	}

	logger.Info("[INFO] git was not found on PATH. Installing...\n")

	switch osc {
	case platform.OSLinux:
		if err := i.installLinux(); err != nil {
			return err
		}
	case platform.OSMacOS:
		if err := i.installMacOS(); err != nil {
			return err
		}
	case platform.OSWindows:
		if err := i.installWindows(posixLayer); err != nil {
			return err
		}
	default:
		logger.Error("[ERROR] Unsupported operating system.\n")
		logger.Info("[INFO] Install git manually: https://git-scm.com/downloads\n")
		return fmt.Errorf("unsupported operating system %q", osc)
	}

	// Post-condition: whatever path ran above, git must now resolve.
	if _, err := i.Run.LookPath("git"); err != nil {
		return fmt.Errorf("git is still not on PATH after installation; open a new shell and re-run, or install manually")
	}
	logger.Info("[INFO] Installed %s\n", i.gitVersion())
	return nil
}

// gitVersion returns the `git --version` output for display.
func (i *Installer) gitVersion() string {
	out, err := i.Run.Run("git", "--version")
	if err != nil {
		return "git (version unknown)"
	}
	return strings.TrimSpace(string(out))
}

// pm runs one package-manager command, treating any failure as fatal with
// the command output attached for diagnosis.
func (i *Installer) pm(name string, args ...string) error {
	out, err := i.Run.Run(name, args...)
	if err != nil {
		logger.Error("[ERROR] %s %s failed: %v\nOutput: %s\n", name, strings.Join(args, " "), err, out)
		return fmt.Errorf("%s %s failed: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// installLinux probes the distribution family and runs its package
// manager's non-interactive update-and-install sequence.
func (i *Installer) installLinux() error {
	distro := platform.DetectDistro(i.Probe)
	logger.Debug("[DEBUG] Detected Linux distribution family: %s\n", distro)

	switch distro {
	case platform.DistroDebian:
		logger.Info("[INFO] Debian-family distribution detected. Installing git with apt-get...\n")
		if err := i.pm("sudo", "apt-get", "update"); err != nil {
			return err
		}
		return i.pm("sudo", "apt-get", "install", "-y", "git")
	case platform.DistroFedora:
		logger.Info("[INFO] Fedora detected. Installing git with dnf...\n")
		return i.pm("sudo", "dnf", "install", "-y", "git")
	case platform.DistroRedHat:
		logger.Info("[INFO] RedHat-family distribution detected. Installing git with yum...\n")
		return i.pm("sudo", "yum", "install", "-y", "git")
	default:
		logger.Error("[ERROR] Could not recognize this Linux distribution.\n")
		logger.Info("[INFO] Install git with your distribution's package manager, then re-run setup-git.\n")
		return fmt.Errorf("unsupported Linux distribution")
	}
}

// installMacOS installs git with Homebrew, offering to bootstrap Homebrew
// itself when absent. Declining the bootstrap is a deliberate stop.
func (i *Installer) installMacOS() error {
	if _, err := i.Run.LookPath("brew"); err != nil {
		logger.Warn("[WARN] Homebrew is not installed.\n")
		if !i.Prompt.Confirm("Install Homebrew now?", true) {
			logger.Info("[INFO] Install git manually: https://git-scm.com/download/mac\n")
			return ErrStop
		}
		// The bootstrap script prompts for sudo on its own, so it gets the
		// user's terminal.
		if err := i.Run.RunInteractive("/bin/bash", "-c", "curl -fsSL "+brewInstallURL+" | /bin/bash"); err != nil {
			return fmt.Errorf("Homebrew bootstrap failed: %w", err)
		}
	}
	return i.pm("brew", "install", "git")
}

// installWindows handles the two Windows situations: inside a POSIX layer
// git ships with the layer and only needs verifying; outside one, a package
// manager (winget, then chocolatey) is used when available.
func (i *Installer) installWindows(posixLayer bool) error {
	if posixLayer {
		// Git Bash and Cygwin bundle git; the post-install PATH check in
		// EnsureGit is the real verification.
		logger.Info("[INFO] POSIX shell layer detected; git should ship with it.\n")
		return nil
	}
	if _, err := i.Run.LookPath("winget"); err == nil {
		logger.Info("[INFO] Installing git with winget...\n")
		return i.pm("winget", "install", "--id", "Git.Git", "-e", "--source", "winget")
	}
	if _, err := i.Run.LookPath("choco"); err == nil {
		logger.Info("[INFO] Installing git with chocolatey...\n")
		return i.pm("choco", "install", "git", "-y")
	}
	logger.Error("[ERROR] No supported package manager (winget, chocolatey) was found.\n")
	logger.Info("[INFO] Download Git for Windows: https://git-scm.com/download/win\n")
	return fmt.Errorf("no supported package manager found on Windows")
}
