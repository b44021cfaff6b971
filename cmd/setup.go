package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"setup-git/internal/config"
	"setup-git/internal/gitcfg"
	"setup-git/internal/installer"
	"setup-git/internal/logger"
	"setup-git/internal/platform"
	"setup-git/internal/prompt"
	"setup-git/internal/shell"
	"setup-git/internal/sshkey"
	"setup-git/internal/ui"
	"setup-git/internal/verify"
)

// defaultsPath holds the path to the optional prompt-defaults YAML file,
// passed via the `--config` or `-c` flag. Empty means built-in defaults.
var defaultsPath string

// deps bundles the injected collaborators for a setup run so the whole
// flow can be scripted in tests against fakes.
type deps struct {
	run    shell.Runner
	prompt prompt.Prompter
	store  gitcfg.Store
	probe  func(string) bool
	// indicator is the OSTYPE-style string classified into an OS.
	indicator string
}

// defaultDeps wires the production collaborators: real command execution,
// terminal prompts, and git's own global configuration store.
func defaultDeps() *deps {
	run := shell.Exec{}
	return &deps{
		run:       run,
		prompt:    prompt.NewTerminal(os.Stdin, os.Stdout),
		store:     &gitcfg.ExecStore{Run: run},
		probe:     platform.FileExists,
		indicator: platform.Indicator(),
	}
}

// setupCmd runs the full flow: install, configure, optional SSH key setup,
// optional connectivity check.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the full git setup flow (install, configure, ssh, verify)",
	Run: func(cmd *cobra.Command, args []string) {
		finish(runSetup(defaultDeps(), config.LoadDefaults(defaultsPath)))
	},
}

// setupInstallCmd only ensures git is installed.
var setupInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install git (or verify an existing installation) only",
	Run: func(cmd *cobra.Command, args []string) {
		d := defaultDeps()
		osc, posix, err := classify(d)
		if err != nil {
			finish(err)
		}
		inst := installer.New(d.run, d.prompt)
		inst.Probe = d.probe
		finish(inst.EnsureGit(osc, posix))
	},
}

// setupConfigureCmd only runs the identity and preferences step.
var setupConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure identity and preferences only",
	Run: func(cmd *cobra.Command, args []string) {
		d := defaultDeps()
		osc, _, err := classify(d)
		if err != nil {
			finish(err)
		}
		c := &gitcfg.Configurator{Store: d.store, Prompt: d.prompt, Defaults: config.LoadDefaults(defaultsPath)}
		finish(c.Apply(osc))
	},
}

// setupSSHCmd only runs the SSH key step.
var setupSSHCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Generate or reuse an SSH key for GitHub only",
	Run: func(cmd *cobra.Command, args []string) {
		d := defaultDeps()
		s := &sshkey.Setup{Run: d.run, Prompt: d.prompt, Store: d.store}
		finish(s.EnsureKey(config.LoadDefaults(defaultsPath).KeyPath))
	},
}

// setupVerifyCmd only runs the connectivity check.
var setupVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Test SSH and HTTPS connectivity to GitHub only",
	Run: func(cmd *cobra.Command, args []string) {
		d := defaultDeps()
		(&verify.Checker{Run: d.run}).Check()
	},
}

// classify turns the environment indicator into an OS classification,
// failing the run for hosts that cannot be identified.
func classify(d *deps) (platform.OS, bool, error) {
	osc := platform.ClassifyOS(d.indicator)
	if osc == platform.OSUnknown {
		return osc, false, fmt.Errorf("could not determine the operating system from indicator %q", d.indicator)
	}
	logger.Debug("[DEBUG] Classified OS %s from indicator %q\n", osc, d.indicator)
	return osc, platform.IsPosixLayer(d.indicator), nil
}

// runSetup executes the linear flow top to bottom: detect, install,
// configure, optional SSH setup, optional connectivity check. Each step
// runs at most once.
func runSetup(d *deps, defs config.Defaults) error {
	osc, posix, err := classify(d)
	if err != nil {
		return err
	}

	fmt.Println(ui.Header("Install git"))
	inst := installer.New(d.run, d.prompt)
	inst.Probe = d.probe
	if err := inst.EnsureGit(osc, posix); err != nil {
		return err
	}

	fmt.Println(ui.Header("Configure git"))
	c := &gitcfg.Configurator{Store: d.store, Prompt: d.prompt, Defaults: defs}
	if err := c.Apply(osc); err != nil {
		return err
	}

	if d.prompt.Confirm("Set up an SSH key for GitHub?", true) {
		fmt.Println(ui.Header("SSH key"))
		s := &sshkey.Setup{Run: d.run, Prompt: d.prompt, Store: d.store}
		if err := s.EnsureKey(defs.KeyPath); err != nil {
			return err
		}
	}

	if d.prompt.Confirm("Test connectivity to GitHub?", true) {
		fmt.Println(ui.Header("Connectivity"))
		(&verify.Checker{Run: d.run}).Check()
	}

	logger.Info("[INFO] Setup complete. Happy committing!\n")
	return nil
}

// finish maps a step result to the process exit code: nil keeps going (and
// lets the command return normally with code 0), a deliberate stop exits 0,
// anything else is printed as a labeled fatal error with exit code 1.
func finish(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, installer.ErrStop) {
		os.Exit(0)
	}
	logger.Error("[ERROR] %v\n", err)
	os.Exit(1)
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	// Global flag for specifying the prompt-defaults file.
	setupCmd.PersistentFlags().StringVarP(&defaultsPath, "config", "c", "", "Path to a prompt-defaults YAML file")

	// Add subcommands for more granular control.
	setupCmd.AddCommand(setupInstallCmd)
	setupCmd.AddCommand(setupConfigureCmd)
	setupCmd.AddCommand(setupSSHCmd)
	setupCmd.AddCommand(setupVerifyCmd)
	// Register the `setup` command with the root command.
	rootCmd.AddCommand(setupCmd)
}
