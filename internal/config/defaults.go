// Package config loads the optional YAML defaults file for setup-git.
// The file never makes the run non-interactive; it only changes the default
// answers offered by the prompts.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults holds the prompt defaults for a setup run.
//   - Branch: value offered for init.defaultBranch.
//   - Editor: value offered for core.editor.
//   - KeyPath: value offered for the SSH key location (~ is expanded later).
type Defaults struct {
	Branch  string `yaml:"branch"`
	Editor  string `yaml:"editor"`
	KeyPath string `yaml:"key_path"`
}

// Builtin returns the defaults used when no file is supplied.
func Builtin() Defaults {
	return Defaults{
		Branch:  "main",
		Editor:  "vim",
		KeyPath: "~/.ssh/id_ed25519",
	}
}

// LoadDefaults reads a defaults YAML file of the form:
//
//	defaults:
//	  branch: main
//	  editor: nvim
//	  key_path: ~/.ssh/id_work
//
// An empty path returns the built-in defaults. A file that cannot be read or
// parsed is a configuration mistake the user must fix, so it panics the same
// way a broken config file does elsewhere in this codebase. Fields left
// empty in the file fall back to the built-ins.
func LoadDefaults(path string) Defaults {
	defs := Builtin()
	if path == "" {
		return defs
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		panic("Failed to read defaults file: " + err.Error())
	}

	var wrapper struct {
		Defaults Defaults `yaml:"defaults"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		panic("Failed to unmarshal defaults file: " + err.Error())
	}

	if wrapper.Defaults.Branch != "" {
		defs.Branch = wrapper.Defaults.Branch
	}
	if wrapper.Defaults.Editor != "" {
		defs.Editor = wrapper.Defaults.Editor
	}
	if wrapper.Defaults.KeyPath != "" {
		defs.KeyPath = wrapper.Defaults.KeyPath
	}
	return defs
}
