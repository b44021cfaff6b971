package cmd

import (
	"errors"
	"strings"
	"testing"

	"setup-git/internal/config"
	"setup-git/internal/installer"
	"setup-git/internal/testutil"
)

// testDeps builds a deps bundle around fakes for scripting full setup runs.
func testDeps(run *testutil.FakeRunner, p *testutil.FakePrompter, store *testutil.FakeStore, indicator string, markers ...string) *deps {
	set := make(map[string]bool)
	for _, m := range markers {
		set[m] = true
	}
	return &deps{
		run:       run,
		prompt:    p,
		store:     store,
		probe:     func(path string) bool { return set[path] },
		indicator: indicator,
	}
}

// TestRunSetupFreshDebianMachine walks the whole flow on a machine without
// git and with a Debian marker: install via apt, configure identity only,
// decline the optional steps.
func TestRunSetupFreshDebianMachine(t *testing.T) {
	run := &testutil.FakeRunner{AbsentUntil: map[string]int{"git": 1}}
	p := &testutil.FakePrompter{
		Answers: []string{"Ada Lovelace", "ada@example.com"},
		// branch, editor, rewrite, ssh step, verify step: all declined.
		Confirms: []bool{false, false, false, false, false},
	}
	store := testutil.NewFakeStore()
	d := testDeps(run, p, store, "linux-gnu", "/etc/debian_version")

	if err := runSetup(d, config.Builtin()); err != nil {
		t.Fatalf("runSetup() error: %v", err)
	}

	if !run.Ran("sudo apt-get update") || !run.Ran("sudo apt-get install -y git") {
		t.Errorf("Debian install path not taken, calls: %v", run.Calls)
	}
	if got := store.Values["user.name"]; got != "Ada Lovelace" {
		t.Errorf("user.name = %q, want %q", got, "Ada Lovelace")
	}
	if got := store.Values["user.email"]; got != "ada@example.com" {
		t.Errorf("user.email = %q, want %q", got, "ada@example.com")
	}
	for _, key := range []string{"init.defaultBranch", "core.editor", "url.git@github.com:.insteadOf"} {
		if _, ok := store.Values[key]; ok {
			t.Errorf("declined setting %s was written", key)
		}
	}
	if run.RanPrefix("ssh-keygen") {
		t.Errorf("SSH step was declined but keygen ran, calls: %v", run.Calls)
	}
	if run.RanPrefix("ssh -T") || run.RanPrefix("git ls-remote") {
		t.Errorf("verify step was declined but probes ran, calls: %v", run.Calls)
	}
}

func TestRunSetupUnknownOSFails(t *testing.T) {
	d := testDeps(&testutil.FakeRunner{}, &testutil.FakePrompter{}, testutil.NewFakeStore(), "freebsd13.2")

	err := runSetup(d, config.Builtin())
	if err == nil {
		t.Fatal("runSetup() should fail for an unclassifiable host")
	}
	if !strings.Contains(err.Error(), "freebsd13.2") {
		t.Errorf("error should name the indicator, got %v", err)
	}
}

func TestRunSetupDeclineExistingInstallStops(t *testing.T) {
	// git present; first confirm declines continuing.
	run := &testutil.FakeRunner{}
	p := &testutil.FakePrompter{Confirms: []bool{false}}
	d := testDeps(run, p, testutil.NewFakeStore(), "linux-gnu", "/etc/debian_version")

	err := runSetup(d, config.Builtin())
	if !errors.Is(err, installer.ErrStop) {
		t.Fatalf("runSetup() = %v, want ErrStop", err)
	}
}

func TestRunSetupInstallFailureAbortsBeforeConfigure(t *testing.T) {
	run := &testutil.FakeRunner{
		Absent: map[string]bool{"git": true},
		Responses: map[string]testutil.CmdResult{
			"sudo apt-get update": {Err: errors.New("exit status 100")},
		},
	}
	p := &testutil.FakePrompter{Answers: []string{"Ada Lovelace", "ada@example.com"}}
	store := testutil.NewFakeStore()
	d := testDeps(run, p, store, "linux-gnu", "/etc/debian_version")

	if err := runSetup(d, config.Builtin()); err == nil {
		t.Fatal("runSetup() should abort on a failed install")
	}
	if len(store.Values) != 0 {
		t.Errorf("configuration must not run after a failed install, store: %v", store.Values)
	}
}

func TestRunSetupVerifyStepRunsWhenAccepted(t *testing.T) {
	run := &testutil.FakeRunner{}
	p := &testutil.FakePrompter{
		Answers: []string{"Ada Lovelace", "ada@example.com"},
		// continue with installed git, decline branch/editor/rewrite,
		// decline ssh, accept verify.
		Confirms: []bool{true, false, false, false, false, true},
	}
	d := testDeps(run, p, testutil.NewFakeStore(), "linux-gnu", "/etc/debian_version")

	if err := runSetup(d, config.Builtin()); err != nil {
		t.Fatalf("runSetup() error: %v", err)
	}
	if !run.Ran("ssh -T git@github.com") {
		t.Errorf("SSH handshake probe not run, calls: %v", run.Calls)
	}
	if !run.Ran("git ls-remote https://github.com/octocat/Hello-World.git") {
		t.Errorf("HTTPS probe not run, calls: %v", run.Calls)
	}
}

func TestRunSetupWindowsPosixLayer(t *testing.T) {
	run := &testutil.FakeRunner{AbsentUntil: map[string]int{"git": 1}}
	p := &testutil.FakePrompter{
		Answers:  []string{"Ada Lovelace", "ada@example.com"},
		Confirms: []bool{false, false, false, false, false},
	}
	store := testutil.NewFakeStore()
	d := testDeps(run, p, store, "msys")

	if err := runSetup(d, config.Builtin()); err != nil {
		t.Fatalf("runSetup() error: %v", err)
	}
	if run.RanPrefix("winget") || run.RanPrefix("choco") {
		t.Errorf("no package manager should run inside a POSIX layer, calls: %v", run.Calls)
	}
	// Windows hosts get the native credential manager.
	if got := store.Values["credential.helper"]; got != "manager" {
		t.Errorf("credential.helper = %q, want manager", got)
	}
}
