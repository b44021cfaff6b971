package gitcfg

import (
	"strings"
	"testing"

	"setup-git/internal/config"
	"setup-git/internal/platform"
	"setup-git/internal/testutil"
)

func TestApplyIdentityOnly(t *testing.T) {
	store := testutil.NewFakeStore()
	p := &testutil.FakePrompter{
		Answers:  []string{"Ada Lovelace", "ada@example.com"},
		Confirms: []bool{false, false, false}, // branch, editor, rewrite
	}
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSLinux); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := store.Values["user.name"]; got != "Ada Lovelace" {
		t.Errorf("user.name = %q, want %q", got, "Ada Lovelace")
	}
	if got := store.Values["user.email"]; got != "ada@example.com" {
		t.Errorf("user.email = %q, want %q", got, "ada@example.com")
	}
	for _, key := range []string{"init.defaultBranch", "core.editor", "url." + SSHPrefix + ".insteadOf"} {
		if _, ok := store.Values[key]; ok {
			t.Errorf("declined option %s was written", key)
		}
	}
	// The credential helper is applied unconditionally.
	if got := store.Values["credential.helper"]; got != "cache --timeout=3600" {
		t.Errorf("credential.helper = %q, want linux cache helper", got)
	}
}

func TestApplyRepromptsEmptyIdentity(t *testing.T) {
	store := testutil.NewFakeStore()
	p := &testutil.FakePrompter{
		// Empty entries are re-asked until a value arrives.
		Answers:  []string{"", "", "Ada Lovelace", "", "ada@example.com"},
		Confirms: []bool{false, false, false},
	}
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSLinux); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if got := store.Values["user.name"]; got != "Ada Lovelace" {
		t.Errorf("user.name = %q, want %q", got, "Ada Lovelace")
	}
	if got := store.Values["user.email"]; got != "ada@example.com" {
		t.Errorf("user.email = %q, want %q", got, "ada@example.com")
	}
}

func TestApplyNoIdentityIsFatal(t *testing.T) {
	store := testutil.NewFakeStore()
	p := &testutil.FakePrompter{} // input exhausted immediately
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSLinux); err == nil {
		t.Fatal("Apply() with no identity input should fail")
	}
	if len(store.Values) != 0 {
		t.Errorf("nothing should be written without identity, got %v", store.Values)
	}
}

func TestApplyAllOptions(t *testing.T) {
	store := testutil.NewFakeStore()
	p := &testutil.FakePrompter{
		Answers:  []string{"Ada Lovelace", "ada@example.com", "nvim"},
		Confirms: []bool{true, true, true},
	}
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSMacOS); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	if got := store.Values["init.defaultBranch"]; got != "main" {
		t.Errorf("init.defaultBranch = %q, want %q", got, "main")
	}
	if got := store.Values["core.editor"]; got != "nvim" {
		t.Errorf("core.editor = %q, want %q", got, "nvim")
	}
	if got := store.Values["url."+SSHPrefix+".insteadOf"]; got != HTTPSPrefix {
		t.Errorf("url rewrite = %q, want %q", got, HTTPSPrefix)
	}
	if got := store.Values["credential.helper"]; got != "osxkeychain" {
		t.Errorf("credential.helper = %q, want osxkeychain on macos", got)
	}
}

func TestApplyFailedIdentityWriteIsFatal(t *testing.T) {
	store := testutil.NewFakeStore()
	store.FailKeys = map[string]bool{"user.email": true}
	p := &testutil.FakePrompter{
		Answers: []string{"Ada Lovelace", "ada@example.com"},
	}
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSLinux); err == nil {
		t.Fatal("Apply() should surface a failed identity write")
	}
}

func TestApplyCredentialHelperFailureIsAdvisory(t *testing.T) {
	store := testutil.NewFakeStore()
	store.FailKeys = map[string]bool{"credential.helper": true}
	p := &testutil.FakePrompter{
		Answers:  []string{"Ada Lovelace", "ada@example.com"},
		Confirms: []bool{false, false, false},
	}
	c := &Configurator{Store: store, Prompt: p, Defaults: config.Builtin()}

	if err := c.Apply(platform.OSLinux); err != nil {
		t.Fatalf("credential helper failure must not abort the run: %v", err)
	}
	if got := store.Values["user.name"]; got != "Ada Lovelace" {
		t.Errorf("identity should still be written, user.name = %q", got)
	}
}

func TestCredentialHelperPerOS(t *testing.T) {
	tests := []struct {
		osc  platform.OS
		want string
	}{
		{platform.OSMacOS, "osxkeychain"},
		{platform.OSWindows, "manager"},
		{platform.OSLinux, "cache --timeout=3600"},
	}
	for _, tt := range tests {
		if got := CredentialHelper(tt.osc); got != tt.want {
			t.Errorf("CredentialHelper(%s) = %q, want %q", tt.osc, got, tt.want)
		}
	}
}

func TestExecStoreSetBuildsGitConfigCommand(t *testing.T) {
	run := &testutil.FakeRunner{}
	store := &ExecStore{Run: run}

	if err := store.Set("user.name", "Ada Lovelace"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if !run.Ran("git config --global user.name Ada Lovelace") {
		t.Errorf("expected git config --global write, got %v", run.Calls)
	}
}

func TestExecStoreGetRegexp(t *testing.T) {
	run := &testutil.FakeRunner{
		Responses: map[string]testutil.CmdResult{
			"git config --global --get-regexp user|url": {Out: "user.name Ada Lovelace\nuser.email ada@example.com\n"},
		},
	}
	store := &ExecStore{Run: run}

	out, err := store.GetRegexp("user|url")
	if err != nil {
		t.Fatalf("GetRegexp() error: %v", err)
	}
	if !strings.Contains(out, "user.email ada@example.com") {
		t.Errorf("GetRegexp() = %q, want email line", out)
	}
}
