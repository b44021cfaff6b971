// Package testutil provides shared fakes for the Runner, Prompter, and
// Store collaborators so setup steps can be scripted in tests without
// spawning processes or touching real git configuration.
package testutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// CmdResult scripts the outcome of one command line in FakeRunner.
type CmdResult struct {
	Out string
	Err error
}

// FakeRunner records every command it is asked to run and answers from a
// scripted table. Unscripted commands succeed with empty output.
type FakeRunner struct {
	// Calls holds the executed command lines (name and args joined by
	// spaces) in execution order, including interactive runs.
	Calls []string
	// Responses maps a full command line to its scripted result.
	Responses map[string]CmdResult
	// Absent lists binaries that LookPath never finds.
	Absent map[string]bool
	// AbsentUntil lists binaries whose first N LookPath calls fail, to
	// model a tool appearing on PATH after installation.
	AbsentUntil map[string]int
	// OnRun, when set, observes every executed command line. Tests use it
	// to emulate side effects such as ssh-keygen writing key files.
	OnRun func(line string)

	lookups map[string]int
}

func joinCmd(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// Run records the command and returns its scripted result.
func (r *FakeRunner) Run(name string, args ...string) ([]byte, error) {
	line := joinCmd(name, args)
	r.Calls = append(r.Calls, line)
	if r.OnRun != nil {
		r.OnRun(line)
	}
	res := r.Responses[line]
	return []byte(res.Out), res.Err
}

// RunInteractive records the command and returns its scripted error.
func (r *FakeRunner) RunInteractive(name string, args ...string) error {
	line := joinCmd(name, args)
	r.Calls = append(r.Calls, line)
	return r.Responses[line].Err
}

// LookPath resolves scripted binaries. Present binaries resolve to
// /usr/bin/<name>.
func (r *FakeRunner) LookPath(name string) (string, error) {
	if r.lookups == nil {
		r.lookups = make(map[string]int)
	}
	r.lookups[name]++
	if r.Absent[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	if r.lookups[name] <= r.AbsentUntil[name] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + name, nil
}

// Ran reports whether a command line was executed.
func (r *FakeRunner) Ran(line string) bool {
	for _, c := range r.Calls {
		if c == line {
			return true
		}
	}
	return false
}

// RanPrefix reports whether any executed command line starts with prefix.
func (r *FakeRunner) RanPrefix(prefix string) bool {
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// FakePrompter answers prompts from pre-scripted slices. Text answers are
// consumed by Ask and AskRequired in order; confirmations are consumed by
// Confirm in order. Exhausted answers fall back to the prompt default.
type FakePrompter struct {
	Answers  []string
	Confirms []bool
	// Questions records every question asked, for assertions on flow.
	Questions []string
}

func (p *FakePrompter) nextAnswer() (string, bool) {
	if len(p.Answers) == 0 {
		return "", false
	}
	v := p.Answers[0]
	p.Answers = p.Answers[1:]
	return v, true
}

// Ask pops the next text answer, using def on empty input.
func (p *FakePrompter) Ask(question, def string) string {
	p.Questions = append(p.Questions, question)
	v, ok := p.nextAnswer()
	if !ok || v == "" {
		return def
	}
	return v
}

// AskRequired pops answers until a non-empty one turns up, mirroring the
// terminal re-prompt loop. Exhaustion returns "".
func (p *FakePrompter) AskRequired(question string) string {
	p.Questions = append(p.Questions, question)
	for {
		v, ok := p.nextAnswer()
		if v != "" {
			return v
		}
		if !ok {
			return ""
		}
	}
}

// Confirm pops the next scripted confirmation, defaulting when exhausted.
func (p *FakePrompter) Confirm(question string, def bool) bool {
	p.Questions = append(p.Questions, question)
	if len(p.Confirms) == 0 {
		return def
	}
	v := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return v
}

// FakeStore is an in-memory global configuration store.
type FakeStore struct {
	// Values holds the current key/value pairs.
	Values map[string]string
	// Order preserves first-write order for GetRegexp output.
	Order []string
	// FailKeys makes Set fail for specific keys.
	FailKeys map[string]bool
}

// NewFakeStore returns an empty store.
func NewFakeStore() *FakeStore {
	return &FakeStore{Values: make(map[string]string)}
}

// Set records a key/value pair, honoring scripted failures.
func (s *FakeStore) Set(key, value string) error {
	if s.FailKeys[key] {
		return fmt.Errorf("git config --global %s: scripted failure", key)
	}
	if _, ok := s.Values[key]; !ok {
		s.Order = append(s.Order, key)
	}
	s.Values[key] = value
	return nil
}

// Get returns the stored value or an error for unset keys.
func (s *FakeStore) Get(key string) (string, error) {
	v, ok := s.Values[key]
	if !ok {
		return "", fmt.Errorf("key %s is not set", key)
	}
	return v, nil
}

// GetRegexp returns "key value" lines for keys matching the pattern, in
// first-write order, like git config --get-regexp.
func (s *FakeStore) GetRegexp(pattern string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, key := range s.Order {
		if re.MatchString(key) {
			lines = append(lines, key+" "+s.Values[key])
		}
	}
	return strings.Join(lines, "\n"), nil
}
