// Package prompt provides the line-oriented interactive prompting used by
// every step of the setup flow. Prompts write a literal question to the
// output stream and read one line of text back; there is no TUI and no
// non-interactive mode.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter is the synchronous question/answer capability the setup steps
// depend on. The Terminal implementation talks to stdin/stdout; tests use
// a scripted fake.
type Prompter interface {
	// Ask prints the question and returns the entered line, or def when the
	// user just presses enter.
	Ask(question, def string) string
	// AskRequired re-prompts until a non-empty value is entered.
	AskRequired(question string) string
	// Confirm asks a yes/no question. Empty input takes the default.
	Confirm(question string, def bool) bool
}

// Terminal reads answers line by line from an input stream.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal builds a Terminal prompter over the given streams.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// readLine reads one line, trimming the trailing newline and surrounding
// whitespace. On EOF it returns ok=false so required prompts can stop
// re-asking instead of spinning.
func (t *Terminal) readLine() (string, bool) {
	line, err := t.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

// Ask prints "question [def]: " and returns the answer, falling back to def
// on empty input.
func (t *Terminal) Ask(question, def string) string {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", question)
	}
	line, _ := t.readLine()
	if line == "" {
		return def
	}
	return line
}

// AskRequired repeats the question until the user supplies a non-empty
// value. Input exhaustion (EOF) ends the loop with an empty string; callers
// treat that as a fatal condition.
func (t *Terminal) AskRequired(question string) string {
	for {
		fmt.Fprintf(t.out, "%s: ", question)
		line, ok := t.readLine()
		if line != "" {
			return line
		}
		if !ok {
			return ""
		}
		fmt.Fprintf(t.out, "A value is required.\n")
	}
}

// Confirm asks "question [Y/n]: " (or [y/N] when def is false) and parses
// the reply. Unrecognized input re-prompts; empty input takes the default.
func (t *Terminal) Confirm(question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(t.out, "%s %s: ", question, hint)
		line, ok := t.readLine()
		switch strings.ToLower(line) {
		case "":
			return def
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if !ok {
			return def
		}
		fmt.Fprintf(t.out, "Please answer y or n.\n")
	}
}
