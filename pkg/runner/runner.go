// Package runner runs external host utilities and captures their output.
//
// Every external process heyps starts (mdfind, open, osascript) goes through
// a Runner, so tests can substitute a fake and assert on the exact command
// that would have been spawned.
package runner

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/heyps/pkg/logging"
)

// ExitCodeUnavailable is reported when a process ended without a usable
// exit status (for example when it was killed by a signal).
const ExitCodeUnavailable = -1

// Command is a program name plus its arguments
type Command struct {
	Name string
	Args []string
}

// String renders the command for logs and --dry-run output
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'\\") {
			arg = "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Result holds the captured output of a finished process
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status zero
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner runs a command to completion.
// A non-zero exit status is reported through Result.ExitCode, not as an
// error; the error return is reserved for processes that could not be run.
type Runner interface {
	Run(cmd Command) (*Result, error)
}

// ExecRunner runs commands on the host with os/exec
type ExecRunner struct{}

// NewExecRunner returns a Runner backed by os/exec
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes cmd, blocking until it exits
func (r *ExecRunner) Run(cmd Command) (*Result, error) {
	logging.LogCommand(cmd.Name, cmd.Args)

	var stdout, stderr bytes.Buffer
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	if c.ProcessState != nil {
		result.ExitCode = c.ProcessState.ExitCode()
	} else {
		result.ExitCode = ExitCodeUnavailable
	}
	return result, nil
}
