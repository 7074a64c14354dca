package testutil

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/heyps/pkg/runner"
	"github.com/stretchr/testify/mock"
)

// MockRunner is a testify mock of runner.Runner.
// Use it when a test needs to prove that no process was spawned
// (AssertNotCalled) or to match exact arguments.
type MockRunner struct {
	mock.Mock
}

// Run records the call and returns the configured result
func (m *MockRunner) Run(cmd runner.Command) (*runner.Result, error) {
	args := m.Called(cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*runner.Result), args.Error(1)
}

// FakeRunner returns canned results keyed by program name and records
// every command it receives.
type FakeRunner struct {
	Results map[string]*runner.Result
	Errors  map[string]error
	Calls   []runner.Command
}

// NewFakeRunner creates an empty FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Results: make(map[string]*runner.Result),
		Errors:  make(map[string]error),
	}
}

// On sets the result returned for commands named name
func (f *FakeRunner) On(name string, result *runner.Result) *FakeRunner {
	f.Results[name] = result
	return f
}

// Fail makes commands named name fail to start with err
func (f *FakeRunner) Fail(name string, err error) *FakeRunner {
	f.Errors[name] = err
	return f
}

// Run implements runner.Runner
func (f *FakeRunner) Run(cmd runner.Command) (*runner.Result, error) {
	f.Calls = append(f.Calls, cmd)
	if err, ok := f.Errors[cmd.Name]; ok {
		return nil, err
	}
	if result, ok := f.Results[cmd.Name]; ok {
		return result, nil
	}
	return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", cmd.Name)
}

// Called returns the commands named name, in call order
func (f *FakeRunner) Called(name string) []runner.Command {
	var calls []runner.Command
	for _, c := range f.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// MdfindOutput builds the newline separated output mdfind prints for paths
func MdfindOutput(paths ...string) *runner.Result {
	out := strings.Join(paths, "\n")
	if out != "" {
		out += "\n"
	}
	return &runner.Result{Stdout: out}
}
