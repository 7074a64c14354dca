// Package dispatcher hands a script file to a resolved Adobe application.
//
// Each dispatch validates the script kind against the target application,
// builds exactly one host command and runs it:
//
//   - .psjs files are opened with `open -a <bundle path> <script>`, which
//     Photoshop treats as a request to play the script.
//   - .jsx and .js files are sent through the AppleScript bridge with
//     `osascript -e 'tell application "<name>" to ...'`.
//
// Nothing is retried and no state is kept between calls.
package dispatcher

import (
	"strings"

	"github.com/arthur-debert/heyps/pkg/errors"
	"github.com/arthur-debert/heyps/pkg/logging"
	"github.com/arthur-debert/heyps/pkg/runner"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/rs/zerolog"
)

// Default host utilities
const (
	DefaultOpen      = "open"
	DefaultOsascript = "osascript"
)

// Options configures a Dispatcher. Empty fields use the defaults.
type Options struct {
	// Open is the launch services utility used for .psjs scripts
	Open string

	// Osascript is the AppleScript runner used for .jsx and .js scripts
	Osascript string

	// Logger receives diagnostics. Defaults to the "dispatcher" component logger.
	Logger *zerolog.Logger
}

// Dispatcher runs scripts inside resolved applications
type Dispatcher struct {
	runner    runner.Runner
	open      string
	osascript string
	logger    zerolog.Logger
}

// New creates a Dispatcher that spawns commands through r
func New(r runner.Runner, opts Options) *Dispatcher {
	d := &Dispatcher{
		runner:    r,
		open:      opts.Open,
		osascript: opts.Osascript,
	}
	if d.open == "" {
		d.open = DefaultOpen
	}
	if d.osascript == "" {
		d.osascript = DefaultOsascript
	}
	if opts.Logger != nil {
		d.logger = *opts.Logger
	} else {
		d.logger = logging.GetLogger("dispatcher")
	}
	return d
}

// Plan validates req and returns the command Dispatch would run.
// No process is started.
func (d *Dispatcher) Plan(req types.DispatchRequest) (runner.Command, error) {
	if req.App == nil {
		return runner.Command{}, errors.New(errors.ErrInternal, "dispatch request has no resolved application")
	}

	if err := CheckCompatibility(req.App.App, req.Kind); err != nil {
		return runner.Command{}, err
	}

	switch req.Kind {
	case types.ScriptPlayback:
		return runner.Command{
			Name: d.open,
			Args: []string{"-a", req.App.Path, req.Path},
		}, nil
	case types.ScriptExtendScript, types.ScriptPlain:
		return runner.Command{
			Name: d.osascript,
			Args: []string{"-e", AppleScript(req.App, req.Path)},
		}, nil
	default:
		return runner.Command{}, errors.Newf(errors.ErrInternal, "unknown script kind %d", int(req.Kind))
	}
}

// Dispatch runs the script described by req in its target application.
// A non-zero exit status from the host utility is reported as
// ErrDispatchFailed carrying the exit code and captured error output.
func (d *Dispatcher) Dispatch(req types.DispatchRequest) error {
	cmd, err := d.Plan(req)
	if err != nil {
		return err
	}

	d.logger.Info().
		Str("app", req.App.Name).
		Str("script", req.Path).
		Str("kind", req.Kind.String()).
		Str("via", cmd.Name).
		Msg("Dispatching script")

	result, err := d.runner.Run(cmd)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDispatchFailed,
			"failed to run %s (exit code %d)", cmd.Name, runner.ExitCodeUnavailable).
			WithDetail("command", cmd.Name).
			WithDetail("exit_code", runner.ExitCodeUnavailable)
	}

	if req.Verbose {
		logging.LogOutput(d.logger, "stdout", result.Stdout)
		logging.LogOutput(d.logger, "stderr", result.Stderr)
	}

	if !result.Success() {
		return errors.Newf(errors.ErrDispatchFailed,
			"%s exited with code %d: %s", cmd.Name, result.ExitCode, failureText(result)).
			WithDetail("command", cmd.Name).
			WithDetail("exit_code", result.ExitCode).
			WithDetail("stderr", result.Stderr)
	}

	d.logger.Debug().Str("script", req.Path).Msg("Script dispatched")
	return nil
}

// failureText picks the most useful captured output for an error message
func failureText(result *runner.Result) string {
	if text := strings.TrimSpace(result.Stderr); text != "" {
		return text
	}
	if text := strings.TrimSpace(result.Stdout); text != "" {
		return text
	}
	return "no error output"
}

// CheckCompatibility rejects script kinds the target application cannot run.
// .psjs is Photoshop only; After Effects needs .jsx instead of .js.
func CheckCompatibility(app types.AppID, kind types.ScriptKind) error {
	switch kind {
	case types.ScriptPlayback:
		if app != types.AppPhotoshop {
			return errors.Newf(errors.ErrIncompatibleScript,
				"%s scripts can only run in %s, not %s",
				types.ExtPlayback, types.AppPhotoshop.BaseName(), app.BaseName()).
				WithDetail("app", app.Abbr()).
				WithDetail("kind", kind.String())
		}
	case types.ScriptPlain:
		if app == types.AppAfterEffects {
			return errors.Newf(errors.ErrIncompatibleScript,
				"%s does not run %s scripts, use %s instead",
				app.BaseName(), types.ExtPlain, types.ExtExtendScript).
				WithDetail("app", app.Abbr()).
				WithDetail("kind", kind.String())
		}
	case types.ScriptExtendScript:
	default:
		return errors.Newf(errors.ErrInternal, "unknown script kind %d", int(kind))
	}
	return nil
}
