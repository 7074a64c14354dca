// Package heyps implements the heyps command line interface.
package heyps

import (
	"fmt"

	"github.com/arthur-debert/heyps/internal/version"
	"github.com/arthur-debert/heyps/pkg/config"
	"github.com/arthur-debert/heyps/pkg/discovery"
	"github.com/arthur-debert/heyps/pkg/dispatcher"
	"github.com/arthur-debert/heyps/pkg/logging"
	"github.com/arthur-debert/heyps/pkg/paths"
	"github.com/arthur-debert/heyps/pkg/resolver"
	"github.com/arthur-debert/heyps/pkg/runner"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// deps are the process-level collaborators of the CLI
type deps struct {
	runner runner.Runner
	paths  func() *paths.Paths
}

// cli carries state shared by the root command and its subcommands
type cli struct {
	deps      deps
	verbosity int
	paths     *paths.Paths
	cfg       *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(deps{
		runner: runner.NewExecRunner(),
		paths:  paths.Default,
	})
}

func newRootCmd(d deps) *cobra.Command {
	initTemplateFormatting()

	c := &cli{deps: d}

	var (
		appFlag    string
		targetFlag string
		scriptFlag string
		dryRun     bool
	)

	rootCmd := &cobra.Command{
		Use:     "heyps -a <app> -e <script> [-t <target>]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if appFlag == "" && scriptFlag == "" {
				return fmt.Errorf(MsgErrNothingToRun)
			}

			target := c.cfg.Resolve.Target
			if cmd.Flags().Changed("target") {
				target = targetFlag
			}

			return c.run(cmd, appFlag, target, scriptFlag, dryRun)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&c.verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.Flags().StringVarP(&appFlag, "app", "a", "", MsgFlagApp)
	rootCmd.Flags().StringVarP(&targetFlag, "target", "t", types.TargetLatest, MsgFlagTarget)
	rootCmd.Flags().StringVarP(&scriptFlag, "execute", "e", "", MsgFlagExecute)
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	_ = rootCmd.RegisterFlagCompletionFunc("app", appCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("target", targetCompletion)
	_ = rootCmd.MarkFlagFilename("execute", "psjs", "jsx", "js")

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(c))
	rootCmd.AddCommand(newResolveCmd(c))
	rootCmd.AddCommand(newConfigCmd(c))
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup loads the configuration and configures logging
func (c *cli) setup(cmd *cobra.Command) error {
	c.paths = c.deps.paths()

	cfg, err := config.Load(c.paths)
	if err != nil {
		// Log to the console only; the config decides about the file
		logging.SetupLogger(c.verbosity, "")
		return err
	}
	c.cfg = cfg

	logFile := ""
	if cfg.Log.File {
		logFile = c.paths.LogFilePath()
	}
	logging.SetupLogger(c.verbosity, logFile)

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

// run resolves app and target and dispatches the script.
// Input is validated in order: app, target, script, before any process runs.
func (c *cli) run(cmd *cobra.Command, appName, target, script string, dryRun bool) error {
	app, err := types.ParseAppID(appName)
	if err != nil {
		return err
	}

	sel, err := types.ParseSelector(target)
	if err != nil {
		return err
	}

	scriptPath, err := paths.ResolveScript(script, c.cfg.Scripts.Dir)
	if err != nil {
		return err
	}
	if _, err := types.ParseScriptKind(scriptPath); err != nil {
		return err
	}

	resolved, err := c.newResolver().Resolve(app, sel)
	if err != nil {
		return err
	}

	req, err := types.NewDispatchRequest(resolved, scriptPath, c.verbosity > 0)
	if err != nil {
		return err
	}

	d := c.newDispatcher()

	if dryRun {
		planned, err := d.Plan(req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), planned.String())
		return err
	}

	if err := d.Dispatch(req); err != nil {
		return err
	}

	log.Info().Msgf(MsgScriptSent, scriptPath, resolved.Name)
	return nil
}

func (c *cli) newResolver() *resolver.Resolver {
	finder := discovery.NewSpotlight(c.deps.runner, c.cfg.Commands.Mdfind)
	return resolver.New(finder, c.cfg.Resolve.Prerelease)
}

func (c *cli) newDispatcher() *dispatcher.Dispatcher {
	return dispatcher.New(c.deps.runner, dispatcher.Options{
		Open:      c.cfg.Commands.Open,
		Osascript: c.cfg.Commands.Osascript,
	})
}

// appCompletion completes the -a flag
func appCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, app := range types.AllApps() {
		names = append(names, fmt.Sprintf("%s\t%s", app.Abbr(), app.BaseName()))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// targetCompletion completes the -t flag with the named targets
func targetCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{types.TargetLatest, types.TargetBeta}, cobra.ShellCompDirectiveNoFileComp
}
