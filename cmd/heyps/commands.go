package heyps

import (
	"fmt"
	"os"

	"github.com/arthur-debert/heyps/internal/version"
	"github.com/arthur-debert/heyps/pkg/discovery"
	"github.com/arthur-debert/heyps/pkg/types"
	"github.com/arthur-debert/heyps/pkg/ui"
	"github.com/arthur-debert/heyps/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		appFlag    string
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:     "list -a <app>",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := types.ParseAppID(appFlag)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd, formatFlag)
			if err != nil {
				return err
			}

			r := c.newResolver()
			candidates, err := r.Candidates(app)
			if err != nil {
				return err
			}

			log.Info().Str("app", app.Abbr()).Int("count", len(candidates)).Msg("Listing installations")

			return renderer.RenderResult(display.NewListResult(app, candidates, r.Marker(), discovery.ReadBundleVersion))
		},
	}

	cmd.Flags().StringVarP(&appFlag, "app", "a", "", MsgFlagApp)
	cmd.Flags().StringVar(&formatFlag, "format", ui.FormatAuto.String(), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("app", appCompletion)

	return cmd
}

func newResolveCmd(c *cli) *cobra.Command {
	var (
		appFlag    string
		targetFlag string
		formatFlag string
	)

	cmd := &cobra.Command{
		Use:     "resolve -a <app> [-t <target>]",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := types.ParseAppID(appFlag)
			if err != nil {
				return err
			}

			target := c.cfg.Resolve.Target
			if cmd.Flags().Changed("target") {
				target = targetFlag
			}
			sel, err := types.ParseSelector(target)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd, formatFlag)
			if err != nil {
				return err
			}

			resolved, err := c.newResolver().Resolve(app, sel)
			if err != nil {
				return err
			}

			bundleVersion, err := discovery.ReadBundleVersion(resolved.Path)
			if err != nil {
				log.Debug().Err(err).Str("path", resolved.Path).Msg("Bundle version unavailable")
			}

			return renderer.RenderResult(display.NewResolveResult(resolved, bundleVersion))
		},
	}

	cmd.Flags().StringVarP(&appFlag, "app", "a", "", MsgFlagApp)
	cmd.Flags().StringVarP(&targetFlag, "target", "t", types.TargetLatest, MsgFlagTarget)
	cmd.Flags().StringVar(&formatFlag, "format", ui.FormatAuto.String(), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("app", appCompletion)
	_ = cmd.RegisterFlagCompletionFunc("target", targetCompletion)

	return cmd
}

func newConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.cfg.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: MsgGuideShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(MsgGuide, isRichOutput(cmd)))
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionLine, version.Version)
			_, _ = fmt.Fprintf(out, MsgCommitLine, version.Commit)
			_, _ = fmt.Fprintf(out, MsgBuiltLine, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// newRenderer creates a renderer for the --format value, writing to the
// command's output
func newRenderer(cmd *cobra.Command, formatFlag string) (ui.Renderer, error) {
	format, err := ui.ParseFormat(formatFlag)
	if err != nil {
		return nil, fmt.Errorf(MsgErrFormat, err)
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// isRichOutput reports whether the command writes to a color terminal
func isRichOutput(cmd *cobra.Command) bool {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return ui.IsRich(ui.FormatAuto, file)
}
