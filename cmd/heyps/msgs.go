package heyps

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Run scripts inside installed Adobe applications"
	MsgListShort       = "List installed versions of an application"
	MsgResolveShort    = "Show which installed version a target picks"
	MsgConfigShort     = "Print the effective configuration"
	MsgGuideShort      = "Show the usage guide"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagApp     = "Application to target: ps, ai or ae"
	MsgFlagTarget  = "Version to target: latest, beta or a release year such as 2024 (default from config)"
	MsgFlagExecute = "Script file to run (.psjs, .jsx or .js)"
	MsgFlagVerbose = "Increase verbosity and show script output (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Print the command instead of running it"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"

	// Status messages
	MsgScriptSent  = "Sent %s to %s"
	MsgVersionLine = "heyps version %s\n"
	MsgCommitLine  = "  commit: %s\n"
	MsgBuiltLine   = "  built:  %s\n"

	// Error messages
	MsgErrNothingToRun = "nothing to run: use -a <app> -e <script>, or see heyps --help"
	MsgErrFormat       = "invalid --format: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/guide.md
	MsgGuide string
)
