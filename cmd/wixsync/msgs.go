package wixsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Synchronize a WiX manifest with a build output directory"
	MsgGenConfigShort  = "Print the effective configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigFilesLoaded = "Loaded configuration files"
	MsgConfigExists      = "Kept existing %s"

	// Error messages
	MsgErrNoArguments      = "no arguments given, expected <manifest-path> <source-root> <install-path>"
	MsgErrMissingArguments = "expected at least 3 arguments (<manifest-path> <source-root> <install-path>), got %d"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun         = "Reconcile in memory without saving the manifest"
	MsgFlagConfig         = "Read configuration from this file as well (toml or yaml)"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagReplaceProduct = "Give the Product a new Id"
	MsgFlagAnchor         = "Id of the Directory the install path is created under"
	MsgFlagFeature        = "Id of the Feature to rewrite (default: the first Feature)"
	MsgFlagExclude        = "Skip source files and directories matching this glob (repeatable)"
	MsgFlagGenFormat      = "Config format: toml or yaml"
	MsgFlagTemplate       = "Print the commented defaults instead of the effective values"
	MsgFlagWrite          = "Write .wixsync.<format> in the current directory"

	// Version
	MsgVersionTemplate = "wixsync version {{.Version}}\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/help-template.txt
	msgHelpTemplateRaw string
	MsgHelpTemplate    = strings.TrimSpace(msgHelpTemplateRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
