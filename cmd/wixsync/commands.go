package wixsync

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/wixsync/internal/version"
	"github.com/arthur-debert/wixsync/pkg/commands/genconfig"
	"github.com/arthur-debert/wixsync/pkg/commands/update"
	"github.com/arthur-debert/wixsync/pkg/config"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/logging"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/arthur-debert/wixsync/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flag values of the update run
type rootOptions struct {
	dryRun         bool
	format         string
	replaceProduct bool
	anchor         string
	feature        string
	exclude        []string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		opts       rootOptions
	)

	rootCmd := &cobra.Command{
		Use:     "wixsync <manifest-path> <source-root> <install-path> [known-id...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    positionalArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, configFile, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Update flags
	flags := rootCmd.Flags()
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.replaceProduct, "replace-product", false, MsgFlagReplaceProduct)
	flags.StringVar(&opts.anchor, "anchor", "", MsgFlagAnchor)
	flags.StringVar(&opts.feature, "feature", "", MsgFlagFeature)
	flags.StringArrayVar(&opts.exclude, "exclude", nil, MsgFlagExclude)

	rootCmd.SetVersionTemplate(MsgVersionTemplate)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetHelpTemplate(MsgHelpTemplate)

	rootCmd.AddCommand(newGenConfigCmd(&configFile))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func runUpdate(cmd *cobra.Command, args []string, configFile string, opts rootOptions) error {
	format, err := ui.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	result, err := updateManifest(cmd, args, configFile, opts)
	if err != nil {
		// Machine readers get the failure on stdout as well
		if format == ui.FormatJSON {
			if renderErr := renderer.RenderError(err); renderErr != nil {
				log.Warn().Err(renderErr).Msg("Failed to render error")
			}
		}
		return err
	}

	return renderer.RenderResult(result)
}

func updateManifest(cmd *cobra.Command, args []string, configFile string, opts rootOptions) (*types.UpdateResult, error) {
	manifestPath, err := filepath.Abs(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid manifest path %s", args[0])
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("anchor") {
		overrides["manifest.anchor"] = opts.anchor
	}
	if cmd.Flags().Changed("feature") {
		overrides["manifest.feature"] = opts.feature
	}

	cfg, err := config.Load(config.LoadOptions{
		ManifestDir: filepath.Dir(manifestPath),
		File:        configFile,
		Overrides:   overrides,
		Exclude:     opts.exclude,
	})
	if err != nil {
		return nil, err
	}
	if len(cfg.Files) > 0 {
		log.Debug().Strs("files", cfg.Files).Msg(MsgConfigFilesLoaded)
	}

	return update.Update(update.UpdateOptions{
		ManifestPath:   manifestPath,
		SourceRoot:     args[1],
		InstallPath:    args[2],
		ReplaceProduct: opts.replaceProduct,
		KnownIDs:       args[3:],
		DryRun:         opts.dryRun,
		Config:         cfg,
	})
}

func newGenConfigCmd(configFile *string) *cobra.Command {
	var (
		format   string
		template bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ManifestDir: ".",
				File:        *configFile,
			})
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Config:   cfg,
				Format:   format,
				Template: template,
				Write:    write,
			})
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(ui.FormatText, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := renderer.RenderResult(result); err != nil {
				return err
			}
			for _, path := range result.FilesSkipped {
				if err := renderer.RenderMessage(fmt.Sprintf(MsgConfigExists, path)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", config.FormatTOML, MsgFlagGenFormat)
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(cmd.OutOrStdout(), true)
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
