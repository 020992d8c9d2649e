package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/wixsync/pkg/config"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/filesystem"
	"github.com/arthur-debert/wixsync/pkg/logging"
	"github.com/arthur-debert/wixsync/pkg/types"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Config is rendered as is; nil renders the defaults
	Config *config.Config
	// Format is toml or yaml
	Format string
	// Template emits the documented defaults with every value commented out
	Template bool
	// Write saves the content as a project config in TargetDir
	Write     bool
	TargetDir string

	FileSystem types.FS
}

// GenConfig renders the configuration and optionally writes it
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	defer logging.LogOperationStart(logger, "genconfig")()

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	format := opts.Format
	if format == "" || opts.Template {
		format = config.FormatTOML
	}

	var content string
	if opts.Template {
		content = config.GenerateTemplateContent()
	} else {
		var err error
		content, err = config.GenerateConfigContent(cfg, format)
		if err != nil {
			return nil, err
		}
	}

	result := &types.GenConfigResult{
		ConfigContent: content,
		Format:        format,
		FilesWritten:  []string{},
	}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Str("format", format).Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	dir := opts.TargetDir
	if dir == "" {
		dir = "."
	}
	targetPath := filepath.Join(dir, ".wixsync."+format)

	logger.Info().Bool("write", opts.Write).Str("path", targetPath).Msg("Writing config file")

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to create directory %s", dir)
	}

	// Check if file already exists
	if _, err := fsys.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		result.FilesSkipped = append(result.FilesSkipped, targetPath)
		return result, nil
	}

	if err := fsys.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
