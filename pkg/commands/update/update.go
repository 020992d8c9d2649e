package update

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/config"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/filesystem"
	"github.com/arthur-debert/wixsync/pkg/ids"
	"github.com/arthur-debert/wixsync/pkg/logging"
	"github.com/arthur-debert/wixsync/pkg/manifest"
	"github.com/arthur-debert/wixsync/pkg/treesync"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UpdateOptions holds options for the update command
type UpdateOptions struct {
	// ManifestPath is the .wxs file to rewrite
	ManifestPath string
	// SourceRoot is the directory whose contents the manifest must mirror
	SourceRoot string
	// InstallPath is the chain of folder names under the anchor, split on
	// Config.Install.Separator
	InstallPath string
	// ReplaceProduct rotates the Product Id
	ReplaceProduct bool
	// KnownIDs are component ids referenced elsewhere that must not be reused
	KnownIDs []string
	// DryRun reconciles in memory without saving
	DryRun bool

	// FileSystem defaults to the OS filesystem
	FileSystem types.FS
	// Config defaults to config.Default()
	Config *config.Config
	// GUIDs defaults to an allocator reading crypto/rand
	GUIDs *ids.GUIDAllocator
}

// Update synchronizes the manifest with the source tree and saves it
func Update(opts UpdateOptions) (*types.UpdateResult, error) {
	logger := logging.GetLogger("commands.update")

	result, err := update(opts, logger)
	logUpdate(logger, opts, result, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func update(opts UpdateOptions, logger zerolog.Logger) (*types.UpdateResult, error) {
	if opts.ManifestPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "manifest path is required")
	}
	if opts.SourceRoot == "" {
		return nil, errors.New(errors.ErrInvalidInput, "source root is required")
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	guids := opts.GUIDs
	if guids == nil {
		guids = ids.NewGUIDAllocator(nil)
	}

	manifestPath, err := filepath.Abs(opts.ManifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid manifest path %s", opts.ManifestPath)
	}
	sourceRoot, err := filepath.Abs(opts.SourceRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid source root %s", opts.SourceRoot)
	}

	logger.Info().
		Str("manifest", manifestPath).
		Str("install_path", opts.InstallPath).
		Str("source", sourceRoot).
		Msg("Updating manifest")

	doc, err := manifest.Load(fsys, manifestPath)
	if err != nil {
		return nil, err
	}

	result := &types.UpdateResult{
		ManifestPath: manifestPath,
		SourceRoot:   sourceRoot,
		InstallPath:  opts.InstallPath,
		Anchor:       cfg.Manifest.Anchor,
		DryRun:       opts.DryRun,
	}

	pools := treesync.NewPools()
	if err := seedPools(doc, pools, logger); err != nil {
		return nil, err
	}

	anchor, err := findAnchor(doc, cfg.Manifest.Anchor, logger)
	if err != nil {
		return nil, err
	}

	if product, ok := doc.Product(); ok {
		result.PreviousProductID = product.ID()
		result.ProductID = product.ID()
	}
	if opts.ReplaceProduct {
		productID, err := rotateProduct(doc, guids, pools)
		if err != nil {
			return nil, err
		}
		result.ProductID = productID
		logger.Info().
			Str("previous", result.PreviousProductID).
			Str("product", productID).
			Msg("Replaced product id")
	}

	target, created, err := walkInstallPath(anchor, opts.InstallPath, cfg.Install.Separator, pools)
	if err != nil {
		return nil, err
	}
	result.InstallDirectoryID = target.ID()

	for _, id := range opts.KnownIDs {
		if err := pools.IDs.Add(id); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid known id %q", id)
		}
	}

	synchronizer, err := treesync.New(fsys, guids, treesync.Options{
		ManifestDir:     doc.Dir(),
		SourceRoot:      sourceRoot,
		DiskID:          cfg.Component.DiskID,
		ComponentSuffix: cfg.Component.Suffix,
		Exclude:         cfg.Scan.Exclude,
	})
	if err != nil {
		return nil, err
	}
	if err := synchronizer.Sync(target, sourceRoot, pools); err != nil {
		return nil, err
	}
	result.Stats = synchronizer.Stats()
	result.Stats.DirectoriesCreated += created

	feature, ok := doc.Feature(cfg.Manifest.Feature)
	if !ok {
		return nil, featureNotFound(cfg.Manifest.Feature)
	}
	feature.Clear()
	result.ComponentIDs = pools.Components.Items()
	for _, id := range result.ComponentIDs {
		feature.AddComponentRef(id)
	}

	if opts.DryRun {
		logger.Info().Str("manifest", manifestPath).Msg("Dry run, manifest not saved")
		return result, nil
	}
	if err := doc.Save(fsys, cfg.Manifest.Indent); err != nil {
		return nil, err
	}
	result.Written = true

	logger.Info().
		Str("manifest", manifestPath).
		Str("install_path", opts.InstallPath).
		Str("source", sourceRoot).
		Msg("Done updating manifest")
	return result, nil
}

// seedPools registers every component Id and Guid of the document. Guid
// values that are not GUIDs, such as the "*" auto marker, are skipped.
func seedPools(doc *manifest.Document, pools *treesync.Pools, logger zerolog.Logger) error {
	for _, c := range doc.Components() {
		if id := c.ID(); id != "" {
			if err := pools.IDs.Add(id); err != nil {
				return err
			}
		}
		if !c.HasGUID() {
			continue
		}
		guid, err := ids.ParseGUID(c.GUID())
		if err != nil || guid == uuid.Nil {
			logger.Debug().
				Str("component", c.ID()).
				Str("guid", c.GUID()).
				Msg("Ignoring component Guid that is not a usable GUID")
			continue
		}
		if err := pools.GUIDs.Add(guid); err != nil {
			return err
		}
	}
	return nil
}

func findAnchor(doc *manifest.Document, id string, logger zerolog.Logger) (manifest.Directory, error) {
	matches := doc.DirectoriesByID(id)
	if len(matches) == 0 {
		return manifest.Directory{}, errors.Newf(errors.ErrNotFound, "no Directory with Id %q in manifest", id).
			WithDetail("anchor", id)
	}
	if len(matches) > 1 {
		logger.Warn().
			Str("anchor", id).
			Int("matches", len(matches)).
			Msg("Several directories share the anchor id, using the first")
	}
	return matches[0], nil
}

// rotateProduct gives the product a fresh Id that no component holds. The
// old Id joins the pool so it cannot come back.
func rotateProduct(doc *manifest.Document, guids *ids.GUIDAllocator, pools *treesync.Pools) (string, error) {
	product, ok := doc.Product()
	if !ok {
		return "", errors.New(errors.ErrNotFound, "no Product in manifest")
	}
	if previous, err := ids.ParseGUID(product.ID()); err == nil && previous != uuid.Nil {
		if err := pools.GUIDs.Add(previous); err != nil {
			return "", err
		}
	}
	guid, err := guids.Generate(pools.GUIDs)
	if err != nil {
		return "", err
	}
	productID := ids.FormatGUID(guid)
	product.SetID(productID)
	return productID, nil
}

// walkInstallPath finds or creates one directory per segment of installPath
// below anchor and returns the last one with the number created.
func walkInstallPath(anchor manifest.Directory, installPath, separator string, pools *treesync.Pools) (manifest.Directory, int, error) {
	node := anchor
	created := 0
	for _, segment := range strings.Split(installPath, separator) {
		if segment == "" {
			continue
		}
		child, ok := node.FindDirectory(segment)
		if !ok {
			id := ids.DirectoryID(segment)
			child = node.AddDirectory(id, segment)
			if err := pools.IDs.Add(id); err != nil {
				return manifest.Directory{}, 0, err
			}
			created++
		}
		node = child
	}
	return node, created, nil
}

func featureNotFound(id string) error {
	if id == "" {
		return errors.New(errors.ErrNotFound, "no Feature in manifest")
	}
	return errors.Newf(errors.ErrNotFound, "no Feature with Id %q in manifest", id).
		WithDetail("feature", id)
}

// logUpdate logs the update command execution
func logUpdate(logger zerolog.Logger, opts UpdateOptions, result *types.UpdateResult, err error) {
	event := logger.Info()
	if err != nil {
		event = logger.Error().Err(err)
	}

	event.
		Str("command", "update").
		Str("manifest", opts.ManifestPath).
		Str("source", opts.SourceRoot).
		Bool("dry_run", opts.DryRun)

	if result != nil {
		event.
			Int("components", len(result.ComponentIDs)).
			Int("added", result.Stats.ComponentsAdded).
			Int("pruned", result.Stats.ComponentsPruned).
			Bool("product_rotated", result.ProductRotated()).
			Bool("written", result.Written)
	}

	if err != nil {
		event.Msg("Update command failed")
	} else {
		event.Msg("Update command completed")
	}
}
