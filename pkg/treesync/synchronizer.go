package treesync

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/ids"
	"github.com/arthur-debert/wixsync/pkg/logging"
	"github.com/arthur-debert/wixsync/pkg/manifest"
	"github.com/arthur-debert/wixsync/pkg/paths"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Defaults applied when Options leaves a field empty
const (
	DefaultDiskID          = "1"
	DefaultComponentSuffix = "Component"
)

// Options configures a Synchronizer.
type Options struct {
	// ManifestDir is the directory sources are made relative to.
	ManifestDir string
	// SourceRoot is the top of the walk; exclusion patterns are matched
	// against paths relative to it.
	SourceRoot string
	// DiskID is written on new components.
	DiskID string
	// ComponentSuffix ends every generated component id.
	ComponentSuffix string
	// Exclude lists doublestar patterns. A pattern without a slash also
	// matches the base name at any depth.
	Exclude []string
}

// Synchronizer walks a directory tree and mirrors it into a manifest subtree.
type Synchronizer struct {
	fs     types.FS
	guids  *ids.GUIDAllocator
	opts   Options
	logger zerolog.Logger
	stats  types.SyncStats

	// claimed holds the Guids of components matched this run
	claimed map[uuid.UUID]bool
}

// New creates a Synchronizer. Invalid exclusion patterns are rejected.
func New(fsys types.FS, guids *ids.GUIDAllocator, opts Options) (*Synchronizer, error) {
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid exclude pattern %q", pattern)
		}
	}
	if opts.DiskID == "" {
		opts.DiskID = DefaultDiskID
	}
	if opts.ComponentSuffix == "" {
		opts.ComponentSuffix = DefaultComponentSuffix
	}
	if guids == nil {
		guids = ids.NewGUIDAllocator(nil)
	}
	return &Synchronizer{
		fs:      fsys,
		guids:   guids,
		opts:    opts,
		logger:  logging.GetLogger("treesync"),
		claimed: make(map[uuid.UUID]bool),
	}, nil
}

// Stats returns the counters accumulated so far.
func (s *Synchronizer) Stats() types.SyncStats {
	return s.stats
}

// Sync reconciles node with dir and recurses into subdirectories.
func (s *Synchronizer) Sync(node manifest.Directory, dir string, pools *Pools) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDirRead, "failed to read directory %s", dir).
			WithDetail("path", dir)
	}
	s.stats.DirectoriesVisited++

	logger := s.logger.With().Str("dir", dir).Str("node", node.ID()).Logger()
	logger.Debug().Int("entries", len(entries)).Msg("Synchronizing directory")

	scope := filepath.Base(dir)
	existing := node.Components()
	kept := make(map[manifest.Component]bool, len(existing))
	var subdirs []fs.DirEntry

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if s.excluded(full) {
			if entry.IsDir() {
				s.stats.DirectoriesExcluded++
			} else {
				s.stats.FilesExcluded++
			}
			logger.Trace().Str("path", full).Msg("Excluded")
			continue
		}
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}

		source, err := paths.RelativePath(s.opts.ManifestDir, full)
		if err != nil {
			return err
		}

		if c, ok := findComponent(existing, source, kept); ok {
			claimed, err := s.claim(c, pools)
			if err != nil {
				return err
			}
			if claimed {
				kept[c] = true
				s.stats.ComponentsMatched++
				logger.Trace().Str("component", c.ID()).Str("source", source).Msg("Matched component")
				continue
			}
			logger.Warn().Str("component", c.ID()).Str("guid", c.GUID()).
				Msg("Component duplicates an Id or Guid already in use, replacing it")
		}

		c, err := s.addComponent(node, scope, entry.Name(), source, pools)
		if err != nil {
			return err
		}
		kept[c] = true
		s.stats.ComponentsAdded++
		logger.Debug().
			Str("component", c.ID()).
			Str("guid", c.GUID()).
			Str("source", source).
			Msg("Added component")
	}

	for _, c := range existing {
		if kept[c] {
			continue
		}
		node.RemoveComponent(c)
		s.stats.ComponentsPruned++
		logger.Debug().Str("component", c.ID()).Msg("Pruned component")
	}

	for _, sub := range subdirs {
		child, ok := node.FindDirectory(sub.Name())
		if !ok {
			id := ids.DirectoryID(sub.Name())
			child = node.AddDirectory(id, sub.Name())
			if err := pools.IDs.Add(id); err != nil {
				return err
			}
			s.stats.DirectoriesCreated++
			logger.Debug().Str("directory", id).Str("name", sub.Name()).Msg("Added directory")
		}
		if err := s.Sync(child, filepath.Join(dir, sub.Name()), pools); err != nil {
			return err
		}
	}

	return nil
}

func (s *Synchronizer) addComponent(node manifest.Directory, scope, name, source string, pools *Pools) (manifest.Component, error) {
	id, err := ids.GenerateScopedID(pools.IDs, scope, name+s.opts.ComponentSuffix)
	if err != nil {
		return manifest.Component{}, err
	}
	guid, err := s.guids.Generate(pools.GUIDs)
	if err != nil {
		return manifest.Component{}, err
	}
	if err := pools.Components.Add(id); err != nil {
		return manifest.Component{}, err
	}

	c := node.AddComponent(id, ids.FormatGUID(guid), s.opts.DiskID)
	c.AddFile(strings.ToUpper(name), name, source)
	return c, nil
}

// claim registers a matched component in the closed set and the id pool.
// It refuses components whose Id was already produced this run or whose
// Guid is nil or held by another matched component, so duplicates copied
// around by hand get replaced instead of kept.
func (s *Synchronizer) claim(c manifest.Component, pools *Pools) (bool, error) {
	id := c.ID()
	taken, err := pools.Components.Has(id)
	if err != nil || taken {
		return false, err
	}
	if guid, err := ids.ParseGUID(c.GUID()); err == nil {
		if guid == uuid.Nil || s.claimed[guid] {
			return false, nil
		}
		s.claimed[guid] = true
	}
	if err := pools.IDs.Add(id); err != nil {
		return false, err
	}
	if err := pools.Components.Add(id); err != nil {
		return false, err
	}
	return true, nil
}

// findComponent returns the first component not yet claimed whose single
// file points at source. Components without an Id never match.
func findComponent(components []manifest.Component, source string, claimed map[manifest.Component]bool) (manifest.Component, bool) {
	for _, c := range components {
		if claimed[c] || c.ID() == "" {
			continue
		}
		file, ok := c.SingleFile()
		if ok && paths.SameSource(file.Source(), source) {
			return c, true
		}
	}
	return manifest.Component{}, false
}

func (s *Synchronizer) excluded(full string) bool {
	if len(s.opts.Exclude) == 0 || s.opts.SourceRoot == "" {
		return false
	}
	rel, err := filepath.Rel(s.opts.SourceRoot, full)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(full)
	for _, pattern := range s.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
		}
	}
	return false
}
