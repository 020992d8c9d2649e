// Package report turns command results into a format-neutral summary that
// the text and terminal renderers lay out.
package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/types"
)

// Status classifies the outcome shown in the header line
type Status string

const (
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
	StatusDryRun    Status = "dry-run"
)

// Field is one labelled line of the summary
type Field struct {
	Label string
	Value string
	// Style names the styles entry used for Value on terminals
	Style string
}

// Report is the summary of one update run
type Report struct {
	Status Status
	Title  string
	Fields []Field
	// Components lists the ids written to the feature
	Components []string
}

// FromUpdate summarizes an update result
func FromUpdate(r *types.UpdateResult) Report {
	name := filepath.Base(r.ManifestPath)
	rep := Report{Components: r.ComponentIDs}

	switch {
	case r.DryRun:
		rep.Status = StatusDryRun
		rep.Title = fmt.Sprintf("Dry run: %s was not written", name)
	case !r.Stats.Changed() && !r.ProductRotated():
		rep.Status = StatusUnchanged
		rep.Title = fmt.Sprintf("%s is up to date", name)
	default:
		rep.Status = StatusUpdated
		rep.Title = fmt.Sprintf("Updated %s", name)
	}

	rep.Fields = append(rep.Fields,
		Field{Label: "Manifest", Value: r.ManifestPath, Style: "FilePath"},
		Field{Label: "Source", Value: r.SourceRoot, Style: "FilePath"},
		Field{Label: "Install path", Value: installPath(r), Style: "Identifier"},
		Field{Label: "Components", Value: components(r)},
	)
	if r.Stats.DirectoriesCreated > 0 {
		rep.Fields = append(rep.Fields, Field{
			Label: "Directories",
			Value: fmt.Sprintf("%d created", r.Stats.DirectoriesCreated),
		})
	}
	if r.Stats.FilesExcluded > 0 || r.Stats.DirectoriesExcluded > 0 {
		rep.Fields = append(rep.Fields, Field{
			Label: "Excluded",
			Value: fmt.Sprintf("%d files, %d directories", r.Stats.FilesExcluded, r.Stats.DirectoriesExcluded),
			Style: "Muted",
		})
	}
	if r.ProductRotated() {
		rep.Fields = append(rep.Fields, Field{
			Label: "Product",
			Value: fmt.Sprintf("%s -> %s", orNone(r.PreviousProductID), r.ProductID),
			Style: "Identifier",
		})
	}
	return rep
}

func installPath(r *types.UpdateResult) string {
	path := r.Anchor
	if r.InstallPath != "" {
		path += ` \ ` + strings.Trim(r.InstallPath, `\/`)
	}
	if r.InstallDirectoryID != "" && r.InstallDirectoryID != r.Anchor {
		path += fmt.Sprintf(" (%s)", r.InstallDirectoryID)
	}
	return path
}

func components(r *types.UpdateResult) string {
	return fmt.Sprintf("%d total, %d added, %d kept, %d removed",
		len(r.ComponentIDs), r.Stats.ComponentsAdded, r.Stats.ComponentsMatched, r.Stats.ComponentsPruned)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
