package report

import (
	"testing"

	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func field(r Report, label string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

func TestFromUpdate(t *testing.T) {
	base := types.UpdateResult{
		ManifestPath:       "/work/product.wxs",
		SourceRoot:         "/work/root",
		InstallPath:        "MyApp",
		Anchor:             "ProgramFilesFolder",
		InstallDirectoryID: "MYAPP",
		ComponentIDs:       []string{"A", "B"},
		Written:            true,
	}

	t.Run("updated", func(t *testing.T) {
		r := base
		r.Stats = types.SyncStats{ComponentsAdded: 2, DirectoriesCreated: 1}
		rep := FromUpdate(&r)

		assert.Equal(t, StatusUpdated, rep.Status)
		assert.Equal(t, "Updated product.wxs", rep.Title)
		f, _ := field(rep, "Components")
		assert.Equal(t, "2 total, 2 added, 0 kept, 0 removed", f.Value)
		f, _ = field(rep, "Install path")
		assert.Equal(t, `ProgramFilesFolder \ MyApp (MYAPP)`, f.Value)
		_, ok := field(rep, "Directories")
		assert.True(t, ok)
		_, ok = field(rep, "Product")
		assert.False(t, ok)
	})

	t.Run("unchanged", func(t *testing.T) {
		r := base
		r.Stats = types.SyncStats{ComponentsMatched: 2}
		rep := FromUpdate(&r)
		assert.Equal(t, StatusUnchanged, rep.Status)
		assert.Equal(t, "product.wxs is up to date", rep.Title)
		_, ok := field(rep, "Excluded")
		assert.False(t, ok)
	})

	t.Run("dry run with rotation and exclusions", func(t *testing.T) {
		r := base
		r.DryRun = true
		r.Written = false
		r.PreviousProductID = "old"
		r.ProductID = "new"
		r.Stats = types.SyncStats{FilesExcluded: 3, DirectoriesExcluded: 1}
		rep := FromUpdate(&r)

		assert.Equal(t, StatusDryRun, rep.Status)
		f, ok := field(rep, "Product")
		assert.True(t, ok)
		assert.Equal(t, "old -> new", f.Value)
		f, _ = field(rep, "Excluded")
		assert.Equal(t, "3 files, 1 directories", f.Value)
	})

	t.Run("rotation alone counts as a change", func(t *testing.T) {
		r := base
		r.PreviousProductID = ""
		r.ProductID = "new"
		rep := FromUpdate(&r)
		assert.Equal(t, StatusUpdated, rep.Status)
		f, _ := field(rep, "Product")
		assert.Equal(t, "(none) -> new", f.Value)
	})
}
