package testutil

import (
	"testing"

	"github.com/arthur-debert/wixsync/pkg/manifest"
)

// AssertManifestInvariants checks that component Ids and Guids are
// pairwise distinct and that every Guid is set.
func AssertManifestInvariants(t *testing.T, doc *manifest.Document) {
	t.Helper()

	seenIDs := map[string]bool{}
	seenGUIDs := map[string]bool{}
	for _, c := range doc.Components() {
		if seenIDs[c.ID()] {
			t.Errorf("Duplicate component Id %q", c.ID())
		}
		seenIDs[c.ID()] = true

		guid := c.GUID()
		if guid == "" || guid == "00000000-0000-0000-0000-000000000000" {
			t.Errorf("Component %q has no Guid", c.ID())
		}
		if seenGUIDs[guid] {
			t.Errorf("Duplicate component Guid %q", guid)
		}
		seenGUIDs[guid] = true
	}
}
