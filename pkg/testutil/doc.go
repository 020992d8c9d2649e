// Package testutil provides utilities for testing wixsync components.
//
// Key components:
//   - WriteTree / CreateFile: declarative build output trees, in memory or on disk
//   - Manifest fixtures: minimal WiX documents with the anchor, product and feature
//   - SequentialReader: a deterministic random source for GUID allocation
//   - AssertManifestInvariants: uniqueness checks over a whole document
//
// Usage guidelines:
//   - Prefer the in-memory filesystem; use t.TempDir only when the OS is under test
//   - All test data should be defined inline, not in external files
package testutil
