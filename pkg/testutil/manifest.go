package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/manifest"
	"github.com/arthur-debert/wixsync/pkg/types"
)

// WixNamespace is the WiX v3 source namespace
const WixNamespace = "http://schemas.microsoft.com/wix/2006/wi"

// EmptyManifest has the anchor directory, a product and an empty feature.
const EmptyManifest = `<?xml version="1.0" encoding="utf-8"?>
<Wix xmlns="http://schemas.microsoft.com/wix/2006/wi">
  <Product Id="6f1c9a3b-2d4e-4f50-8a1b-9c0d1e2f3a4b" Name="MyApp" Language="1033" Version="1.0.0.0" Manufacturer="Example">
    <Package InstallerVersion="200" Compressed="yes"/>
    <Media Id="1" Cabinet="product.cab" EmbedCab="yes"/>
    <Directory Id="TARGETDIR" Name="SourceDir">
      <Directory Id="ProgramFilesFolder">
      </Directory>
    </Directory>
    <Feature Id="ProductFeature" Title="MyApp" Level="1">
    </Feature>
  </Product>
</Wix>
`

// WriteManifest stores content at path in fsys.
func WriteManifest(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create manifest directory: %v", err)
	}
	if err := fsys.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write manifest %s: %v", path, err)
	}
}

// LoadManifest loads the manifest at path and fails the test on error.
func LoadManifest(t *testing.T, fsys types.FS, path string) *manifest.Document {
	t.Helper()

	doc, err := manifest.Load(fsys, path)
	if err != nil {
		t.Fatalf("Failed to load manifest %s: %v", path, err)
	}
	return doc
}

// ComponentsBySource indexes the single-file components of doc by source.
func ComponentsBySource(doc *manifest.Document) map[string]manifest.Component {
	out := map[string]manifest.Component{}
	for _, c := range doc.Components() {
		if f, ok := c.SingleFile(); ok {
			out[filepath.ToSlash(f.Source())] = c
		}
	}
	return out
}
