// Package paths computes the portable source references stored in File
// elements.
//
// Sources are always relative to the directory holding the manifest, so a
// project tree can be moved as a whole without breaking the manifest. Both
// plain filesystem paths and file:// URIs are accepted as inputs.
package paths
