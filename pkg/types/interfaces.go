package types

import (
	"io/fs"
)

// FS is the filesystem surface used to read and write manifests and to
// enumerate build output directories.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir lists a directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)
}
