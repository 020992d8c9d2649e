// Package filesystem provides filesystem implementations for wixsync.
//
// Both implementations are backed by afero: the OS filesystem for real runs
// and an in-memory filesystem for tests.
package filesystem
