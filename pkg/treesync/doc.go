// Package treesync reconciles a manifest directory subtree with a directory
// on disk.
//
// The walk pairs a manifest Directory with a real directory and, per level:
// matches each file to an existing Component by its relative Source, creates
// a Component (new Id, new Guid, one File) for files without a match, prunes
// Components whose file is gone, then mirrors each subdirectory as a child
// Directory and recurses.
//
// Matching on the resolved source path is what makes repeated runs stable:
// an unmoved file keeps its Component and Guid, while a renamed or moved
// file is treated as new. Pruning only happens in directories that are
// visited, so the manifest subtree of a directory that vanished from disk is
// left as it was.
package treesync
