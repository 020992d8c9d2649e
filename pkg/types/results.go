package types

// SyncStats counts what a synchronization pass did to the manifest.
type SyncStats struct {
	ComponentsAdded     int `json:"componentsAdded"`
	ComponentsMatched   int `json:"componentsMatched"`
	ComponentsPruned    int `json:"componentsPruned"`
	DirectoriesCreated  int `json:"directoriesCreated"`
	DirectoriesVisited  int `json:"directoriesVisited"`
	FilesExcluded       int `json:"filesExcluded"`
	DirectoriesExcluded int `json:"directoriesExcluded"`
}

// Changed reports whether the pass modified the component tree.
func (s SyncStats) Changed() bool {
	return s.ComponentsAdded > 0 || s.ComponentsPruned > 0 || s.DirectoriesCreated > 0
}

// UpdateResult is the outcome of one manifest update run.
type UpdateResult struct {
	ManifestPath string `json:"manifestPath"`
	SourceRoot   string `json:"sourceRoot"`
	InstallPath  string `json:"installPath"`
	Anchor       string `json:"anchor"`

	// InstallDirectoryID is the Id of the directory the source root maps to.
	InstallDirectoryID string `json:"installDirectoryId"`

	PreviousProductID string `json:"previousProductId,omitempty"`
	ProductID         string `json:"productId,omitempty"`

	ComponentIDs []string  `json:"componentIds"`
	Stats        SyncStats `json:"stats"`

	DryRun  bool `json:"dryRun"`
	Written bool `json:"written"`
}

// ProductRotated reports whether the product Id was replaced.
func (r *UpdateResult) ProductRotated() bool {
	return r.ProductID != "" && r.ProductID != r.PreviousProductID
}

// GenConfigResult is the outcome of the genconfig command.
type GenConfigResult struct {
	ConfigContent string   `json:"configContent"`
	Format        string   `json:"format"`
	FilesWritten  []string `json:"filesWritten"`
	// FilesSkipped lists targets left alone because they already exist.
	FilesSkipped  []string `json:"filesSkipped,omitempty"`
}
