package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/wixsync/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/wixsync/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/wixsync/internal/version.Date={{.Date}}
)

// String returns the version with its commit and build date
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
