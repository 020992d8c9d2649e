package paths

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/errors"
)

const fileScheme = "file://"

// RelativePath returns the path of target relative to manifestDir using the
// host separator. When no relative path exists, as with targets on another
// volume, the cleaned target is returned instead.
func RelativePath(manifestDir, target string) (string, error) {
	base, err := localPath(manifestDir)
	if err != nil {
		return "", err
	}
	file, err := localPath(target)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(base, file)
	if err != nil {
		return filepath.Clean(file), nil
	}
	return filepath.FromSlash(rel), nil
}

// SameSource reports whether two stored sources point at the same file.
// Backslashes and forward slashes are treated as the same separator so
// manifests written on another platform still match.
func SameSource(a, b string) bool {
	return normalize(a) == normalize(b)
}

// localPath turns a file:// URI into a local path, decoding percent escapes.
// Anything else is treated as a path already.
func localPath(p string) (string, error) {
	if !strings.HasPrefix(strings.ToLower(p), fileScheme) {
		return filepath.Clean(p), nil
	}
	u, err := url.Parse(p)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid file URI %q", p)
	}
	local := u.Path
	// file://server/share/x keeps the host as a UNC-style prefix
	if u.Host != "" && u.Host != "localhost" {
		local = "//" + u.Host + local
	}
	// file:///C:/dir -> C:/dir
	if len(local) >= 3 && local[0] == '/' && local[2] == ':' {
		local = local[1:]
	}
	return filepath.Clean(filepath.FromSlash(local)), nil
}

func normalize(p string) string {
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}
