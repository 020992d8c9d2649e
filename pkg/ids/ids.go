// Package ids allocates the identifiers written into the manifest: string
// ids for components and directories, and random GUIDs for components and
// the product. Every allocation is checked against a caller-owned pool and
// registered in it before returning, so later calls see earlier results.
package ids

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/wixsync/pkg/collections"
)

// GenerateID allocates an id derived from base. The uppercase form of base
// is tried first; when taken, 1, 2, ... is appended to base as given until
// a free candidate is found.
func GenerateID(pool *collections.UniqueSet[string], base string) (string, error) {
	return generate(pool, strings.ToUpper(base), base)
}

// GenerateScopedID allocates an id for "<scope>_<name>". The first
// candidate uses the directory form of scope (see DirectoryID); fallbacks
// append a counter to the raw "<scope>_<name>".
func GenerateScopedID(pool *collections.UniqueSet[string], scope, name string) (string, error) {
	return generate(pool, DirectoryID(scope)+"_"+name, scope+"_"+name)
}

// DirectoryID derives a directory Id from its name.
func DirectoryID(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "_")
}

func generate(pool *collections.UniqueSet[string], first, base string) (string, error) {
	candidate := first
	for index := 1; ; index++ {
		taken, err := pool.Has(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			break
		}
		candidate = base + strconv.Itoa(index)
	}
	if err := pool.Add(candidate); err != nil {
		return "", err
	}
	return candidate, nil
}
