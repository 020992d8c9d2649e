package ids

import (
	"bytes"
	"crypto/rand"
	"io"

	"github.com/arthur-debert/wixsync/pkg/collections"
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/google/uuid"
)

// GUIDAllocator draws random 128-bit values and rejects any value that is
// nil or already present in the pool it is given.
type GUIDAllocator struct {
	random io.Reader
}

// NewGUIDAllocator returns an allocator reading from random.
// A nil reader selects crypto/rand.
func NewGUIDAllocator(random io.Reader) *GUIDAllocator {
	if random == nil {
		random = rand.Reader
	}
	return &GUIDAllocator{random: random}
}

// Generate returns a GUID absent from pool and registers it there.
func (a *GUIDAllocator) Generate(pool *collections.UniqueSet[uuid.UUID]) (uuid.UUID, error) {
	var buf [16]byte
	for {
		if _, err := io.ReadFull(a.random, buf[:]); err != nil {
			return uuid.Nil, errors.Wrap(err, errors.ErrInternal, "failed to read random bytes")
		}
		candidate := uuid.UUID(buf)
		if candidate == uuid.Nil {
			continue
		}
		taken, err := pool.Has(candidate)
		if err != nil {
			return uuid.Nil, err
		}
		if taken {
			continue
		}
		if err := pool.Add(candidate); err != nil {
			return uuid.Nil, err
		}
		return candidate, nil
	}
}

// NewGUIDSet returns an empty pool of GUIDs ordered bytewise.
func NewGUIDSet() *collections.UniqueSet[uuid.UUID] {
	return collections.NewFunc(CompareGUID)
}

// CompareGUID orders GUIDs by their byte representation.
func CompareGUID(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

// ParseGUID parses a GUID as written in a manifest. Braced and urn forms
// are accepted.
func ParseGUID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

// FormatGUID renders a GUID the way it is written into the manifest.
func FormatGUID(guid uuid.UUID) string {
	return guid.String()
}
