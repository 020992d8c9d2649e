package ids

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGUIDAllocatorRejectsNilAndKnownValues(t *testing.T) {
	known := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	fresh := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	var stream bytes.Buffer
	stream.Write(uuid.Nil[:]) // nil sentinel
	stream.Write(known[:])    // already in the pool
	stream.Write(fresh[:])

	pool := NewGUIDSet()
	require.NoError(t, pool.Add(known))

	allocator := NewGUIDAllocator(&stream)
	got, err := allocator.Generate(pool)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	has, err := pool.Has(fresh)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, 2, pool.Len())
	assert.Equal(t, 0, stream.Len(), "all three draws should have been consumed")
}

func TestGUIDAllocatorExhaustedSource(t *testing.T) {
	allocator := NewGUIDAllocator(bytes.NewReader([]byte{1, 2, 3}))
	_, err := allocator.Generate(NewGUIDSet())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestGUIDAllocatorDefaultSourceProducesDistinctValues(t *testing.T) {
	allocator := NewGUIDAllocator(nil)
	pool := NewGUIDSet()
	seen := map[uuid.UUID]bool{}
	for i := 0; i < 200; i++ {
		guid, err := allocator.Generate(pool)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, guid)
		assert.False(t, seen[guid])
		seen[guid] = true
	}
	assert.Equal(t, 200, pool.Len())
	items := pool.Items()
	for i := 1; i < len(items); i++ {
		assert.Negative(t, CompareGUID(items[i-1], items[i]))
	}
}

func TestParseAndFormatGUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"plain", "6F1C9A3B-2D4E-4F50-8A1B-9C0D1E2F3A4B", true},
		{"braced", "{6F1C9A3B-2D4E-4F50-8A1B-9C0D1E2F3A4B}", true},
		{"auto_marker", "*", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guid, err := ParseGUID(tt.input)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "6f1c9a3b-2d4e-4f50-8a1b-9c0d1e2f3a4b", FormatGUID(guid))
		})
	}
}
