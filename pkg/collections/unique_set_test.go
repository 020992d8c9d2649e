package collections

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueSetAdd(t *testing.T) {
	t.Run("keeps_items_sorted", func(t *testing.T) {
		s := New[string]()
		for _, item := range []string{"delta", "alpha", "charlie", "bravo"} {
			require.NoError(t, s.Add(item))
		}
		assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, s.Items())
	})

	t.Run("ignores_duplicates", func(t *testing.T) {
		s := New[int]()
		for _, item := range []int{3, 1, 3, 2, 1} {
			require.NoError(t, s.Add(item))
		}
		assert.Equal(t, []int{1, 2, 3}, s.Items())
		assert.Equal(t, 3, s.Len())
	})

	t.Run("rejects_empty_value", func(t *testing.T) {
		s := New[string]()
		err := s.Add("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNullItem))
		assert.Equal(t, 0, s.Len())
	})
}

func TestUniqueSetHas(t *testing.T) {
	s := New[string]()
	require.NoError(t, s.Add("ROOT_readme.txtComponent"))
	require.NoError(t, s.Add("BIN_app.exeComponent"))

	tests := []struct {
		name string
		item string
		want bool
	}{
		{"first", "BIN_app.exeComponent", true},
		{"last", "ROOT_readme.txtComponent", true},
		{"case_sensitive", "root_readme.txtcomponent", false},
		{"absent", "OTHER", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Has(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := s.Has("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNullItem))
}

func TestUniqueSetRemove(t *testing.T) {
	s := New[int]()
	for _, item := range []int{5, 10, 15} {
		require.NoError(t, s.Add(item))
	}

	require.NoError(t, s.Remove(10))
	assert.Equal(t, []int{5, 15}, s.Items())

	// removing an absent item is a no-op
	require.NoError(t, s.Remove(42))
	assert.Equal(t, []int{5, 15}, s.Items())

	assert.True(t, errors.IsErrorCode(s.Remove(0), errors.ErrNullItem))
}

func TestUniqueSetCustomComparator(t *testing.T) {
	type key [2]byte
	s := NewFunc(func(a, b key) int { return bytes.Compare(a[:], b[:]) })

	require.NoError(t, s.Add(key{2, 0}))
	require.NoError(t, s.Add(key{1, 9}))
	require.NoError(t, s.Add(key{1, 9}))

	assert.Equal(t, []key{{1, 9}, {2, 0}}, s.Items())
	assert.True(t, errors.IsErrorCode(s.Add(key{}), errors.ErrNullItem))
}

func TestUniqueSetAll(t *testing.T) {
	s := New[string]()
	for _, item := range []string{"c", "a", "b"} {
		require.NoError(t, s.Add(item))
	}

	var seen []string
	s.All(func(item string) bool {
		seen = append(seen, item)
		return item != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestUniqueSetItemsIsACopy(t *testing.T) {
	s := New[string]()
	require.NoError(t, s.Add("a"))
	items := s.Items()
	items[0] = "z"
	assert.Equal(t, []string{"a"}, s.Items())
}
