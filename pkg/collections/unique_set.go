package collections

import (
	"cmp"

	"github.com/arthur-debert/wixsync/pkg/errors"
)

// UniqueSet is an ordered set backed by a sorted slice.
// Lookups are O(log n), inserts and removals O(n).
type UniqueSet[T comparable] struct {
	items   []T
	compare func(a, b T) int
}

// New creates an empty set ordered by the natural order of T.
func New[T cmp.Ordered]() *UniqueSet[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty set ordered by compare, which must return a
// negative number, zero or a positive number like cmp.Compare.
func NewFunc[T comparable](compare func(a, b T) int) *UniqueSet[T] {
	return &UniqueSet[T]{compare: compare}
}

// Add inserts item keeping the order. Adding an item already present is a no-op.
func (s *UniqueSet[T]) Add(item T) error {
	if err := checkItem(item); err != nil {
		return err
	}
	index, found := s.search(item)
	if found {
		return nil
	}
	var zero T
	s.items = append(s.items, zero)
	copy(s.items[index+1:], s.items[index:])
	s.items[index] = item
	return nil
}

// Has reports whether item is in the set.
func (s *UniqueSet[T]) Has(item T) (bool, error) {
	if err := checkItem(item); err != nil {
		return false, err
	}
	_, found := s.search(item)
	return found, nil
}

// Remove deletes item from the set if present.
func (s *UniqueSet[T]) Remove(item T) error {
	if err := checkItem(item); err != nil {
		return err
	}
	index, found := s.search(item)
	if !found {
		return nil
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return nil
}

// Len returns the number of items.
func (s *UniqueSet[T]) Len() int {
	return len(s.items)
}

// Items returns a sorted copy of the set contents.
func (s *UniqueSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates over the items in ascending order.
func (s *UniqueSet[T]) All(yield func(T) bool) {
	for _, item := range s.items {
		if !yield(item) {
			return
		}
	}
}

// search returns the position of item, or the position it should be
// inserted at when absent.
func (s *UniqueSet[T]) search(item T) (int, bool) {
	low, high := 0, len(s.items)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		c := s.compare(s.items[mid], item)
		switch {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return mid, true
		}
	}
	return low, false
}

func checkItem[T comparable](item T) error {
	var zero T
	if item == zero {
		return errors.New(errors.ErrNullItem, "item cannot be the empty value")
	}
	return nil
}
