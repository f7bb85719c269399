package cyclecursor

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// New returns a cursor over a copy of elements.
func New[T any](elements ...T) *Cursor[T] {
	return FromSlice(elements)
}

// FromSlice returns a cursor over a copy of s, in order.
func FromSlice[T any](s []T) *Cursor[T] {
	return &Cursor[T]{
		Elements: slices.Clone(s),
	}
}

// FromSeq collects a finite iterator into a new cursor.
func FromSeq[T any](seq iter.Seq[T]) *Cursor[T] {
	return &Cursor[T]{
		Elements: slices.Collect(seq),
	}
}

// FromKeys treats m as a set and returns a cursor over its keys in ascending
// order.
func FromKeys[K cmp.Ordered, V any](m map[K]V) *Cursor[K] {
	return &Cursor[K]{
		Elements: slices.Sorted(maps.Keys(m)),
	}
}
