// Package datastruct declares the role interfaces of ordered, index addressable containers.
package datastruct

import (
	"iter"
)

type List[T any] interface {
	Appendable[T]
	Iterable[T]
	Sizer
}

// Sequence is an ordered List with positional access.
// Out of range indexes are programmer errors, and they are reported with a panic,
// apart from Lookup, which reports them with its second return value.
type Sequence[T any] interface {
	List[T]
	Get(index int) T
	Lookup(index int) (T, bool)
	// Set replaces the element at index and returns the previous one.
	Set(index int, val T) T
	// Insert inserts the values at index, shifting the element at index and the ones after it to the right.
	// Index may equal to Len, in which case Insert acts as an Append.
	Insert(index int, vs ...T)
	RemoveAt(index int) T
}

// BulkSequence is a Sequence with bulk operations against an external collection of values.
type BulkSequence[T any] interface {
	Sequence[T]
	Searchable[T]
	Slicer[T]
	Remove(v T) bool
	// ContainsAll reports whether every value in vs can be matched to a distinct element.
	ContainsAll(vs ...T) bool
	RemoveAll(vs ...T) bool
	RetainAll(vs ...T) bool
	Clear()
}

type Searchable[T any] interface {
	Containable[T]
	IndexOf(v T) int
	LastIndexOf(v T) int
}

type Sizer interface {
	Len() int
}

type Slicer[T any] interface {
	// Slice returns the contents as a slice of T.
	Slice() []T
}

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Appendable[T any] interface {
	Append(vs ...T)
}

type Containable[T any] interface {
	Contains(element T) bool
}
