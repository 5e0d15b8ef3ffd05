package arraylist

// SubList returns a live view of the elements in [from, to).
//
// The view shares the owner's storage: Set calls are visible through both lists,
// and structural changes made through the view are applied to the owner.
// Structural changes only propagate from the view to the owner, not the other way around:
// a structural change made to the owner while the view is in use leaves the view stale,
// and the view panics with ErrStaleView instead of reflecting it.
// It panics with ErrIndexOutOfRange unless 0 <= from <= to <= Len().
func (l *ArrayList[T]) SubList(from, to int) *ArrayList[T] {
	if length := l.Len(); from < 0 || to < from || length < to {
		panic(ErrIndexOutOfRange.F("range [%d:%d] out of bounds for length %d", from, to, length))
	}
	return &ArrayList[T]{
		config:     l.getConfig(),
		configured: true,
		parent:     l,
		offset:     from,
		size:       to - from,
		modCount:   l.modCount,
	}
}

// IsView reports whether the list aliases another list's storage.
func (l *ArrayList[T]) IsView() bool {
	return l.parent != nil
}
