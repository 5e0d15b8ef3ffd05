package arraylist

// Contains reports whether v is an element of the list.
func (l *ArrayList[T]) Contains(v T) bool {
	return l.IndexOf(v) != NotFound
}

// IndexOf returns the index of the first element that is v, or NotFound.
func (l *ArrayList[T]) IndexOf(v T) int {
	for i, e := range l.elements() {
		if e == v {
			return i
		}
	}
	return NotFound
}

// LastIndexOf returns the index of the last element that is v, or NotFound.
func (l *ArrayList[T]) LastIndexOf(v T) int {
	es := l.elements()
	for i := len(es) - 1; 0 <= i; i-- {
		if es[i] == v {
			return i
		}
	}
	return NotFound
}

// Equal reports whether both lists hold the same elements in the same order.
// Capacity and whether a list is a view play no part in it.
func (l *ArrayList[T]) Equal(oth *ArrayList[T]) bool {
	if l == oth {
		l.checkForComodification()
		return true
	}
	if oth == nil {
		return false
	}
	a, b := l.elements(), oth.elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Slice returns a copy of the elements.
// The returned slice is never nil and it does not alias the list.
func (l *ArrayList[T]) Slice() []T {
	es := l.elements()
	out := make([]T, len(es))
	copy(out, es)
	return out
}
