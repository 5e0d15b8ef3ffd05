package arraylist

// Append appends the values in their given order.
// The buffer grows at most once per call.
func (l *ArrayList[T]) Append(vs ...T) {
	if len(vs) == 0 {
		l.checkForComodification()
		return
	}
	l.insertRange(l.Len(), vs)
}

// Get returns the element at index.
// It panics with ErrIndexOutOfRange unless 0 <= index < Len().
func (l *ArrayList[T]) Get(index int) T {
	l.checkIndex(index)
	return l.elements()[index]
}

// Lookup returns the element at index, and reports false instead of panicking when the index is out of range.
func (l *ArrayList[T]) Lookup(index int) (T, bool) {
	if index < 0 || l.Len() <= index {
		var zero T
		return zero, false
	}
	return l.elements()[index], true
}

// Set replaces the element at index and returns the previous one.
// Set is not a structural modification.
func (l *ArrayList[T]) Set(index int, v T) T {
	l.checkIndex(index)
	es := l.elements()
	prev := es[index]
	es[index] = v
	return prev
}

// Insert inserts the values at index, in their given order,
// shifting the element at index and the ones after it to the right.
// Index may be Len(), which makes Insert act as Append.
// It panics with ErrIndexOutOfRange unless 0 <= index <= Len().
func (l *ArrayList[T]) Insert(index int, vs ...T) {
	l.checkPosition(index)
	if len(vs) == 0 {
		return
	}
	l.insertRange(index, vs)
}

// Remove removes the first occurrence of v.
// It reports false and leaves the list unchanged when v is not present.
func (l *ArrayList[T]) Remove(v T) bool {
	index := l.IndexOf(v)
	if index == NotFound {
		return false
	}
	l.removeRange(index, index+1)
	return true
}

// RemoveAt removes and returns the element at index,
// shifting the elements after it to the left.
func (l *ArrayList[T]) RemoveAt(index int) T {
	l.checkIndex(index)
	v := l.elements()[index]
	l.removeRange(index, index+1)
	return v
}

// Clear removes every element, the capacity is kept.
// Clearing a view removes its range from the owner.
func (l *ArrayList[T]) Clear() {
	l.removeRange(0, l.Len())
}

// insertRange is the structural primitive behind Append and Insert.
// A view forwards it to its parent at its own offset.
func (l *ArrayList[T]) insertRange(index int, vs []T) {
	if l.parent != nil {
		l.checkForComodification()
		l.parent.insertRange(l.offset+index, vs)
		l.modCount = l.parent.modCount
		l.size += len(vs)
		return
	}
	l.ensureCapacity(l.size + len(vs))
	copy(l.buf[index+len(vs):], l.buf[index:l.size])
	copy(l.buf[index:], vs)
	l.size += len(vs)
	l.modCount++
}

// removeRange removes the elements in [from, to).
func (l *ArrayList[T]) removeRange(from, to int) {
	if from == to {
		return
	}
	if l.parent != nil {
		l.checkForComodification()
		l.parent.removeRange(l.offset+from, l.offset+to)
		l.modCount = l.parent.modCount
		l.size -= to - from
		return
	}
	n := to - from
	copy(l.buf[from:], l.buf[to:l.size])
	clear(l.buf[l.size-n : l.size])
	l.size -= n
	l.modCount++
}
