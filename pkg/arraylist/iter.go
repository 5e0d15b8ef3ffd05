package arraylist

import (
	"iter"
)

// Iter yields the elements from first to last.
// A structural modification during the iteration panics with ErrConcurrentModification,
// while Set calls are allowed.
func (l *ArrayList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// All yields the index and element pairs from first to last.
func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.checkForComodification()
		expected := l.owner().modCount
		for i := 0; i < l.size; i++ {
			l.checkIteration(expected)
			if !yield(i, l.elements()[i]) {
				return
			}
		}
		l.checkIteration(expected)
	}
}

// Backward yields the index and element pairs from last to first.
func (l *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		l.checkForComodification()
		expected := l.owner().modCount
		for i := l.size - 1; 0 <= i; i-- {
			l.checkIteration(expected)
			if !yield(i, l.elements()[i]) {
				return
			}
		}
		l.checkIteration(expected)
	}
}

func (l *ArrayList[T]) checkIteration(expected uint64) {
	if l.root().modCount != expected {
		panic(ErrConcurrentModification.F("modified while iterating over %d elements", l.size))
	}
}

// root returns the owner without the staleness checks,
// so a modification made during iteration is reported as such.
func (l *ArrayList[T]) root() *ArrayList[T] {
	current := l
	for current.parent != nil {
		current = current.parent
	}
	return current
}
