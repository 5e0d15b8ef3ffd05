package arraylist

import (
	"github.com/bits-and-blooms/bitset"
)

// ContainsAll reports whether every value in vs matches a distinct element of the list.
// An element can satisfy a single match only, so ContainsAll(A, A) needs two occurrences of A.
func (l *ArrayList[T]) ContainsAll(vs ...T) bool {
	es := l.elements()
	if len(es) < len(vs) {
		return false
	}
	consumed := bitset.New(uint(len(es)))
	for _, v := range vs {
		if !consume(es, consumed, v) {
			return false
		}
	}
	return true
}

func consume[T comparable](es []T, consumed *bitset.BitSet, v T) bool {
	for i, e := range es {
		if e == v && !consumed.Test(uint(i)) {
			consumed.Set(uint(i))
			return true
		}
	}
	return false
}

// RemoveAll removes every element that matches any of vs, regardless of how many times it is listed.
// It reports whether the list changed.
func (l *ArrayList[T]) RemoveAll(vs ...T) bool {
	if len(vs) == 0 {
		l.checkForComodification()
		return false
	}
	set := toSet(vs)
	return l.RemoveFunc(func(v T) bool {
		_, ok := set[v]
		return ok
	})
}

// RetainAll removes every element that does not match any of vs.
// It reports whether the list changed.
func (l *ArrayList[T]) RetainAll(vs ...T) bool {
	set := toSet(vs)
	return l.RemoveFunc(func(v T) bool {
		_, ok := set[v]
		return !ok
	})
}

// RemoveFunc removes every element for which fn returns true, in a single pass.
// It reports whether the list changed.
func (l *ArrayList[T]) RemoveFunc(fn func(T) bool) bool {
	return 0 < l.removeMatching(0, l.Len(), fn)
}

func toSet[T comparable](vs []T) map[T]struct{} {
	set := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set
}

// removeMatching removes the elements in [from, to) matched by fn and returns how many were removed.
//
// Matches are marked first, then every run of surviving elements is moved left exactly once,
// past the removed runs preceding it, so the data movement stays linear
// no matter how many elements are removed.
func (l *ArrayList[T]) removeMatching(from, to int, fn func(T) bool) int {
	if l.parent != nil {
		l.checkForComodification()
		n := l.parent.removeMatching(l.offset+from, l.offset+to, fn)
		l.modCount = l.parent.modCount
		l.size -= n
		return n
	}

	window := l.buf[from:to]
	marks := bitset.New(uint(len(window)))
	for i, v := range window {
		if fn(v) {
			marks.Set(uint(i))
		}
	}
	first, ok := marks.NextSet(0)
	if !ok {
		return 0
	}

	dst := int(first)
	for src := first; ; {
		start, ok := marks.NextClear(src)
		if !ok {
			break
		}
		end, ok := marks.NextSet(start)
		if !ok {
			end = uint(len(window))
		}
		dst += copy(window[dst:], window[start:end])
		src = end
	}

	removed := len(window) - dst
	copy(l.buf[from+dst:], l.buf[to:l.size])
	clear(l.buf[l.size-removed : l.size])
	l.size -= removed
	l.modCount++
	return removed
}
