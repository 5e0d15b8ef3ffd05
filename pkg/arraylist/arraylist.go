package arraylist

import (
	"context"

	"go.llib.dev/arraylist/pkg/logging"
	"go.llib.dev/arraylist/port/datastruct"
	"go.llib.dev/arraylist/port/option"
)

// NotFound is the index reported by IndexOf and LastIndexOf when no element matches.
const NotFound = -1

// ArrayList is a resizable, index addressable sequence of element handles.
// The zero value is an empty list ready to use.
type ArrayList[T comparable] struct {
	config     Config
	configured bool

	// buf is the backing buffer of an owner list, its length is the capacity.
	// A view has no buffer of its own.
	buf  []T
	size int

	// parent is the list a view aliases; nil means the list owns buf.
	parent *ArrayList[T]
	offset int

	// modCount counts the structural modifications.
	// A view holds the value its parent had at the last sync.
	modCount uint64
}

var (
	_ datastruct.Sequence[int]     = (*ArrayList[int])(nil)
	_ datastruct.BulkSequence[int] = (*ArrayList[int])(nil)
	_ datastruct.Searchable[int]   = (*ArrayList[int])(nil)
)

// New creates an empty list that owns its buffer.
// It panics with ErrInvalidArgument when the configuration is invalid.
func New[T comparable](opts ...Option) *ArrayList[T] {
	c := option.ToConfig[Config](opts)
	if err := c.validate(); err != nil {
		panic(err)
	}
	l := &ArrayList[T]{config: c, configured: true}
	if 0 < c.InitialCapacity {
		l.buf = make([]T, c.InitialCapacity)
	}
	return l
}

// Of creates a list holding vs.
func Of[T comparable](vs ...T) *ArrayList[T] {
	l := New[T](WithInitialCapacity(max(len(vs), DefaultInitialCapacity)))
	l.Append(vs...)
	return l
}

func (l *ArrayList[T]) getConfig() Config {
	if !l.configured {
		l.config = option.ToConfig[Config, Option](nil)
		l.configured = true
	}
	return l.config
}

// Len returns the number of elements.
func (l *ArrayList[T]) Len() int {
	l.checkForComodification()
	return l.size
}

func (l *ArrayList[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Cap returns the number of slots the list can hold before its buffer is reallocated.
// For a view, it is the owner's capacity past the view's first element.
func (l *ArrayList[T]) Cap() int {
	if l.parent != nil {
		l.checkForComodification()
		return l.parent.Cap() - l.offset
	}
	return len(l.buf)
}

// Grow makes room for at least n more elements without a further reallocation.
// Grow is not a structural modification, views stay valid.
func (l *ArrayList[T]) Grow(n int) {
	if n < 0 {
		panic(ErrInvalidArgument.F("cannot grow by a negative amount: %d", n))
	}
	owner := l.owner()
	owner.ensureCapacity(owner.size + n)
}

// Release drops the buffer of an owner list, leaving it empty with zero capacity.
// Every view derived from the owner becomes stale.
//
// Releasing a view detaches it from its owner without touching the owner's buffer,
// and the view becomes an empty list of its own.
func (l *ArrayList[T]) Release() {
	if l.parent != nil {
		l.parent = nil
		l.offset = 0
		l.size = 0
		// views derived from this one must never match the counter again
		l.modCount++
		return
	}
	if l.buf != nil {
		l.getConfig().logger().Debug(context.Background(), "arraylist buffer released",
			logging.Field("capacity", len(l.buf)),
			logging.Field("length", l.size))
	}
	l.buf = nil
	l.size = 0
	l.modCount++
}

func (l *ArrayList[T]) checkForComodification() {
	if l.parent != nil && l.modCount != l.parent.modCount {
		panic(ErrStaleView.F("view of [%d:%d]", l.offset, l.offset+l.size))
	}
}

// owner returns the list that owns the backing buffer,
// checking every view on the way for staleness.
func (l *ArrayList[T]) owner() *ArrayList[T] {
	current := l
	for current.parent != nil {
		current.checkForComodification()
		current = current.parent
	}
	return current
}

// elements returns the live contents, resolved against the owner's current buffer.
// Writing the returned slice writes the list, but it must not be retained across structural modifications.
func (l *ArrayList[T]) elements() []T {
	if l.parent == nil {
		return l.buf[:l.size]
	}
	l.checkForComodification()
	return l.parent.elements()[l.offset : l.offset+l.size]
}

func (l *ArrayList[T]) checkIndex(index int) {
	if length := l.Len(); index < 0 || length <= index {
		panic(ErrIndexOutOfRange.F("index %d out of range for length %d", index, length))
	}
}

func (l *ArrayList[T]) checkPosition(index int) {
	if length := l.Len(); index < 0 || length < index {
		panic(ErrIndexOutOfRange.F("position %d out of range for length %d", index, length))
	}
}
