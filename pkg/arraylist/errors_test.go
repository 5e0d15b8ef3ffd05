package arraylist_test

import (
	"errors"
	"testing"

	"go.llib.dev/arraylist/pkg/arraylist"
	"go.llib.dev/testcase/assert"
)

func TestTry(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		var called bool
		assert.NoError(t, arraylist.Try(func() { called = true }))
		assert.True(t, called)
	})

	t.Run("contract violation is returned", func(t *testing.T) {
		l := arraylist.Of(makeHandles(t, 3)...)

		err := arraylist.Try(func() { l.Get(3) })
		assert.ErrorIs(t, err, arraylist.ErrIndexOutOfRange)
		assert.Contains(t, err.Error(), "index 3 out of range for length 3")

		err = arraylist.Try(func() { l.Insert(-1, makeHandle(t)) })
		assert.ErrorIs(t, err, arraylist.ErrIndexOutOfRange)
		assert.Equal(t, 3, l.Len())
	})

	t.Run("stale view is returned", func(t *testing.T) {
		l := arraylist.Of(makeHandles(t, 3)...)
		view := l.SubList(0, 2)
		l.Append(makeHandle(t))

		assert.ErrorIs(t, arraylist.Try(func() { view.Len() }), arraylist.ErrStaleView)
	})

	t.Run("other panics are propagated", func(t *testing.T) {
		boom := errors.New("boom")
		out := assert.Panic(t, func() {
			_ = arraylist.Try(func() { panic(boom) })
		})
		assert.Equal[any](t, boom, out)
	})
}
