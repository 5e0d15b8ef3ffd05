package arraylist_test

import (
	"slices"
	"testing"

	"go.llib.dev/arraylist/pkg/arraylist"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func TestArrayList_SubList(t *testing.T) {
	s := testcase.NewSpec(t)

	values := let.Var(s, func(t *testcase.T) []*Handle {
		return makeHandles(t, t.Random.IntBetween(4, 12))
	})
	owner := let.Var(s, func(t *testcase.T) *arraylist.ArrayList[*Handle] {
		return arraylist.Of(values.Get(t)...)
	})
	from := let.Var(s, func(t *testcase.T) int {
		return t.Random.IntBetween(0, len(values.Get(t))/2)
	})
	to := let.Var(s, func(t *testcase.T) int {
		return t.Random.IntBetween(from.Get(t), len(values.Get(t)))
	})
	view := let.Var(s, func(t *testcase.T) *arraylist.ArrayList[*Handle] {
		return owner.Get(t).SubList(from.Get(t), to.Get(t))
	})

	s.Then("the view holds the range of the owner", func(t *testcase.T) {
		assert.Equal(t, values.Get(t)[from.Get(t):to.Get(t)], view.Get(t).Slice())
		assert.Equal(t, to.Get(t)-from.Get(t), view.Get(t).Len())
		assert.True(t, view.Get(t).IsView())
		assert.False(t, owner.Get(t).IsView())
	})

	s.Then("the view's capacity is the owner's capacity past its offset", func(t *testcase.T) {
		assert.Equal(t, owner.Get(t).Cap()-from.Get(t), view.Get(t).Cap())
	})

	s.When("the view is not empty", func(s *testcase.Spec) {
		to.Let(s, func(t *testcase.T) int {
			return t.Random.IntBetween(from.Get(t)+1, len(values.Get(t)))
		})

		s.Then("Set through the view is visible in the owner", func(t *testcase.T) {
			h := makeHandle(t)
			i := t.Random.IntN(view.Get(t).Len())
			assert.Equal(t, values.Get(t)[from.Get(t)+i], view.Get(t).Set(i, h))
			assert.Equal(t, h, owner.Get(t).Get(from.Get(t)+i))
		})

		s.Then("Set on the owner is visible in the view", func(t *testcase.T) {
			view.Get(t) // view is created before the owner is touched
			h := makeHandle(t)
			owner.Get(t).Set(from.Get(t), h)
			assert.Equal(t, h, view.Get(t).Get(0))
		})

		s.Then("RemoveAt through the view removes from the owner", func(t *testcase.T) {
			i := t.Random.IntN(view.Get(t).Len())
			got := view.Get(t).RemoveAt(i)
			assert.Equal(t, values.Get(t)[from.Get(t)+i], got)

			exp := slices.Delete(slices.Clone(values.Get(t)), from.Get(t)+i, from.Get(t)+i+1)
			assert.Equal(t, exp, owner.Get(t).Slice())
			assert.Equal(t, exp[from.Get(t):to.Get(t)-1], view.Get(t).Slice())
		})

		s.Then("RemoveAll through the view touches only the view's range", func(t *testcase.T) {
			everything := values.Get(t)
			assert.True(t, view.Get(t).RemoveAll(everything...))
			assert.Equal(t, 0, view.Get(t).Len())

			exp := slices.Delete(slices.Clone(values.Get(t)), from.Get(t), to.Get(t))
			assert.Equal(t, exp, owner.Get(t).Slice())
		})

		s.Then("RetainAll through the view keeps the owner's elements outside of its range", func(t *testcase.T) {
			keep := view.Get(t).Get(0)
			view.Get(t).RetainAll(keep)
			assert.Equal(t, []*Handle{keep}, view.Get(t).Slice())

			exp := slices.Concat(values.Get(t)[:from.Get(t)], []*Handle{keep}, values.Get(t)[to.Get(t):])
			assert.Equal(t, exp, owner.Get(t).Slice())
		})
	})

	s.Then("Append through the view inserts at the end of the view's range", func(t *testcase.T) {
		hs := makeHandles(t, t.Random.IntBetween(1, 30))
		view.Get(t).Append(hs...)

		exp := slices.Insert(slices.Clone(values.Get(t)), to.Get(t), hs...)
		assert.Equal(t, exp, owner.Get(t).Slice())
		assert.Equal(t, exp[from.Get(t):to.Get(t)+len(hs)], view.Get(t).Slice())
	})

	s.Then("the view survives when appending through it reallocates the owner's buffer", func(t *testcase.T) {
		capacity := owner.Get(t).Cap()
		hs := makeHandles(t, capacity+1)
		view.Get(t).Append(hs...)
		assert.True(t, capacity < owner.Get(t).Cap())

		view.Get(t).Append(hs[0])
		assert.Equal(t, hs[0], view.Get(t).Get(view.Get(t).Len()-1))
	})

	s.Then("Clear through the view removes its range from the owner", func(t *testcase.T) {
		view.Get(t).Clear()

		assert.Equal(t, 0, view.Get(t).Len())
		exp := slices.Delete(slices.Clone(values.Get(t)), from.Get(t), to.Get(t))
		assert.Equal(t, exp, owner.Get(t).Slice())
	})

	s.Then("Grow on the owner keeps the view valid", func(t *testcase.T) {
		view.Get(t)
		owner.Get(t).Grow(t.Random.IntBetween(100, 200))

		assert.Equal(t, values.Get(t)[from.Get(t):to.Get(t)], view.Get(t).Slice())
	})

	s.Then("Grow through the view grows the owner", func(t *testcase.T) {
		n := t.Random.IntBetween(100, 200)
		view.Get(t).Grow(n)

		assert.True(t, owner.Get(t).Len()+n <= owner.Get(t).Cap())
		assert.Equal(t, values.Get(t), owner.Get(t).Slice())
	})

	s.Then("nested views resolve against the owner", func(t *testcase.T) {
		h := makeHandle(t)
		nested := view.Get(t).SubList(0, view.Get(t).Len())
		nested.Append(h)

		assert.Equal(t, h, owner.Get(t).Get(to.Get(t)))
		assert.Equal(t, h, view.Get(t).Get(view.Get(t).Len()-1))
		assert.Equal(t, view.Get(t).Slice(), nested.Slice())
	})

	s.Then("releasing the view leaves the owner intact", func(t *testcase.T) {
		view.Get(t).Release()

		assert.False(t, view.Get(t).IsView())
		assert.Equal(t, 0, view.Get(t).Len())
		assert.Equal(t, values.Get(t), owner.Get(t).Slice())

		h := makeHandle(t)
		view.Get(t).Append(h)
		assert.Equal(t, []*Handle{h}, view.Get(t).Slice())
		assert.Equal(t, values.Get(t), owner.Get(t).Slice())
	})

	s.Test("a view of a released view goes stale, even after the released list is appended to", func(t *testcase.T) {
		outer := owner.Get(t).SubList(0, owner.Get(t).Len())
		inner := outer.SubList(1, outer.Len())

		outer.Release()
		outer.Append(makeHandle(t))

		err, ok := assert.Panic(t, func() { inner.Get(0) }).(error)
		assert.True(t, ok)
		assert.ErrorIs(t, err, arraylist.ErrStaleView)
		assert.ErrorIs(t, arraylist.Try(func() { inner.Len() }), arraylist.ErrStaleView)
		assert.Equal(t, values.Get(t), owner.Get(t).Slice())
	})

	s.Describe("stale view", func(s *testcase.Spec) {
		thenStale := func(s *testcase.Spec) {
			s.Then("every operation on the view panics", func(t *testcase.T) {
				ops := []func(){
					func() { view.Get(t).Len() },
					func() { view.Get(t).Slice() },
					func() { view.Get(t).Contains(makeHandle(t)) },
					func() { view.Get(t).Append(makeHandle(t)) },
					func() { view.Get(t).Cap() },
					func() { view.Get(t).Clear() },
					func() { view.Get(t).SubList(0, 0) },
				}
				for _, op := range ops {
					err, ok := assert.Panic(t, op).(error)
					assert.True(t, ok)
					assert.ErrorIs(t, err, arraylist.ErrStaleView)
				}
			})
		}

		s.When("the owner is appended to", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				view.Get(t)
				owner.Get(t).Append(makeHandle(t))
			})

			thenStale(s)
		})

		s.When("an element is removed from the owner", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				view.Get(t)
				owner.Get(t).RemoveAt(0)
			})

			thenStale(s)
		})

		s.When("a sibling view is modified structurally", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				view.Get(t)
				owner.Get(t).SubList(0, 0).Append(makeHandle(t))
			})

			thenStale(s)
		})

		s.When("the owner is released", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				view.Get(t)
				owner.Get(t).Release()
			})

			thenStale(s)
		})

		s.Test("the owner is still usable", func(t *testcase.T) {
			view.Get(t)
			h := makeHandle(t)
			owner.Get(t).Append(h)

			assert.Equal(t, append(slices.Clone(values.Get(t)), h), owner.Get(t).Slice())
		})
	})
}
