package datastructcontract

import (
	"fmt"
	"slices"

	"go.llib.dev/arraylist/port/contract"
	"go.llib.dev/arraylist/port/datastruct"
	"go.llib.dev/arraylist/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func OrderedList[T any](make contract.Make[datastruct.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	List(make, c).Spec(s)

	s.Test("ordered", func(t *testcase.T) {
		var (
			list     = make(t)
			expected = c.makeElems(t, t.Random.IntBetween(3, 7))
		)
		list.Append(expected...)
		if ts, ok := list.(datastruct.Slicer[T]); ok {
			assert.Equal(t, expected, ts.Slice())
		}
		assert.Equal(t, expected, slices.Collect(list.Iter()))
	})

	return s.AsSuite(fmt.Sprintf("ordered List[%T]", *new(T)))
}

func List[T any](make contract.Make[datastruct.List[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			list     = make(t)
			expected = c.makeElems(t, t.Random.IntBetween(3, 7))
		)

		list.Append()
		assert.Equal(t, 0, list.Len())

		var expLen int
		for _, v := range expected {
			assert.Equal(t, expLen, list.Len())
			list.Append(v)
			expLen++
		}

		assert.ContainsExactly(t, expected, slices.Collect(list.Iter()))

		if cts, ok := list.(datastruct.Slicer[T]); ok {
			assert.ContainsExactly(t, expected, cts.Slice())
		}
	})

	s.Test("Append many", func(t *testcase.T) {
		var (
			list     = make(t)
			expected = c.makeElems(t, t.Random.IntBetween(3, 7))
		)
		list.Append(expected...)
		assert.Equal(t, len(expected), list.Len())
		assert.ContainsExactly(t, expected, slices.Collect(list.Iter()))
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		list := let.Var(s, func(t *testcase.T) datastruct.List[T] {
			return make(t)
		})

		s.Then("iterating an empty list yields nothing", func(t *testcase.T) {
			for range list.Get(t).Iter() {
				t.Fatal("unexpected iteration")
			}
		})

		s.Then("iteration can be stopped early", func(t *testcase.T) {
			vs := c.makeElems(t, t.Random.IntBetween(3, 7))
			list.Get(t).Append(vs...)

			var got []T
			for v := range list.Get(t).Iter() {
				got = append(got, v)
				if len(got) == 2 {
					break
				}
			}
			assert.Equal(t, vs[:2], got)
		})
	})

	return s.AsSuite(fmt.Sprintf("List[%T]", *new(T)))
}
