package datastructcontract

import (
	"slices"
	"testing"

	"go.llib.dev/arraylist/port/contract"
	"go.llib.dev/arraylist/port/datastruct"
	"go.llib.dev/arraylist/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// Sequence checks the positional access behaviour of a datastruct.Sequence.
// The Make function must return an empty sequence.
func Sequence[T any](make contract.Make[datastruct.Sequence[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	seq := let.Var(s, func(t *testcase.T) datastruct.Sequence[T] {
		return make(t)
	})

	contents := func(t *testcase.T) []T {
		t.Helper()
		return slices.Collect(seq.Get(t).Iter())
	}

	OrderedList(func(tb testing.TB) datastruct.List[T] {
		return make(tb)
	}, c).Spec(s)

	s.Describe("#Get", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) T {
			return seq.Get(t).Get(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				assert.Equal(t, 0, seq.Get(t).Len(), `The "Make" sequence should be empty but isn't, please check the setup.`)
			})

			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it panics as every index is out of range", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(3, 7))
			})

			seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					assert.Equal(t, values.Get(t)[index.Get(t)], act(t))
				})
			})

			s.And("index is the length of the sequence", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("it panics", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
				})
			})

			s.And("index is negative", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return -1 * t.Random.IntBetween(1, 42)
				})

				s.Then("it panics", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
				})
			})
		})
	})

	s.Describe("#Lookup", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
		)
		act := let.Act2(func(t *testcase.T) (T, bool) {
			return seq.Get(t).Lookup(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("the requested value is reported to be missing", func(t *testcase.T) {
				_, ok := act(t)
				assert.False(t, ok, "expected that value is not found")
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(3, 7))
			})

			seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the expected value is returned", func(t *testcase.T) {
					got, ok := act(t)
					assert.True(t, ok, "expected that value is found")
					assert.Equal(t, values.Get(t)[index.Get(t)], got)
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					if t.Random.Bool() {
						return -1 * t.Random.IntBetween(1, 42)
					}
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("the requested value is reported to be missing", func(t *testcase.T) {
					_, ok := act(t)
					assert.False(t, ok, "expected that value is not found")
				})
			})
		})
	})

	s.Describe("#Set", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
			value = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) T {
			return seq.Get(t).Set(index.Get(t), value.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it panics", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(3, 7))
			})

			seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the previous value is returned", func(t *testcase.T) {
					assert.Equal(t, values.Get(t)[index.Get(t)], act(t))
				})

				s.Then("the new value is set for the given index", func(t *testcase.T) {
					act(t)

					assert.Equal(t, value.Get(t), seq.Get(t).Get(index.Get(t)))
				})

				s.Then("the total length remains the same", func(t *testcase.T) {
					act(t)

					assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
				})

				s.Then("apart from the changed value, everything else remains the original one", func(t *testcase.T) {
					act(t)

					exp := slices.Clone(values.Get(t))
					exp[index.Get(t)] = value.Get(t)
					assert.Equal(t, exp, contents(t))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it panics without changing the sequence", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
					assert.Equal(t, values.Get(t), contents(t))
				})
			})
		})
	})

	s.Describe("#Insert", func(s *testcase.Spec) {
		var (
			index     = let.Var[int](s, nil)
			newValues = let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(1, 7))
			})
		)
		act := let.Act0(func(t *testcase.T) {
			seq.Get(t).Insert(index.Get(t), newValues.Get(t)...)
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntBetween(1, 42)
				})

				s.Then("it panics", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
					assert.Equal(t, 0, seq.Get(t).Len())
				})
			})

			s.And("index is zero", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				s.Then("it inserts the values", func(t *testcase.T) {
					act(t)

					assert.Equal(t, newValues.Get(t), contents(t))
				})
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			// A B C <- insert X Y Z at 1
			// 0 1 2
			//
			// -> A X Y Z B C
			// -> 0 1 2 3 4 5
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(3, 7))
			})

			seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				s.Then("the total length increases with the number of new values", func(t *testcase.T) {
					act(t)

					assert.Equal(t, len(values.Get(t))+len(newValues.Get(t)), seq.Get(t).Len())
				})

				s.Then("new values are inserted from the given index, and the rest shifted to the right", func(t *testcase.T) {
					act(t)

					exp := slices.Insert(slices.Clone(values.Get(t)), index.Get(t), newValues.Get(t)...)
					assert.Equal(t, exp, contents(t))
				})

				s.Then("removing at the same index returns the first inserted value", func(t *testcase.T) {
					act(t)

					assert.Equal(t, newValues.Get(t)[0], seq.Get(t).RemoveAt(index.Get(t)))
				})
			})

			s.And("index equals to the length", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t))
				})

				s.Then("values are appended", func(t *testcase.T) {
					act(t)

					assert.Equal(t, append(slices.Clone(values.Get(t)), newValues.Get(t)...), contents(t))
				})
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					if t.Random.Bool() {
						return -1 * t.Random.IntBetween(1, 42)
					}
					return len(values.Get(t)) + t.Random.IntBetween(1, 42)
				})

				s.Then("it panics before the sequence is changed", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
					assert.Equal(t, values.Get(t), contents(t))
				})
			})
		})
	})

	s.Describe("#RemoveAt", func(s *testcase.Spec) {
		var (
			index = let.Var[int](s, nil)
		)
		act := let.Act(func(t *testcase.T) T {
			return seq.Get(t).RemoveAt(index.Get(t))
		})

		s.When("sequence is empty", func(s *testcase.Spec) {
			index.Let(s, func(t *testcase.T) int {
				return t.Random.IntBetween(0, 42)
			})

			s.Then("it panics", func(t *testcase.T) {
				assert.Panic(t, func() { act(t) })
			})
		})

		s.When("sequence contains values", func(s *testcase.Spec) {
			values := let.Var(s, func(t *testcase.T) []T {
				return c.makeElems(t, t.Random.IntBetween(3, 7))
			})

			seq.Let(s, func(t *testcase.T) datastruct.Sequence[T] {
				seq := seq.Super(t)
				seq.Append(values.Get(t)...)
				return seq
			})

			thenRemoved := func(s *testcase.Spec) {
				s.Then("the removed value is returned", func(t *testcase.T) {
					assert.Equal(t, values.Get(t)[index.Get(t)], act(t))
				})

				s.Then("the total length shrinks by one", func(t *testcase.T) {
					act(t)

					assert.Equal(t, len(values.Get(t))-1, seq.Get(t).Len())
				})

				s.Then("the remaining values keep their relative order", func(t *testcase.T) {
					act(t)

					exp := slices.Delete(slices.Clone(values.Get(t)), index.Get(t), index.Get(t)+1)
					assert.Equal(t, exp, contents(t))
				})
			}

			s.And("index points to an existing value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return t.Random.IntN(len(values.Get(t)))
				})

				thenRemoved(s)
			})

			s.And("index points to the first value", func(s *testcase.Spec) {
				index.LetValue(s, 0)

				thenRemoved(s)
			})

			s.And("index points to the last value", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) - 1
				})

				thenRemoved(s)
			})

			s.And("index is out of bound", func(s *testcase.Spec) {
				index.Let(s, func(t *testcase.T) int {
					return len(values.Get(t)) + t.Random.IntBetween(0, 42)
				})

				s.Then("it panics without changing the sequence", func(t *testcase.T) {
					assert.Panic(t, func() { act(t) })
					assert.Equal(t, values.Get(t), contents(t))
				})
			})
		})
	})

	return s.AsSuite("Sequence[T]")
}
