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
	"go.llib.dev/testcase/random"
)

// BulkSequence checks the search and bulk modification behaviour of a datastruct.BulkSequence.
// Elements are matched with ==, so the Make function must return an empty sequence,
// and MakeElem must yield distinct elements.
func BulkSequence[T comparable](make contract.Make[datastruct.BulkSequence[T]], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	Sequence(func(tb testing.TB) datastruct.Sequence[T] {
		return make(tb)
	}, c).Spec(s)

	Containable[T](func(tb testing.TB) datastruct.BulkSequence[T] {
		return make(tb)
	}, c).Spec(s)

	seq := let.Var(s, func(t *testcase.T) datastruct.BulkSequence[T] {
		return make(t)
	})

	// pool is a small set of distinct elements,
	// from which the contents are drawn with repetition to have duplicates and contiguous runs.
	pool := let.Var(s, func(t *testcase.T) []T {
		return c.makeElems(t, t.Random.IntBetween(3, 5))
	})

	values := let.Var(s, func(t *testcase.T) []T {
		var vs []T
		t.Random.Repeat(5, 25, func() {
			vs = append(vs, random.Pick(t.Random, pool.Get(t)...))
		})
		return vs
	})

	withValues := func(s *testcase.Spec) {
		seq.Let(s, func(t *testcase.T) datastruct.BulkSequence[T] {
			seq := seq.Super(t)
			seq.Append(values.Get(t)...)
			return seq
		})
	}

	s.Describe("#Slice", func(s *testcase.Spec) {
		withValues(s)

		s.Then("it returns the contents in order", func(t *testcase.T) {
			assert.Equal(t, values.Get(t), seq.Get(t).Slice())
		})

		s.Then("mutating the returned slice has no effect on the sequence", func(t *testcase.T) {
			out := seq.Get(t).Slice()
			for i := range out {
				out[i] = c.makeElem(t)
			}
			assert.Equal(t, len(values.Get(t)), seq.Get(t).Len())
			assert.Equal(t, values.Get(t), seq.Get(t).Slice())
		})
	})

	s.Describe("#IndexOf and #LastIndexOf", func(s *testcase.Spec) {
		withValues(s)

		s.Then("the lowest and the highest matching index is returned", func(t *testcase.T) {
			for _, v := range pool.Get(t) {
				assert.Equal(t, slices.Index(values.Get(t), v), seq.Get(t).IndexOf(v))

				exp := -1
				for i, e := range values.Get(t) {
					if e == v {
						exp = i
					}
				}
				assert.Equal(t, exp, seq.Get(t).LastIndexOf(v))
			}
		})

		s.Then("absent element is reported as not found", func(t *testcase.T) {
			v := c.makeElem(t)
			assert.Equal(t, -1, seq.Get(t).IndexOf(v))
			assert.Equal(t, -1, seq.Get(t).LastIndexOf(v))
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		var element = let.Var[T](s, nil)
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).Remove(element.Get(t))
		})
		withValues(s)

		s.When("element is present", func(s *testcase.Spec) {
			element.Let(s, func(t *testcase.T) T {
				return random.Pick(t.Random, values.Get(t)...)
			})

			s.Then("only its first occurrence is removed", func(t *testcase.T) {
				assert.True(t, act(t))

				i := slices.Index(values.Get(t), element.Get(t))
				exp := slices.Delete(slices.Clone(values.Get(t)), i, i+1)
				assert.Equal(t, exp, seq.Get(t).Slice())
			})
		})

		s.When("element is absent", func(s *testcase.Spec) {
			element.Let(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})

			s.Then("false is reported and the sequence is unchanged", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#ContainsAll", func(s *testcase.Spec) {
		withValues(s)

		s.Then("it is true for an empty collection", func(t *testcase.T) {
			assert.True(t, seq.Get(t).ContainsAll())
		})

		s.Then("it is true for the contents in any order", func(t *testcase.T) {
			others := slices.Clone(values.Get(t))
			slices.Reverse(others)
			assert.True(t, seq.Get(t).ContainsAll(others...))
		})

		s.Then("each element can satisfy only a single match", func(t *testcase.T) {
			others := append(slices.Clone(values.Get(t)), random.Pick(t.Random, values.Get(t)...))
			assert.False(t, seq.Get(t).ContainsAll(others...))
		})

		s.Then("it is false when an element is absent", func(t *testcase.T) {
			assert.False(t, seq.Get(t).ContainsAll(values.Get(t)[0], c.makeElem(t)))
		})
	})

	s.Describe("#RemoveAll", func(s *testcase.Spec) {
		var others = let.Var(s, func(t *testcase.T) []T {
			return pickSubset(t, pool.Get(t))
		})
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).RemoveAll(others.Get(t)...)
		})
		withValues(s)

		expected := func(t *testcase.T) []T {
			return slices.DeleteFunc(slices.Clone(values.Get(t)), func(v T) bool {
				return slices.Contains(others.Get(t), v)
			})
		}

		thenRemoved := func(s *testcase.Spec) {
			s.Then("every matching element is removed, the rest keeps its relative order", func(t *testcase.T) {
				act(t)

				assert.Equal(t, expected(t), seq.Get(t).Slice())
			})

			s.Then("it reports whether the sequence changed", func(t *testcase.T) {
				assert.Equal(t, len(expected(t)) != len(values.Get(t)), act(t))
			})

			s.Then("removed elements are no longer present", func(t *testcase.T) {
				act(t)

				for _, v := range others.Get(t) {
					assert.False(t, seq.Get(t).Contains(v))
				}
			})
		}

		thenRemoved(s)

		s.When("the first element is removed", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				return []T{values.Get(t)[0]}
			})

			thenRemoved(s)
		})

		s.When("the last element is removed", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				return []T{values.Get(t)[len(values.Get(t))-1]}
			})

			thenRemoved(s)
		})

		s.When("every element is removed", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				return pool.Get(t)
			})

			s.Then("the sequence becomes empty", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("nothing matches", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				return []T{c.makeElem(t)}
			})

			s.Then("nothing changes", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})

		s.When("no element is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("nothing changes", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#RetainAll", func(s *testcase.Spec) {
		var others = let.Var(s, func(t *testcase.T) []T {
			return pickSubset(t, pool.Get(t))
		})
		act := let.Act(func(t *testcase.T) bool {
			return seq.Get(t).RetainAll(others.Get(t)...)
		})
		withValues(s)

		s.Then("only matching elements are kept in their relative order", func(t *testcase.T) {
			act(t)

			exp := slices.DeleteFunc(slices.Clone(values.Get(t)), func(v T) bool {
				return !slices.Contains(others.Get(t), v)
			})
			assert.Equal(t, exp, seq.Get(t).Slice())
		})

		s.Then("it is idempotent", func(t *testcase.T) {
			act(t)
			exp := seq.Get(t).Slice()

			assert.False(t, act(t), "second call should not change anything")
			assert.Equal(t, exp, seq.Get(t).Slice())
		})

		s.When("no element is given", func(s *testcase.Spec) {
			others.LetValue(s, nil)

			s.Then("every element is removed", func(t *testcase.T) {
				assert.True(t, act(t))
				assert.Equal(t, 0, seq.Get(t).Len())
			})
		})

		s.When("every element is retained", func(s *testcase.Spec) {
			others.Let(s, func(t *testcase.T) []T {
				return pool.Get(t)
			})

			s.Then("nothing changes", func(t *testcase.T) {
				assert.False(t, act(t))
				assert.Equal(t, values.Get(t), seq.Get(t).Slice())
			})
		})
	})

	s.Describe("#Clear", func(s *testcase.Spec) {
		withValues(s)

		s.Then("the sequence becomes empty and it stays usable", func(t *testcase.T) {
			seq.Get(t).Clear()
			assert.Equal(t, 0, seq.Get(t).Len())
			assert.Empty(t, seq.Get(t).Slice())

			v := c.makeElem(t)
			seq.Get(t).Append(v)
			assert.Equal(t, []T{v}, seq.Get(t).Slice())
		})
	})

	return s.AsSuite("BulkSequence[T]")
}

func pickSubset[T any](t *testcase.T, vs []T) []T {
	var out []T
	for _, v := range vs {
		if t.Random.Bool() {
			out = append(out, v)
		}
	}
	return out
}
