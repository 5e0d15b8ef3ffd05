package datastructcontract

import (

	"go.llib.dev/arraylist/port/contract"
	"go.llib.dev/arraylist/port/datastruct"
	"go.llib.dev/arraylist/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

type SubjectContainable[T any] interface {
	datastruct.Containable[T]
	datastruct.Appendable[T]
}

func Containable[T any, Subject SubjectContainable[T]](mk contract.Make[Subject], opts ...ListOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig[ListConfig[T]](opts)

	subject := let.Var(s, func(t *testcase.T) Subject {
		return mk(t)
	})

	s.Describe("#Contains", func(s *testcase.Spec) {
		var (
			element = let.Var(s, func(t *testcase.T) T {
				return c.makeElem(t)
			})
		)
		act := let.Act(func(t *testcase.T) bool {
			return subject.Get(t).Contains(element.Get(t))
		})

		s.When("element is present", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(c.makeElems(t, t.Random.IntBetween(0, 3))...)
				subject.Get(t).Append(element.Get(t))
				subject.Get(t).Append(c.makeElems(t, t.Random.IntBetween(0, 3))...)
			})

			s.Then("it will contain the element", func(t *testcase.T) {
				assert.True(t, act(t))
			})
		})

		s.When("element is absent", func(s *testcase.Spec) {
			s.Before(func(t *testcase.T) {
				subject.Get(t).Append(c.makeElems(t, t.Random.IntBetween(0, 3))...)
			})

			s.Then("it will NOT contain the checked element", func(t *testcase.T) {
				assert.False(t, act(t))
			})
		})
	})

	return s.AsSuite("Containable")
}
