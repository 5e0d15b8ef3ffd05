// Package datastructcontract holds the reusable contracts of the datastruct role interfaces.
package datastructcontract

import (
	"reflect"
	"testing"

	"go.llib.dev/arraylist/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

type ListOption[T any] interface {
	option.Option[ListConfig[T]]
}

type ListConfig[T any] struct {
	// MakeElem creates a new element for the container under test.
	// Consecutive calls are expected to yield distinct elements.
	MakeElem func(testing.TB) T
}

var _ ListOption[any] = ListConfig[any]{}

func (c ListConfig[T]) Configure(o *ListConfig[T]) {
	if c.MakeElem != nil {
		o.MakeElem = c.MakeElem
	}
}

func (c ListConfig[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflect.TypeOf((*T)(nil)).Elem()).(T)
}

func (c ListConfig[T]) makeElems(t *testcase.T, n int) []T {
	return random.Slice(n, func() T { return c.makeElem(t) }, random.UniqueValues)
}
