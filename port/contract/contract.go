package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
// The created subject must be fresh for every call.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification, also known as "contract".
//
// Any expectation a consumer has towards the role interface is expressed here,
// so every supplier implementation can be checked against the same behaviour.
type Contract interface {
	testcase.Suite
	// Test asserts the behavioural requirements against a supplier implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects that matter to the consumer.
	Benchmark(*testing.B)
}
