package errorkit_test

import (
	"errors"
	"fmt"
	"testing"

	"go.llib.dev/arraylist/pkg/errorkit"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError_Error() {
	const ErrSomething errorkit.Error = "something is an error"

	fmt.Println(ErrSomething.F("with %s", "details"))
	// Output: [something is an error] with details
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.ErrorIs(t, got, exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.Contains(t, got.Error(), fmt.Sprintf("[%s] %s", ErrExample, exp.Error()))
	})
	t.Run("As", func(t *testing.T) {
		exp := ErrAsStub{V: rnd.String()}
		got := ErrExample.Wrap(exp)

		var expected ErrAsStub
		assert.True(t, errors.As(got, &expected))
		assert.Equal(t, exp, expected)
	})
	t.Run("nil", func(t *testing.T) {
		got := ErrExample.Wrap(nil)
		assert.ErrorIs(t, got, ErrExample)
		assert.Equal[error](t, got, ErrExample)
	})
}

func TestError_F(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"
	t.Run("sprintf", func(t *testing.T) {
		got := ErrExample.F("index %d - length %d", 4, 2)
		assert.ErrorIs(t, got, ErrExample)
		assert.Contains(t, got.Error(), "index 4 - length 2")
	})
	t.Run("errorf", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.F("%w", exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.ErrorIs(t, got, exp)
	})
}

func TestRecover(t *testing.T) {
	const ErrExample errorkit.Error = "ErrExample"

	t.Run("nil", func(t *testing.T) {
		err, ok := errorkit.Recover(nil)
		assert.False(t, ok)
		assert.NoError(t, err)
	})
	t.Run("error value", func(t *testing.T) {
		err, ok := func() (err error, ok bool) {
			defer func() { err, ok = errorkit.Recover(recover()) }()
			panic(ErrExample.F("boom"))
		}()
		assert.True(t, ok)
		assert.ErrorIs(t, err, ErrExample)
	})
	t.Run("non error value", func(t *testing.T) {
		_, ok := errorkit.Recover("boom")
		assert.False(t, ok)
	})
}
