package arraylist

import (
	"errors"

	"go.llib.dev/arraylist/pkg/errorkit"
)

const (
	ErrIndexOutOfRange        errorkit.Error = "arraylist: index out of range"
	ErrStaleView              errorkit.Error = "arraylist: view used after its owner was structurally modified"
	ErrConcurrentModification errorkit.Error = "arraylist: list structurally modified during iteration"
	ErrInvalidArgument        errorkit.Error = "arraylist: invalid argument"
)

var contractViolations = []error{
	ErrIndexOutOfRange,
	ErrStaleView,
	ErrConcurrentModification,
	ErrInvalidArgument,
}

// Try calls fn and returns the contract violation it panicked with as an error value.
// Any other panic is propagated.
func Try(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if rErr, ok := errorkit.Recover(r); ok && isContractViolation(rErr) {
			err = rErr
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

func isContractViolation(err error) bool {
	for _, cv := range contractViolations {
		if errors.Is(err, cv) {
			return true
		}
	}
	return false
}
