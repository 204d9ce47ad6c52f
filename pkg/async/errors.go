package async

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	ErrTimeout   = errors.New("async: operation timed out waiting for future completion")
	ErrNoFutures = errors.New("async: WaitAny called with empty futures slice")
	ErrPanic     = errors.New("async: function panicked")
	ErrGoexit    = errors.New("async: function exited its goroutine without returning")
)

// PanicError carries a value recovered from a panicking function together with
// the stack captured at the point of recovery.
type PanicError struct {
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%v: %v", ErrPanic, e.Value)
}

// Is reports ErrPanic so callers can match without a type assertion.
func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

func newPanicError(v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Value: v, Stack: string(buf[:n])}
}
