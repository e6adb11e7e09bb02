// Package loader runs one unit of work off the calling goroutine and
// delivers exactly one outcome back to it.
//
// The unit of work is a plain function value, so any operation can be
// scheduled without naming it. There is no cancellation: once started, a
// task runs to completion.
package loader

import "fmt"

// Result carries either the task's value or its error, never both.
type Result[T any] struct {
	Value T
	Err   error
}

// Run starts the task on its own goroutine. The returned channel receives
// exactly one Result and is then closed. A panic inside the task is
// recovered and delivered as the error; nothing ever propagates to the
// runtime.
func Run[T any](task func() (T, error)) <-chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		defer close(out)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				out <- Result[T]{Value: zero, Err: fmt.Errorf("task panicked: %v", r)}
			}
		}()

		value, err := task()
		out <- Result[T]{Value: value, Err: err}
	}()

	return out
}
