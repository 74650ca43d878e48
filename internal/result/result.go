// Package result holds a value-or-error pair that can be chained without
// unwinding at every step. Once a Result has failed, no further function
// passed to Map, FlatMap or OnSuccess is invoked.
package result

import "errors"

var errNilFailure = errors.New("result: failure without error")

type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errNilFailure
	}
	return Result[T]{err: err}
}

// From adapts a conventional (value, error) return.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}

func Try[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	return From(value, err)
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Recover turns a failure into a success using fn. Successes pass through.
func (r Result[T]) Recover(fn func(error) T) Result[T] {
	if r.err == nil {
		return r
	}
	return Ok(fn(r.err))
}

func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

func (r Result[T]) OnFailure(fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

func FlatMap[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return fn(r.value)
}
