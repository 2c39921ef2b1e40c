package functional

import (
	"fmt"
	"iter"
)

// Result represents the outcome of an operation that may fail.
// It holds either a success value of type T or a failure of type E.
// Unlike a Go (T, error) pair the failure type is a type parameter, so callers
// keep the concrete error type through composition.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk returns true if the Result is successful.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unpack returns the value, the failure and whether the Result is successful.
// Only one of the first two is meaningful.
func (r Result[T, E]) Unpack() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Unwrap returns the success value or panics on failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on Err: %v", r.err))
	}
	return r.value
}

// UnwrapErr returns the failure or panics on success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or computes one from the failure.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// ToOption converts the Result to an Option, discarding the failure.
func (r Result[T, E]) ToOption() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// All returns an iterator over the Result (0 or 1 element).
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MapResult applies fn to the success value.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U](r.err)
}

// MapResultErr applies fn to the failure, changing the failure type.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T](fn(r.err))
}

// FlatMapResult applies a function that returns a Result.
func FlatMapResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MatchResult executes one of two functions and returns its result.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// FromOption creates a Result from an Option, using err when it is empty.
func FromOption[T, E any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](err)
}

// Try wraps a Go (value, error) pair.
func Try[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}
