// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq

// Result represents a computation that either succeeded with a value of
// type T (Ok) or failed with an error value of type E (Err).
//
// In this library the intended construction path for fallible lookups is
// via Option: OkOr converts an absent value into a caller-supplied error.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok creates a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err creates a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{ok: false, err: e}
}

// IsOk reports whether this is a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether this is a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the error value and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// Unwrap returns the success value.
// Panics if the Result is an Err — same fail-fast policy as Option.Unwrap.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("optseq: Unwrap on Err")
	}
	return r.value
}

// Or returns the success value, or fallback on Err. Total, never fails.
func (r Result[T, E]) Or(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// OkOr converts an Option into a Result using err for the absent case.
// Some(v) becomes Ok(v), None becomes Err(err). Total.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](err)
}

// ToOption discards the error channel, converting Ok(v) to Some(v) and
// Err to None.
func ToOption[T, E any](r Result[T, E]) Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MapResult applies f to the success value.
func MapResult[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.err)
}

// FlatMapResult sequences two fallible computations.
func FlatMapResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U, E](r.err)
}

// MapErr applies f to the error value.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}
