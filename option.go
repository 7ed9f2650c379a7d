// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq

// Option represents a value that may be absent.
// Some(v) holds a value, None holds nothing. Option has value semantics:
// copying an Option copies the held value, and no mutation is observable
// through the wrapper.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// Unwrap returns the held value.
// Panics if the option is empty — unwrapping None is a programming error
// and there is no recovery path at this layer. Callers that need a
// fallback use Or, OrElse, or Expect instead.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("optseq: Unwrap on None")
	}
	return o.value
}

// Or returns the held value, or fallback if the option is empty.
// Total: never fails.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElse returns the held value, or the result of f if the option is empty.
// f is invoked at most once, and only on absence, so it may carry side
// effects such as logging.
func (o Option[T]) OrElse(f func() T) T {
	if o.present {
		return o.value
	}
	return f()
}

// Expect returns the held value.
// Panics with msg if the option is empty; used where absence is
// unrecoverable and the caller wants a specific diagnostic.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

// MapOption applies f to the held value, if any.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
