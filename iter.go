// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq

import (
	"fmt"
	"io"
)

// Iter is a single-pass, pull-based lazy sequence. Each call to Next
// yields the next element as Some(v), or None once the source is
// exhausted.
//
// Iterators fuse: after the first None, every later Next returns None
// without consulting the underlying source. This holds for composed
// iterators (MapIter, FilterIter, TakeIter) as well, so a filtered
// iterator can never re-scan an exhausted upstream.
//
// An Iter has exactly one logical owner. There is no internal
// synchronization; calling Next concurrently races on the cursor.
type Iter[T any] struct {
	pull func() Option[T]
	done bool
}

// Next advances the iterator and returns the next element, or None when
// exhausted.
func (it *Iter[T]) Next() Option[T] {
	if it.done {
		return None[T]()
	}
	o := it.pull()
	if o.IsNone() {
		it.done = true
	}
	return o
}

// Done reports whether the iterator has yielded None at least once.
func (it *Iter[T]) Done() bool {
	return it.done
}

// IterSeq creates an iterator over xs. The iterator captures xs and an
// independent position counter, so for a source of length n exactly n
// Some yields occur before the first None. Two iterators over the same
// Seq do not interfere.
//
// The iterator observes xs as it was at each pull; callers that mutate
// xs mid-iteration get the mutated elements, like any slice alias.
func IterSeq[T any](xs Seq[T]) *Iter[T] {
	pos := 0
	return &Iter[T]{pull: func() Option[T] {
		if pos >= len(xs) {
			return None[T]()
		}
		v := xs[pos]
		pos++
		return Some(v)
	}}
}

// MapIter returns a lazy iterator applying f to each element of it.
// Each downstream Next pulls exactly one upstream value; there is no
// buffering, and f runs only for values that are actually pulled.
func MapIter[T, U any](it *Iter[T], f func(T) U) *Iter[U] {
	return &Iter[U]{pull: func() Option[U] {
		return MapOption(it.Next(), f)
	}}
}

// FilterIter returns a lazy iterator yielding only the elements of it
// that satisfy pred. Each downstream Next pulls upstream values until
// one matches or the upstream is exhausted.
func FilterIter[T any](it *Iter[T], pred func(T) bool) *Iter[T] {
	return &Iter[T]{pull: func() Option[T] {
		for {
			v, ok := it.Next().Get()
			if !ok {
				return None[T]()
			}
			if pred(v) {
				return Some(v)
			}
		}
	}}
}

// TakeIter returns a lazy iterator yielding at most n elements of it.
// The upstream is not pulled past the n-th element.
func TakeIter[T any](it *Iter[T], n int) *Iter[T] {
	taken := 0
	return &Iter[T]{pull: func() Option[T] {
		if taken >= n {
			return None[T]()
		}
		taken++
		return it.Next()
	}}
}

// Collect drains it into a fresh Seq, preserving yield order.
// Collecting an exhausted iterator returns an empty Seq.
func Collect[T any](it *Iter[T]) Seq[T] {
	out := Seq[T]{}
	for {
		v, ok := it.Next().Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// FoldIter drains it, reducing its elements front-to-back with the
// accumulator threaded as the first argument of f.
func FoldIter[T, A any](it *Iter[T], seed A, f func(A, T) A) A {
	acc := seed
	for {
		v, ok := it.Next().Get()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// Print drains it, writing each element and a newline to w.
// For side effects only.
func (it *Iter[T]) Print(w io.Writer) {
	for {
		v, ok := it.Next().Get()
		if !ok {
			return
		}
		fmt.Fprintln(w, v)
	}
}
