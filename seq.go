// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq

import "golang.org/x/exp/constraints"

// Seq is a resizable, index-addressable, insertion-ordered container.
//
// Mutation policy: Push, Pop, Set, Sort, and Fill operate in place;
// every other operation allocates a fresh Seq and leaves the receiver
// untouched. Seq is an ordinary slice type, so direct indexing, len,
// range, and literal construction all work; At is the checked accessor.
type Seq[T any] []T

// Len returns the number of elements.
func (s Seq[T]) Len() int {
	return len(s)
}

// At returns the element at index i, or None when i is out of range.
func (s Seq[T]) At(i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// Push appends v in place.
func (s *Seq[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes and returns the last element, or None when the Seq is empty.
func (s *Seq[T]) Pop() Option[T] {
	n := len(*s)
	if n == 0 {
		return None[T]()
	}
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return Some(v)
}

// Set writes v at index i in place, reporting whether i was in range.
// Out-of-range writes are silent no-ops.
func (s *Seq[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(*s) {
		return false
	}
	(*s)[i] = v
	return true
}

// Clone returns a fresh copy of the Seq.
func (s Seq[T]) Clone() Seq[T] {
	out := make(Seq[T], len(s))
	copy(out, s)
	return out
}

// MapSeq returns a fresh Seq of f applied to each element, in order.
// The result has the same length as xs.
func MapSeq[T, U any](xs Seq[T], f func(T) U) Seq[U] {
	out := make(Seq[U], 0, len(xs))
	for _, v := range xs {
		out = append(out, f(v))
	}
	return out
}

// FilterSeq returns a fresh Seq of the elements satisfying pred,
// preserving their relative order.
func FilterSeq[T any](xs Seq[T], pred func(T) bool) Seq[T] {
	out := Seq[T]{}
	for _, v := range xs {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// FlatMapSeq returns the concatenation of f applied to each element,
// in source order.
func FlatMapSeq[T, U any](xs Seq[T], f func(T) Seq[U]) Seq[U] {
	out := Seq[U]{}
	for _, v := range xs {
		out = append(out, f(v)...)
	}
	return out
}

// FoldLeft reduces xs front-to-back, threading the accumulator as the
// first argument of f: f(f(f(seed, x0), x1), x2).
func FoldLeft[T, A any](xs Seq[T], seed A, f func(A, T) A) A {
	acc := seed
	for _, v := range xs {
		acc = f(acc, v)
	}
	return acc
}

// FoldRight reduces xs back-to-front, threading the accumulator as the
// second argument of f: f(x0, f(x1, f(x2, seed))).
func FoldRight[T, A any](xs Seq[T], seed A, f func(T, A) A) A {
	acc := seed
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Sort sorts xs ascending, in place, by selection: an O(n²) comparison
// sort. Stability is irrelevant for ordered element types with no
// attached identity.
func Sort[T constraints.Ordered](xs Seq[T]) {
	for i := range xs {
		min := i
		for j := i + 1; j < len(xs); j++ {
			if xs[j] < xs[min] {
				min = j
			}
		}
		xs[i], xs[min] = xs[min], xs[i]
	}
}

// Quicksort returns a fresh Seq with the elements of xs in ascending
// order; xs is not modified. The pivot is the middle element, elements
// are partitioned into less/equal/greater buckets, and the sorted
// partitions are concatenated. Expected O(n log n), worst case O(n²).
func Quicksort[T constraints.Ordered](xs Seq[T]) Seq[T] {
	if len(xs) < 2 {
		return xs.Clone()
	}
	pivot := xs[len(xs)/2]
	var left, equal, right Seq[T]
	for _, v := range xs {
		switch {
		case v < pivot:
			left = append(left, v)
		case v > pivot:
			right = append(right, v)
		default:
			equal = append(equal, v)
		}
	}
	return Concat(Concat(Quicksort(left), equal), Quicksort(right))
}

// Concat returns a fresh Seq holding the elements of a followed by the
// elements of b. Neither argument is modified or aliased by the result.
func Concat[T any](a, b Seq[T]) Seq[T] {
	out := make(Seq[T], 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// Flatten concatenates a Seq of Seqs into one fresh Seq, preserving
// inner order within each nested Seq and outer order across them.
func Flatten[T any](xss Seq[Seq[T]]) Seq[T] {
	out := Seq[T]{}
	for _, xs := range xss {
		out = append(out, xs...)
	}
	return out
}

// Split partitions xs into the runs separated by elements equal to
// delim. Adjacent delimiters produce empty runs, and the trailing run is
// always present, even when empty: Split(Seq[int]{0}, 0) yields two
// empty runs.
func Split[T comparable](xs Seq[T], delim T) Seq[Seq[T]] {
	out := Seq[Seq[T]]{}
	run := Seq[T]{}
	for _, v := range xs {
		if v == delim {
			out = append(out, run)
			run = Seq[T]{}
			continue
		}
		run = append(run, v)
	}
	return append(out, run)
}

// Remove returns a fresh Seq omitting the element at index i.
// An out-of-range i is a silent no-op: the result is a full copy.
func Remove[T any](xs Seq[T], i int) Seq[T] {
	if i < 0 || i >= len(xs) {
		return xs.Clone()
	}
	out := make(Seq[T], 0, len(xs)-1)
	out = append(out, xs[:i]...)
	out = append(out, xs[i+1:]...)
	return out
}

// IndexOf returns the index of the first element equal to v, or -1 when
// absent. Linear scan.
func IndexOf[T comparable](xs Seq[T], v T) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}

// Contains reports whether xs holds an element equal to v.
func Contains[T comparable](xs Seq[T], v T) bool {
	return IndexOf(xs, v) >= 0
}

// Fill appends v to xs exactly n times, in place. The initializer for
// fixed-size containers; n <= 0 appends nothing.
func Fill[T any](xs *Seq[T], v T, n int) {
	for range max(n, 0) {
		*xs = append(*xs, v)
	}
}

// Reverse returns a fresh Seq with the elements of xs in reverse order.
func Reverse[T any](xs Seq[T]) Seq[T] {
	out := make(Seq[T], len(xs))
	for i, v := range xs {
		out[len(xs)-1-i] = v
	}
	return out
}
