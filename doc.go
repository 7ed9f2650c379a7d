// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optseq provides a small value algebra for Go: optional values,
// fallible results, an ordered sequence container with pure transforms,
// a lazy pull iterator, and a linear-scan associative map.
//
// The pieces layer leaf-first: [Option] has no dependencies, [Result] is
// built from Option, [Seq] utilities use Option for absent lookups,
// [Iter] yields Option values, and [HashMap] is built over two parallel
// Seqs.
//
// # Option and Result
//
// [Option] is a 0-or-1 value wrapper with value semantics:
//
//   - [Some], [None]: Constructors
//   - [Option.IsSome], [Option.IsNone]: Predicates
//   - [Option.Get]: Comma-ok accessor
//   - [Option.Unwrap]: Value or panic — the fail-fast path
//   - [Option.Or], [Option.OrElse], [Option.Expect]: Fallback paths
//   - [MapOption], [FlatMapOption], [MatchOption]: Combinators
//
// [Result] is an Ok/Err sum type. Its construction path from fallible
// lookups runs through Option:
//
//   - [Ok], [Err]: Constructors
//   - [OkOr]: Option → Result with a caller-supplied error value
//   - [ToOption]: Result → Option, discarding the error channel
//   - [MatchResult], [MapResult], [FlatMapResult], [MapErr]: Combinators
//
// Failure handling is tiered: absent-key and out-of-range operations are
// silent no-ops ([HashMap.Delete], [Remove]); lookups signal absence
// structurally ([HashMap.Get], [Seq.At], [IndexOf]'s -1 sentinel); and
// [Option.Unwrap], [Result.Unwrap], and [Option.Expect] panic, since no
// recovery mechanism exists at this layer.
//
// # Sequences
//
// [Seq] is a resizable, insertion-ordered container (a named slice).
// Push, Pop, Set, [Sort], and [Fill] mutate in place; [MapSeq],
// [FilterSeq], [FlatMapSeq], [Concat], [Quicksort], [Flatten], [Split],
// [Remove], and [Reverse] return fresh containers. [FoldLeft] and
// [FoldRight] take a caller-supplied seed. [Sort] is an in-place O(n²)
// selection sort; [Quicksort] allocates, partitioning around the middle
// element.
//
// # Iterators
//
// [Iter] is a single-pass pull iterator: [Iter.Next] yields Some(v)
// until the source is exhausted, then None forever. Iterators fuse —
// the exhaustion latch is explicit state, so composed iterators never
// re-scan a drained upstream.
//
//   - [IterSeq]: Iterator over a Seq, one independent cursor per call
//   - [MapIter]: Lazy map, exactly one upstream pull per downstream Next
//   - [FilterIter]: Lazy filter, pulls until a match or exhaustion
//   - [TakeIter]: Lazy bounded prefix
//   - [Collect], [FoldIter], [Iter.Print]: Terminal operations
//
// Iterators are single-owner: no internal synchronization is provided,
// and calling Next from two goroutines races on the cursor.
//
// # HashMap
//
// [HashMap] pairs a key Seq with a value Seq index-for-index. Lookup is
// a linear scan — O(n) insert/get/has/delete, a deliberate trade for
// small maps. Keys stay pairwise distinct, the parallel Seqs stay equal
// in length, and never-updated keys keep insertion order, which
// [HashMap.String] and [HashMap.Iter] expose.
//
// # Example
//
//	squares := optseq.Collect(optseq.MapIter(
//		optseq.IterSeq(optseq.Seq[int]{1, 2, 3}),
//		func(x int) int { return x * x },
//	))
//	// squares == optseq.Seq[int]{1, 4, 9}
//
//	m := optseq.NewHashMap[string, int]()
//	m.Insert("a", 1)
//	m.Insert("a", 3)
//	m.Get("a") // Some(3)
package optseq
