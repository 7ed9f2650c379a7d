// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/optseq"
	"github.com/google/go-cmp/cmp"
)

func TestIterSeqYieldsAll(t *testing.T) {
	xs := optseq.Seq[int]{1, 2, 3}
	it := optseq.IterSeq(xs)

	for i, want := range xs {
		v, ok := it.Next().Get()
		if !ok {
			t.Fatalf("yield %d: got None, want Some(%d)", i, want)
		}
		if v != want {
			t.Fatalf("yield %d: got %d, want %d", i, v, want)
		}
	}
	if it.Next().IsSome() {
		t.Fatal("yield past end is Some, want None")
	}
}

func TestCollectRoundTrip(t *testing.T) {
	xs := optseq.Seq[int]{4, 7, 7, 0}
	got := optseq.Collect(optseq.IterSeq(xs))
	if diff := cmp.Diff(xs, got); diff != "" {
		t.Fatalf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectEmptySource(t *testing.T) {
	got := optseq.Collect(optseq.IterSeq(optseq.Seq[int]{}))
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestIterExhaustionLatch(t *testing.T) {
	it := optseq.IterSeq(optseq.Seq[int]{1})

	if it.Done() {
		t.Fatal("fresh iterator reports Done")
	}
	if _, ok := it.Next().Get(); !ok {
		t.Fatal("first yield is None")
	}
	if it.Next().IsSome() {
		t.Fatal("second yield is Some")
	}
	if !it.Done() {
		t.Fatal("iterator does not report Done after None")
	}
	for range 3 {
		if it.Next().IsSome() {
			t.Fatal("exhausted iterator yielded Some")
		}
	}
}

func TestSecondCollectIsEmpty(t *testing.T) {
	it := optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3}), func(x int) int {
		return x * x
	})

	first := optseq.Collect(it)
	if diff := cmp.Diff(optseq.Seq[int]{1, 4, 9}, first); diff != "" {
		t.Fatalf("first Collect mismatch (-want +got):\n%s", diff)
	}

	second := optseq.Collect(it)
	if len(second) != 0 {
		t.Fatalf("second Collect = %v, want empty", second)
	}
}

func TestMapIterLazy(t *testing.T) {
	calls := 0
	it := optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3}), func(x int) int {
		calls++
		return x * 10
	})

	if calls != 0 {
		t.Fatalf("f called %d times before any pull, want 0", calls)
	}
	if v, ok := it.Next().Get(); !ok || v != 10 {
		t.Fatalf("got (%d, %v), want (10, true)", v, ok)
	}
	if calls != 1 {
		t.Fatalf("f called %d times after one pull, want 1", calls)
	}
}

func TestMapIterOnePullPerCall(t *testing.T) {
	pulls := 0
	src := optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3}), func(x int) int {
		pulls++
		return x
	})
	it := optseq.MapIter(src, func(x int) int { return -x })

	_ = it.Next()
	if pulls != 1 {
		t.Fatalf("upstream pulled %d times for one downstream call, want 1", pulls)
	}
}

func TestFilterIterLazy(t *testing.T) {
	it := optseq.FilterIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3, 4, 5}), func(x int) bool {
		return x%2 == 0
	})

	if v, ok := it.Next().Get(); !ok || v != 2 {
		t.Fatalf("got (%d, %v), want (2, true)", v, ok)
	}
	if v, ok := it.Next().Get(); !ok || v != 4 {
		t.Fatalf("got (%d, %v), want (4, true)", v, ok)
	}
	if it.Next().IsSome() {
		t.Fatal("yield past last match is Some, want None")
	}
	if it.Next().IsSome() {
		t.Fatal("exhausted filter yielded Some")
	}
}

func TestFilterIterNoMatch(t *testing.T) {
	it := optseq.FilterIter(optseq.IterSeq(optseq.Seq[int]{1, 3}), func(x int) bool {
		return x%2 == 0
	})
	if it.Next().IsSome() {
		t.Fatal("filter with no matches yielded Some")
	}
	if !it.Done() {
		t.Fatal("filter is not Done after draining upstream")
	}
}

func TestFilterIterDoesNotRescan(t *testing.T) {
	pulls := 0
	src := optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2}), func(x int) int {
		pulls++
		return x
	})
	it := optseq.FilterIter(src, func(x int) bool { return false })

	_ = it.Next()
	after := pulls
	_ = it.Next()
	_ = it.Next()
	if pulls != after {
		t.Fatalf("exhausted filter pulled upstream again: %d pulls, want %d", pulls, after)
	}
}

func TestMapFilterPipeline(t *testing.T) {
	got := optseq.Collect(optseq.FilterIter(
		optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3, 4}), func(x int) int {
			return x * x
		}),
		func(x int) bool { return x > 2 },
	))
	want := optseq.Seq[int]{4, 9, 16}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pipeline mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeIter(t *testing.T) {
	got := optseq.Collect(optseq.TakeIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3, 4}), 2))
	want := optseq.Seq[int]{1, 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TakeIter mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeIterStopsPulling(t *testing.T) {
	pulls := 0
	src := optseq.MapIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3, 4}), func(x int) int {
		pulls++
		return x
	})

	_ = optseq.Collect(optseq.TakeIter(src, 2))
	if pulls != 2 {
		t.Fatalf("upstream pulled %d times, want 2", pulls)
	}
}

func TestTakeIterPastEnd(t *testing.T) {
	got := optseq.Collect(optseq.TakeIter(optseq.IterSeq(optseq.Seq[int]{1}), 5))
	want := optseq.Seq[int]{1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("TakeIter mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldIter(t *testing.T) {
	got := optseq.FoldIter(optseq.IterSeq(optseq.Seq[int]{1, 2, 3}), 10, func(acc, x int) int {
		return acc + x
	})
	if got != 16 {
		t.Fatalf("got %d, want 16", got)
	}
}

func TestIndependentIterators(t *testing.T) {
	xs := optseq.Seq[int]{1, 2}
	a := optseq.IterSeq(xs)
	b := optseq.IterSeq(xs)

	_ = a.Next()
	_ = a.Next()
	_ = a.Next()

	if v, ok := b.Next().Get(); !ok || v != 1 {
		t.Fatalf("second iterator disturbed: got (%d, %v), want (1, true)", v, ok)
	}
}

func TestPrint(t *testing.T) {
	var sb strings.Builder
	optseq.IterSeq(optseq.Seq[int]{1, 2, 3}).Print(&sb)
	want := "1\n2\n3\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}
}

func TestPrintEmpty(t *testing.T) {
	var sb strings.Builder
	optseq.IterSeq(optseq.Seq[string]{}).Print(&sb)
	if sb.String() != "" {
		t.Fatalf("got %q, want empty", sb.String())
	}
}
