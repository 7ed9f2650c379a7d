// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package optseq_test

import (
	"code.hybscloud.com/optseq"
	"testing"
)

func TestOptionAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		o := optseq.Some(42)
		_ = o.Or(0)
	})
	if allocs > 0 {
		t.Errorf("Some/Or allocs = %v; want 0", allocs)
	}

	allocs2 := testing.AllocsPerRun(100, func() {
		o := optseq.None[int]()
		_, _ = o.Get()
	})
	if allocs2 > 0 {
		t.Errorf("None/Get allocs = %v; want 0", allocs2)
	}
}

func TestIndexOfAllocations(t *testing.T) {
	xs := optseq.Seq[int]{3, 1, 4, 1, 5, 9, 2, 6}
	allocs := testing.AllocsPerRun(100, func() {
		_ = optseq.IndexOf(xs, 6)
	})
	if allocs > 0 {
		t.Errorf("IndexOf allocs = %v; want 0", allocs)
	}
}

func TestIterNextAllocations(t *testing.T) {
	xs := make(optseq.Seq[int], 1024)
	it := optseq.IterSeq(xs)
	allocs := testing.AllocsPerRun(100, func() {
		_ = it.Next()
	})
	if allocs > 0 {
		t.Errorf("Next allocs = %v; want 0", allocs)
	}
}
