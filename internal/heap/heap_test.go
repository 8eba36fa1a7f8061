// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package heap

import (
	"sort"
	"testing"

	"github.com/dsnet/huffman/internal/testutil"
)

func intLess(x, y int) bool { return x < y }

func TestHeap(t *testing.T) {
	r := testutil.NewRand(0)
	h := New(1000, intLess)
	var want []int
	for h.Len() < h.Cap() {
		v := r.Intn(500)
		h.Push(v)
		want = append(want, v)
	}
	sort.Ints(want)

	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("element %d mismatch: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestHeapInterleaved(t *testing.T) {
	h := New(4, intLess)
	h.Push(5)
	h.Push(3)
	if got := h.Pop(); got != 3 {
		t.Errorf("Pop() = %d, want 3", got)
	}
	h.Push(1)
	h.Push(4)
	h.Push(2)
	if got := h.Peek(); got != 1 {
		t.Errorf("Peek() = %d, want 1", got)
	}
	var got []int
	for h.Len() > 0 {
		got = append(got, h.Pop())
	}
	want := []int{1, 2, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pop sequence mismatch: got %v, want %v", got, want)
		}
	}
}

func TestHeapCapacity(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: unexpected success", name)
			}
		}()
		f()
	}

	h := New(2, intLess)
	h.Push(1)
	h.Push(2)
	mustPanic("overflow", func() { h.Push(3) })
	h.Pop()
	h.Pop()
	mustPanic("underflow", func() { h.Pop() })
	mustPanic("peek", func() { h.Peek() })
	mustPanic("capacity", func() { New(0, intLess) })
}

func TestOrderSlice(t *testing.T) {
	r := testutil.NewRand(1)
	x := r.Perm(257)
	OrderSlice(x, intLess)
	for i := 1; i < len(x); i++ {
		if p := (i - 1) / 2; x[i] < x[p] {
			t.Fatalf("heap invariant violated at %d: parent %d > child %d", i, x[p], x[i])
		}
	}
	for i := 0; len(x) > 0; i++ {
		if got := PopSlice(&x, intLess); got != i {
			t.Fatalf("PopSlice() = %d, want %d", got, i)
		}
	}
}
