// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package heap implements a bounded binary min-heap.
//
// The heap is array-backed and zero-indexed: the children of element i live
// at 2i+1 and 2i+2 and its parent at (i-1)/2. Exceeding the capacity given
// at construction is a programming error and panics.
package heap

import "github.com/dsnet/huffman/internal"

var (
	errOverflow  = internal.Error("heap capacity exceeded")
	errUnderflow = internal.Error("pop from empty heap")
)

// Heap is a min-heap of T ordered by a less function.
type Heap[T any] struct {
	data []T
	less func(x, y T) bool
}

// New returns an empty heap that holds at most capacity elements.
func New[T any](capacity int, less func(x, y T) bool) *Heap[T] {
	if capacity <= 0 || less == nil {
		panic("heap: invalid heap configuration")
	}
	return &Heap[T]{data: make([]T, 0, capacity), less: less}
}

// Len reports the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Cap reports the maximum number of elements the heap can hold.
func (h *Heap[T]) Cap() int { return cap(h.data) }

// Push inserts x into the heap.
func (h *Heap[T]) Push(x T) {
	if len(h.data) == cap(h.data) {
		panic(errOverflow)
	}
	PushSlice(&h.data, x, h.less)
}

// Pop removes and returns the smallest element.
func (h *Heap[T]) Pop() T {
	if len(h.data) == 0 {
		panic(errUnderflow)
	}
	return PopSlice(&h.data, h.less)
}

// Peek returns the smallest element without removing it.
func (h *Heap[T]) Peek() T {
	if len(h.data) == 0 {
		panic(errUnderflow)
	}
	return h.data[0]
}

// PushSlice adds item to x while preserving the min-heap invariant
// determined by less.
func PushSlice[T any](x *[]T, item T, less func(x, y T) bool) {
	*x = append(*x, item)
	siftUp(*x, len(*x)-1, less)
}

// PopSlice removes the smallest element from x and restores the heap
// invariant over the remaining elements.
func PopSlice[T any](x *[]T, less func(x, y T) bool) T {
	ret := (*x)[0]
	last := len(*x) - 1
	(*x)[0] = (*x)[last]
	var zero T
	(*x)[last] = zero
	*x = (*x)[:last]
	if len(*x) > 0 {
		siftDown(*x, 0, less)
	}
	return ret
}

// OrderSlice shuffles x into min-heap order.
func OrderSlice[T any](x []T, less func(x, y T) bool) {
	for i := len(x)/2 - 1; i >= 0; i-- {
		siftDown(x, i, less)
	}
}

func siftUp[T any](x []T, i int, less func(x, y T) bool) {
	for i > 0 {
		p := (i - 1) / 2
		if !less(x[i], x[p]) {
			break
		}
		x[p], x[i] = x[i], x[p]
		i = p
	}
}

func siftDown[T any](x []T, i int, less func(x, y T) bool) {
	for {
		left := 2*i + 1
		if left >= len(x) {
			break
		}
		c := left
		if right := left + 1; right < len(x) && less(x[right], x[left]) {
			c = right
		}
		if !less(x[c], x[i]) {
			break
		}
		x[c], x[i] = x[i], x[c]
		i = c
	}
}
