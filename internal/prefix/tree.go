// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package prefix

import (
	"github.com/dsnet/huffman/internal"
	"github.com/dsnet/huffman/internal/heap"
)

// none marks a missing child.
const none = -1

type node struct {
	weight uint64
	sym    uint32 // Leaf symbol, or Internal
	low    uint32 // Smallest symbol in the subtree; breaks weight ties
	left   int32
	right  int32
}

// Tree is a binary prefix tree stored as an arena of nodes. Children are
// referenced by index, so the whole tree is released with the Tree.
type Tree struct {
	nodes []node
	root  int32
}

func (t *Tree) newNode(weight uint64, sym, low uint32, left, right int32) int32 {
	t.nodes = append(t.nodes, node{weight, sym, low, left, right})
	return int32(len(t.nodes) - 1)
}

// less orders nodes by weight, then by the smallest symbol they contain.
// Subtrees are disjoint, so the order is total and the resulting tree is
// deterministic.
func (t *Tree) less(x, y int32) bool {
	nx, ny := &t.nodes[x], &t.nodes[y]
	if nx.weight != ny.weight {
		return nx.weight < ny.weight
	}
	return nx.low < ny.low
}

// BuildTree constructs a Huffman tree from the symbol counts in h.
//
// The two lightest nodes are repeatedly merged, the first popped becoming
// the left child. If only one symbol is present, its leaf is wrapped in an
// internal root so that the symbol receives the 1-bit code "0".
func BuildTree(h *Histogram) (*Tree, error) {
	n := h.Symbols()
	if n == 0 {
		return nil, ErrEmpty
	}
	t := &Tree{nodes: make([]node, 0, 2*n)}
	q := heap.New(MaxSyms, t.less)
	for sym, cnt := range h {
		if cnt > 0 {
			q.Push(t.newNode(cnt, uint32(sym), uint32(sym), none, none))
		}
	}

	if q.Len() == 1 {
		leaf := q.Pop()
		nl := t.nodes[leaf]
		t.root = t.newNode(nl.weight, Internal, nl.low, leaf, none)
		return t, nil
	}
	for q.Len() > 1 {
		x, y := q.Pop(), q.Pop()
		nx, ny := t.nodes[x], t.nodes[y]
		low := nx.low
		if ny.low < low {
			low = ny.low
		}
		q.Push(t.newNode(nx.weight+ny.weight, Internal, low, x, y))
	}
	t.root = q.Pop()

	if internal.Debug && !t.Codes().IsPrefixFree() {
		panic("prefix: tree produced overlapping codes")
	}
	return t, nil
}

// ReconstructTree rebuilds a tree from a set of codes.
//
// Starting from an empty internal root, each code is walked bit by bit,
// creating internal nodes for unvisited branches, and its symbol is placed
// on the node reached at the end. The weights of the original tree are not
// recovered. ErrInvalid is returned for zero-length codes, duplicate
// symbols, or codes that are not prefix-free.
func ReconstructTree(codes PrefixCodes) (*Tree, error) {
	t := &Tree{nodes: make([]node, 0, 2*len(codes)+1)}
	t.root = t.newNode(0, Internal, 0, none, none)

	var seen [MaxSyms]bool
	for _, c := range codes {
		if c.Sym >= MaxSyms || seen[c.Sym] {
			return nil, ErrInvalid
		}
		if c.Len == 0 || c.Len > MaxDepth || int(c.Len) != len(c.Bits) {
			return nil, ErrInvalid
		}
		seen[c.Sym] = true

		n := t.root
		for _, bit := range c.Bits {
			if t.nodes[n].sym != Internal {
				return nil, ErrInvalid // Code passes through a leaf
			}
			next, ok := t.Step(n, bit)
			if !ok {
				next = t.newNode(0, Internal, 0, none, none)
				if bit {
					t.nodes[n].right = next
				} else {
					t.nodes[n].left = next
				}
			}
			n = next
		}
		nd := &t.nodes[n]
		if nd.sym != Internal || nd.left != none || nd.right != none {
			return nil, ErrInvalid // Code ends on an occupied node
		}
		nd.sym = c.Sym
	}
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 { return t.root }

// Step returns the child of n selected by bit (false is left, true is
// right). It reports false if that child does not exist.
func (t *Tree) Step(n int32, bit bool) (int32, bool) {
	c := t.nodes[n].left
	if bit {
		c = t.nodes[n].right
	}
	return c, c != none
}

// Leaf reports the symbol of n if n is a leaf.
func (t *Tree) Leaf(n int32) (uint32, bool) {
	sym := t.nodes[n].sym
	return sym, sym < Internal
}

// Weight reports the total count of all symbols below n.
func (t *Tree) Weight(n int32) uint64 { return t.nodes[n].weight }

// Codes derives the code table of the tree by a depth-first walk.
// The result is sorted by symbol.
func (t *Tree) Codes() PrefixCodes {
	var path [MaxDepth]bool
	var codes PrefixCodes
	t.walk(t.root, path[:0], &codes)
	codes.SortBySymbol()
	return codes
}

func (t *Tree) walk(n int32, path []bool, codes *PrefixCodes) {
	if n == none {
		return
	}
	nd := &t.nodes[n]
	if nd.sym < Internal {
		bits := make([]bool, len(path))
		copy(bits, path)
		*codes = append(*codes, PrefixCode{
			Sym:  nd.sym,
			Cnt:  nd.weight,
			Len:  uint32(len(path)),
			Bits: bits,
		})
		return
	}
	if len(path) == MaxDepth {
		panic("prefix: tree exceeds maximum depth")
	}
	t.walk(nd.left, append(path, false), codes)
	t.walk(nd.right, append(path, true), codes)
}
