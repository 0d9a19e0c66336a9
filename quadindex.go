// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

import (
	"math"
)

// An Element is a single indexed item: a position in the plane plus an
// opaque payload carried along with it. Elements are stored by value
// and have no identity beyond position and payload.
type Element[T any] struct {
	Pos   Vec
	Value T
}

// A leafNode describes the contiguous arena slice reserved for one
// materialized leaf: elements [first, first+capacity), of which the
// first count are filled. capacity > 0 is the discriminator for "a
// leaf was materialized at this slot"; subdivided nodes are never
// materialized and exist only in the count table.
type leafNode struct {
	first    int32
	count    int32
	capacity int32
}

// An Index is a bulk-loaded quadtree over points in a square region.
// It is created by New, populated by Load, queried by Search, and
// freed by Release. See the package documentation for the concurrency
// rules.
type Index[T any] struct {
	bounds     Box
	maxLeafLen int32
	lu         lookup

	// counts[s] is the number of loaded elements whose quadrant path
	// passes through the node at slot s, i.e. the population of that
	// node's subtree. It drives both leaf allocation during Load and
	// the leaf-versus-internal decision during Search.
	counts []int32
	// leaves[s] is the leaf materialized at slot s, if any.
	leaves []leafNode
	// arena holds every loaded element, partitioned into the leaf
	// slices in pre-order.
	arena []Element[T]
	// codes caches each element's quadrant-path code between the
	// count and write passes. Reused across builds.
	codes []uint32

	released bool
}

// New creates an empty index over the square region bounds. maxDepth
// is the height of the conceptual quadtree, at most MaxDepth. A node
// holding more than maxLeafLen elements subdivides if its depth
// allows; nodes at or below the threshold become leaves. capacityHint
// pre-sizes the element arena and may be zero.
func New[T any](bounds Box, maxDepth, maxLeafLen, capacityHint int) (*Index[T], error) {
	if maxDepth < 1 || maxDepth > MaxDepth {
		return nil, fmtErr("max depth must be in [1, %d]: %d", MaxDepth, maxDepth)
	}
	if maxLeafLen < 1 {
		return nil, fmtErr("max leaf length must be positive: %d", maxLeafLen)
	}
	if capacityHint < 0 {
		return nil, fmtErr("capacity hint must not be negative: %d", capacityHint)
	}
	if !(bounds.Half.X > 0 && bounds.Half.Y > 0) {
		return nil, fmtErr("bounds must have positive extent: %s", bounds)
	}
	lu := newLookup(maxDepth)
	return &Index[T]{
		bounds:     bounds,
		maxLeafLen: int32(maxLeafLen),
		lu:         lu,
		counts:     make([]int32, lu.numSlots()),
		leaves:     make([]leafNode, lu.numSlots()),
		arena:      make([]Element[T], 0, capacityHint),
	}, nil
}

// Load rebuilds the index from elements, discarding any previously
// loaded content. An element positioned outside the index bounds fails
// the whole batch with an error wrapping ErrOutOfBounds; in that case
// the index still holds its previous build. Load retains no reference
// to the elements slice.
func (ix *Index[T]) Load(elements []Element[T]) error {
	if ix.released {
		return ErrReleased
	}
	if len(elements) > math.MaxInt32 {
		return fmtErr("element count overflows int32: %d", len(elements))
	}

	// Encode every position up front, before any table is touched.
	if cap(ix.codes) < len(elements) {
		ix.codes = make([]uint32, len(elements))
	}
	ix.codes = ix.codes[:len(elements)]
	for i := range elements {
		code, ok := ix.lu.encode(elements[i].Pos, &ix.bounds)
		if !ok {
			return wrapErr("element %d at %s is outside bounds %s",
				ErrOutOfBounds, i, elements[i].Pos, ix.bounds)
		}
		ix.codes[i] = code
	}

	// Full rebuild: zero the previous build's tallies and leaves.
	for i := range ix.counts {
		ix.counts[i] = 0
	}
	for i := range ix.leaves {
		ix.leaves[i] = leafNode{}
	}

	// Count pass. Each element tallies every node on its quadrant
	// path, so every slot ends up holding its subtree population.
	for _, code := range ix.codes {
		for d := ix.lu.maxDepth; d >= 0; d-- {
			ix.counts[ix.lu.slot(code, d)]++
		}
	}

	// Allocate leaves. The counts are exact, so the arena is sized to
	// the batch up front and never grows mid-build.
	if cap(ix.arena) < len(elements) {
		ix.arena = make([]Element[T], len(elements))
	}
	ix.arena = ix.arena[:len(elements)]
	ix.allocate(0, 0, 0)

	// Write pass.
	for i := range elements {
		ix.place(&elements[i], ix.codes[i])
	}
	return nil
}

// allocate walks the conceptual tree top-down from the node with local
// index atNode at depth d, visiting children in fixed quadrant order.
// A child whose subtree population exceeds maxLeafLen subdivides while
// depth remains; any other non-empty child becomes a leaf owning the
// next count elements of the arena. The updated arena cursor is
// returned, so that after the root call the materialized leaves
// exactly partition arena[0:len] in pre-order.
func (ix *Index[T]) allocate(atNode int32, d int, cursor int32) int32 {
	for q := int32(0); q < 4; q++ {
		child := atNode*4 + q
		s := ix.lu.offset[d+1] + child
		n := ix.counts[s]
		if n > ix.maxLeafLen && d+1 < ix.lu.maxDepth {
			cursor = ix.allocate(child, d+1, cursor)
		} else if n > 0 {
			ix.leaves[s] = leafNode{first: cursor, capacity: n}
			cursor += n
		}
	}
	return cursor
}

// place appends e to the shallowest leaf materialized on its quadrant
// path. The allocator chose leaves from the same counts the encoder
// reproduces here, so exactly one leaf with spare capacity exists on
// every element's path; anything else means the count and write passes
// diverged, which is unrecoverable.
func (ix *Index[T]) place(e *Element[T], code uint32) {
	for d := ix.lu.maxDepth; d >= 1; d-- {
		s := ix.lu.slot(code, d)
		if leaf := &ix.leaves[s]; leaf.capacity > 0 {
			if leaf.count == leaf.capacity {
				fmtPanic("leaf at slot %d overfull: count and write passes disagree", s)
			}
			ix.arena[leaf.first+leaf.count] = *e
			leaf.count++
			return
		}
	}
	fmtPanic("no leaf for element at %s: count and write passes disagree", e.Pos)
}

// Release frees the index's buffers. The index must not be used after
// Release: Load reports ErrReleased and Search panics.
func (ix *Index[T]) Release() {
	ix.counts = nil
	ix.leaves = nil
	ix.arena = nil
	ix.codes = nil
	ix.released = true
}

// Bounds returns the root bounds the index was created with.
func (ix *Index[T]) Bounds() Box {
	return ix.bounds
}

// Len returns the number of elements in the current build.
func (ix *Index[T]) Len() int {
	return len(ix.arena)
}

// MaxDepth returns the height of the conceptual quadtree.
func (ix *Index[T]) MaxDepth() int {
	return ix.lu.maxDepth
}

// MaxLeafLen returns the subdivision threshold.
func (ix *Index[T]) MaxLeafLen() int {
	return int(ix.maxLeafLen)
}
