// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

// MaxDepth is the deepest tree New accepts. The count and node tables
// hold one slot per conceptual tree node and therefore grow as
// 4^maxDepth, so the ceiling exists to keep table memory sane rather
// than because of any structural limit.
const MaxDepth = 12

// A lookup holds the two tables precomputed from a tree depth: the
// per-depth slot offsets and the bit-interleave table used to build
// quadrant-path codes. Both are built once by newLookup and read-only
// thereafter.
//
// Slot addressing works as follows. The conceptual tree is a complete
// 4-ary tree of height maxDepth. The node at depth d whose quadrant
// path from the root is p (read as a base-4 number) occupies slot
// offset[d] + p, so each depth owns a contiguous, non-overlapping
// block of the slot space.
type lookup struct {
	maxDepth int
	// offset[d] is the slot of the first node at depth d, i.e. the
	// prefix sum of 4^i for i < d. It has maxDepth+2 entries so that
	// offset[maxDepth+1] is the total slot count.
	offset []int32
	// spread[g] is grid coordinate g with a zero bit interleaved
	// after each of its maxDepth low bits.
	spread []uint32
}

func newLookup(maxDepth int) lookup {
	offset := make([]int32, maxDepth+2)
	n := int32(1)
	for d := 1; d <= maxDepth+1; d++ {
		offset[d] = offset[d-1] + n
		n *= 4
	}

	spread := make([]uint32, 1<<maxDepth)
	for g := range spread {
		var s uint32
		for i := 0; i < maxDepth; i++ {
			s |= uint32(g>>i&1) << (2 * i)
		}
		spread[g] = s
	}

	return lookup{maxDepth: maxDepth, offset: offset, spread: spread}
}

// numSlots returns the total node count of the conceptual tree.
func (lu *lookup) numSlots() int32 {
	return lu.offset[lu.maxDepth+1]
}

// slot returns the table slot of the node at depth d on the quadrant
// path encoded by code. The high 2*d bits of the code's 2*maxDepth
// significant bits are the path prefix down to depth d.
func (lu *lookup) slot(code uint32, d int) int32 {
	return lu.offset[d] + int32(code>>(2*(lu.maxDepth-d)))
}
