// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

// Search appends every loaded element whose position lies within the
// query box to results and returns the extended slice. It never clears
// results, so the caller decides whether to reset the slice between
// calls; passing a reused slice avoids allocation on a steady query
// cadence. Results appear in depth-first, fixed-quadrant traversal
// order, not sorted by any spatial key.
//
// Search is read-only and safe to call concurrently with other Search
// calls, but not with Load or Release.
func (ix *Index[T]) Search(query Box, results []Element[T]) []Element[T] {
	if ix.released {
		textPanic("search after release")
	}
	return ix.search(&query, 0, 0, &ix.bounds, false, results)
}

// search descends the subtree of the node with local index atNode at
// depth d, whose geometric bounds are nb. Each child is pruned if its
// quadrant is disjoint from the query. contained records that an
// ancestor's quadrant was entirely inside the query: from that point
// down no further geometry test is needed, and whole leaf slices are
// appended without per-point checks.
func (ix *Index[T]) search(query *Box, atNode int32, d int, nb *Box, contained bool, results []Element[T]) []Element[T] {
	for q := int32(0); q < 4; q++ {
		child := atNode*4 + q
		s := ix.lu.offset[d+1] + child
		n := ix.counts[s]
		if n == 0 {
			continue
		}
		cb := nb.Quadrant(int(q))
		inside := contained
		if !inside {
			if query.ContainsBox(&cb) {
				inside = true
			} else if !query.Intersects(&cb) {
				continue
			}
		}
		if n > ix.maxLeafLen && d+1 < ix.lu.maxDepth {
			results = ix.search(query, child, d+1, &cb, inside, results)
			continue
		}
		leaf := &ix.leaves[s]
		span := ix.arena[leaf.first : leaf.first+leaf.count]
		if inside {
			results = append(results, span...)
			continue
		}
		for i := range span {
			if query.Contains(span[i].Pos) {
				results = append(results, span[i])
			}
		}
	}
	return results
}
