// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

// encode maps a point within bounds to its quadrant-path code: the
// Z-order interleaving of the point's coordinates on the 2^maxDepth
// grid, whose 2*maxDepth significant bits read, two at a time from the
// top, as the child selections from the root down to the deepest grid
// cell. The second return value is false when p lies outside bounds,
// in which case the code must not be used.
//
// The grid stores its rows north to south, so the Y axis is flipped
// during normalization; this keeps the code's child selections aligned
// with Box.Quadrant's ordering. Grid cells are half-open: a point on a
// shared cell edge belongs to the cell with the greater storage index,
// which is the east cell along X and the south cell along Y. The max
// edges of the root bounds are closed so that every point the bounds
// Contains is encodable.
func (lu *lookup) encode(p Vec, bounds *Box) (uint32, bool) {
	side := 1 << lu.maxDepth
	gx := gridCoord(p.X-bounds.MinX(), 2*bounds.Half.X, side)
	gy := gridCoord(bounds.MaxY()-p.Y, 2*bounds.Half.Y, side)
	if gx < 0 || gy < 0 {
		return 0, false
	}
	return lu.spread[gx] | lu.spread[gy]<<1, true
}

// gridCoord scales an offset within [0, extent] to a cell index in
// [0, side). A negative return value means the offset, and hence the
// point, is out of range. The comparison is written to send NaN out of
// range too.
func gridCoord(off, extent float64, side int) int {
	if !(off >= 0 && off <= extent) {
		return -1
	}
	g := int(off / extent * float64(side))
	if g == side { // off == extent: closed max edge
		g = side - 1
	}
	return g
}
