// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

// A Vec is a point in the plane.
type Vec struct {
	X float64
	Y float64
}

// A Box is an axis-aligned rectangle described by its center point and
// half-extents along each axis. All four edges are closed: a point
// exactly on an edge is inside.
//
// The Box given to New as the index's root bounds should be square.
// Non-square root bounds are accepted and keep all operations correct,
// but they stretch the quadrant grid and degrade query selectivity.
type Box struct {
	Center Vec
	Half   Vec
}

func (b *Box) MinX() float64 { return b.Center.X - b.Half.X }
func (b *Box) MinY() float64 { return b.Center.Y - b.Half.Y }
func (b *Box) MaxX() float64 { return b.Center.X + b.Half.X }
func (b *Box) MaxY() float64 { return b.Center.Y + b.Half.Y }

// Contains reports whether the point p lies within b.
func (b *Box) Contains(p Vec) bool {
	return p.X >= b.Center.X-b.Half.X &&
		p.X <= b.Center.X+b.Half.X &&
		p.Y >= b.Center.Y-b.Half.Y &&
		p.Y <= b.Center.Y+b.Half.Y
}

// ContainsBox reports whether o lies entirely within b.
func (b *Box) ContainsBox(o *Box) bool {
	return o.Center.X-o.Half.X >= b.Center.X-b.Half.X &&
		o.Center.X+o.Half.X <= b.Center.X+b.Half.X &&
		o.Center.Y-o.Half.Y >= b.Center.Y-b.Half.Y &&
		o.Center.Y+o.Half.Y <= b.Center.Y+b.Half.Y
}

// Intersects reports whether b and o share at least one point. Boxes
// that touch only along an edge or corner intersect, since edges are
// closed.
func (b *Box) Intersects(o *Box) bool {
	return b.Center.X+b.Half.X >= o.Center.X-o.Half.X &&
		b.Center.X-b.Half.X <= o.Center.X+o.Half.X &&
		b.Center.Y+b.Half.Y >= o.Center.Y-o.Half.Y &&
		b.Center.Y-b.Half.Y <= o.Center.Y+o.Half.Y
}

// Quadrant returns the q-th quadrant of b in the fixed traversal order
// used throughout the index: 0 is north-west, 1 is north-east, 2 is
// south-west, and 3 is south-east.
func (b *Box) Quadrant(q int) Box {
	h := Vec{X: b.Half.X / 2, Y: b.Half.Y / 2}
	c := Vec{X: b.Center.X - h.X, Y: b.Center.Y + h.Y}
	if q&1 != 0 {
		c.X = b.Center.X + h.X
	}
	if q&2 != 0 {
		c.Y = b.Center.Y - h.Y
	}
	return Box{Center: c, Half: h}
}
