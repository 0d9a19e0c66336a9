// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

import (
	"fmt"
	"strconv"
)

// String returns the point in the format "[x,y]".
func (p Vec) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '[')
	b = appendCoord(b, p.X)
	b = append(b, ',')
	b = appendCoord(b, p.Y)
	b = append(b, ']')
	return string(b)
}

// String returns the box's corner coordinates in the format
// "[minX,minY,maxX,maxY]".
func (b Box) String() string {
	s := make([]byte, 0, 48)
	s = append(s, '[')
	s = appendCoord(s, b.MinX())
	s = append(s, ',')
	s = appendCoord(s, b.MinY())
	s = append(s, ',')
	s = appendCoord(s, b.MaxX())
	s = append(s, ',')
	s = appendCoord(s, b.MaxY())
	s = append(s, ']')
	return string(s)
}

// String returns a summary description of the index.
func (ix *Index[T]) String() string {
	return fmt.Sprintf("Index{Bounds:%s,Len:%d,MaxDepth:%d,MaxLeafLen:%d}",
		ix.bounds, len(ix.arena), ix.lu.maxDepth, ix.maxLeafLen)
}

func appendCoord(b []byte, f float64) []byte {
	return strconv.AppendFloat(b, f, 'g', 8, 64)
}
