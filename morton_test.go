// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_Encode(t *testing.T) {
	t.Run("maxDepth=1", func(t *testing.T) {
		lu := newLookup(1)

		testCases := []struct {
			name     string
			p        Vec
			expected uint32
			ok       bool
		}{
			{"NW", Vec{-50, 50}, 0, true},
			{"NE", Vec{50, 50}, 1, true},
			{"SW", Vec{-50, -50}, 2, true},
			{"SE", Vec{50, -50}, 3, true},
			// Seam points: ties go east along X and south along Y.
			{"Center", Vec{0, 0}, 3, true},
			{"NorthSeam", Vec{0, 50}, 1, true},
			{"WestSeam", Vec{-50, 0}, 2, true},
			// Closed max edges of the root bounds.
			{"NECorner", Vec{100, 100}, 1, true},
			{"SWCorner", Vec{-100, -100}, 2, true},
			{"SECorner", Vec{100, -100}, 3, true},
			// Out of range.
			{"PastEast", Vec{100.001, 0}, 0, false},
			{"PastNorth", Vec{0, 101}, 0, false},
			{"PastWest", Vec{-1e9, 0}, 0, false},
			{"NaN", Vec{math.NaN(), 0}, 0, false},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				code, ok := lu.encode(testCase.p, &unitBox)

				assert.Equal(t, testCase.ok, ok)
				if testCase.ok {
					assert.Equal(t, testCase.expected, code)
				}
			})
		}
	})

	t.Run("maxDepth=2", func(t *testing.T) {
		lu := newLookup(2)

		testCases := []struct {
			name     string
			p        Vec
			expected uint32
		}{
			// Quadrant path NE then NE of NE.
			{"DeepNE", Vec{90, 90}, 5},
			// Quadrant path SW then SW of SW.
			{"DeepSW", Vec{-90, -90}, 10},
			// NW of NW is the zero path.
			{"DeepNW", Vec{-90, 90}, 0},
			// SE of SE is the all-ones path.
			{"DeepSE", Vec{90, -90}, 15},
			// Same top-level quadrant, different subquadrant.
			{"NEThenSW", Vec{10, 30}, 6},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				code, ok := lu.encode(testCase.p, &unitBox)

				assert.True(t, ok)
				assert.Equal(t, testCase.expected, code)
			})
		}
	})
}

func TestGridCoord(t *testing.T) {
	testCases := []struct {
		name     string
		off      float64
		expected int
	}{
		{"Min", 0, 0},
		{"Interior", 99, 1},
		{"CellSeam", 50, 1},
		{"LastCell", 199, 3},
		{"ClosedMax", 200, 3},
		{"Negative", -0.001, -1},
		{"PastMax", 200.001, -1},
		{"NaN", math.NaN(), -1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, gridCoord(testCase.off, 200, 4))
		})
	}
}
