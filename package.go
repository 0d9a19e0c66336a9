// Copyright 2026 The quadindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadindex provides a bulk-loaded quadtree index for fast
// axis-aligned rectangle queries over large point sets.
//
// The index is designed for workloads that rebuild the whole point set
// on a regular cadence, for example once per simulation step, rather
// than inserting and removing points one at a time. A rebuild is a
// single Load call: positions are encoded to quadrant-path codes, a
// counting pass sizes every node of the conceptual tree, leaves are
// carved out of one contiguous element arena, and a second pass places
// each element in its leaf. No per-node allocation and no per-element
// tree walk is performed, which keeps construction cache friendly.
//
// All operations are synchronous and CPU bound. An Index performs no
// internal locking: Load must not run concurrently with any other call
// on the same Index, while any number of Search calls may run
// concurrently against an Index that is not being loaded. Callers who
// query while rebuilding should keep two Index instances and alternate
// between them.
package quadindex
