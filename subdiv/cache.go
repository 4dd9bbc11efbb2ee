// Package subdiv holds the precomputed subdivision topology the draw
// extractors read when a mesh is displayed with surface subdivision.
//
// The cache is produced once per subdivision build and is strictly
// read-only afterwards: extraction tasks on any goroutine may index it
// concurrently.
package subdiv

import "github.com/xiaozhiob/blender/mesh"

// Cache describes the quad grid a subdivided mesh expands into.
//
// Subdivided faces are walked as quads of 4 loops each. LoopVertIndex
// maps every subdivided loop back to the coarse vertex it coincides
// with, or -1 for points the subdivision introduced (edge midpoints,
// face centers, grid interiors).
type Cache struct {
	// LoopVertIndex has one entry per subdivided loop, in quad order:
	// entry quad*4+corner belongs to corner of quad. Values are coarse
	// vertex indices or -1.
	LoopVertIndex []int32

	// VertsPerCoarseEdge is the number of subdivided vertices each
	// coarse edge expands into, endpoints included.
	VertsPerCoarseEdge int
}

// NumSubdivLoops returns the total subdivided-loop count.
func (c *Cache) NumSubdivLoops() int { return len(c.LoopVertIndex) }

// NumSubdivQuads returns the number of subdivided quads.
func (c *Cache) NumSubdivQuads() int { return len(c.LoopVertIndex) / 4 }

// LooseSlotCount returns the number of index-buffer slots subdivided
// loose geometry occupies: a full edge span per loose edge plus one
// slot per loose vertex.
func (c *Cache) LooseSlotCount(rd *mesh.RenderData) int {
	return c.VertsPerCoarseEdge*rd.LooseEdgesNum + rd.LooseVertsNum
}

// FullSlotCount returns the complete subdivided slot total: face-derived
// loops followed by loose geometry.
func (c *Cache) FullSlotCount(rd *mesh.RenderData) int {
	return c.NumSubdivLoops() + c.LooseSlotCount(rd)
}
