package subdiv

import "github.com/xiaozhiob/blender/mesh"

// BuildLinear builds a cache for linear (non-smoothing) subdivision of
// the given mesh at the given level. Level 1 splits every face into one
// quad per corner; each further level splits every quad in four.
//
// Quad ordering is face-major, then corner-major, then row-major within
// a corner's grid. Only the grid corner that coincides with the coarse
// corner vertex keeps a coarse mapping; every other loop is synthetic.
//
// Positions are not computed here: the extractors only consume topology,
// and position evaluation lives with the subdivision surface itself.
func BuildLinear(v mesh.View, level int) *Cache {
	if level < 1 {
		level = 1
	}
	// Grid side length, in quads, of the patch owned by one corner.
	g := 1 << (level - 1)

	quads := 0
	for f := 0; f < v.NumFaces(); f++ {
		start, end := v.FaceCornerRange(f)
		quads += (end - start) * g * g
	}

	loops := make([]int32, 0, quads*4)
	for f := 0; f < v.NumFaces(); f++ {
		start, end := v.FaceCornerRange(f)
		for c := start; c < end; c++ {
			coarse := int32(v.CornerVert(c))
			for y := 0; y < g; y++ {
				for x := 0; x < g; x++ {
					var loop0 int32 = -1
					if x == 0 && y == 0 {
						// The outermost quad of the corner grid touches
						// the coarse vertex with its first loop.
						loop0 = coarse
					}
					loops = append(loops, loop0, -1, -1, -1)
				}
			}
		}
	}

	return &Cache{
		LoopVertIndex:      loops,
		VertsPerCoarseEdge: (1 << level) + 1,
	}
}
