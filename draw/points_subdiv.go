package draw

import (
	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
	"github.com/xiaozhiob/blender/subdiv"
)

func (pointsExtractor) InitSubdiv(sc *subdiv.Cache, rd *mesh.RenderData) *gpu.IndexBuilder {
	return gpu.NewIndexBuilder(gpu.PrimPoints, rd.VertsNum, sc.FullSlotCount(rd))
}

// IterSubdivQuad visits the four loops of one subdivided quad. Loops
// that map to no coarse vertex, or whose coarse vertex maps to no
// original vertex, contribute nothing; loops on hidden coarse vertices
// force the entry to restart. The stored slot is the absolute
// subdivided loop index.
func (pointsExtractor) IterSubdivQuad(sc *subdiv.Cache, rd *mesh.RenderData, quad int, b *gpu.IndexBuilder) {
	for loop := quad * 4; loop < quad*4+4; loop++ {
		coarse := sc.LoopVertIndex[loop]
		switch classifySubdivVert(rd.View, coarse) {
		case vertEmit:
			b.SetPoint(int(coarse), uint32(loop))
		case vertRestart:
			b.SetPointRestart(int(coarse))
		}
	}
}

// IterLooseGeomSubdiv fills the loose slots that follow the subdivided
// loops. Each coarse loose edge owns a run of VertsPerCoarseEdge slots;
// only the two endpoints map back to coarse vertices, so the interior
// slots stay at the restart value. Loose vertices follow the edge runs.
//
// The work parallelizes over coarse loose elements with private forks
// joined back into b, so callers may hold b exclusively.
func (pointsExtractor) IterLooseGeomSubdiv(sc *subdiv.Cache, rd *mesh.RenderData, b *gpu.IndexBuilder, p *parallel.Pool) {
	edges := rd.LooseEdgesNum
	n := edges + rd.LooseVertsNum
	if n == 0 {
		return
	}
	base := sc.NumSubdivLoops()
	per := sc.VertsPerCoarseEdge

	part := parallel.ForRangeReduce(p, n, parallel.DefaultGrain,
		func() *gpu.IndexBuilder { return b.Fork() },
		func(acc *gpu.IndexBuilder, start, end int) {
			for i := start; i < end; i++ {
				if i < edges {
					v1, v2 := rd.LooseEdgeVerts(i)
					run := base + i*per
					setPoint(acc, rd.View, v1, run)
					setPoint(acc, rd.View, v2, run+per-1)
				} else {
					j := i - edges
					slot := base + edges*per + j
					setPoint(acc, rd.View, rd.LooseVert(j), slot)
				}
			}
		},
		func(to, from *gpu.IndexBuilder) { to.Join(from) },
	)
	b.Join(part)
}

func (pointsExtractor) FinishSubdiv(sc *subdiv.Cache, rd *mesh.RenderData, b *gpu.IndexBuilder, buf *gpu.IndexBuffer) {
	b.BuildInto(buf)
}
