package draw

import (
	"time"

	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
	"github.com/xiaozhiob/blender/subdiv"
)

// Scheduler drives extractors over a mesh. A nil Pool runs everything
// on the calling goroutine; Grain defaults to [parallel.DefaultGrain].
//
// Faces, loose edges and loose vertices form one flat work space so a
// single range split covers all three element kinds. Each chunk gets a
// private builder from Init, chunks merge pairwise through Reduce, and
// Finish runs once on the survivor. The split is never observable in
// the output: any chunking produces the same buffer.
type Scheduler struct {
	Pool  *parallel.Pool
	Grain int
}

func (s *Scheduler) grain() int {
	if s.Grain > 0 {
		return s.Grain
	}
	return parallel.DefaultGrain
}

// Extract builds the base-resolution index buffer for ext into buf.
func (s *Scheduler) Extract(rd *mesh.RenderData, ext Extractor, buf *gpu.IndexBuffer) {
	started := time.Now()
	faces := rd.FacesNum
	edges := rd.LooseEdgesNum
	n := faces + edges + rd.LooseVertsNum

	b := parallel.ForRangeReduce(s.Pool, n, s.grain(),
		func() *gpu.IndexBuilder { return ext.Init(rd) },
		func(acc *gpu.IndexBuilder, start, end int) {
			for i := start; i < end; i++ {
				switch {
				case i < faces:
					ext.IterFace(rd, i, acc)
				case i < faces+edges:
					ext.IterLooseEdge(rd, i-faces, acc)
				default:
					ext.IterLooseVert(rd, i-faces-edges, acc)
				}
			}
		},
		ext.Reduce,
	)
	ext.Finish(rd, b, buf)

	slogger().Debug("extract",
		"prim", ext.Prim().String(),
		"verts", rd.VertsNum,
		"indices", buf.Len(),
		"restarts", buf.RestartCount(),
		"took", time.Since(started))
}

// ExtractSubdiv builds the subdivided index buffer for ext into buf.
func (s *Scheduler) ExtractSubdiv(sc *subdiv.Cache, rd *mesh.RenderData, ext Extractor, buf *gpu.IndexBuffer) {
	started := time.Now()
	quads := sc.NumSubdivQuads()

	b := parallel.ForRangeReduce(s.Pool, quads, s.grain(),
		func() *gpu.IndexBuilder { return ext.InitSubdiv(sc, rd) },
		func(acc *gpu.IndexBuilder, start, end int) {
			for q := start; q < end; q++ {
				ext.IterSubdivQuad(sc, rd, q, acc)
			}
		},
		ext.Reduce,
	)
	ext.IterLooseGeomSubdiv(sc, rd, b, s.Pool)
	ext.FinishSubdiv(sc, rd, b, buf)

	slogger().Debug("extract subdiv",
		"prim", ext.Prim().String(),
		"quads", quads,
		"indices", buf.Len(),
		"took", time.Since(started))
}

// ExtractInto runs the registered extractors for the requested kinds
// and stores each result in the matching BufferList slot.
func (s *Scheduler) ExtractInto(rd *mesh.RenderData, bl *BufferList, kinds ...gpu.PrimitiveKind) {
	for _, k := range kinds {
		ext := ExtractorFor(k)
		if ext == nil {
			slogger().Warn("no extractor registered", "prim", k.String())
			continue
		}
		s.Extract(rd, ext, bl.IndexBuffer(k))
	}
}

// ExtractSubdivInto is the subdivided counterpart of ExtractInto.
func (s *Scheduler) ExtractSubdivInto(sc *subdiv.Cache, rd *mesh.RenderData, bl *BufferList, kinds ...gpu.PrimitiveKind) {
	for _, k := range kinds {
		ext := ExtractorFor(k)
		if ext == nil {
			slogger().Warn("no extractor registered", "prim", k.String())
			continue
		}
		s.ExtractSubdiv(sc, rd, ext, bl.IndexBuffer(k))
	}
}
