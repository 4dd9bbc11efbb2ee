package draw

import (
	"fmt"

	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
	"github.com/xiaozhiob/blender/subdiv"
)

// Extractor produces one index buffer from mesh topology. Implementations
// are stateless strategy objects; all run state lives in the per-task
// [gpu.IndexBuilder] values the scheduler threads through the methods.
//
// Base-resolution protocol: Init once, then the three Iter methods for
// every face / loose edge / loose vertex (any order between element
// kinds owned by different tasks), Reduce pairwise over per-task
// builders, Finish once on the survivor.
//
// Subdivided protocol: InitSubdiv, IterSubdivQuad per subdivided quad,
// one IterLooseGeomSubdiv call (which parallelizes internally), then
// FinishSubdiv.
type Extractor interface {
	// Prim identifies the primitive kind this extractor emits and keys
	// its slot in the registry and in a BufferList.
	Prim() gpu.PrimitiveKind

	Init(rd *mesh.RenderData) *gpu.IndexBuilder
	IterFace(rd *mesh.RenderData, face int, b *gpu.IndexBuilder)
	IterLooseEdge(rd *mesh.RenderData, i int, b *gpu.IndexBuilder)
	IterLooseVert(rd *mesh.RenderData, i int, b *gpu.IndexBuilder)
	Reduce(to, from *gpu.IndexBuilder)
	Finish(rd *mesh.RenderData, b *gpu.IndexBuilder, buf *gpu.IndexBuffer)

	InitSubdiv(sc *subdiv.Cache, rd *mesh.RenderData) *gpu.IndexBuilder
	IterSubdivQuad(sc *subdiv.Cache, rd *mesh.RenderData, quad int, b *gpu.IndexBuilder)
	IterLooseGeomSubdiv(sc *subdiv.Cache, rd *mesh.RenderData, b *gpu.IndexBuilder, p *parallel.Pool)
	FinishSubdiv(sc *subdiv.Cache, rd *mesh.RenderData, b *gpu.IndexBuilder, buf *gpu.IndexBuffer)
}

// The extractor registry, keyed by primitive kind. Populated from init
// functions at process start and read-only afterwards.
var extractors [3]Extractor

// Register installs an extractor under its primitive kind. Meant to be
// called from package init; registering two extractors for the same
// kind is a programming error.
func Register(e Extractor) {
	k := e.Prim()
	if extractors[k] != nil {
		panic(fmt.Sprintf("draw: extractor for %v already registered", k))
	}
	extractors[k] = e
}

// ExtractorFor returns the registered extractor for a primitive kind,
// or nil when none exists.
func ExtractorFor(k gpu.PrimitiveKind) Extractor {
	if int(k) >= len(extractors) {
		return nil
	}
	return extractors[k]
}

// BufferList owns the destination index buffers of one mesh batch,
// keyed by primitive kind. The explicit lookup replaces any positional
// coupling between extractors and their output buffers.
type BufferList struct {
	ibos [3]gpu.IndexBuffer
}

// IndexBuffer returns the destination buffer for a primitive kind.
func (bl *BufferList) IndexBuffer(k gpu.PrimitiveKind) *gpu.IndexBuffer {
	return &bl.ibos[k]
}
