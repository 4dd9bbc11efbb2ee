package draw

import (
	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/mesh"
)

// pointsExtractor builds the points index buffer. One entry per
// vertex; the stored value is the lowest corner or loose slot that
// references the vertex, or the restart index when the vertex is
// hidden, mapped to no original vertex, or never referenced.
type pointsExtractor struct{}

func init() { Register(pointsExtractor{}) }

func (pointsExtractor) Prim() gpu.PrimitiveKind { return gpu.PrimPoints }

func (pointsExtractor) Init(rd *mesh.RenderData) *gpu.IndexBuilder {
	return gpu.NewIndexBuilder(gpu.PrimPoints, rd.VertsNum, rd.CornersNum+rd.LooseIndicesNum())
}

func (pointsExtractor) IterFace(rd *mesh.RenderData, face int, b *gpu.IndexBuilder) {
	start, end := rd.FaceCornerRange(face)
	for corner := start; corner < end; corner++ {
		setPoint(b, rd.View, rd.CornerVert(corner), corner)
	}
}

// Loose edges occupy two slots each, directly after the corners.
func (pointsExtractor) IterLooseEdge(rd *mesh.RenderData, i int, b *gpu.IndexBuilder) {
	v1, v2 := rd.LooseEdgeVerts(i)
	setPoint(b, rd.View, v1, rd.CornersNum+2*i)
	setPoint(b, rd.View, v2, rd.CornersNum+2*i+1)
}

// Loose vertices follow the loose-edge slots.
func (pointsExtractor) IterLooseVert(rd *mesh.RenderData, i int, b *gpu.IndexBuilder) {
	slot := rd.CornersNum + 2*rd.LooseEdgesNum + i
	setPoint(b, rd.View, rd.LooseVert(i), slot)
}

func (pointsExtractor) Reduce(to, from *gpu.IndexBuilder) {
	to.Join(from)
}

func (pointsExtractor) Finish(rd *mesh.RenderData, b *gpu.IndexBuilder, buf *gpu.IndexBuffer) {
	b.BuildInto(buf)
}
