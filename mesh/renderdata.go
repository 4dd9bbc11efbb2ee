package mesh

// RenderData caches the counts extraction asks for on every element.
//
// It is built once per extraction run from a finalized View and stays
// read-only afterwards, so any number of tasks can share it without
// synchronization.
type RenderData struct {
	View View

	VertsNum      int
	FacesNum      int
	CornersNum    int
	LooseEdgesNum int
	LooseVertsNum int
}

// NewRenderData snapshots the view's counts. For a *Mesh source the
// loose-geometry lists are derived first if the producer left them nil;
// an *EditMesh source must already be finalized.
func NewRenderData(v View) *RenderData {
	if m, ok := v.(*Mesh); ok {
		m.EnsureLooseGeom()
	}
	return &RenderData{
		View:          v,
		VertsNum:      v.NumVerts(),
		FacesNum:      v.NumFaces(),
		CornersNum:    v.NumCorners(),
		LooseEdgesNum: v.NumLooseEdges(),
		LooseVertsNum: v.NumLooseVerts(),
	}
}

// LooseIndicesNum returns the number of index-buffer slots occupied by
// loose geometry: two per loose edge plus one per loose vertex.
func (rd *RenderData) LooseIndicesNum() int {
	return 2*rd.LooseEdgesNum + rd.LooseVertsNum
}

// Element accessors forward to the underlying view, so extraction code
// works entirely off the snapshot it already holds.

func (rd *RenderData) FaceCornerRange(face int) (int, int) { return rd.View.FaceCornerRange(face) }
func (rd *RenderData) CornerVert(corner int) int           { return rd.View.CornerVert(corner) }
func (rd *RenderData) LooseEdgeVerts(i int) (int, int)     { return rd.View.LooseEdgeVerts(i) }
func (rd *RenderData) LooseVert(i int) int                 { return rd.View.LooseVert(i) }
