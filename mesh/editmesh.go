package mesh

// EditVert is a vertex of an editable mesh.
type EditVert struct {
	// Hidden removes the vertex from display without deleting it.
	Hidden bool
}

// EditEdge connects two vertices of an editable mesh.
type EditEdge struct {
	V1, V2 int32
}

// EditFace is a face of an editable mesh. Verts lists the face's corner
// vertices in winding order; corner indices are assigned densely,
// face by face, in face order.
type EditFace struct {
	Verts []int32
}

// EditMesh is the editable mesh representation.
//
// Unlike [Mesh] it keeps element records rather than flattened arrays,
// which is what interactive editing wants. Extraction still sees it
// through [View], with corner indices derived from the face order.
//
// Call Finalize after structural changes and before extraction; it
// rebuilds the corner offset table and the loose-geometry lists.
type EditMesh struct {
	Verts []EditVert
	Edges []EditEdge
	Faces []EditFace

	// OrigVerts optionally maps vertices of this mesh back to another
	// origin mesh (for example when editing a copy). Nil means the
	// identity mapping.
	OrigVerts []int32

	cornerOffsets []int32
	cornerVerts   []int32
	looseEdges    []int32
	looseVerts    []int32
	finalized     bool
}

var _ View = (*EditMesh)(nil)

// Finalize rebuilds derived topology: the dense corner numbering and the
// loose edge/vertex lists. Extraction accessors panic on an unfinalized
// mesh with faces.
func (em *EditMesh) Finalize() {
	em.cornerOffsets = make([]int32, len(em.Faces)+1)
	em.cornerVerts = em.cornerVerts[:0]
	for i, f := range em.Faces {
		em.cornerOffsets[i+1] = em.cornerOffsets[i] + int32(len(f.Verts))
		em.cornerVerts = append(em.cornerVerts, f.Verts...)
	}

	edgeUsed := make([]bool, len(em.Edges))
	pair := make(map[[2]int32]int32, len(em.Edges))
	for i, e := range em.Edges {
		pair[canonicalEdge(e.V1, e.V2)] = int32(i)
	}
	for _, f := range em.Faces {
		for i, v := range f.Verts {
			next := f.Verts[(i+1)%len(f.Verts)]
			if e, ok := pair[canonicalEdge(v, next)]; ok {
				edgeUsed[e] = true
			}
		}
	}

	vertUsed := make([]bool, len(em.Verts))
	for _, v := range em.cornerVerts {
		vertUsed[v] = true
	}
	for _, e := range em.Edges {
		vertUsed[e.V1] = true
		vertUsed[e.V2] = true
	}

	em.looseEdges = em.looseEdges[:0]
	for i, used := range edgeUsed {
		if !used {
			em.looseEdges = append(em.looseEdges, int32(i))
		}
	}
	em.looseVerts = em.looseVerts[:0]
	for v, used := range vertUsed {
		if !used {
			em.looseVerts = append(em.looseVerts, int32(v))
		}
	}
	em.finalized = true
}

func (em *EditMesh) NumVerts() int   { return len(em.Verts) }
func (em *EditMesh) NumFaces() int   { return len(em.Faces) }
func (em *EditMesh) NumCorners() int { return len(em.cornerVerts) }

func (em *EditMesh) FaceCornerRange(face int) (int, int) {
	return int(em.cornerOffsets[face]), int(em.cornerOffsets[face+1])
}

func (em *EditMesh) CornerVert(corner int) int { return int(em.cornerVerts[corner]) }

func (em *EditMesh) NumLooseEdges() int { return len(em.looseEdges) }

func (em *EditMesh) LooseEdgeVerts(i int) (int, int) {
	e := em.Edges[em.looseEdges[i]]
	return int(e.V1), int(e.V2)
}

func (em *EditMesh) NumLooseVerts() int { return len(em.looseVerts) }

func (em *EditMesh) LooseVert(i int) int { return int(em.looseVerts[i]) }

func (em *EditMesh) VertHidden(v int) bool { return em.Verts[v].Hidden }

func (em *EditMesh) VertOrig(v int) int {
	if em.OrigVerts == nil {
		return v
	}
	return int(em.OrigVerts[v])
}
