package mesh

// Mesh is the evaluated (flattened-array) mesh representation.
//
// Topology is stored the way the GPU wants to consume it: faces are a
// prefix-offset table into one corner array, edges are vertex pairs.
// Optional per-vertex metadata (hide flags, origin indices) rides in
// separate arrays so meshes without it pay nothing.
//
// LooseEdges and LooseVerts may be populated by the producer; when left
// nil, EnsureLooseGeom derives them from the topology.
type Mesh struct {
	// VertCount is the number of vertices. Vertex positions are not
	// required for index extraction; Positions is optional payload.
	VertCount int

	// Positions holds per-vertex coordinates when available.
	Positions [][3]float32

	// FaceOffsets has NumFaces+1 entries; face f owns corners
	// [FaceOffsets[f], FaceOffsets[f+1]).
	FaceOffsets []int32

	// CornerVerts maps each corner to its vertex.
	CornerVerts []int32

	// Edges holds all edges as vertex pairs.
	Edges [][2]int32

	// CornerEdges maps each corner to the edge it lies on. Optional;
	// when present it speeds up loose-edge derivation.
	CornerEdges []int32

	// UseHide enables the HideVert mask. When false the mask is ignored
	// even if non-nil.
	UseHide bool

	// HideVert is the optional per-vertex hidden mask.
	HideVert []bool

	// OrigVerts optionally maps evaluated vertices back to the original
	// mesh; OrigIndexNone entries are synthetic vertices.
	OrigVerts []int32

	// LooseEdges lists indices into Edges of edges not used by any face.
	LooseEdges []int32

	// LooseVerts lists vertices used by no edge and no face.
	LooseVerts []int32

	looseDerived bool
}

var _ View = (*Mesh)(nil)

func (m *Mesh) NumVerts() int   { return m.VertCount }
func (m *Mesh) NumFaces() int   { return len(m.FaceOffsets) - 1 }
func (m *Mesh) NumCorners() int { return len(m.CornerVerts) }

func (m *Mesh) FaceCornerRange(face int) (int, int) {
	return int(m.FaceOffsets[face]), int(m.FaceOffsets[face+1])
}

func (m *Mesh) CornerVert(corner int) int { return int(m.CornerVerts[corner]) }

func (m *Mesh) NumLooseEdges() int { return len(m.LooseEdges) }

func (m *Mesh) LooseEdgeVerts(i int) (int, int) {
	e := m.Edges[m.LooseEdges[i]]
	return int(e[0]), int(e[1])
}

func (m *Mesh) NumLooseVerts() int { return len(m.LooseVerts) }

func (m *Mesh) LooseVert(i int) int { return int(m.LooseVerts[i]) }

func (m *Mesh) VertHidden(v int) bool {
	return m.UseHide && len(m.HideVert) != 0 && m.HideVert[v]
}

func (m *Mesh) VertOrig(v int) int {
	if m.OrigVerts == nil {
		return v
	}
	return int(m.OrigVerts[v])
}

// EnsureLooseGeom derives LooseEdges and LooseVerts from the topology.
// Each nil list is derived independently; a list the producer supplied
// is kept as-is. An edge is loose when no face corner walks over it; a
// vertex is loose when neither a face nor an edge uses it. Safe to call
// repeatedly; derivation runs once.
func (m *Mesh) EnsureLooseGeom() {
	if m.looseDerived {
		return
	}
	m.looseDerived = true

	if m.LooseEdges == nil {
		edgeUsed := make([]bool, len(m.Edges))
		if m.CornerEdges != nil {
			for _, e := range m.CornerEdges {
				edgeUsed[e] = true
			}
		} else {
			// Match face boundary segments against the edge array by
			// vertex pair.
			pair := make(map[[2]int32]int32, len(m.Edges))
			for i, e := range m.Edges {
				pair[canonicalEdge(e[0], e[1])] = int32(i)
			}
			for f := 0; f < m.NumFaces(); f++ {
				start, end := m.FaceCornerRange(f)
				for c := start; c < end; c++ {
					next := c + 1
					if next == end {
						next = start
					}
					k := canonicalEdge(m.CornerVerts[c], m.CornerVerts[next])
					if e, ok := pair[k]; ok {
						edgeUsed[e] = true
					}
				}
			}
		}

		m.LooseEdges = []int32{}
		for i, used := range edgeUsed {
			if !used {
				m.LooseEdges = append(m.LooseEdges, int32(i))
			}
		}
	}

	if m.LooseVerts == nil {
		vertUsed := make([]bool, m.VertCount)
		for _, v := range m.CornerVerts {
			vertUsed[v] = true
		}
		for _, e := range m.Edges {
			vertUsed[e[0]] = true
			vertUsed[e[1]] = true
		}

		m.LooseVerts = []int32{}
		for v, used := range vertUsed {
			if !used {
				m.LooseVerts = append(m.LooseVerts, int32(v))
			}
		}
	}
}

func canonicalEdge(a, b int32) [2]int32 {
	if b < a {
		a, b = b, a
	}
	return [2]int32{a, b}
}
