package mesh

// OrigIndexNone marks a vertex with no counterpart in the original mesh.
// Evaluated meshes produced by constructive modifiers can contain such
// synthetic vertices; extraction excludes them from selection-style
// buffers by emitting a restart marker instead of a point.
const OrigIndexNone = -1

// View is the capability set extraction needs from a mesh representation.
//
// Corner indices are dense and contiguous: face f owns the half-open
// range returned by FaceCornerRange(f), and ranges of consecutive faces
// are adjacent. Loose edges and loose vertices are topology not bound to
// any face; their iteration order is stable for the lifetime of the view.
//
// All index arguments must be in range. Views do not validate; malformed
// topology is a programming error on the producer side.
type View interface {
	// NumVerts returns the vertex count.
	NumVerts() int

	// NumFaces returns the face count.
	NumFaces() int

	// NumCorners returns the total face-corner count.
	NumCorners() int

	// FaceCornerRange returns the half-open corner index range [start, end)
	// of the given face, in the face's native winding order.
	FaceCornerRange(face int) (start, end int)

	// CornerVert returns the vertex referenced by the given corner.
	CornerVert(corner int) int

	// NumLooseEdges returns the number of edges not used by any face.
	NumLooseEdges() int

	// LooseEdgeVerts returns both endpoints of loose edge i.
	// Endpoint order is fixed and meaningful to slot assignment.
	LooseEdgeVerts(i int) (v1, v2 int)

	// NumLooseVerts returns the number of vertices used by no edge or face.
	NumLooseVerts() int

	// LooseVert returns the vertex index of loose vertex i.
	LooseVert(i int) int

	// VertHidden reports whether the vertex is hidden from display.
	VertHidden(v int) bool

	// VertOrig returns the index of the vertex in the original mesh, or
	// OrigIndexNone when the vertex is synthetic. Views without an origin
	// mapping return v unchanged.
	VertOrig(v int) int
}
