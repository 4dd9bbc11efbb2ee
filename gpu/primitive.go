package gpu

// PrimitiveKind identifies the draw primitive an index buffer targets.
type PrimitiveKind uint8

const (
	// PrimPoints renders one point per index entry.
	PrimPoints PrimitiveKind = iota

	// PrimLines renders a line per pair of index entries.
	PrimLines

	// PrimTris renders a triangle per triple of index entries.
	PrimTris
)

// String returns a human-readable name for the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimPoints:
		return "Points"
	case PrimLines:
		return "Lines"
	case PrimTris:
		return "Tris"
	default:
		return "Unknown"
	}
}

// RestartIndex is the reserved index value that tells the primitive
// assembly stage to skip a position without disturbing the numbering of
// the entries around it.
const RestartIndex uint32 = 0xFFFFFFFF
