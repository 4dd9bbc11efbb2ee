package draw

import (
	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/mesh"
)

// vertClass is the outcome of classifying one vertex for point display.
type vertClass uint8

const (
	// vertEmit draws the vertex at its slot.
	vertEmit vertClass = iota

	// vertRestart keeps the slot but marks it primitive-restart, so the
	// vertex is skipped without shifting the entries after it.
	vertRestart

	// vertSkip consumes nothing at all. Only produced on the subdivided
	// path, for loops that have no original vertex behind them.
	vertSkip
)

// classifyVert decides base-resolution eligibility: a vertex is
// restarted when it is hidden or has no counterpart in the original
// mesh, and emitted otherwise.
func classifyVert(v mesh.View, vert int) vertClass {
	if v.VertHidden(vert) || v.VertOrig(vert) == mesh.OrigIndexNone {
		return vertRestart
	}
	return vertEmit
}

// classifySubdivVert decides eligibility of a subdivided loop from its
// coarse-vertex lookup. Loops the subdivision introduced (-1) and loops
// whose coarse vertex has no origin are skipped entirely; a hidden
// coarse vertex is restarted; the rest emit.
func classifySubdivVert(v mesh.View, coarse int32) vertClass {
	if coarse == -1 {
		return vertSkip
	}
	c := int(coarse)
	if v.VertOrig(c) == mesh.OrigIndexNone {
		return vertSkip
	}
	if v.VertHidden(c) {
		return vertRestart
	}
	return vertEmit
}

// setPoint writes one classified vertex into the builder at slot.
func setPoint(b *gpu.IndexBuilder, v mesh.View, vert, slot int) {
	if classifyVert(v, vert) == vertEmit {
		b.SetPoint(vert, uint32(slot))
	} else {
		b.SetPointRestart(vert)
	}
}
