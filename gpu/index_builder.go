package gpu

// IndexBuilder accumulates index-buffer entries for one extraction run.
//
// For point primitives the builder is keyed by vertex: entry v holds the
// buffer slot at which vertex v is drawn, or [RestartIndex] when the
// vertex must be skipped. Entries start out as restart, so a vertex that
// is never written behaves exactly like one explicitly restarted.
//
// Determinism: when a visible vertex is referenced from several slots
// (a vertex shared by many face corners), the smallest slot wins. This
// makes SetPoint idempotent and Join commutative and associative, so a
// sequential run, a parallel run, and any pairwise merge order all
// produce byte-identical buffers.
//
// Thread safety: a builder may only be mutated by one goroutine.
// Parallel extraction gives each task its own builder via Fork and
// merges with Join at the reduction step.
type IndexBuilder struct {
	prim     PrimitiveKind
	data     []uint32
	slotsNum int

	// written is one past the highest entry touched by SetPoint or
	// SetPointRestart; it becomes the buffer length on build.
	written int
}

// NewIndexBuilder creates a builder for the given primitive kind, sized
// for vertsNum entries referencing slots in [0, slotsNum).
func NewIndexBuilder(prim PrimitiveKind, vertsNum, slotsNum int) *IndexBuilder {
	data := make([]uint32, vertsNum)
	for i := range data {
		data[i] = RestartIndex
	}
	return &IndexBuilder{prim: prim, data: data, slotsNum: slotsNum}
}

// Fork returns a fresh builder with the same shape, for use as a
// per-task accumulator that will later be folded back with Join.
func (b *IndexBuilder) Fork() *IndexBuilder {
	return NewIndexBuilder(b.prim, len(b.data), b.slotsNum)
}

// Prim returns the primitive kind the builder targets.
func (b *IndexBuilder) Prim() PrimitiveKind { return b.prim }

// MaxSlots returns the slot capacity the builder was sized for.
func (b *IndexBuilder) MaxSlots() int { return b.slotsNum }

// SetPoint records that vertex vert is drawn at the given buffer slot.
// The smallest slot recorded for a vertex wins.
func (b *IndexBuilder) SetPoint(vert int, slot uint32) {
	if slot < b.data[vert] {
		b.data[vert] = slot
	}
	if vert >= b.written {
		b.written = vert + 1
	}
}

// SetPointRestart records that vertex vert is skipped by primitive
// restart. The entry keeps its place in the buffer so slot numbering
// stays continuous.
func (b *IndexBuilder) SetPointRestart(vert int) {
	if vert >= b.written {
		b.written = vert + 1
	}
}

// Join folds the writes of another builder of the same shape into this
// one and leaves from empty. Each topological element is visited by
// exactly one task, so the element-wise minimum is a disjoint union of
// the two builders' writes.
func (b *IndexBuilder) Join(from *IndexBuilder) {
	for i, v := range from.data {
		if v < b.data[i] {
			b.data[i] = v
		}
	}
	if from.written > b.written {
		b.written = from.written
	}
	from.data = nil
	from.written = 0
}

// Build finalizes the accumulated state into a new immutable buffer.
// The builder releases ownership of its storage and must not be used
// afterwards.
func (b *IndexBuilder) Build() *IndexBuffer {
	buf := &IndexBuffer{}
	b.BuildInto(buf)
	return buf
}

// BuildInto finalizes into an existing buffer value in place, without
// copying the index data.
func (b *IndexBuilder) BuildInto(buf *IndexBuffer) {
	data := b.data[:b.written]

	indexMin := RestartIndex
	indexMax := uint32(0)
	for _, v := range data {
		if v == RestartIndex {
			continue
		}
		if v < indexMin {
			indexMin = v
		}
		if v > indexMax {
			indexMax = v
		}
	}

	*buf = IndexBuffer{
		prim:     b.prim,
		data:     data,
		indexMin: indexMin,
		indexMax: indexMax,
	}
	b.data = nil
	b.written = 0
}
