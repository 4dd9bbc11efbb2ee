package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// IndexBuffer is an immutable index buffer produced by an IndexBuilder.
//
// The zero value is an empty buffer. Contents never change after build,
// so a buffer can be read and uploaded from any goroutine.
type IndexBuffer struct {
	prim     PrimitiveKind
	data     []uint32
	indexMin uint32
	indexMax uint32
}

// Prim returns the primitive kind the buffer draws.
func (ib *IndexBuffer) Prim() PrimitiveKind { return ib.prim }

// Len returns the number of index entries, restart markers included.
func (ib *IndexBuffer) Len() int { return len(ib.data) }

// Data returns the raw index entries. The caller must not modify them.
func (ib *IndexBuffer) Data() []uint32 { return ib.data }

// IndexRange returns the smallest and largest emitted index values.
// ok is false when the buffer holds only restart markers (or nothing).
func (ib *IndexBuffer) IndexRange() (min, max uint32, ok bool) {
	if ib.indexMin == RestartIndex {
		return 0, 0, false
	}
	return ib.indexMin, ib.indexMax, true
}

// RestartCount returns how many entries are restart markers.
func (ib *IndexBuffer) RestartCount() int {
	n := 0
	for _, v := range ib.data {
		if v == RestartIndex {
			n++
		}
	}
	return n
}

// Format returns the GPU index format of the buffer contents.
func (ib *IndexBuffer) Format() gputypes.IndexFormat {
	return gputypes.IndexFormatUint32
}

// Bytes serializes the entries as little-endian 32-bit words, the layout
// WebGPU expects for an index buffer with this format.
func (ib *IndexBuffer) Bytes() []byte {
	out := make([]byte, len(ib.data)*4)
	for i, v := range ib.data {
		out[i*4+0] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v >> 16)
		out[i*4+3] = byte(v >> 24)
	}
	return out
}

// Upload creates a GPU index buffer on the given device and writes the
// contents through the queue. The returned hal.Buffer is owned by the
// caller.
func (ib *IndexBuffer) Upload(device hal.Device, queue hal.Queue, label string) (hal.Buffer, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("gpu: upload %q: nil device or queue", label)
	}
	if ib.Len() == 0 {
		return nil, fmt.Errorf("gpu: upload %q: empty index buffer", label)
	}

	payload := ib.Bytes()
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(payload)),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: upload %q: create buffer: %w", label, err)
	}
	if err := queue.WriteBuffer(buf, 0, payload); err != nil {
		device.DestroyBuffer(buf)
		return nil, fmt.Errorf("gpu: upload %q: write buffer: %w", label, err)
	}
	return buf, nil
}
