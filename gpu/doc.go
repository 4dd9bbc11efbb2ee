// Package gpu provides the index-buffer container used by render-data
// extraction, and the handoff of finished buffers to a GPU device.
//
// The central type is [IndexBuilder]: extraction tasks accumulate
// (vertex, slot) associations and restart markers into private builders,
// merge them pairwise with [IndexBuilder.Join], and finalize the result
// into an immutable [IndexBuffer]. Restart markers use the standard
// primitive-restart sentinel so the buffer can be bound unmodified.
//
// Upload goes through wgpu/hal; the host application owns the device and
// shares it with this package, it is never created here.
package gpu
