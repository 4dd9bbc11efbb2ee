// Package draw extracts GPU index buffers from mesh topology.
//
// An [Extractor] walks one mesh, through either representation behind
// [mesh.View], and fills a [gpu.IndexBuilder] with one entry per
// topological position: face corners first, then loose-edge endpoints,
// then loose vertices. The same extractor also handles the subdivided
// resolution, where slots are subdivided loops and loose geometry is
// expanded to the subdivision's edge resolution.
//
// Extraction is embarrassingly parallel: faces, loose edges and loose
// vertices own disjoint output slots, so a [Scheduler] fans the walk out
// over a worker pool with a private builder per task and merges the
// partial builders pairwise. Results are identical for any worker count,
// including none.
package draw
