// Package mesh provides the in-memory mesh representations consumed by
// the render-data extraction pipeline.
//
// Two representations exist: [Mesh] holds an evaluated mesh as flattened
// arrays (the result of applying modifiers and constructive operations),
// while [EditMesh] holds the editable structure the user manipulates
// directly. Both implement the [View] interface so extraction code is
// written once against either source.
//
// Thread safety: a View is read-only during extraction. Mutating a mesh
// while an extraction is running is a data race.
package mesh
