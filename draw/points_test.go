package draw

import (
	"reflect"
	"testing"

	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
)

const rst = gpu.RestartIndex

// quadWithLoose is a quad on verts 0..3, a loose edge 4-5 and a loose
// vertex 6.
func quadWithLoose() *mesh.Mesh {
	return &mesh.Mesh{
		VertCount:   7,
		FaceOffsets: []int32{0, 4},
		CornerVerts: []int32{0, 1, 2, 3},
		Edges: [][2]int32{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5},
		},
	}
}

func extractPoints(t *testing.T, v mesh.View) *gpu.IndexBuffer {
	t.Helper()
	ext := ExtractorFor(gpu.PrimPoints)
	if ext == nil {
		t.Fatal("points extractor not registered")
	}
	var sched Scheduler
	var bl BufferList
	sched.ExtractInto(mesh.NewRenderData(v), &bl, gpu.PrimPoints)
	return bl.IndexBuffer(gpu.PrimPoints)
}

func TestPointsQuad(t *testing.T) {
	m := &mesh.Mesh{
		VertCount:   4,
		FaceOffsets: []int32{0, 4},
		CornerVerts: []int32{0, 1, 2, 3},
	}
	buf := extractPoints(t, m)

	want := []uint32{0, 1, 2, 3}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsLooseGeometrySlots(t *testing.T) {
	buf := extractPoints(t, quadWithLoose())

	// Loose-edge endpoints take the two slots after the corners, the
	// loose vertex the one after those.
	want := []uint32{0, 1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
	if min, max, ok := buf.IndexRange(); !ok || min != 0 || max != 6 {
		t.Errorf("IndexRange() = (%d, %d, %v), want (0, 6, true)", min, max, ok)
	}
}

func TestPointsHiddenVertexRestarts(t *testing.T) {
	m := quadWithLoose()
	m.UseHide = true
	m.HideVert = []bool{false, false, true, false, false, false, false}

	buf := extractPoints(t, m)
	want := []uint32{0, 1, rst, 3, 4, 5, 6}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
	if got := buf.RestartCount(); got != 1 {
		t.Errorf("RestartCount() = %d, want 1", got)
	}
}

func TestPointsHideMaskIgnoredWithoutUseHide(t *testing.T) {
	m := quadWithLoose()
	m.HideVert = []bool{false, false, true, false, false, false, false}

	buf := extractPoints(t, m)
	if got := buf.Data()[2]; got != 2 {
		t.Errorf("entry 2 = %d with UseHide off, want 2", got)
	}
}

func TestPointsSyntheticVertexRestarts(t *testing.T) {
	m := quadWithLoose()
	m.OrigVerts = []int32{0, mesh.OrigIndexNone, 2, 3, 4, 5, 6}

	buf := extractPoints(t, m)
	want := []uint32{0, rst, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSharedVertexSmallestCornerWins(t *testing.T) {
	// Two triangles sharing vertices 0 and 2.
	m := &mesh.Mesh{
		VertCount:   4,
		FaceOffsets: []int32{0, 3, 6},
		CornerVerts: []int32{0, 1, 2, 2, 3, 0},
	}
	buf := extractPoints(t, m)

	want := []uint32{0, 1, 2, 4}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsEditMeshMatchesMesh(t *testing.T) {
	m := quadWithLoose()
	m.UseHide = true
	m.HideVert = []bool{false, false, true, false, false, false, false}

	em := &mesh.EditMesh{
		Verts: []mesh.EditVert{{}, {}, {Hidden: true}, {}, {}, {}, {}},
		Edges: []mesh.EditEdge{
			{V1: 0, V2: 1}, {V1: 1, V2: 2}, {V1: 2, V2: 3}, {V1: 3, V2: 0},
			{V1: 4, V2: 5},
		},
		Faces: []mesh.EditFace{{Verts: []int32{0, 1, 2, 3}}},
	}
	em.Finalize()

	got := extractPoints(t, em)
	want := extractPoints(t, m)
	if !reflect.DeepEqual(got.Data(), want.Data()) {
		t.Errorf("edit mesh buffer = %v, evaluated mesh buffer = %v", got.Data(), want.Data())
	}
}

// stripMesh builds n triangles in a strip over n+2 vertices, the last
// two vertices forming a loose edge and one extra vertex left loose.
func stripMesh(n int) *mesh.Mesh {
	m := &mesh.Mesh{VertCount: n + 5}
	m.FaceOffsets = make([]int32, 0, n+1)
	m.FaceOffsets = append(m.FaceOffsets, 0)
	for i := 0; i < n; i++ {
		m.CornerVerts = append(m.CornerVerts, int32(i), int32(i+1), int32(i+2))
		m.FaceOffsets = append(m.FaceOffsets, int32(len(m.CornerVerts)))
		m.Edges = append(m.Edges,
			[2]int32{int32(i), int32(i + 1)},
			[2]int32{int32(i + 1), int32(i + 2)},
			[2]int32{int32(i), int32(i + 2)})
	}
	m.Edges = append(m.Edges, [2]int32{int32(n + 2), int32(n + 3)})
	return m
}

func TestPointsParallelMatchesSequential(t *testing.T) {
	m := stripMesh(100)
	rd := mesh.NewRenderData(m)
	ext := ExtractorFor(gpu.PrimPoints)

	var seq gpu.IndexBuffer
	(&Scheduler{}).Extract(rd, ext, &seq)

	pool := parallel.NewPool(4)
	defer pool.Close()

	for _, grain := range []int{1, 7, 64} {
		var par gpu.IndexBuffer
		(&Scheduler{Pool: pool, Grain: grain}).Extract(rd, ext, &par)
		if !reflect.DeepEqual(par.Data(), seq.Data()) {
			t.Errorf("grain %d: parallel buffer differs from sequential", grain)
		}
	}
}

func BenchmarkPointsExtract(b *testing.B) {
	m := stripMesh(10000)
	rd := mesh.NewRenderData(m)
	ext := ExtractorFor(gpu.PrimPoints)

	pool := parallel.NewPool(0)
	defer pool.Close()
	sched := &Scheduler{Pool: pool, Grain: 512}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf gpu.IndexBuffer
		sched.Extract(rd, ext, &buf)
	}
}

func TestPointsExtractIdempotent(t *testing.T) {
	m := quadWithLoose()
	first := extractPoints(t, m)
	second := extractPoints(t, m)
	if !reflect.DeepEqual(first.Data(), second.Data()) {
		t.Error("repeated extraction produced different buffers")
	}
}
