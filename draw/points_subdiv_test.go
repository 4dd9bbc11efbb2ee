package draw

import (
	"reflect"
	"testing"

	"github.com/xiaozhiob/blender/gpu"
	"github.com/xiaozhiob/blender/internal/parallel"
	"github.com/xiaozhiob/blender/mesh"
	"github.com/xiaozhiob/blender/subdiv"
)

func extractPointsSubdiv(t *testing.T, v mesh.View, level int) *gpu.IndexBuffer {
	t.Helper()
	rd := mesh.NewRenderData(v)
	sc := subdiv.BuildLinear(rd.View, level)
	var sched Scheduler
	var bl BufferList
	sched.ExtractSubdivInto(sc, rd, &bl, gpu.PrimPoints)
	return bl.IndexBuffer(gpu.PrimPoints)
}

func TestPointsSubdivQuadLevelOne(t *testing.T) {
	m := &mesh.Mesh{
		VertCount:   4,
		FaceOffsets: []int32{0, 4},
		CornerVerts: []int32{0, 1, 2, 3},
	}
	buf := extractPointsSubdiv(t, m, 1)

	// Corner c's grid starts at loop c*4 and touches its coarse vertex
	// with the first loop.
	want := []uint32{0, 4, 8, 12}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSubdivHiddenVertexRestarts(t *testing.T) {
	m := &mesh.Mesh{
		VertCount:   4,
		FaceOffsets: []int32{0, 4},
		CornerVerts: []int32{0, 1, 2, 3},
		UseHide:     true,
		HideVert:    []bool{false, true, false, false},
	}
	buf := extractPointsSubdiv(t, m, 1)

	want := []uint32{0, rst, 8, 12}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSubdivSyntheticVertexSkipped(t *testing.T) {
	// The last vertex maps to no original; unlike hiding, skipping
	// writes nothing, so the buffer ends at the previous entry.
	m := &mesh.Mesh{
		VertCount:   4,
		FaceOffsets: []int32{0, 4},
		CornerVerts: []int32{0, 1, 2, 3},
		OrigVerts:   []int32{0, 1, 2, mesh.OrigIndexNone},
	}
	buf := extractPointsSubdiv(t, m, 1)

	want := []uint32{0, 4, 8}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSubdivLooseGeometrySlots(t *testing.T) {
	buf := extractPointsSubdiv(t, quadWithLoose(), 1)

	// 16 subdivided loops, then the loose-edge span of 3 slots with
	// only its endpoints mapped, then the loose vertex.
	want := []uint32{0, 4, 8, 12, 16, 18, 19}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSubdivLooseEdgeHiddenEndpoint(t *testing.T) {
	m := quadWithLoose()
	m.UseHide = true
	m.HideVert = []bool{false, false, false, false, true, false, false}

	buf := extractPointsSubdiv(t, m, 1)
	want := []uint32{0, 4, 8, 12, rst, 18, 19}
	if !reflect.DeepEqual(buf.Data(), want) {
		t.Errorf("Data() = %v, want %v", buf.Data(), want)
	}
}

func TestPointsSubdivParallelMatchesSequential(t *testing.T) {
	m := stripMesh(40)
	rd := mesh.NewRenderData(m)
	sc := subdiv.BuildLinear(rd.View, 2)
	ext := ExtractorFor(gpu.PrimPoints)

	var seq gpu.IndexBuffer
	(&Scheduler{}).ExtractSubdiv(sc, rd, ext, &seq)

	pool := parallel.NewPool(4)
	defer pool.Close()

	for _, grain := range []int{1, 13, 128} {
		var par gpu.IndexBuffer
		(&Scheduler{Pool: pool, Grain: grain}).ExtractSubdiv(sc, rd, ext, &par)
		if !reflect.DeepEqual(par.Data(), seq.Data()) {
			t.Errorf("grain %d: parallel buffer differs from sequential", grain)
		}
	}
}
