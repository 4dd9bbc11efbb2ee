package gpu

import (
	"strings"
	"testing"
)

// TestPointsShaderCompilation tests that the WGSL shader compiles to SPIR-V.
func TestPointsShaderCompilation(t *testing.T) {
	src := PointsShaderSource()
	if src == "" {
		t.Fatal("points shader source is empty")
	}
	if !strings.Contains(src, "@compute") {
		t.Error("points shader has no compute entry point")
	}

	words, err := CompilePointsShader()
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "runtime-sized arrays not yet implemented") {
			t.Skip("Skipping: naga doesn't yet support runtime-sized arrays")
		}
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("failed to compile points shader: %v", err)
	}

	if len(words) == 0 {
		t.Fatal("SPIR-V output is empty")
	}
	// SPIR-V magic number.
	if words[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", words[0])
	}
}
