package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/extract_points.wgsl
var pointsShaderWGSL string

// PointsShaderSource returns the WGSL source of the point-visibility
// compute shader.
func PointsShaderSource() string { return pointsShaderWGSL }

// CompilePointsShader compiles the point-visibility shader to SPIR-V.
func CompilePointsShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(pointsShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile points shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// NewPointsShaderModule creates the HAL shader module for the
// point-visibility pass on the given device.
func NewPointsShaderModule(device hal.Device) (hal.ShaderModule, error) {
	if device == nil {
		return nil, fmt.Errorf("gpu: nil device")
	}
	spirvCode, err := CompilePointsShader()
	if err != nil {
		return nil, err
	}
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "extract-points",
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
