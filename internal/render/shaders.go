package render

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

//go:embed shaders/plot.wgsl
var plotShaderSource string

// PlotShaderSource returns the WGSL source for the plot shader. Both the
// marker and line entry points live in the same module.
func PlotShaderSource() string {
	return plotShaderSource
}

// validateShaderSource reports a build-time embedding problem before the
// source reaches the GPU driver: an empty embed or a missing entry point.
func validateShaderSource() error {
	if plotShaderSource == "" {
		return errors.New("plot shader source is empty")
	}
	for _, entry := range []string{"vs_marker", "fs_marker", "vs_line", "fs_line"} {
		if !strings.Contains(plotShaderSource, "fn "+entry) {
			return fmt.Errorf("plot shader missing entry point %s", entry)
		}
	}
	return nil
}

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice for
// backends that cannot ingest WGSL directly.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
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
