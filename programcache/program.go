// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package programcache

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/progkey"
)

// Program compile errors.
var (
	// ErrEmptySource is returned when compiling an empty shader source.
	ErrEmptySource = errors.New("programcache: shader source is empty")
)

// Program is one compiled shader program held by the cache.
//
// A program always carries its SPIR-V words. The HAL shader module is
// present only when a device was available at compile time; source-only
// programs are still cacheable and can be instantiated on a device later.
type Program struct {
	label  string
	spirv  []uint32
	module hal.ShaderModule
}

// Label returns the program's debug label.
func (p *Program) Label() string {
	return p.label
}

// SPIRV returns the program's SPIR-V words. Callers must not modify them.
func (p *Program) SPIRV() []uint32 {
	return p.spirv
}

// Module returns the HAL shader module, or nil for a source-only program.
func (p *Program) Module() hal.ShaderModule {
	return p.module
}

// CompileWGSL compiles WGSL source into a Program.
//
// The source is translated to SPIR-V with naga. When device is non-nil a
// HAL shader module is created from the result; a nil device produces a
// source-only program, which is useful in tests and on hosts that defer
// device creation.
func CompileWGSL(device hal.Device, label, source string) (*Program, error) {
	if source == "" {
		return nil, ErrEmptySource
	}

	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("programcache: compile %q: %w", label, err)
	}

	// SPIR-V is consumed as 32-bit words, little-endian.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p := &Program{
		label: label,
		spirv: spirv,
	}

	if device != nil {
		module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label: label,
			Source: hal.ShaderSource{
				SPIRV: spirv,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("programcache: create shader module %q: %w", label, err)
		}
		p.module = module
	}

	progkey.Logger().Debug("programcache: compiled program",
		"label", label,
		"spirv_words", len(spirv),
		"has_module", p.module != nil)

	return p, nil
}
