// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package progkey

// Caps describes the shader-generation capabilities of the target backend
// that influence program keys. A Caps value is read-only for the duration of
// a Build call and is normally shared by every build against one device.
type Caps struct {
	// TextureSwizzle indicates native support for arbitrary texture-read
	// channel swizzling. When set, channel remapping never appears in
	// generated shader code.
	TextureSwizzle bool

	// TextureRed indicates that single-channel textures are stored in the
	// red channel rather than alpha.
	TextureRed bool

	// FBFetch indicates in-shader destination-color reads (framebuffer
	// fetch). Without it, destination reads require a copy of the
	// destination surface.
	FBFetch bool

	// PathRendering indicates support for the path-rendering draw mode,
	// which bypasses the geometry-processor pipeline.
	PathRendering bool
}

// SurfaceOrigin identifies which corner a surface's coordinate system
// originates from. Generated fragment code differs between the two.
type SurfaceOrigin uint32

const (
	// OriginTopLeft places (0,0) at the top-left corner.
	OriginTopLeft SurfaceOrigin = iota
	// OriginBottomLeft places (0,0) at the bottom-left corner.
	OriginBottomLeft
)

// String returns a human-readable name for the origin.
func (o SurfaceOrigin) String() string {
	switch o {
	case OriginTopLeft:
		return "TopLeft"
	case OriginBottomLeft:
		return "BottomLeft"
	default:
		return "Unknown"
	}
}
