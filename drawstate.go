package progkey

import "github.com/gogpu/gputypes"

// DrawType distinguishes draw modes that generate different program kinds.
type DrawType uint32

const (
	// DrawTypeOrdinary is a regular draw through the geometry pipeline.
	DrawTypeOrdinary DrawType = iota
	// DrawTypePath is a path-rendering draw, bypassing the geometry
	// processor entirely.
	DrawTypePath
)

// IsPathRendering reports whether the draw type uses path rendering.
func (t DrawType) IsPathRendering() bool {
	return t == DrawTypePath
}

// String returns a human-readable name for the draw type.
func (t DrawType) String() string {
	switch t {
	case DrawTypeOrdinary:
		return "Ordinary"
	case DrawTypePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// DstCopy describes a copy of the destination surface made available to the
// fragment shader when the backend cannot read the destination in-shader.
type DstCopy struct {
	// Format is the copy texture's pixel format.
	Format gputypes.TextureFormat

	// ChannelMask overrides the channel layout derived from Format, with
	// the same semantics as TextureAccess.ChannelMask.
	ChannelMask ChannelMask

	// Origin is the copy texture's coordinate origin.
	Origin SurfaceOrigin
}

// Channels returns the effective channel layout of the copy texture.
func (d *DstCopy) Channels() ChannelMask {
	if d.ChannelMask != 0 {
		return d.ChannelMask
	}
	return FormatChannels(d.Format)
}

// DrawState is the read-only snapshot of one draw's pipeline configuration
// consumed by Build. The caller guarantees it does not change for the
// duration of the call.
type DrawState struct {
	// GeometryProcessor is the geometry-stage processor. It must be nil
	// for path-rendering draws and non-nil otherwise.
	GeometryProcessor Processor

	// FragmentStages are the fragment processors in pipeline order:
	// ColorStages color processors followed by CoverageStages coverage
	// processors.
	FragmentStages []FragmentProcessor

	// TransferProcessor is the final blend/transfer-stage processor.
	TransferProcessor Processor

	// ColorStages is the number of color stages in FragmentStages.
	ColorStages int

	// CoverageStages is the number of coverage stages in FragmentStages.
	CoverageStages int

	// RequiresLocalCoordAttrib forces local coordinates to be read from a
	// dedicated vertex attribute instead of being derived from position.
	RequiresLocalCoordAttrib bool

	// ReadsDst indicates the transfer behavior reads the destination's
	// current color.
	ReadsDst bool

	// ReadsFragPosition indicates the fragment configuration reads the
	// fragment's window position.
	ReadsFragPosition bool

	// DstCopy is the destination copy available for destination reads, or
	// nil. Required when ReadsDst is set and the backend lacks FBFetch.
	DstCopy *DstCopy

	// RenderTargetOrigin is the render target's coordinate origin, which
	// decides how fragment position is synthesized.
	RenderTargetOrigin SurfaceOrigin
}
