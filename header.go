package progkey

// Header is the decoded fixed-size header of a program key. Every field is
// canonicalized: sub-keys are zero whenever the corresponding feature is
// unused, so logically identical draws decode to identical headers.
type Header struct {
	// PathRendering is set for path-rendering programs.
	PathRendering bool

	// DstReadKey identifies the destination-read mechanism, or 0 when the
	// program does not read the destination.
	DstReadKey uint8

	// FragPosKey identifies how fragment position is synthesized, or 0
	// when the program does not read fragment position.
	FragPosKey uint8

	// ColorEffects is the number of color fragment stages.
	ColorEffects uint8

	// CoverageEffects is the number of coverage fragment stages.
	CoverageEffects uint8
}

// Header flag bits (header byte 0).
const headerFlagPathRendering = 1 << 0

// Destination-read sub-key bits. The read bit is always set when the
// destination is read at all, so a required destination read never encodes
// as zero.
const (
	dstReadKeyRead          = 1 << 0
	dstReadKeyAlphaConfig   = 1 << 1
	dstReadKeyTopLeftOrigin = 1 << 2
)

// Fragment-position sub-key codes. Both are non-zero so that a required
// fragment-position read never encodes as zero.
const (
	fragPosKeyTopLeft    = 1
	fragPosKeyBottomLeft = 2
)

// keyForDstRead returns the destination-read sub-key for a program that
// reads the destination color. With framebuffer fetch the mechanism is fully
// described by the read bit alone. Otherwise a destination copy must exist,
// and its channel layout and origin change the generated read code.
func keyForDstRead(dst *DstCopy, caps *Caps) uint8 {
	key := uint8(dstReadKeyRead)
	if caps.FBFetch {
		return key
	}
	if dst == nil {
		panic("progkey: destination read requires a dst copy or framebuffer fetch support")
	}
	if !caps.TextureSwizzle && dst.Channels() == ChannelA {
		key |= dstReadKeyAlphaConfig
	}
	if dst.Origin == OriginTopLeft {
		key |= dstReadKeyTopLeftOrigin
	}
	return key
}

// keyForFragmentPosition returns the fragment-position sub-key for a program
// that reads fragment position on a render target with the given origin.
func keyForFragmentPosition(origin SurfaceOrigin) uint8 {
	if origin == OriginTopLeft {
		return fragPosKeyTopLeft
	}
	return fragPosKeyBottomLeft
}
