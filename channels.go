package progkey

import "github.com/gogpu/gputypes"

// ChannelMask is a bitmask of logical color channels.
type ChannelMask uint32

const (
	// ChannelR marks the red channel as present.
	ChannelR ChannelMask = 1 << iota
	// ChannelG marks the green channel as present.
	ChannelG
	// ChannelB marks the blue channel as present.
	ChannelB
	// ChannelA marks the alpha channel as present.
	ChannelA
)

// Combined channel masks.
const (
	ChannelRGB  = ChannelR | ChannelG | ChannelB
	ChannelRGBA = ChannelRGB | ChannelA
)

// String returns the channel letters present in the mask, e.g. "rgba".
func (m ChannelMask) String() string {
	if m == 0 {
		return "none"
	}
	buf := make([]byte, 0, 4)
	if m&ChannelR != 0 {
		buf = append(buf, 'r')
	}
	if m&ChannelG != 0 {
		buf = append(buf, 'g')
	}
	if m&ChannelB != 0 {
		buf = append(buf, 'b')
	}
	if m&ChannelA != 0 {
		buf = append(buf, 'a')
	}
	return string(buf)
}

// FormatChannels returns the logical channels a texture of the given format
// exposes to shaders. Formats the key builder does not recognize map to an
// empty mask; callers with non-standard formats should set ChannelMask
// explicitly on the TextureAccess instead.
func FormatChannels(f gputypes.TextureFormat) ChannelMask {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return ChannelRGBA
	case gputypes.TextureFormatR8Unorm:
		return ChannelR
	case gputypes.TextureFormatUndefined:
		return 0
	default:
		return 0
	}
}

// SwizzleRequiresRemap reports whether sampling a texture with the given
// channel layout through the given shader swizzle needs channel remapping in
// generated shader code.
//
// Backends with native texture swizzling never need shader-level remapping.
// Otherwise only alpha-only textures are affected: when single-channel
// textures are stored in the red channel, swizzles that read alpha must be
// rewritten to read red; and swizzles that read r, g, or b must be redirected
// to the stored alpha value, because an alpha-only texture smears its value
// across all four channels when sampled.
func SwizzleRequiresRemap(caps *Caps, channels, swizzle ChannelMask) bool {
	if caps.TextureSwizzle {
		// Remapping happens at the sampling layer, not in shader code.
		return false
	}
	if channels != ChannelA {
		return false
	}
	if caps.TextureRed && swizzle&ChannelA != 0 {
		return true
	}
	if swizzle&ChannelRGB != 0 {
		return true
	}
	return false
}
