package progkey

import "github.com/gogpu/gputypes"

// ClassID identifies a concrete processor implementation. Every distinct
// implementation must use a distinct value so that two processors whose key
// fragments happen to be byte-identical still produce different program keys.
// Assigning and deduplicating class IDs is the processor registry's job, not
// this package's.
type ClassID uint32

// TextureAccess describes one texture binding of a processor as the shader
// generator sees it: the channels the texture actually stores and the
// swizzle the shader reads it through.
type TextureAccess struct {
	// Format is the texture's pixel format. Used to derive the channel
	// layout when ChannelMask is zero.
	Format gputypes.TextureFormat

	// ChannelMask overrides the channel layout derived from Format.
	// Required for logical layouts that Format cannot express, such as
	// alpha-only textures backed by a red-channel format.
	ChannelMask ChannelMask

	// Swizzle is the set of channels the shader swizzle references.
	Swizzle ChannelMask
}

// Channels returns the effective channel layout of the texture.
func (a TextureAccess) Channels() ChannelMask {
	if a.ChannelMask != 0 {
		return a.ChannelMask
	}
	return FormatChannels(a.Format)
}

// Processor is a pipeline stage whose configuration influences generated
// shader code: the geometry stage, a fragment stage, or the transfer (blend)
// stage. Implementations append their own opaque key fragment and expose the
// texture bindings the meta-key needs to inspect.
//
// Implementations must be read-only for the duration of a Build call.
type Processor interface {
	// ClassID returns the processor's globally unique implementation ID.
	ClassID() ClassID

	// EmitKey appends the processor's opaque key fragment. The fragment
	// must cover every piece of the processor's own configuration that
	// changes generated code, and nothing else.
	EmitKey(b *KeyBuilder)

	// NumTextures returns the number of texture bindings.
	NumTextures() int

	// TextureAccess returns the i-th texture binding.
	TextureAccess(i int) TextureAccess
}

// FragmentProcessor is a fragment-stage processor. In addition to the base
// Processor surface it owns an ordered list of coordinate transforms whose
// shape is encoded into the meta-key.
type FragmentProcessor interface {
	Processor

	// NumTransforms returns the number of coordinate transforms.
	NumTransforms() int

	// CoordTransform returns the t-th transform in declaration order.
	CoordTransform(t int) CoordTransform
}
