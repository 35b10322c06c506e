package progkey

import "math"

// metaKeyInvalidMask flags any bits above the 16 allotted to each meta-key
// field.
const metaKeyInvalidMask = ^uint32(math.MaxUint16)

// textureKey returns a bitmask with bit t set iff texture binding t of the
// processor needs shader-level channel remapping on this backend. Processors
// with more bindings than the mask holds are rejected by the meta-key
// emitter's budget check, not here.
func textureKey(proc Processor, caps *Caps) uint32 {
	key := uint32(0)
	numTextures := proc.NumTextures()
	for t := 0; t < numTextures; t++ {
		access := proc.TextureAccess(t)
		if SwizzleRequiresRemap(caps, access.Channels(), access.Swizzle) {
			key |= 1 << t
		}
	}
	return key
}

// emitMetaKey appends a processor's meta-key trailer: the externally-induced
// shader variations (texture remap needs, coordinate-transform shapes) that
// the processor's own key fragment cannot know about, the class ID that
// discriminates processor implementations with coincidentally identical
// fragments, and the fragment's byte length, which keeps the concatenated
// key stream self-delimiting.
//
// Each of the four fields gets 16 bits. If any does not fit, nothing is
// written and ErrKeyBudgetOverflow is returned; the caller unwinds the whole
// build.
func emitMetaKey(proc Processor, caps *Caps, transformKey uint32, fragmentSize int, b *KeyBuilder) error {
	texKey := textureKey(proc, caps)
	classID := uint32(proc.ClassID())

	if (texKey|transformKey|classID)&metaKeyInvalidMask != 0 {
		return ErrKeyBudgetOverflow
	}
	if fragmentSize > math.MaxUint16 {
		return ErrKeyBudgetOverflow
	}

	b.AddUint32(texKey<<16 | transformKey)
	b.AddUint32(classID<<16 | uint32(fragmentSize))
	return nil
}
