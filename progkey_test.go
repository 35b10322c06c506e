package progkey

// =============================================================================
// Test Helpers
// =============================================================================

// testProc is a fixed-configuration processor for building test draw states.
type testProc struct {
	classID    ClassID
	fragment   []byte
	textures   []TextureAccess
	transforms []CoordTransform
}

func (p *testProc) ClassID() ClassID { return p.classID }

func (p *testProc) EmitKey(b *KeyBuilder) {
	if len(p.fragment) > 0 {
		b.AddBytes(p.fragment)
	}
}

func (p *testProc) NumTextures() int { return len(p.textures) }

func (p *testProc) TextureAccess(i int) TextureAccess { return p.textures[i] }

func (p *testProc) NumTransforms() int { return len(p.transforms) }

func (p *testProc) CoordTransform(t int) CoordTransform { return p.transforms[t] }

// alphaRemapAccess is an alpha-only texture binding read through an alpha
// swizzle; it needs remapping on backends without native swizzle support.
func alphaRemapAccess() TextureAccess {
	return TextureAccess{ChannelMask: ChannelA, Swizzle: ChannelA}
}

// mockDrawState builds a minimal valid ordinary draw: trivial geometry and
// transfer stages around the given fragment stages, all of them color stages.
func mockDrawState(fragments ...FragmentProcessor) *DrawState {
	return &DrawState{
		GeometryProcessor: &testProc{classID: 1},
		FragmentStages:    fragments,
		TransferProcessor: &testProc{classID: 2},
		ColorStages:       len(fragments),
	}
}

// legacyCaps is the common non-native-swizzle configuration the swizzle
// policy was written for.
func legacyCaps() *Caps {
	return &Caps{TextureRed: true}
}
