package progkey

import (
	"encoding/binary"
	"testing"
)

func TestEmitMetaKeyTrailerLayout(t *testing.T) {
	proc := &testProc{
		classID:  42,
		textures: []TextureAccess{alphaRemapAccess()},
	}
	caps := legacyCaps()

	var key []byte
	b := &KeyBuilder{key: &key}

	if err := emitMetaKey(proc, caps, 0x2a8, 12, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != 8 {
		t.Fatalf("trailer length = %d, want 8", len(key))
	}

	word0 := binary.LittleEndian.Uint32(key[0:])
	word1 := binary.LittleEndian.Uint32(key[4:])

	// word 0: texture-remap mask in the high half, transform key in the low.
	if want := uint32(1<<16 | 0x2a8); word0 != want {
		t.Errorf("word0 = %#08x, want %#08x", word0, want)
	}
	// word 1: class ID in the high half, fragment size in the low.
	if want := uint32(42<<16 | 12); word1 != want {
		t.Errorf("word1 = %#08x, want %#08x", word1, want)
	}
}

func TestEmitMetaKeyOverflow(t *testing.T) {
	caps := legacyCaps()

	remapAll := make([]TextureAccess, 17)
	for i := range remapAll {
		remapAll[i] = alphaRemapAccess()
	}

	tests := []struct {
		name         string
		proc         *testProc
		transformKey uint32
		fragmentSize int
	}{
		{
			name: "class id at 2^16",
			proc: &testProc{classID: 1 << 16},
		},
		{
			name:         "transform key at 2^16",
			proc:         &testProc{classID: 5},
			transformKey: 1 << 16,
		},
		{
			name: "texture mask bit 16",
			proc: &testProc{classID: 5, textures: remapAll},
		},
		{
			name:         "fragment size at 2^16",
			proc:         &testProc{classID: 5},
			fragmentSize: 1 << 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var key []byte
			b := &KeyBuilder{key: &key}

			err := emitMetaKey(tt.proc, caps, tt.transformKey, tt.fragmentSize, b)
			if err != ErrKeyBudgetOverflow {
				t.Fatalf("err = %v, want ErrKeyBudgetOverflow", err)
			}
			if len(key) != 0 {
				t.Errorf("emitMetaKey wrote %d bytes on overflow, want 0", len(key))
			}
		})
	}
}

func TestTextureKey(t *testing.T) {
	caps := legacyCaps()

	proc := &testProc{
		textures: []TextureAccess{
			{ChannelMask: ChannelRGBA, Swizzle: ChannelRGBA}, // no remap
			alphaRemapAccess(),                               // remap
			{ChannelMask: ChannelA, Swizzle: ChannelR},       // remap
		},
	}

	if got, want := textureKey(proc, caps), uint32(0b110); got != want {
		t.Errorf("textureKey = %#b, want %#b", got, want)
	}

	// Native swizzle clears the whole mask.
	if got := textureKey(proc, &Caps{TextureSwizzle: true}); got != 0 {
		t.Errorf("textureKey with native swizzle = %#b, want 0", got)
	}
}
