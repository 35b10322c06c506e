package progkey

import "encoding/binary"

// KeyBuilder appends a processor's key fragment to a descriptor under
// construction. It is handed to Processor.EmitKey during Build and must not
// be retained after EmitKey returns.
//
// The builder is append-only. Words are stored little-endian; byte data is
// zero-padded to a 4-byte boundary so that every fragment occupies a whole
// number of words and unused padding compares equal across builds.
type KeyBuilder struct {
	key *[]byte
}

// AddUint32 appends one 32-bit word.
func (b *KeyBuilder) AddUint32(v uint32) {
	*b.key = binary.LittleEndian.AppendUint32(*b.key, v)
}

// AddUint32n appends n 32-bit words.
func (b *KeyBuilder) AddUint32n(vs ...uint32) {
	for _, v := range vs {
		b.AddUint32(v)
	}
}

// AddBytes appends raw bytes, zero-padded to the next word boundary.
func (b *KeyBuilder) AddBytes(p []byte) {
	*b.key = append(*b.key, p...)
	for len(*b.key)%4 != 0 {
		*b.key = append(*b.key, 0)
	}
}

// AddBool appends a bool as a full word (1 or 0).
func (b *KeyBuilder) AddBool(v bool) {
	if v {
		b.AddUint32(1)
	} else {
		b.AddUint32(0)
	}
}

// Size returns the total number of bytes written to the descriptor so far,
// including regions written before this builder's fragment.
func (b *KeyBuilder) Size() int {
	return len(*b.key)
}
