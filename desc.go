package progkey

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
)

// Fixed key layout. The checksum and length words lead, followed by the
// fixed header, followed by the variable-length processor-key region. The
// header offset is a compile-time constant, so the header can be written
// after all processor fragments without holding a view into the buffer while
// it grows.
const (
	checksumOffset = 0
	lengthOffset   = checksumOffset + 4
	headerOffset   = lengthOffset + 4
	headerSize     = 8

	// ProcessorKeysOffset is the byte offset of the first processor key
	// fragment within a descriptor.
	ProcessorKeysOffset = headerOffset + headerSize
)

// Byte offsets of the header fields within the header region.
const (
	headerFlagsByte    = 0
	headerDstReadByte  = 1
	headerFragPosByte  = 2
	headerColorByte    = 3
	headerCoverageByte = 4
)

// ProgramDesc is a program key: an immutable byte buffer identifying one
// generated shader program. A zero ProgramDesc is empty and ready for Build.
//
// After a successful Build the descriptor must be treated as a value; it is
// compared and hashed by the program cache but never mutated. A ProgramDesc
// is not safe for concurrent Build calls; concurrent reads are fine.
type ProgramDesc struct {
	key []byte
}

// Bytes returns the raw key. Callers must not modify it.
func (d *ProgramDesc) Bytes() []byte {
	return d.key
}

// Length returns the key length in bytes, 0 for an empty descriptor.
func (d *ProgramDesc) Length() int {
	return len(d.key)
}

// IsEmpty reports whether the descriptor holds no key, either because it was
// never built or because the last build failed.
func (d *ProgramDesc) IsEmpty() bool {
	return len(d.key) == 0
}

// Checksum returns the key's summary checksum, used by caches as a fast
// inequality pre-check before comparing full key bytes.
func (d *ProgramDesc) Checksum() uint32 {
	if len(d.key) < lengthOffset {
		return 0
	}
	return binary.LittleEndian.Uint32(d.key[checksumOffset:])
}

// CacheKey returns a 64-bit FNV-1a hash of the whole key, suitable for
// keying maps and selecting cache shards.
func (d *ProgramDesc) CacheKey() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(d.key)
	return h.Sum64()
}

// Equal reports whether two descriptors identify the same program. The
// checksum word rejects most mismatches before the byte compare.
func (d *ProgramDesc) Equal(other *ProgramDesc) bool {
	if d.Checksum() != other.Checksum() {
		return false
	}
	return bytes.Equal(d.key, other.key)
}

// Header decodes the fixed header region. It must only be called on a
// successfully built descriptor.
func (d *ProgramDesc) Header() Header {
	if len(d.key) < ProcessorKeysOffset {
		panic("progkey: Header called on an empty descriptor")
	}
	h := d.key[headerOffset : headerOffset+headerSize]
	return Header{
		PathRendering:   h[headerFlagsByte]&headerFlagPathRendering != 0,
		DstReadKey:      h[headerDstReadByte],
		FragPosKey:      h[headerFragPosByte],
		ColorEffects:    h[headerColorByte],
		CoverageEffects: h[headerCoverageByte],
	}
}

// reset empties the descriptor, keeping its allocation for reuse.
func (d *ProgramDesc) reset() {
	d.key = d.key[:0]
}

// setHeader writes the header into its reserved region. The region is zeroed
// first so unused padding bits are deterministic and logically identical
// configurations produce byte-identical keys.
func (d *ProgramDesc) setHeader(hdr Header) {
	h := d.key[headerOffset : headerOffset+headerSize]
	for i := range h {
		h[i] = 0
	}
	if hdr.PathRendering {
		h[headerFlagsByte] |= headerFlagPathRendering
	}
	h[headerDstReadByte] = hdr.DstReadKey
	h[headerFragPosByte] = hdr.FragPosKey
	h[headerColorByte] = hdr.ColorEffects
	h[headerCoverageByte] = hdr.CoverageEffects
}

// finalize records the total length and computes the summary checksum over
// everything after the checksum word. After finalize the key is complete.
func (d *ProgramDesc) finalize() {
	binary.LittleEndian.PutUint32(d.key[lengthOffset:], uint32(len(d.key)))

	h := fnv.New32a()
	_, _ = h.Write(d.key[lengthOffset:])
	binary.LittleEndian.PutUint32(d.key[checksumOffset:], h.Sum32())
}
