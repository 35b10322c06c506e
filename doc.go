// Package progkey builds compact binary descriptors ("program keys") that
// identify the set of shader stages, their configuration, and backend-dependent
// shader-generation variations needed to draw a primitive.
//
// Two draws that would generate identical shader programs map to the same key;
// draws that would generate different programs map to different keys. The key
// is the lookup/insert key for a compiled-program cache (see the programcache
// subpackage). Collision resistance is structural, not cryptographic: the key
// is an exact fixed-layout encoding of everything that influences generated
// shader code, never a lossy hash.
//
// # Key layout
//
// A finished key is a single byte buffer:
//
//	offset 0   uint32 checksum (fast equality pre-check)
//	offset 4   uint32 total key length in bytes
//	offset 8   fixed 8-byte header (flags, sub-keys, stage counts)
//	offset 16  per-processor key fragments, each followed by a
//	           two-word meta-key trailer
//
// Processor fragments appear in pipeline order: geometry stage, fragment
// stages, transfer stage. Each trailer records the texture-remap mask, the
// coordinate-transform encoding, the processor class ID, and the fragment's
// byte length, each limited to 16 bits. A draw whose configuration exceeds
// any of those budgets cannot be keyed; Build reports ErrKeyBudgetOverflow
// and the caller is expected to skip caching for that draw.
//
// # Usage
//
//	desc, err := progkey.Build(state, progkey.DrawTypeOrdinary, caps)
//	if err != nil {
//	    // compile without caching
//	}
//	program, err := cache.GetOrCreate(desc, compile)
//
// A descriptor is built fresh per draw from a read-only DrawState snapshot
// and a read-only Caps description of the target backend. Builds are pure
// and synchronous; concurrent builds must use separate ProgramDesc values.
// Keys are stable within a process and session only — they are not a
// serialization format.
package progkey
