package progkey

// Precision is a shader numeric precision qualifier for a coordinate
// transform. The enumeration must fit the 2-bit precision field of the
// transform key; init verifies this once at startup.
type Precision uint32

const (
	// PrecisionLow is the lowest precision qualifier.
	PrecisionLow Precision = iota
	// PrecisionMedium is the default precision qualifier.
	PrecisionMedium
	// PrecisionHigh is the highest precision qualifier.
	PrecisionHigh

	precisionCount
)

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "Low"
	case PrecisionMedium:
		return "Medium"
	case PrecisionHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// CoordSource identifies where a coordinate transform's input coordinates
// come from. The shader generator emits different variants for each.
type CoordSource uint32

const (
	// CoordSourceLocal derives input coords from local space. Unless the
	// draw forces explicit local-coordinate attributes, local coords are
	// reconstructed from vertex position in the shader.
	CoordSourceLocal CoordSource = iota

	// CoordSourceDevice derives input coords from device space.
	CoordSourceDevice

	// CoordSourceExplicitLocal always reads input coords from a dedicated
	// vertex attribute.
	CoordSourceExplicitLocal
)

// String returns a human-readable name for the coordinate source.
func (s CoordSource) String() string {
	switch s {
	case CoordSourceLocal:
		return "Local"
	case CoordSourceDevice:
		return "Device"
	case CoordSourceExplicitLocal:
		return "ExplicitLocal"
	default:
		return "Unknown"
	}
}

// CoordTransform describes one coordinate transform owned by a fragment
// processor: its input source, its matrix shape, and its precision. Vertex
// code is specialized per matrix type, so perspective-ness is part of the key.
type CoordTransform struct {
	Source      CoordSource
	Precision   Precision
	Perspective bool
}

// The per-transform key packs (1 bit matrix type) + (2 bits precision) +
// (2 bits coordinate source) into a 5-bit field. Field t occupies bit range
// [5t, 5t+5) of the transform key word.
const (
	matrixTypeKeyBits = 1
	precisionBits     = 2
	precisionShift    = matrixTypeKeyBits

	positionCoordsFlag = 1 << (precisionShift + precisionBits)
	deviceCoordsFlag   = positionCoordsFlag << 1

	transformKeyBits = matrixTypeKeyBits + precisionBits + 2
)

// Matrix types specialized in generated vertex code.
const (
	matrixTypeNoPersp = 0
	matrixTypeGeneral = 1
)

// maxTransforms is the number of 5-bit fields a 32-bit transform key holds.
const maxTransforms = 32 / transformKeyBits

func init() {
	if precisionCount > 1<<precisionBits {
		panic("progkey: precision enumeration no longer fits its 2-bit key field")
	}
}

// TransformKey packs the shapes of a fragment processor's coordinate
// transforms into a single word, one 5-bit field per transform in
// declaration order.
//
// explicitLocalCoords is the draw-wide flag forcing local coordinates to be
// read from a dedicated attribute; when set, CoordSourceLocal transforms
// encode the same way as CoordSourceExplicitLocal ones.
//
// A processor reporting more transforms than the key word can hold is a
// programming error and panics; real pipelines stay far below the limit.
func TransformKey(proc FragmentProcessor, explicitLocalCoords bool) uint32 {
	totalKey := uint32(0)
	numTransforms := proc.NumTransforms()
	if numTransforms > maxTransforms {
		panic("progkey: too many coordinate transforms for the transform key field")
	}
	for t := 0; t < numTransforms; t++ {
		ct := proc.CoordTransform(t)

		key := uint32(matrixTypeNoPersp)
		if ct.Perspective {
			key = matrixTypeGeneral
		}

		switch {
		case ct.Source == CoordSourceLocal && !explicitLocalCoords:
			key |= positionCoordsFlag
		case ct.Source == CoordSourceDevice:
			key |= deviceCoordsFlag
		default:
			// Explicit local coords: both flag bits clear.
		}

		key |= uint32(ct.Precision) << precisionShift

		key <<= uint32(transformKeyBits * t)

		if totalKey&key != 0 {
			// Fields for distinct transforms must not overlap.
			panic("progkey: transform key fields overlap")
		}
		totalKey |= key
	}
	return totalKey
}
