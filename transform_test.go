package progkey

import "testing"

func TestTransformKeyEncoding(t *testing.T) {
	proc := &testProc{
		classID: 3,
		transforms: []CoordTransform{
			{Source: CoordSourceLocal, Precision: PrecisionLow},
			{Source: CoordSourceDevice, Precision: PrecisionHigh, Perspective: true},
			{Source: CoordSourceExplicitLocal, Precision: PrecisionMedium},
		},
	}

	got := TransformKey(proc, false)

	// Field 0 (bits 0-4): affine matrix, precision 0, position-derived local.
	want0 := uint32(positionCoordsFlag)
	// Field 1 (bits 5-9): perspective matrix, precision 2, device-derived.
	want1 := uint32(matrixTypeGeneral|2<<precisionShift|deviceCoordsFlag) << transformKeyBits
	// Field 2 (bits 10-14): affine matrix, precision 1, explicit attribute
	// (both coord flags clear).
	want2 := uint32(1<<precisionShift) << (2 * transformKeyBits)

	want := want0 | want1 | want2
	if got != want {
		t.Errorf("TransformKey = %#x, want %#x", got, want)
	}
	if got>>(3*transformKeyBits) != 0 {
		t.Errorf("TransformKey = %#x, bits above the three fields must be zero", got)
	}
}

func TestTransformKeyExplicitLocalCoords(t *testing.T) {
	proc := &testProc{
		transforms: []CoordTransform{{Source: CoordSourceLocal, Precision: PrecisionLow}},
	}

	// With the draw-wide flag clear, local coords come from position.
	if got := TransformKey(proc, false); got != positionCoordsFlag {
		t.Errorf("TransformKey(explicit=false) = %#x, want %#x", got, uint32(positionCoordsFlag))
	}

	// With the flag set, local transforms encode as explicit-attribute reads.
	if got := TransformKey(proc, true); got != 0 {
		t.Errorf("TransformKey(explicit=true) = %#x, want 0", got)
	}
}

func TestTransformKeyDeviceIgnoresExplicitFlag(t *testing.T) {
	proc := &testProc{
		transforms: []CoordTransform{{Source: CoordSourceDevice, Precision: PrecisionLow}},
	}

	want := uint32(deviceCoordsFlag)
	if got := TransformKey(proc, true); got != want {
		t.Errorf("TransformKey = %#x, want %#x", got, want)
	}
}

func TestTransformKeyEmpty(t *testing.T) {
	proc := &testProc{}
	if got := TransformKey(proc, false); got != 0 {
		t.Errorf("TransformKey with no transforms = %#x, want 0", got)
	}
}

func TestTransformKeyTooManyTransformsPanics(t *testing.T) {
	transforms := make([]CoordTransform, maxTransforms+1)
	proc := &testProc{transforms: transforms}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for transform count above the key field limit")
		}
	}()
	TransformKey(proc, false)
}
