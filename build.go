package progkey

import "math"

// Build constructs a fresh program key for one draw. See ProgramDesc.Build.
func Build(state *DrawState, drawType DrawType, caps *Caps) (*ProgramDesc, error) {
	var desc ProgramDesc
	if err := desc.Build(state, drawType, caps); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Build populates d with the program key for one draw, replacing any
// previous contents. The descriptor is a cache key: every field that does
// not affect program generation is canonicalized (zeroed) so that logically
// identical draws never produce distinct keys.
//
// The only runtime failure is ErrKeyBudgetOverflow, raised when a processor
// exceeds a 16-bit meta-key budget; d is left empty and the caller should
// fall back to an uncached compile. Violated draw-state invariants — a
// geometry processor on a path-rendering draw, stage counts that disagree
// with the stage list, a missing transfer processor — are caller bugs and
// panic.
func (d *ProgramDesc) Build(state *DrawState, drawType DrawType, caps *Caps) error {
	pathRendering := caps.PathRendering && drawType.IsPathRendering()
	if pathRendering && state.GeometryProcessor != nil {
		panic("progkey: geometry processor configured on a path-rendering draw")
	}
	if !pathRendering && state.GeometryProcessor == nil {
		panic("progkey: draw state has no geometry processor")
	}
	if state.TransferProcessor == nil {
		panic("progkey: draw state has no transfer processor")
	}
	if state.ColorStages+state.CoverageStages != len(state.FragmentStages) {
		panic("progkey: stage counts disagree with the fragment stage list")
	}
	if state.ColorStages > math.MaxUint8 || state.CoverageStages > math.MaxUint8 {
		panic("progkey: stage count exceeds its header field")
	}

	// Reserve the leading checksum, length, and header regions; they are
	// written after the processor-key region is complete.
	d.reset()
	d.key = append(d.key, make([]byte, ProcessorKeysOffset)...)

	b := &KeyBuilder{key: &d.key}

	// One fragment plus meta-key trailer per processor, in pipeline order.
	// transformKey is zero for the geometry and transfer stages; coordinate
	// transforms are a fragment-stage concept.
	emit := func(proc Processor, transformKey uint32) error {
		start := b.Size()
		proc.EmitKey(b)
		return emitMetaKey(proc, caps, transformKey, b.Size()-start, b)
	}

	if state.GeometryProcessor != nil {
		if err := emit(state.GeometryProcessor, 0); err != nil {
			d.reset()
			return err
		}
	}

	for _, fp := range state.FragmentStages {
		tk := TransformKey(fp, state.RequiresLocalCoordAttrib)
		if err := emit(fp, tk); err != nil {
			d.reset()
			return err
		}
	}

	if err := emit(state.TransferProcessor, 0); err != nil {
		d.reset()
		return err
	}

	hdr := Header{
		PathRendering:   pathRendering,
		ColorEffects:    uint8(state.ColorStages),
		CoverageEffects: uint8(state.CoverageStages),
	}

	if state.ReadsDst {
		hdr.DstReadKey = keyForDstRead(state.DstCopy, caps)
		if hdr.DstReadKey == 0 {
			panic("progkey: destination-read sub-key is zero for a draw that reads the destination")
		}
	}

	if state.ReadsFragPosition {
		hdr.FragPosKey = keyForFragmentPosition(state.RenderTargetOrigin)
	}

	d.setHeader(hdr)
	d.finalize()
	return nil
}
