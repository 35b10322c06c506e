// Command progkeydump builds program keys for a few canned draw states and
// prints their layout. Useful for eyeballing how capability flags change the
// generated keys.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/progkey"
)

func main() {
	var (
		swizzle  = flag.Bool("swizzle", false, "backend supports native texture swizzling")
		red      = flag.Bool("red", true, "backend stores single-channel textures in red")
		fbfetch  = flag.Bool("fbfetch", false, "backend supports in-shader destination reads")
		pathrend = flag.Bool("path", false, "backend supports path rendering")
	)
	flag.Parse()

	caps := &progkey.Caps{
		TextureSwizzle: *swizzle,
		TextureRed:     *red,
		FBFetch:        *fbfetch,
		PathRendering:  *pathrend,
	}

	for _, sc := range scenarios(caps) {
		desc, err := progkey.Build(sc.state, sc.drawType, caps)
		if err != nil {
			log.Printf("%s: build failed: %v", sc.name, err)
			continue
		}
		dump(sc.name, desc)
	}
}

type scenario struct {
	name     string
	state    *progkey.DrawState
	drawType progkey.DrawType
}

func scenarios(caps *progkey.Caps) []scenario {
	geom := &stage{classID: 1, fragment: []uint32{0xdead}}
	transfer := &stage{classID: 2}

	textured := &stage{
		classID:  7,
		fragment: []uint32{0xbeef},
		textures: []progkey.TextureAccess{
			{ChannelMask: progkey.ChannelA, Swizzle: progkey.ChannelA},
		},
		transforms: []progkey.CoordTransform{
			{Source: progkey.CoordSourceLocal, Precision: progkey.PrecisionMedium},
			{Source: progkey.CoordSourceDevice, Precision: progkey.PrecisionHigh, Perspective: true},
		},
	}

	image := &stage{
		classID:  9,
		fragment: []uint32{0x1234, 0x5678},
		textures: []progkey.TextureAccess{
			{Format: gputypes.TextureFormatRGBA8Unorm, Swizzle: progkey.ChannelRGBA},
		},
	}

	out := []scenario{
		{
			name: "alpha texture",
			state: &progkey.DrawState{
				GeometryProcessor: geom,
				FragmentStages:    []progkey.FragmentProcessor{textured},
				TransferProcessor: transfer,
				ColorStages:       1,
			},
			drawType: progkey.DrawTypeOrdinary,
		},
		{
			name: "rgba image with dst read",
			state: &progkey.DrawState{
				GeometryProcessor: geom,
				FragmentStages:    []progkey.FragmentProcessor{image},
				TransferProcessor: transfer,
				ColorStages:       1,
				ReadsDst:          true,
				DstCopy: &progkey.DstCopy{
					Format: gputypes.TextureFormatBGRA8Unorm,
					Origin: progkey.OriginBottomLeft,
				},
			},
			drawType: progkey.DrawTypeOrdinary,
		},
	}

	if caps.PathRendering {
		out = append(out, scenario{
			name: "path rendering",
			state: &progkey.DrawState{
				FragmentStages:    []progkey.FragmentProcessor{image},
				TransferProcessor: transfer,
				ColorStages:       1,
			},
			drawType: progkey.DrawTypePath,
		})
	}

	return out
}

func dump(name string, desc *progkey.ProgramDesc) {
	hdr := desc.Header()
	fmt.Printf("%s:\n", name)
	fmt.Printf("  length    %d bytes, checksum %08x\n", desc.Length(), desc.Checksum())
	fmt.Printf("  header    path=%v dstRead=%#02x fragPos=%#02x color=%d coverage=%d\n",
		hdr.PathRendering, hdr.DstReadKey, hdr.FragPosKey, hdr.ColorEffects, hdr.CoverageEffects)
	fmt.Printf("  key       %s\n", hex.EncodeToString(desc.Bytes()))
}

// stage is a minimal fixed-configuration processor for demo draw states.
type stage struct {
	classID    progkey.ClassID
	fragment   []uint32
	textures   []progkey.TextureAccess
	transforms []progkey.CoordTransform
}

func (s *stage) ClassID() progkey.ClassID { return s.classID }

func (s *stage) EmitKey(b *progkey.KeyBuilder) {
	for _, w := range s.fragment {
		b.AddUint32(w)
	}
}

func (s *stage) NumTextures() int { return len(s.textures) }

func (s *stage) TextureAccess(i int) progkey.TextureAccess { return s.textures[i] }

func (s *stage) NumTransforms() int { return len(s.transforms) }

func (s *stage) CoordTransform(t int) progkey.CoordTransform { return s.transforms[t] }
