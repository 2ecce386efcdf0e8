package gltex

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/tessera-gfx/tessera/sampler"
)

// layoutEntriesPerFace is the number of uint16 values describing one
// face in the layout array: page index plus the face's texel rect.
const layoutEntriesPerFace = 6

// Ptex holds the two sub-resources of a ptex texture: a texel page
// array and the layout array shaders use to find a face's texels.
// Ptex lookups never go through wrap/filter state.
type Ptex struct {
	texels uint32
	layout uint32

	faces uint32
}

type NewPtexOptions struct {
	// Texel pages, each PageWidth x PageHeight rgba8.
	PageWidth  uint32
	PageHeight uint32
	Pages      uint32

	// Texels for all pages, tightly packed. May be nil to allocate
	// storage only.
	Texels []byte

	// Layout holds six uint16 values per face.
	Layout []uint16

	Label string
}

func NewPtex(opts NewPtexOptions) (*Ptex, error) {
	if opts.PageWidth == 0 || opts.PageHeight == 0 || opts.Pages == 0 {
		return nil, fmt.Errorf("invalid ptex page layout %dx%d x%d",
			opts.PageWidth, opts.PageHeight, opts.Pages)
	}

	if len(opts.Layout) == 0 || len(opts.Layout)%layoutEntriesPerFace != 0 {
		return nil, fmt.Errorf("ptex layout length %d is not a multiple of %d",
			len(opts.Layout), layoutEntriesPerFace)
	}

	var texels uint32
	gl.CreateTextures(gl.TEXTURE_2D_ARRAY, 1, &texels)
	if texels == 0 {
		return nil, errors.New("create ptex texel array")
	}

	gl.TextureStorage3D(texels, 1, gl.RGBA8,
		int32(opts.PageWidth), int32(opts.PageHeight), int32(opts.Pages))
	label(texels, opts.Label)

	if opts.Texels != nil {
		gl.TextureSubImage3D(
			texels, 0,
			0, 0, 0,
			int32(opts.PageWidth), int32(opts.PageHeight), int32(opts.Pages),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(opts.Texels),
		)
	}

	var layout uint32
	gl.CreateTextures(gl.TEXTURE_1D, 1, &layout)
	if layout == 0 {
		gl.DeleteTextures(1, &texels)
		return nil, errors.New("create ptex layout array")
	}

	gl.TextureStorage1D(layout, 1, gl.R16UI, int32(len(opts.Layout)))
	gl.TextureSubImage1D(
		layout, 0,
		0, int32(len(opts.Layout)),
		gl.RED_INTEGER, gl.UNSIGNED_SHORT, gl.Ptr(opts.Layout),
	)

	return &Ptex{
		texels: texels,
		layout: layout,
		faces:  uint32(len(opts.Layout) / layoutEntriesPerFace),
	}, nil
}

// NativeID returns the texel array name; ptex consumers address the two
// sub-resources through TexelsID and LayoutID.
func (t *Ptex) NativeID() uint32 {
	return t.texels
}

func (t *Ptex) IsNativeGL() bool {
	return true
}

func (t *Ptex) Kind() sampler.TextureKind {
	return sampler.KindPtex
}

func (t *Ptex) TexelsID() uint32 {
	return t.texels
}

func (t *Ptex) LayoutID() uint32 {
	return t.layout
}

func (t *Ptex) Faces() uint32 {
	return t.faces
}

// Release destroys both sub-resources, see Uv.Release.
func (t *Ptex) Release() {
	if t.texels != 0 {
		gl.DeleteTextures(1, &t.texels)
		t.texels = 0
	}
	if t.layout != 0 {
		gl.DeleteTextures(1, &t.layout)
		t.layout = 0
	}
}
