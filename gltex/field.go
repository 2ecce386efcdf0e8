package gltex

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/tessera-gfx/tessera/sampler"
)

// Field is a volumetric single-channel float texture, as produced by
// density or temperature field files. Field files author no wrap
// opinions, so Field implements only the base texture interface.
type Field struct {
	name uint32

	width, height, depth uint32
}

type NewFieldOptions struct {
	Width  uint32
	Height uint32
	Depth  uint32

	// Texels as Width*Height*Depth float values, x-major. May be nil to
	// allocate storage only.
	Texels []float32

	Label string
}

func NewField(opts NewFieldOptions) (*Field, error) {
	if opts.Width == 0 || opts.Height == 0 || opts.Depth == 0 {
		return nil, fmt.Errorf("invalid field size %dx%dx%d", opts.Width, opts.Height, opts.Depth)
	}

	if opts.Texels != nil && uint32(len(opts.Texels)) != opts.Width*opts.Height*opts.Depth {
		return nil, fmt.Errorf("field texel count %d does not match size %dx%dx%d",
			len(opts.Texels), opts.Width, opts.Height, opts.Depth)
	}

	var name uint32
	gl.CreateTextures(gl.TEXTURE_3D, 1, &name)
	if name == 0 {
		return nil, errors.New("create field texture object")
	}

	gl.TextureStorage3D(name, 1, gl.R32F, int32(opts.Width), int32(opts.Height), int32(opts.Depth))
	label(name, opts.Label)

	if opts.Texels != nil {
		gl.TextureSubImage3D(
			name, 0,
			0, 0, 0,
			int32(opts.Width), int32(opts.Height), int32(opts.Depth),
			gl.RED, gl.FLOAT, gl.Ptr(opts.Texels),
		)
	}

	return &Field{
		name:   name,
		width:  opts.Width,
		height: opts.Height,
		depth:  opts.Depth,
	}, nil
}

func (t *Field) NativeID() uint32 {
	return t.name
}

func (t *Field) IsNativeGL() bool {
	return true
}

func (t *Field) Kind() sampler.TextureKind {
	return sampler.KindField
}

func (t *Field) Size() (w, h, d uint32) {
	return t.width, t.height, t.depth
}

// Release destroys the texture, see Uv.Release.
func (t *Field) Release() {
	if t.name != 0 {
		gl.DeleteTextures(1, &t.name)
		t.name = 0
	}
}
