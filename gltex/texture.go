// Package gltex provides GL-backed texture resources implementing the
// texture interfaces of package sampler: 2D uv textures carrying the
// wrap opinions authored in their source file, volumetric field
// textures, and ptex texel/layout array pairs.
//
// Like package gldev, everything here must run on the thread owning the
// GL context.
package gltex

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/tessera-gfx/tessera/sampler"
)

// Uv is a conventional 2D rgba8 texture.
type Uv struct {
	name          uint32
	width, height uint32

	wrapS, wrapT sampler.Wrap

	region Rect[uint32]
}

type NewUvOptions struct {
	Width  uint32
	Height uint32

	// Pixels in tightly packed rgba8 order. May be nil to allocate
	// storage only.
	Pixels []byte

	// Wrap opinions authored in the source file's metadata,
	// WrapNoOpinion where the file is silent.
	WrapS sampler.Wrap
	WrapT sampler.Wrap

	// Helpful label for GL debug messages
	Label string
}

func NewUv(opts NewUvOptions) (*Uv, error) {
	if opts.Width == 0 || opts.Height == 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", opts.Width, opts.Height)
	}

	var name uint32
	gl.CreateTextures(gl.TEXTURE_2D, 1, &name)
	if name == 0 {
		return nil, errors.New("create texture object")
	}

	gl.TextureStorage2D(name, 1, gl.RGBA8, int32(opts.Width), int32(opts.Height))
	label(name, opts.Label)

	t := &Uv{
		name:   name,
		width:  opts.Width,
		height: opts.Height,
		wrapS:  opts.WrapS,
		wrapT:  opts.WrapT,
		region: RectFromSize[uint32](0, 0, opts.Width, opts.Height),
	}

	if opts.Pixels != nil {
		if err := t.WritePixels(opts.Pixels); err != nil {
			t.Release()
			return nil, fmt.Errorf("upload texture: %w", err)
		}
	}

	return t, nil
}

// NewUvFromImage uploads an image, converting it to rgba8 first.
func NewUvFromImage(src image.Image, wrapS, wrapT sampler.Wrap) (*Uv, error) {
	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, iw, ih))

	draw.Draw(rgba, rgba.Bounds(), src, image.Point{}, draw.Src)

	return NewUv(NewUvOptions{
		Width:  uint32(iw),
		Height: uint32(ih),
		Pixels: rgba.Pix,
		WrapS:  wrapS,
		WrapT:  wrapT,
	})
}

// DecodeUvFromMemory decodes an encoded image (any format registered
// with image.RegisterFormat) and uploads it.
func DecodeUvFromMemory(buf []byte, wrapS, wrapT sampler.Wrap) (*Uv, error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image from memory: %w", err)
	}

	return NewUvFromImage(src, wrapS, wrapT)
}

func (t *Uv) WritePixels(pixels []byte) error {
	return t.WritePixelsToRect(WritePixelsOptions{
		Pixels: pixels,
		Region: t.region,
	})
}

type WritePixelsOptions struct {
	Pixels []byte
	Region Rect[uint32]

	// Stride in bytes per source row, zero means tightly packed.
	Stride uint32
}

func (t *Uv) WritePixelsToRect(opts WritePixelsOptions) error {
	// fail if not in rect
	if !t.region.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture region %s", opts.Region, t.region)
	}

	if opts.Stride != 0 {
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(opts.Stride/4))
		defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	}

	gl.TextureSubImage2D(
		t.name, 0,
		int32(opts.Region.Min[0]), int32(opts.Region.Min[1]),
		int32(opts.Region.Width()), int32(opts.Region.Height()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(opts.Pixels),
	)

	return nil
}

func (t *Uv) NativeID() uint32 {
	return t.name
}

func (t *Uv) IsNativeGL() bool {
	return true
}

func (t *Uv) Kind() sampler.TextureKind {
	return sampler.KindUv
}

func (t *Uv) WrapOpinions() (sampler.Wrap, sampler.Wrap) {
	return t.wrapS, t.wrapT
}

func (t *Uv) Width() uint32 {
	return t.width
}

func (t *Uv) Height() uint32 {
	return t.height
}

// Release destroys the texture. Sampler objects built for it become
// stale and must not be sampled through anymore.
func (t *Uv) Release() {
	if t.name != 0 {
		gl.DeleteTextures(1, &t.name)
		t.name = 0
	}
}

func label(name uint32, text string) {
	if text != "" {
		gl.ObjectLabel(gl.TEXTURE, name, int32(len(text)), gl.Str(text+"\x00"))
	}
}
