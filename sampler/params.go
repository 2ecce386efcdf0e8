// Package sampler manages GPU texture-sampling resources: device sampler
// states built from wrap/filter parameters and, optionally, bindless
// texture handles tied to a sampler + texture pair.
//
// The package owns neither textures nor the device. Both are consumed
// through interfaces ([Texture], [Device]) so that the texture residency
// layer and the graphics binding layer stay pluggable.
package sampler

//go:generate go tool stringer -type=Wrap -trimprefix=Wrap -output=wrap_string.go
//go:generate go tool stringer -type=TextureKind -trimprefix=Kind -output=texturekind_string.go

// Wrap describes the behavior for texture coordinates outside [0,1].
type Wrap uint8

const (
	WrapClamp Wrap = iota
	WrapRepeat
	WrapBlack
	WrapMirror

	// WrapNoOpinion defers to the opinion authored in the texture file's
	// metadata, or to the device default if the file has none either.
	WrapNoOpinion

	// WrapLegacyNoOpinionFallbackRepeat is a compatibility mode for
	// deprecated uv texture nodes: like WrapNoOpinion, but falls back to
	// WrapRepeat instead of the device default.
	WrapLegacyNoOpinionFallbackRepeat
)

// MinFilter describes filtering when texture pixels are smaller than
// screen pixels.
type MinFilter uint8

const (
	MinFilterNearest MinFilter = iota
	MinFilterLinear
	MinFilterNearestMipmapNearest
	MinFilterLinearMipmapNearest
	MinFilterNearestMipmapLinear
	MinFilterLinearMipmapLinear
)

// MagFilter describes filtering when texture pixels are larger than
// screen pixels.
type MagFilter uint8

const (
	MagFilterNearest MagFilter = iota
	MagFilterLinear
)

// Parameters is the caller-facing sampling configuration. It is a plain
// comparable value: two Parameters are equal exactly if all attributes
// are equal, which also makes it usable directly as a cache key.
type Parameters struct {
	WrapS Wrap
	WrapT Wrap
	WrapR Wrap

	MinFilter MinFilter
	MagFilter MagFilter
}
