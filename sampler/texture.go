package sampler

// TextureKind selects the sampler-object variant built for a texture.
// The set is closed: the destruction policy differs per kind (see
// Object) and must stay exhaustively enumerable.
type TextureKind uint8

const (
	// KindUv is a conventional 2D texture addressed through uv wrap and
	// filter state.
	KindUv TextureKind = iota

	// KindField is a volumetric field texture. It uses the caller's
	// sampling parameters verbatim, field files carry no wrap opinion.
	KindField

	// KindPtex is a per-face texture consisting of a texel array and a
	// layout array. Ptex lookups bypass wrap/filter state entirely.
	KindPtex
)

// Texture is the read-only view of a texture resource owned by the
// texture residency layer. A sampler object queries it once during
// construction and never holds it beyond that; keeping the texture alive
// while its sampler objects are in use is the owner's responsibility.
type Texture interface {
	// NativeID returns the device name of the texture image. Zero means
	// the texture is not resident on the device yet.
	NativeID() uint32

	// IsNativeGL reports whether the texture is backed by the GL device
	// kind this package drives. Samplers for textures of any other
	// backing cannot be derived and indicate a configuration bug.
	IsNativeGL() bool

	// Kind selects the sampler-object variant.
	Kind() TextureKind
}

// UvTexture is a 2D texture that additionally exposes the wrap opinions
// authored in its source file's metadata.
type UvTexture interface {
	Texture

	// WrapOpinions returns the authored wrap modes for the s and t axes,
	// WrapNoOpinion for axes the file is silent about.
	WrapOpinions() (s, t Wrap)
}

// PtexTexture is a ptex texture exposing its two sub-resources.
type PtexTexture interface {
	Texture

	// TexelsID returns the device name of the texel array, zero while
	// not resident.
	TexelsID() uint32

	// LayoutID returns the device name of the layout array, zero while
	// not resident.
	LayoutID() uint32
}
