package sampler

// StateHandle names a device sampler-state object. Zero means no sampler.
type StateHandle uint32

// BindlessHandle is a device-issued identifier that lets shader code
// reference a texture or sampler+texture pair without a bind slot. A
// handle must be made resident before use and stays valid until it is
// released or until the device object owning it is destroyed. Zero means
// no handle.
type BindlessHandle uint64

// Descriptor is the full configuration of one device sampler state.
// Unlike Parameters it carries the process-wide tunables and no longer
// contains opinion sentinels for wrapS/wrapT of uv samplers.
type Descriptor struct {
	WrapS Wrap
	WrapT Wrap
	WrapR Wrap

	MinFilter MinFilter
	MagFilter MagFilter

	BorderColor   [4]float32
	MaxAnisotropy float32
}

// Device is the graphics binding layer this package drives. All methods
// are synchronous device calls bound to a single context thread; none of
// them is safe for concurrent use against the same context.
type Device interface {
	// CreateSampler allocates and configures one sampler-state object.
	// Returns zero only on total allocation failure.
	CreateSampler(desc Descriptor) StateHandle

	// DeleteSampler destroys a sampler state. At the device level this
	// implicitly invalidates any bindless handle derived from it.
	DeleteSampler(h StateHandle)

	// TextureSamplerHandle queries the combined bindless handle for a
	// texture and sampler pair.
	TextureSamplerHandle(textureID uint32, s StateHandle) BindlessHandle

	// TextureHandle queries a texture-only bindless handle.
	TextureHandle(textureID uint32) BindlessHandle

	// MakeResident marks a bindless handle usable by shader code. The
	// device defines this as a one-shot operation: marking the same
	// handle twice is undefined.
	MakeResident(h BindlessHandle)

	// MakeNonResident releases residency of a bindless handle.
	MakeNonResident(h BindlessHandle)

	// PostPendingErrors drains and reports any pending device error
	// state accumulated by preceding calls. Errors are reported through
	// diagnostics, not returned: state faults at this level are not
	// recoverable by retrying.
	PostPendingErrors(scope string)
}
