package sampler

// HandleManager derives bindless handles and makes them resident. Every
// derivation is safe to call speculatively: a false create flag, an
// absent texture, a zero identifier or a zero sampler all degrade to a
// zero handle without touching the device.
type HandleManager struct {
	dev  Device
	diag Diagnostics
}

func NewHandleManager(dev Device, diag Diagnostics) HandleManager {
	return HandleManager{dev: dev, diag: diag}
}

// DeriveSamplerTextureHandle queries the combined sampler+texture
// bindless handle and makes it resident, or returns zero if any
// precondition is missing. A texture whose backing is not the GL kind is
// a coding error: it signals mixed-up backends in the configuration, the
// operation still degrades to "no handle" rather than failing.
func (m HandleManager) DeriveSamplerTextureHandle(texture Texture, state StateHandle, createHandle bool) BindlessHandle {
	if !createHandle {
		return 0
	}

	if texture == nil {
		return 0
	}

	if !texture.IsNativeGL() {
		m.diag.CodingErrorf("only GL-backed textures are supported, got %T", texture)
		return 0
	}

	textureID := texture.NativeID()
	if textureID == 0 {
		return 0
	}

	if state == 0 {
		return 0
	}

	handle := m.dev.TextureSamplerHandle(textureID, state)

	// Residency marking is one-shot per handle. Handles are derived only
	// here, during object construction, and objects are never reused, so
	// this is the single call for this handle.
	m.dev.MakeResident(handle)
	m.dev.PostPendingErrors("derive sampler texture handle")

	return handle
}

// DeriveTextureHandle queries a texture-only bindless handle and makes
// it resident, or returns zero. Used for the ptex texel and layout
// arrays, once per sub-resource.
func (m HandleManager) DeriveTextureHandle(textureID uint32, createHandle bool) BindlessHandle {
	if !createHandle {
		return 0
	}

	if textureID == 0 {
		return 0
	}

	handle := m.dev.TextureHandle(textureID)

	m.dev.MakeResident(handle)
	m.dev.PostPendingErrors("derive texture handle")

	return handle
}
