package sampler

// Object is a sampler object: it owns zero or more device sampler
// states and zero or more bindless handles for one texture. Objects are
// built by a Factory, are not reusable after Destroy, and are exclusively
// owned by their caller, no two objects share device resources.
//
// Objects hold no reference back to their texture. If the texture owner
// destroys or reloads the texture, existing sampler objects for it are
// silently stale and must not be sampled through anymore; this package
// provides no detection for that condition.
type Object interface {
	// State returns the device sampler state, zero for variants that own
	// none (ptex) or when allocation failed.
	State() StateHandle

	// Destroy releases the device resources the object owns. Calling it
	// again is a no-op.
	Destroy()
}

// Factory builds sampler objects. It bundles the descriptor factory and
// the bindless handle manager over one device.
type Factory struct {
	descriptors DescriptorFactory
	handles     HandleManager
	diag        Diagnostics
}

// FactoryOptions configure a Factory. The zero value (or a nil pointer)
// selects DefaultTunables and slog-backed diagnostics.
type FactoryOptions struct {
	Tunables    *Tunables
	Diagnostics Diagnostics
}

func NewFactory(dev Device, opts *FactoryOptions) *Factory {
	if opts == nil {
		opts = &FactoryOptions{}
	}

	tun := DefaultTunables()
	if opts.Tunables != nil {
		tun = *opts.Tunables
	}

	diag := opts.Diagnostics
	if diag == nil {
		diag = slogDiagnostics{}
	}

	return &Factory{
		descriptors: NewDescriptorFactory(dev, tun),
		handles:     NewHandleManager(dev, diag),
		diag:        diag,
	}
}

// New builds the sampler-object variant matching the texture's kind.
// Construction never fails: every device-level problem degrades to zero
// handles inside the object. New returns nil only for a texture whose
// declared kind does not match its interface, which is a coding error.
func (f *Factory) New(texture Texture, p Parameters, createBindlessHandle bool) Object {
	switch texture.Kind() {
	case KindUv:
		if uv, ok := texture.(UvTexture); ok {
			return f.NewUv(uv, p, createBindlessHandle)
		}

	case KindField:
		return f.NewField(texture, p, createBindlessHandle)

	case KindPtex:
		if ptex, ok := texture.(PtexTexture); ok {
			return f.NewPtex(ptex, p, createBindlessHandle)
		}
	}

	f.diag.CodingErrorf("texture kind %v does not match its interface %T", texture.Kind(), texture)
	return nil
}

// UvObject samples a conventional 2D texture. It owns one device
// sampler state and at most one sampler+texture bindless handle.
type UvObject struct {
	dev Device

	state  StateHandle
	handle BindlessHandle

	destroyed bool
}

// NewUv builds a sampler object for a 2D uv texture. The caller's wrapS
// and wrapT are first resolved against the opinions authored in the
// texture file's metadata; the bindless handle is derived from the
// texture's current native identifier.
func (f *Factory) NewUv(texture UvTexture, p Parameters, createBindlessHandle bool) *UvObject {
	state := f.descriptors.CreateDeviceSampler(resolveUvParameters(texture, p))

	return &UvObject{
		dev:    f.descriptors.dev,
		state:  state,
		handle: f.handles.DeriveSamplerTextureHandle(texture, state, createBindlessHandle),
	}
}

func (o *UvObject) State() StateHandle { return o.state }

// TextureSamplerHandle returns the bindless sampler+texture handle, zero
// if none was requested or derivable.
func (o *UvObject) TextureSamplerHandle() BindlessHandle { return o.handle }

func (o *UvObject) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	// Deleting the sampler state implicitly invalidates the derived
	// sampler+texture handle. The handle must not be made non-resident
	// here: the texture may have been destroyed or reloaded by its owner
	// in the meantime, and the driver may already have handed the same
	// handle value to someone else.
	if o.state != 0 {
		o.dev.DeleteSampler(o.state)
	}
}

// FieldObject samples a volumetric field texture. Field files carry no
// wrap opinion, so the caller's parameters are used verbatim; ownership
// and destruction otherwise match UvObject.
type FieldObject struct {
	dev Device

	state  StateHandle
	handle BindlessHandle

	destroyed bool
}

// NewField builds a sampler object for a field texture directly from the
// caller's parameters.
func (f *Factory) NewField(texture Texture, p Parameters, createBindlessHandle bool) *FieldObject {
	state := f.descriptors.CreateDeviceSampler(p)

	return &FieldObject{
		dev:    f.descriptors.dev,
		state:  state,
		handle: f.handles.DeriveSamplerTextureHandle(texture, state, createBindlessHandle),
	}
}

func (o *FieldObject) State() StateHandle { return o.state }

// TextureSamplerHandle returns the bindless sampler+texture handle, zero
// if none was requested or derivable.
func (o *FieldObject) TextureSamplerHandle() BindlessHandle { return o.handle }

func (o *FieldObject) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	// Same handle policy as UvObject: deleting the sampler state is what
	// invalidates the handle, never release it explicitly.
	if o.state != 0 {
		o.dev.DeleteSampler(o.state)
	}
}

// PtexObject samples a ptex texture pair. Ptex addressing goes through
// per-face indices in the layout array, so no sampler state exists; the
// object owns up to two texture-only bindless handles instead.
type PtexObject struct {
	dev Device

	texels BindlessHandle
	layout BindlessHandle

	destroyed bool
}

// NewPtex builds a sampler object for a ptex texture. The wrap and
// filter parameters are accepted for interface uniformity but ignored.
func (f *Factory) NewPtex(texture PtexTexture, _ Parameters, createBindlessHandle bool) *PtexObject {
	return &PtexObject{
		dev:    f.descriptors.dev,
		texels: f.handles.DeriveTextureHandle(texture.TexelsID(), createBindlessHandle),
		layout: f.handles.DeriveTextureHandle(texture.LayoutID(), createBindlessHandle),
	}
}

// State returns zero, ptex objects own no sampler state.
func (o *PtexObject) State() StateHandle { return 0 }

// TexelsHandle returns the bindless handle of the texel array, zero if
// none was requested or derivable.
func (o *PtexObject) TexelsHandle() BindlessHandle { return o.texels }

// LayoutHandle returns the bindless handle of the layout array, zero if
// none was requested or derivable.
func (o *PtexObject) LayoutHandle() BindlessHandle { return o.layout }

func (o *PtexObject) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true

	// There is no sampler state whose deletion would invalidate these
	// handles, so residency is released explicitly, the inverse of the
	// uv and field policy.
	if o.texels != 0 {
		o.dev.MakeNonResident(o.texels)
	}
	if o.layout != 0 {
		o.dev.MakeNonResident(o.layout)
	}
}
