package sampler

// DescriptorFactory turns sampler parameters into device sampler-state
// objects, filling in the process-wide tunables.
type DescriptorFactory struct {
	dev Device
	tun Tunables
}

func NewDescriptorFactory(dev Device, tun Tunables) DescriptorFactory {
	return DescriptorFactory{dev: dev, tun: tun}
}

// CreateDeviceSampler allocates and configures exactly one sampler
// state. A zero handle means the device refused the allocation; callers
// must treat that as "no sampler", bindless derivation no-ops on it.
func (f DescriptorFactory) CreateDeviceSampler(p Parameters) StateHandle {
	state := f.dev.CreateSampler(Descriptor{
		WrapS: p.WrapS,
		WrapT: p.WrapT,
		WrapR: p.WrapR,

		MinFilter: p.MinFilter,
		MagFilter: p.MagFilter,

		BorderColor:   f.tun.BorderColor,
		MaxAnisotropy: f.tun.MaxAnisotropy,
	})

	f.dev.PostPendingErrors("create sampler state")

	return state
}
