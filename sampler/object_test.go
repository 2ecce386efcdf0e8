package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUvResolvesAgainstFileMetadata(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	texture := &stubUvTexture{id: 7, wrapS: WrapRepeat, wrapT: WrapNoOpinion}

	obj := factory.NewUv(texture, Parameters{
		WrapS:     WrapNoOpinion,
		WrapT:     WrapClamp,
		MinFilter: MinFilterLinear,
		MagFilter: MagFilterNearest,
	}, false)

	require.Len(t, dev.created, 1)
	desc := dev.created[0]

	assert.Equal(t, WrapRepeat, desc.WrapS)
	assert.Equal(t, WrapClamp, desc.WrapT)
	assert.Equal(t, MinFilterLinear, desc.MinFilter)
	assert.Equal(t, MagFilterNearest, desc.MagFilter)

	assert.NotZero(t, obj.State())

	// bindless handle was not requested
	assert.Zero(t, obj.TextureSamplerHandle())
	assert.Empty(t, dev.resident)
}

func TestNewUvWithBindlessHandle(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	texture := &stubUvTexture{id: 7}
	obj := factory.NewUv(texture, Parameters{}, true)

	require.NotZero(t, obj.TextureSamplerHandle())
	assert.Equal(t, []BindlessHandle{obj.TextureSamplerHandle()}, dev.resident)
}

func TestUvDestroyDeletesSamplerStateOnly(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	obj := factory.NewUv(&stubUvTexture{id: 7}, Parameters{}, true)
	require.NotZero(t, obj.TextureSamplerHandle())

	obj.Destroy()

	assert.Equal(t, []StateHandle{obj.State()}, dev.deleted)

	// the handle is invalidated by the sampler deletion; an explicit
	// non-resident call would race driver-side handle reuse
	assert.Empty(t, dev.nonResident)

	// destroying twice does not delete twice
	obj.Destroy()
	assert.Len(t, dev.deleted, 1)
}

func TestUvDestroyWithoutSamplerState(t *testing.T) {
	dev := &mockDevice{failCreate: true}
	factory, _ := newTestFactory(dev)

	obj := factory.NewUv(&stubUvTexture{id: 7}, Parameters{}, true)

	assert.Zero(t, obj.State())
	assert.Zero(t, obj.TextureSamplerHandle())

	obj.Destroy()
	assert.Empty(t, dev.deleted)
	assert.Empty(t, dev.nonResident)
}

func TestNewFieldUsesCallerParametersVerbatim(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	// field textures have no file metadata, sentinels stay untouched
	obj := factory.NewField(&stubFieldTexture{id: 5}, Parameters{
		WrapS: WrapNoOpinion,
		WrapT: WrapLegacyNoOpinionFallbackRepeat,
	}, true)

	require.Len(t, dev.created, 1)
	assert.Equal(t, WrapNoOpinion, dev.created[0].WrapS)
	assert.Equal(t, WrapLegacyNoOpinionFallbackRepeat, dev.created[0].WrapT)

	assert.NotZero(t, obj.State())
	assert.NotZero(t, obj.TextureSamplerHandle())
}

func TestFieldDestroyDeletesSamplerStateOnly(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	obj := factory.NewField(&stubFieldTexture{id: 5}, Parameters{}, true)
	obj.Destroy()

	assert.Equal(t, []StateHandle{obj.State()}, dev.deleted)
	assert.Empty(t, dev.nonResident)
}

func TestNewPtexNeverAllocatesSamplerState(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	// non-default filter parameters must be ignored
	obj := factory.NewPtex(&stubPtexTexture{texels: 11, layout: 12}, Parameters{
		WrapS:     WrapMirror,
		MinFilter: MinFilterLinearMipmapLinear,
		MagFilter: MagFilterLinear,
	}, true)

	assert.Empty(t, dev.created)
	assert.Zero(t, obj.State())

	assert.NotZero(t, obj.TexelsHandle())
	assert.NotZero(t, obj.LayoutHandle())
	assert.NotEqual(t, obj.TexelsHandle(), obj.LayoutHandle())
	assert.Len(t, dev.resident, 2)
}

func TestPtexDestroyReleasesResidency(t *testing.T) {
	tests := []struct {
		name           string
		texels, layout uint32
		create         bool
		wantCalls      int
	}{
		{name: "both resident", texels: 11, layout: 12, create: true, wantCalls: 2},
		{name: "texels only", texels: 11, layout: 0, create: true, wantCalls: 1},
		{name: "layout only", texels: 0, layout: 12, create: true, wantCalls: 1},
		{name: "nothing resident", texels: 0, layout: 0, create: true, wantCalls: 0},
		{name: "handles not requested", texels: 11, layout: 12, create: false, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &mockDevice{}
			factory, _ := newTestFactory(dev)

			obj := factory.NewPtex(&stubPtexTexture{texels: tt.texels, layout: tt.layout}, Parameters{}, tt.create)
			obj.Destroy()

			// exactly one non-resident call per handle held
			assert.Len(t, dev.nonResident, tt.wantCalls)
			assert.Empty(t, dev.deleted)

			// destroying twice does not release twice
			obj.Destroy()
			assert.Len(t, dev.nonResident, tt.wantCalls)
		})
	}
}

func TestNewDispatchesOnTextureKind(t *testing.T) {
	dev := &mockDevice{}
	factory, _ := newTestFactory(dev)

	assert.IsType(t, &UvObject{}, factory.New(&stubUvTexture{id: 1}, Parameters{}, false))
	assert.IsType(t, &FieldObject{}, factory.New(&stubFieldTexture{id: 2}, Parameters{}, false))
	assert.IsType(t, &PtexObject{}, factory.New(&stubPtexTexture{texels: 3, layout: 4}, Parameters{}, false))
}

func TestNewMismatchedTextureKind(t *testing.T) {
	dev := &mockDevice{}
	factory, diag := newTestFactory(dev)

	obj := factory.New(&stubMismatchedTexture{}, Parameters{}, false)

	assert.Nil(t, obj)
	require.Len(t, diag.errors, 1)
	assert.Contains(t, diag.errors[0], "does not match")
}
