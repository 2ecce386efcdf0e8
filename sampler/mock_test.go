package sampler

import (
	"fmt"
)

// mockDevice records every device call so tests can assert on exact call
// sequences, in particular on residency calls that must or must not
// happen.
type mockDevice struct {
	failCreate bool

	nextState StateHandle

	created     []Descriptor
	deleted     []StateHandle
	resident    []BindlessHandle
	nonResident []BindlessHandle
	scopes      []string

	calls int
}

func (d *mockDevice) CreateSampler(desc Descriptor) StateHandle {
	d.calls++

	if d.failCreate {
		return 0
	}

	d.nextState++
	d.created = append(d.created, desc)

	return d.nextState
}

func (d *mockDevice) DeleteSampler(h StateHandle) {
	d.calls++
	d.deleted = append(d.deleted, h)
}

func (d *mockDevice) TextureSamplerHandle(textureID uint32, s StateHandle) BindlessHandle {
	d.calls++
	return BindlessHandle(uint64(textureID)<<32 | uint64(s))
}

func (d *mockDevice) TextureHandle(textureID uint32) BindlessHandle {
	d.calls++
	return BindlessHandle(0xb00_0000_0000 | uint64(textureID))
}

func (d *mockDevice) MakeResident(h BindlessHandle) {
	d.calls++
	d.resident = append(d.resident, h)
}

func (d *mockDevice) MakeNonResident(h BindlessHandle) {
	d.calls++
	d.nonResident = append(d.nonResident, h)
}

func (d *mockDevice) PostPendingErrors(scope string) {
	d.scopes = append(d.scopes, scope)
}

type recordingDiag struct {
	errors []string
}

func (d *recordingDiag) CodingErrorf(format string, args ...any) {
	d.errors = append(d.errors, fmt.Sprintf(format, args...))
}

func newTestFactory(dev *mockDevice) (*Factory, *recordingDiag) {
	diag := &recordingDiag{}
	return NewFactory(dev, &FactoryOptions{Diagnostics: diag}), diag
}

type stubUvTexture struct {
	id    uint32
	notGL bool

	wrapS, wrapT Wrap
}

func (t *stubUvTexture) NativeID() uint32           { return t.id }
func (t *stubUvTexture) IsNativeGL() bool           { return !t.notGL }
func (t *stubUvTexture) Kind() TextureKind          { return KindUv }
func (t *stubUvTexture) WrapOpinions() (Wrap, Wrap) { return t.wrapS, t.wrapT }

type stubFieldTexture struct {
	id uint32
}

func (t *stubFieldTexture) NativeID() uint32  { return t.id }
func (t *stubFieldTexture) IsNativeGL() bool  { return true }
func (t *stubFieldTexture) Kind() TextureKind { return KindField }

type stubPtexTexture struct {
	texels, layout uint32
}

func (t *stubPtexTexture) NativeID() uint32  { return t.texels }
func (t *stubPtexTexture) IsNativeGL() bool  { return true }
func (t *stubPtexTexture) Kind() TextureKind { return KindPtex }
func (t *stubPtexTexture) TexelsID() uint32  { return t.texels }
func (t *stubPtexTexture) LayoutID() uint32  { return t.layout }

// stubMismatchedTexture claims a kind whose interface it does not
// implement.
type stubMismatchedTexture struct{}

func (t *stubMismatchedTexture) NativeID() uint32  { return 1 }
func (t *stubMismatchedTexture) IsNativeGL() bool  { return true }
func (t *stubMismatchedTexture) Kind() TextureKind { return KindUv }
