// Package gldev implements sampler.Device against a current OpenGL 4.6
// context with ARB_bindless_texture.
package gldev

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/tessera-gfx/tessera/sampler"
)

func init() {
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("TESSERA_LOG_LEVEL")) {
	case "ERROR":
		slog.SetLogLoggerLevel(slog.LevelError)
	case "WARN":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "INFO":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "DEBUG":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// Device is the GL binding layer. All methods must run on the thread
// that owns the GL context; the package init locks the main goroutine to
// its thread for that reason.
type Device struct{}

// New loads the GL function pointers and verifies bindless support. A
// context must be current on the calling thread.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize gl: %w", err)
	}

	if !hasExtension("GL_ARB_bindless_texture") {
		return nil, errors.New("GL_ARB_bindless_texture is not supported")
	}

	slog.Info("GL device ready",
		slog.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		slog.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
	)

	return &Device{}, nil
}

func hasExtension(name string) bool {
	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)

	for i := int32(0); i < count; i++ {
		if gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))) == name {
			return true
		}
	}

	return false
}

func (*Device) CreateSampler(desc sampler.Descriptor) sampler.StateHandle {
	var name uint32
	gl.GenSamplers(1, &name)

	if name == 0 {
		return 0
	}

	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_S, wrapToGL(desc.WrapS))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_T, wrapToGL(desc.WrapT))
	gl.SamplerParameteri(name, gl.TEXTURE_WRAP_R, wrapToGL(desc.WrapR))

	gl.SamplerParameteri(name, gl.TEXTURE_MIN_FILTER, minFilterToGL(desc.MinFilter))
	gl.SamplerParameteri(name, gl.TEXTURE_MAG_FILTER, magFilterToGL(desc.MagFilter))

	border := desc.BorderColor
	gl.SamplerParameterfv(name, gl.TEXTURE_BORDER_COLOR, &border[0])

	gl.SamplerParameterf(name, gl.TEXTURE_MAX_ANISOTROPY, desc.MaxAnisotropy)

	return sampler.StateHandle(name)
}

func (*Device) DeleteSampler(h sampler.StateHandle) {
	name := uint32(h)
	gl.DeleteSamplers(1, &name)
}

func (*Device) TextureSamplerHandle(textureID uint32, s sampler.StateHandle) sampler.BindlessHandle {
	return sampler.BindlessHandle(gl.GetTextureSamplerHandleARB(textureID, uint32(s)))
}

func (*Device) TextureHandle(textureID uint32) sampler.BindlessHandle {
	return sampler.BindlessHandle(gl.GetTextureHandleARB(textureID))
}

func (*Device) MakeResident(h sampler.BindlessHandle) {
	gl.MakeTextureHandleResidentARB(uint64(h))
}

func (*Device) MakeNonResident(h sampler.BindlessHandle) {
	gl.MakeTextureHandleNonResidentARB(uint64(h))
}

// PostPendingErrors drains the context error queue and logs every entry.
// Errors here mean corrupted GL state, which a retry cannot fix, so they
// are reported instead of returned.
func (*Device) PostPendingErrors(scope string) {
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}

		slog.Error("Pending GL error",
			slog.String("scope", scope),
			slog.String("error", errorString(code)),
		)
	}
}
