package gldev

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/tessera-gfx/tessera/sampler"
)

func wrapToGL(w sampler.Wrap) int32 {
	switch w {
	case sampler.WrapClamp:
		return gl.CLAMP_TO_EDGE
	case sampler.WrapRepeat:
		return gl.REPEAT
	case sampler.WrapBlack:
		return gl.CLAMP_TO_BORDER
	case sampler.WrapMirror:
		return gl.MIRRORED_REPEAT
	default:
		// sentinels that survive resolution mean "device default"
		return gl.REPEAT
	}
}

func minFilterToGL(f sampler.MinFilter) int32 {
	switch f {
	case sampler.MinFilterNearest:
		return gl.NEAREST
	case sampler.MinFilterLinear:
		return gl.LINEAR
	case sampler.MinFilterNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case sampler.MinFilterLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case sampler.MinFilterNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	case sampler.MinFilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.NEAREST_MIPMAP_LINEAR
	}
}

func magFilterToGL(f sampler.MagFilter) int32 {
	switch f {
	case sampler.MagFilterNearest:
		return gl.NEAREST
	default:
		return gl.LINEAR
	}
}

func errorString(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	default:
		return fmt.Sprintf("GL error 0x%04x", code)
	}
}
