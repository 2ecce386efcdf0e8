package sampler

// resolveWrap merges the caller's wrap mode for one axis with the
// opinion authored in the texture file's metadata. Axes are independent.
func resolveWrap(textureOpinion, param Wrap) Wrap {
	if param == WrapNoOpinion {
		param = textureOpinion
	}

	// Legacy behavior for deprecated uv texture nodes: use repeat if
	// neither the node nor the texture file has an opinion.
	if param == WrapLegacyNoOpinionFallbackRepeat {
		if textureOpinion == WrapNoOpinion {
			param = WrapRepeat
		} else {
			param = textureOpinion
		}
	}

	return param
}

// resolveUvParameters resolves wrapS and wrapT against the texture
// file's metadata. wrapR has no authored counterpart on a 2D texture and
// passes through untouched.
func resolveUvParameters(texture UvTexture, p Parameters) Parameters {
	s, t := texture.WrapOpinions()

	p.WrapS = resolveWrap(s, p.WrapS)
	p.WrapT = resolveWrap(t, p.WrapT)

	return p
}
