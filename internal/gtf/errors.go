package gtf

import "errors"

// Sentinel errors for ReadHeader, checked with errors.Is by callers
// mapping onto the codec's Kind taxonomy.
var (
	ErrEOF          = errors.New("gtf: truncated file")
	ErrAlignment    = errors.New("gtf: size or offset is not a multiple of 128")
	ErrNumTexture   = errors.New("gtf: num_texture out of range [1,255]")
	ErrTextureID    = errors.New("gtf: attribute id out of range [0,255]")
	ErrTextureEOF   = errors.New("gtf: attribute extends past end of file")
	ErrTextureOffset = errors.New("gtf: attribute offset_to_tex is not aligned")
)
