// Package dds implements the 128-byte DDS header and embedded pixel
// format, serialized little-endian on the wire.
package dds

const (
	Magic = "DDS "

	HeaderSize      = 124 // declared DDS_HEADER.dwSize
	PixelFormatSize = 32  // declared DDS_PIXELFORMAT.dwSize

	// DDS_HEADER.dwFlags bits.
	DCaps        = 0x1
	DHeight      = 0x2
	DWidth       = 0x4
	DPitch       = 0x8
	DPixelFormat = 0x1000
	DMipMapCount = 0x20000
	DLinearSize  = 0x80000
	DDepth       = 0x800000

	// DDS_PIXELFORMAT.dwFlags bits.
	PFAlphaPixels = 0x1
	PFAlpha       = 0x2
	PFFourCC      = 0x4
	PFRGB         = 0x40
	PFYUV         = 0x200
	PFLuminance   = 0x20000
	PFBumpDudv    = 0x80000
	// PFR6G5B5 marks the non-standard R6G5B5 layout; it shares the RGB
	// dispatch branch in the classifier.
	PFR6G5B5 = 0x40000

	// DDS_HEADER.dwCaps bits.
	CapsAlpha   = 0x2
	CapsComplex = 0x8
	CapsTexture = 0x1000
	CapsMipMap  = 0x400000

	// DDS_HEADER.dwCaps2 bits.
	Caps2Cubemap   = 0x200
	Caps2Volume    = 0x200000
	Caps2PositiveX = 0x400
	Caps2NegativeX = 0x800
	Caps2PositiveY = 0x1000
	Caps2NegativeY = 0x2000
	Caps2PositiveZ = 0x4000
	Caps2NegativeZ = 0x8000
	Caps2AllFaces  = Caps2PositiveX | Caps2NegativeX | Caps2PositiveY | Caps2NegativeY | Caps2PositiveZ | Caps2NegativeZ

	HeaderFlagsTexture    = DCaps | DHeight | DWidth | DPixelFormat
	HeaderFlagsMipMap     = DMipMapCount
	HeaderFlagsVolume     = DDepth
	HeaderFlagsPitch      = DPitch
	HeaderFlagsLinearSize = DLinearSize

	// FourCCDX10 marks the DX10 extended-header pixel format, which this
	// codec rejects at parse time.
	FourCCDX10 = 0x30315844 // "DX10"
)

// PixelFormat represents DDS_PIXELFORMAT.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Masks returns the four channel bit-masks in (A, R, G, B) order, the
// layout texformat.FromMasks expects.
func (pf PixelFormat) Masks() [4]uint32 {
	return [4]uint32{pf.ABitMask, pf.RBitMask, pf.GBitMask, pf.BBitMask}
}

// Header represents DDS_HEADER.
type Header struct {
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              uint32
	Caps2             uint32
	Caps3             uint32
	Caps4             uint32
	Reserved2         uint32
}

// IsCubemap reports whether the header declares a cubemap.
func (h *Header) IsCubemap() bool {
	return h.Caps2&Caps2Cubemap != 0
}

// HasAllCubeFaces reports whether all six face-present bits are set.
// Partial-face cubemaps are rejected by the codec.
func (h *Header) HasAllCubeFaces() bool {
	return h.Caps2&Caps2AllFaces == Caps2AllFaces
}

// IsVolume reports whether the header declares a 3-D (volume) texture.
func (h *Header) IsVolume() bool {
	return h.Caps2&Caps2Volume != 0 && h.Flags&DDepth != 0
}

// HasMipMaps reports whether the header declares an explicit mipmap count.
func (h *Header) HasMipMaps() bool {
	return h.Flags&DMipMapCount != 0
}
