package classify

import (
	"errors"
	"fmt"

	"github.com/woozymasta/ddsgtf/internal/dds"
	"github.com/woozymasta/ddsgtf/internal/gtf"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// ErrUnsupportedRawFormat is returned by SynthDDSHeader for raw formats
// with no DDS equivalent (CompressedHilo8, CompressedHiloS8, and any
// code not enumerated in the dispatch table).
var ErrUnsupportedRawFormat = errors.New("classify: texture format has no DDS equivalent")

// SynthDDSHeader builds a DDS header from a GTF texture descriptor.
// Classify maps the pixel format written here back to the same raw
// format for every raw format Classify can produce, except Y16X16: its
// 32-bit bump-dudv pixel format classifies as A8R8G8B8.
func SynthDDSHeader(info gtf.TextureInfo) (*dds.Header, error) {
	raw := texformat.RawFormat(texformat.TextureFormat(info.Format))

	pf, err := pixelFormatFor(raw)
	if err != nil {
		return nil, err
	}

	h := &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture,
		Height: uint32(info.Height),
		Width:  uint32(info.Width),
		Caps:   dds.CapsTexture,
	}

	if info.MipMap > 1 {
		h.Flags |= dds.HeaderFlagsMipMap
		h.Caps |= dds.CapsMipMap | dds.CapsComplex
		h.MipMapCount = uint32(info.MipMap)
	}
	if info.Dimension == gtf.Dimension3D {
		h.Flags |= dds.HeaderFlagsVolume
		h.Caps2 |= dds.Caps2Volume
		h.Caps |= dds.CapsComplex
		h.Depth = uint32(info.Depth)
	}
	if info.Cubemap != 0 {
		h.Caps2 |= dds.Caps2Cubemap | dds.Caps2AllFaces
		h.Caps |= dds.CapsComplex
	}
	h.PixelFormat = pf
	if pf.Flags&dds.PFAlphaPixels != 0 {
		h.Caps |= dds.CapsAlpha
	}

	h.PitchOrLinearSize = pitchOrLinearSizeFor(raw, int(info.Width), int(info.Height), info.Pitch)
	if texformat.IsDxtn(raw) {
		h.Flags |= dds.HeaderFlagsLinearSize
	} else if h.PitchOrLinearSize != 0 {
		h.Flags |= dds.HeaderFlagsPitch
	}

	return h, nil
}

func pitchOrLinearSizeFor(raw texformat.TextureFormat, width, height int, infoPitch uint32) uint32 {
	switch {
	case texformat.IsRawCompressed(raw):
		return 0
	case texformat.IsDxtn(raw):
		blocksW := (width + 3) / 4
		blocksH := (height + 3) / 4
		return uint32(blocksW * blocksH * texformat.PixelDepth(raw)) //nolint:gosec // block counts are small.
	case infoPitch != 0:
		return infoPitch
	default:
		return 0
	}
}

func pixelFormatFor(raw texformat.TextureFormat) (dds.PixelFormat, error) {
	switch raw {
	case texformat.Dxt1:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fccDXT1}, nil
	case texformat.Dxt23:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fccDXT3}, nil
	case texformat.Dxt45:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fccDXT5}, nil
	case texformat.Y16X16Float:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fmtG16R16F}, nil
	case texformat.W16Z16Y16X16Float:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fmtA16B16G16R16F}, nil
	case texformat.X32Float:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fmtR32F}, nil
	case texformat.W32Z32Y32X32Float:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fmtA32B32G32R32F}, nil
	case texformat.CompressedB8R8G8R8Raw:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fccR8G8B8G8}, nil
	case texformat.CompressedR8B8R8G8Raw:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fccG8R8G8B8}, nil

	case texformat.B8:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFLuminance, RGBBitCount: 8, RBitMask: 0xff}, nil
	case texformat.A1R5G5B5:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0x8000, RBitMask: 0x7c00, GBitMask: 0x03e0, BBitMask: 0x001f,
		}, nil
	case texformat.R5G5B5A1:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0x0001, RBitMask: 0xf800, GBitMask: 0x07c0, BBitMask: 0x003e,
		}, nil
	case texformat.A4R4G4B4:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0xf000, RBitMask: 0x0f00, GBitMask: 0x00f0, BBitMask: 0x000f,
		}, nil
	case texformat.R5G6B5:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB, RGBBitCount: 16,
			RBitMask: 0xf800, GBitMask: 0x07e0, BBitMask: 0x001f,
		}, nil
	case texformat.R6G5B5:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFR6G5B5, RGBBitCount: 16,
			RBitMask: 0xfc00, GBitMask: 0x03e0, BBitMask: 0x001f,
		}, nil
	case texformat.D1R5G5B5:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB, RGBBitCount: 16,
			RBitMask: 0x7c00, GBitMask: 0x03e0, BBitMask: 0x001f,
		}, nil
	case texformat.G8B8:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 16,
			ABitMask: 0xff00, RBitMask: 0x00ff,
		}, nil
	case texformat.X16:
		return dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFLuminance, RGBBitCount: 16, RBitMask: 0xffff}, nil
	case texformat.D8R8G8B8:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB, RGBBitCount: 24,
			RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		}, nil
	case texformat.A8R8G8B8:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xff000000, RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		}, nil
	case texformat.Y16X16:
		return dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFBumpDudv, RGBBitCount: 32,
			RBitMask: 0x0000ffff, GBitMask: 0xffff0000,
		}, nil

	default:
		return dds.PixelFormat{}, fmt.Errorf("%w: 0x%x", ErrUnsupportedRawFormat, raw)
	}
}
