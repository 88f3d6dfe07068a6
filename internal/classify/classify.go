package classify

import (
	"github.com/woozymasta/ddsgtf/internal/dds"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// Classify maps a DDS pixel format to a GTF texture format plus remap
// word, dispatching on flags: FOURCC first, then the RGB family, then a
// bit-count fallback. A format with no GTF
// equivalent comes back as the zero TextureFormat; callers detect this
// and fail with UnsupportedFormat at the next stage.
func Classify(pf dds.PixelFormat) (texformat.TextureFormat, texformat.Remap) {
	if pf.Flags&dds.PFFourCC != 0 {
		return classifyFourCC(pf.FourCC)
	}

	if pf.Flags&(dds.PFRGB|dds.PFAlphaPixels|dds.PFAlpha|dds.PFLuminance|dds.PFR6G5B5|dds.PFBumpDudv) != 0 {
		if format, remap, ok := classifyRGBFamily(pf); ok {
			return format, remap
		}
	}

	return classifyFallback(pf.RGBBitCount), texformat.OrderARGB
}

func classifyFourCC(fourcc uint32) (texformat.TextureFormat, texformat.Remap) {
	switch fourcc {
	case fccDXT1:
		return texformat.Dxt1, texformat.OrderARGB
	case fccDXT2, fccDXT3:
		return texformat.Dxt23, texformat.OrderARGB
	case fccDXT4, fccDXT5:
		return texformat.Dxt45, texformat.OrderARGB
	case fmtR16F:
		// Asymmetric with the inverse mapping (Y16X16Float -> G16R16F);
		// kept for round-trip compatibility with files that carry it.
		return texformat.Y16X16Float, texformat.OrderARGB
	case fmtG16R16F:
		return texformat.Y16X16Float, texformat.OrderARGB
	case fmtA16B16G16R16F:
		return texformat.W16Z16Y16X16Float, texformat.OrderARGB
	case fmtR32F:
		return texformat.X32Float, texformat.OrderARGB
	case fmtA32B32G32R32F:
		return texformat.W32Z32Y32X32Float, texformat.OrderARGB
	case fccR8G8B8G8:
		return texformat.CompressedB8R8G8R8Raw, texformat.OrderAGRB
	case fccG8R8G8B8:
		return texformat.CompressedR8B8R8G8Raw, texformat.OrderAGRB
	case fccYVYU:
		return texformat.CompressedR8B8R8G8Raw, texformat.OrderARBG
	case fccYUY2:
		return texformat.CompressedB8R8G8R8Raw, texformat.OrderARBG
	case fccDDS, fccRXGB, fccATI1, fccATI2:
		fallthrough
	default:
		// Left unmapped: conversion fails downstream with UnsupportedFormat.
		return 0, texformat.OrderARGB
	}
}

func classifyRGBFamily(pf dds.PixelFormat) (texformat.TextureFormat, texformat.Remap, bool) {
	alphaPixels := pf.Flags&dds.PFAlphaPixels != 0
	remap := texformat.FromMasks(pf.Masks(), alphaPixels)

	aBits := popcount(pf.ABitMask)
	rBits := popcount(pf.RBitMask)
	gBits := popcount(pf.GBitMask)
	bBits := popcount(pf.BBitMask)

	if pf.Flags&dds.PFLuminance != 0 {
		switch pf.RGBBitCount {
		case 16:
			if rBits == 16 {
				return texformat.X16, remap, true
			}
			if (aBits == 8 && rBits == 8) || (gBits == 8 && bBits == 8) {
				return texformat.G8B8, remap, true
			}
		}
		return 0, 0, false
	}

	if pf.Flags&dds.PFBumpDudv != 0 {
		switch pf.RGBBitCount {
		case 16:
			return texformat.Y16X16, remap, true
		case 32:
			return texformat.A8R8G8B8, remap, true
		}
		return 0, 0, false
	}

	switch pf.RGBBitCount {
	case 8:
		if pf.RBitMask != 0 {
			return texformat.B8, texformat.Order1BBB, true
		}
		return texformat.B8, texformat.OrderB000, true

	case 16:
		switch {
		case aBits == 1 && pf.ABitMask == 0x8000:
			return texformat.A1R5G5B5, remap, true
		case aBits == 1 && pf.ABitMask == 0x0001:
			return texformat.R5G5B5A1, remap, true
		case aBits == 4, aBits == 0 && rBits == 4 && gBits == 4 && bBits == 4:
			return texformat.A4R4G4B4, remap, true
		case aBits == 0 && rBits == 5 && gBits == 6 && bBits == 5:
			return texformat.R5G6B5, remap, true
		case aBits == 0 && rBits == 6 && gBits == 5 && bBits == 5:
			return texformat.R6G5B5, remap, true
		case aBits == 0 && rBits == 5 && gBits == 5 && bBits == 5:
			return texformat.D1R5G5B5, remap, true
		case (aBits == 8 && rBits == 8) || (gBits == 8 && bBits == 8):
			return texformat.G8B8, remap, true
		case rBits == 16 || gBits == 16 || bBits == 16 || aBits == 16:
			return texformat.X16, remap, true
		}
		return 0, 0, false

	case 24:
		return texformat.D8R8G8B8, texformat.Order1RGB, true

	case 32:
		if alphaPixels {
			return texformat.A8R8G8B8, remap, true
		}
		wide16 := 0
		for _, bits := range []int{aBits, rBits, gBits, bBits} {
			if bits == 16 {
				wide16++
			}
		}
		if wide16 >= 2 && rBits != 8 {
			return texformat.Y16X16, remap, true
		}
		return texformat.D8R8G8B8, texformat.Order1RGB, true
	}

	return 0, 0, false
}

func classifyFallback(rgbBitCount uint32) texformat.TextureFormat {
	switch rgbBitCount {
	case 8:
		return texformat.B8
	case 16:
		return texformat.X16
	case 32:
		return texformat.A8R8G8B8
	case 64:
		return texformat.W16Z16Y16X16Float
	case 128:
		return texformat.W32Z32Y32X32Float
	default:
		return 0
	}
}

func popcount(v uint32) int {
	n := 0
	for v != 0 {
		n += int(v & 1)
		v >>= 1
	}
	return n
}
