package texformat

// RawFormat strips the Linear and Unnormalize flag bits, returning the
// base format code.
func RawFormat(f TextureFormat) TextureFormat {
	return f &^ (Linear | Unnormalize)
}

// IsSwizzled reports whether a format code (with flags) denotes a
// swizzled (non-linear) memory layout.
func IsSwizzled(f TextureFormat) bool {
	return f&Linear == 0
}

// IsDxtn reports whether a raw format is one of the three DXT variants.
func IsDxtn(raw TextureFormat) bool {
	switch raw {
	case Dxt1, Dxt23, Dxt45:
		return true
	default:
		return false
	}
}

// IsRawCompressed reports whether a raw format is one of the packed-pair
// "raw compressed" formats (B8R8_G8R8 / R8B8_R8G8 family).
func IsRawCompressed(raw TextureFormat) bool {
	switch raw {
	case CompressedB8R8G8R8Raw, CompressedR8B8R8G8Raw:
		return true
	default:
		return false
	}
}

// PixelDepth returns the bytes-per-texel (or bytes-per-block, for DXT
// formats) of a raw format. Unknown formats fall back to 4.
func PixelDepth(raw TextureFormat) int {
	switch raw {
	case B8:
		return 1
	case A1R5G5B5, A4R4G4B4, R5G6B5, G8B8, R6G5B5, Depth16, Depth16Float, X16,
		D1R5G5B5, R5G5B5A1, CompressedHilo8, CompressedHiloS8,
		CompressedB8R8G8R8Raw, CompressedR8B8R8G8Raw:
		return 2
	case A8R8G8B8, Depth24D8, Depth24D8Float, Y16X16, X32Float, D8R8G8B8, Y16X16Float:
		return 4
	case W16Z16Y16X16Float:
		return 8
	case W32Z32Y32X32Float:
		return 16
	case Dxt1:
		return 8
	case Dxt23, Dxt45:
		return 16
	default:
		return 4
	}
}

// Pitch returns the row stride in bytes for a raw format at the given
// width. DXT formats round the width up to whole 4x4 blocks; the
// packed-pair raw formats round it up to whole pixel pairs.
func Pitch(raw TextureFormat, width int) int {
	switch {
	case IsDxtn(raw):
		blocks := (width + 3) / 4
		return blocks * PixelDepth(raw)
	case IsRawCompressed(raw):
		w := width
		if w%2 != 0 {
			w++
		}
		return w * 4
	default:
		return width * PixelDepth(raw)
	}
}

// InvertFlagFor returns the byte-mover variant a raw format requires.
func InvertFlagFor(raw TextureFormat) InvertFlag {
	if IsRawCompressed(raw) {
		return InvertSwap32Even
	}
	switch raw {
	case W32Z32Y32X32Float, X32Float:
		return InvertSwap32
	case X16, Y16X16, Y16X16Float, W16Z16Y16X16Float:
		return InvertSwap16
	}
	if IsDxtn(raw) {
		return InvertNone
	}
	switch PixelDepth(raw) {
	case 2:
		return InvertSwap16
	case 4:
		return InvertSwap32
	default:
		return InvertSwap32
	}
}
