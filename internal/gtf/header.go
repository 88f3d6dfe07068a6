// Package gtf implements the GTF file header, texture-attribute table
// and per-texture info record, serialized big-endian on the wire.
package gtf

const (
	// HeaderSize is the fixed byte size of the GTF file header.
	HeaderSize = 12
	// AttributeSize is the byte size of one GtfTextureAttribute record
	// (16-byte fixed part + 32-byte embedded TextureInfo).
	AttributeSize = 48
	// InfoSize is the byte size of the embedded GtfTextureInfo record.
	InfoSize = 32

	// Alignment is the boundary every GTF size and offset must respect.
	Alignment = 128

	// DefaultVersion is the version stamped by this codec on output
	// (202.00.00).
	DefaultVersion = 0x02020000
)

// Dimension names the texture's GtfTextureInfo.Dimension field.
const (
	Dimension1D = 1
	Dimension2D = 2
	Dimension3D = 3
)

// Header represents the 12-byte GTF file header.
type Header struct {
	Version     uint32
	Size        uint32 // total texture-region size, excluding the header block
	NumTexture  uint32 // 1..255
}

// TextureAttribute represents one 48-byte GtfTextureAttribute record.
type TextureAttribute struct {
	ID          uint32 // 0..255
	OffsetToTex uint32 // multiple of Alignment
	TextureSize uint32
	Info        TextureInfo
}

// TextureInfo represents the embedded 32-byte GtfTextureInfo record.
type TextureInfo struct {
	Format      uint8 // base format code with Linear/Unnormalize flag bits overlaid
	MipMap      uint8
	Dimension   uint8
	Cubemap     uint8 // 0 or 1
	Remap       uint16
	Width       uint16
	Height      uint16
	Depth       uint16
	Location    uint8
	Pad         uint8
	Pitch       uint32
	Offset      uint32
}

// AlignUp rounds x up to the next multiple of align.
func AlignUp(x, align uint32) uint32 {
	if align == 0 {
		return x
	}
	rem := x % align
	if rem == 0 {
		return x
	}
	return x + (align - rem)
}

// HeaderBlockSize returns the aligned byte size of the file header plus
// n attribute records.
func HeaderBlockSize(n int) uint32 {
	return AlignUp(HeaderSize+AttributeSize*uint32(n), Alignment) //nolint:gosec // n is bounded to [1,255] by callers.
}
