// Package classify implements the DDS↔GTF format classifier and header
// synthesizer: the glue that maps a DDS pixel format to a GTF texture
// format plus remap word, and back again.
package classify

func fourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// ASCII FOURCC codes for the compressed and packed-YUV DDS variants.
var (
	fccDXT1     = fourCC('D', 'X', 'T', '1')
	fccDXT2     = fourCC('D', 'X', 'T', '2')
	fccDXT3     = fourCC('D', 'X', 'T', '3')
	fccDXT4     = fourCC('D', 'X', 'T', '4')
	fccDXT5     = fourCC('D', 'X', 'T', '5')
	fccDDS      = fourCC('D', 'D', 'S', ' ')
	fccRXGB     = fourCC('R', 'X', 'G', 'B')
	fccATI1     = fourCC('A', 'T', 'I', '1')
	fccATI2     = fourCC('A', 'T', 'I', '2')
	fccR8G8B8G8 = fourCC('R', 'G', 'B', 'G')
	fccG8R8G8B8 = fourCC('G', 'R', 'G', 'B')
	fccYVYU     = fourCC('Y', 'V', 'Y', 'U')
	fccYUY2     = fourCC('Y', 'U', 'Y', '2')
)

// The IEEE-float formats are never given ASCII FOURCC tags on the wire;
// the FourCC field instead carries the raw D3DFMT enum value.
const (
	fmtR16F          = 111
	fmtG16R16F       = 112
	fmtA16B16G16R16F = 113
	fmtR32F          = 114
	fmtA32B32G32R32F = 116
)
