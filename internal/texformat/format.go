// Package texformat provides the GTF texture format table: the pure
// lookups over format codes that the classifier, layout planner and
// byte-mover all share.
package texformat

// TextureFormat is a GTF/Cell-GCM texture format code. The low bits name
// the base format; Linear and Unnormalize are overlaid as flag bits on
// top of it, matching the PS3 wire representation.
type TextureFormat uint8

// Flag bits overlaid on a base format code.
const (
	Linear      TextureFormat = 0x20
	Unnormalize TextureFormat = 0x40
)

// Base format codes (Cell-GCM texture format constants).
const (
	B8                    TextureFormat = 0x81
	A1R5G5B5              TextureFormat = 0x82
	A4R4G4B4              TextureFormat = 0x83
	R5G6B5                TextureFormat = 0x84
	A8R8G8B8              TextureFormat = 0x85
	Dxt1                  TextureFormat = 0x86
	Dxt23                 TextureFormat = 0x87
	Dxt45                 TextureFormat = 0x88
	G8B8                  TextureFormat = 0x8B
	CompressedB8R8G8R8Raw TextureFormat = 0x8D
	CompressedR8B8R8G8Raw TextureFormat = 0x8E
	R6G5B5                TextureFormat = 0x8F
	Depth24D8             TextureFormat = 0x90
	Depth24D8Float        TextureFormat = 0x91
	Depth16               TextureFormat = 0x92
	Depth16Float          TextureFormat = 0x93
	X16                   TextureFormat = 0x94
	Y16X16                TextureFormat = 0x95
	R5G5B5A1              TextureFormat = 0x97
	CompressedHilo8       TextureFormat = 0x98
	CompressedHiloS8      TextureFormat = 0x99
	W16Z16Y16X16Float     TextureFormat = 0x9A
	W32Z32Y32X32Float     TextureFormat = 0x9B
	X32Float              TextureFormat = 0x9C
	D1R5G5B5              TextureFormat = 0x9D
	D8R8G8B8              TextureFormat = 0x9E
	Y16X16Float           TextureFormat = 0x9F
)

// InvertFlag names which byte-mover variant a format requires.
type InvertFlag int

const (
	InvertNone InvertFlag = iota
	InvertSwap16
	InvertSwap32
	InvertSwap32Even
)
