package ddsgtf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/woozymasta/ddsgtf/internal/dds"
	"github.com/woozymasta/ddsgtf/internal/gtf"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// buildDDS serializes a header and payload into a complete DDS file.
func buildDDS(t *testing.T, h *dds.Header, payload []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := dds.WriteMagic(&buf); err != nil {
		t.Fatal(err)
	}
	if err := dds.WriteHeader(&buf, h); err != nil {
		t.Fatal(err)
	}
	buf.Write(payload)
	return buf.Bytes()
}

func fourCC(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

// sequencePayload fills n bytes with a deterministic non-repeating-ish
// pattern so misplaced texels show up as mismatches.
func sequencePayload(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i%251 + 1)
	}
	return out
}

// minimalDxt1DDS builds a 128-byte DDS header for a 1x1 DXT1 texture
// with an 8-byte payload of all-0xFF bytes.
func minimalDxt1DDS(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := dds.WriteMagic(&buf); err != nil {
		t.Fatal(err)
	}
	h := &dds.Header{
		Size:              dds.HeaderSize,
		Flags:             dds.HeaderFlagsTexture | dds.HeaderFlagsLinearSize,
		Height:            1,
		Width:             1,
		PitchOrLinearSize: 8,
		PixelFormat: dds.PixelFormat{
			Size:   dds.PixelFormatSize,
			Flags:  dds.PFFourCC,
			FourCC: uint32('D') | uint32('X')<<8 | uint32('T')<<16 | uint32('1')<<24,
		},
		Caps: dds.CapsTexture,
	}
	if err := dds.WriteHeader(&buf, h); err != nil {
		t.Fatal(err)
	}
	buf.Write(bytes.Repeat([]byte{0xFF}, 8))
	return buf.Bytes()
}

func TestEncodeGTFMinimalDxt1(t *testing.T) {
	t.Parallel()

	out, err := EncodeGTF(minimalDxt1DDS(t), Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}
	if len(out) != 256 {
		t.Fatalf("len(out) = %d, want 256", len(out))
	}
	for i := 128; i < 136; i++ {
		if out[i] != 0xFF {
			t.Fatalf("out[%d] = 0x%x, want 0xFF", i, out[i])
		}
	}
	for i := 136; i < 256; i++ {
		if out[i] != 0 {
			t.Fatalf("out[%d] = 0x%x, want 0", i, out[i])
		}
	}

	h, attrs, err := gtf.ReadHeader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if h.Version != gtf.DefaultVersion || h.Size != 128 || h.NumTexture != 1 {
		t.Fatalf("header = %+v, want version 0x02020000 size 128 num 1", h)
	}
	a := attrs[0]
	if a.ID != 0 || a.OffsetToTex != 128 || a.TextureSize != 8 {
		t.Fatalf("attribute = %+v, want id 0 offset 128 size 8", a)
	}
	if a.Info.Format != uint8(texformat.Dxt1) {
		t.Fatalf("Format = 0x%x, want Dxt1", a.Info.Format)
	}
	if a.Info.MipMap != 1 || a.Info.Dimension != gtf.Dimension2D {
		t.Fatalf("MipMap/Dimension = %d/%d, want 1/2", a.Info.MipMap, a.Info.Dimension)
	}
	if a.Info.Remap != uint16(texformat.OrderARGB) {
		t.Fatalf("Remap = 0x%04x, want OrderARGB 0x%04x", a.Info.Remap, uint16(texformat.OrderARGB))
	}
	if a.Info.Width != 1 || a.Info.Height != 1 || a.Info.Depth != 1 {
		t.Fatalf("dims = %dx%dx%d, want 1x1x1", a.Info.Width, a.Info.Height, a.Info.Depth)
	}
}

func TestEncodeDecodeDxt1RoundTrip(t *testing.T) {
	t.Parallel()

	ddsIn := minimalDxt1DDS(t)
	gtfOut, err := EncodeGTF(ddsIn, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}
	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsIn[128:], ddsOut[128:]) {
		t.Fatalf("payload mismatch: in=%x out=%x", ddsIn[128:], ddsOut[128:])
	}
}

func TestEncodeGTFRejectsDX10(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = dds.WriteMagic(&buf)
	h := &dds.Header{
		Size:  dds.HeaderSize,
		Flags: dds.HeaderFlagsTexture,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: dds.FourCCDX10,
		},
		Caps: dds.CapsTexture,
	}
	_ = dds.WriteHeader(&buf, h)

	_, err := EncodeGTF(buf.Bytes(), Options{})
	var ddsErr *Error
	if !errors.As(err, &ddsErr) || ddsErr.Kind != KindDX10Unsupported {
		t.Fatalf("err = %v, want KindDX10Unsupported", err)
	}
}

func TestEncodeGTFRejectsOversizedMipMapCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_ = dds.WriteMagic(&buf)
	h := &dds.Header{
		Size:        dds.HeaderSize,
		Flags:       dds.HeaderFlagsTexture | dds.HeaderFlagsMipMap,
		Height:      4,
		Width:       4,
		MipMapCount: 10, // 4x4 only supports 3 levels (4,2,1)
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: uint32('D') | uint32('X')<<8 | uint32('T')<<16 | uint32('1')<<24,
		},
		Caps: dds.CapsTexture,
	}
	_ = dds.WriteHeader(&buf, h)

	_, err := EncodeGTF(buf.Bytes(), Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindUnsupportedHeader {
		t.Fatalf("err = %v, want KindUnsupportedHeader", err)
	}
}

func TestPackImagesRejectsZeroImages(t *testing.T) {
	t.Parallel()

	_, err := PackImages(nil, Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindDdsImageCount {
		t.Fatalf("err = %v, want KindDdsImageCount", err)
	}
}

func TestPackImagesTwoDxt1(t *testing.T) {
	t.Parallel()

	images := [][]byte{minimalDxt1DDS(t), minimalDxt1DDS(t)}
	out, err := PackImages(images, Options{})
	if err != nil {
		t.Fatalf("PackImages: %v", err)
	}
	if len(out)%128 != 0 {
		t.Fatalf("file size %d not 128-aligned", len(out))
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("re-reading packed file: %v", err)
	}
	if len(attrs) != 2 {
		t.Fatalf("len(attrs) = %d, want 2", len(attrs))
	}
	if attrs[0].OffsetToTex%128 != 0 || attrs[1].OffsetToTex%128 != 0 {
		t.Fatalf("unaligned offsets: %+v", attrs)
	}
}

func TestDecodeGTFTextureNotFound(t *testing.T) {
	t.Parallel()

	out, err := EncodeGTF(minimalDxt1DDS(t), Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}
	_, err = DecodeGTF(out, 7)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindTextureNotFound {
		t.Fatalf("err = %v, want KindTextureNotFound", err)
	}
}

func TestEncodeDecodeDxt5RoundTrip(t *testing.T) {
	t.Parallel()

	payload := sequencePayload(16) // one 4x4 DXT5 block
	in := buildDDS(t, &dds.Header{
		Size:              dds.HeaderSize,
		Flags:             dds.HeaderFlagsTexture | dds.HeaderFlagsLinearSize,
		Height:            4,
		Width:             4,
		PitchOrLinearSize: 16,
		PixelFormat:       dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC("DXT5")},
		Caps:              dds.CapsTexture,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}
	if !bytes.Equal(gtfOut[128:144], payload) {
		t.Fatalf("gtf payload = %x, want %x", gtfOut[128:144], payload)
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatalf("dds payload = %x, want %x", ddsOut[128:], payload)
	}
}

func TestEncodeDecodeVolumeDxt1VTC(t *testing.T) {
	t.Parallel()

	// 8x8x4 DXT1 volume: 2x2 blocks of 8 bytes per slice, 4 slices.
	const sliceSize = 2 * 2 * 8
	payload := sequencePayload(sliceSize * 4)
	in := buildDDS(t, &dds.Header{
		Size:              dds.HeaderSize,
		Flags:             dds.HeaderFlagsTexture | dds.HeaderFlagsLinearSize | dds.HeaderFlagsVolume,
		Height:            8,
		Width:             8,
		Depth:             4,
		PitchOrLinearSize: sliceSize,
		PixelFormat:       dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC("DXT1")},
		Caps:              dds.CapsTexture | dds.CapsComplex,
		Caps2:             dds.Caps2Volume,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	// VTC packs the four depth slices of each block consecutively: the
	// first four GTF blocks are block (0,0) of slices 0..3.
	for d := 0; d < 4; d++ {
		got := gtfOut[128+8*d : 128+8*(d+1)]
		want := payload[sliceSize*d : sliceSize*d+8]
		if !bytes.Equal(got, want) {
			t.Fatalf("vtc block d=%d: got %x, want %x", d, got, want)
		}
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatal("volume payload did not survive the round trip")
	}
}

func TestEncodeGTFLinearizeA8R8G8B8(t *testing.T) {
	t.Parallel()

	payload := sequencePayload(64 * 64 * 4)
	in := buildDDS(t, &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture,
		Height: 64,
		Width:  64,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xff000000, RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		},
		Caps: dds.CapsTexture,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{Linearize: true})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfOut))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	wantFormat := uint8(texformat.A8R8G8B8 | texformat.Linear)
	if attrs[0].Info.Format != wantFormat {
		t.Fatalf("Format = 0x%x, want 0x%x", attrs[0].Info.Format, wantFormat)
	}
	if attrs[0].Info.Pitch != 64*4 {
		t.Fatalf("Pitch = %d, want 256", attrs[0].Info.Pitch)
	}

	// Texel 0 is moved through a 32-bit endian swap.
	base := int(attrs[0].OffsetToTex)
	want := []byte{payload[3], payload[2], payload[1], payload[0]}
	if !bytes.Equal(gtfOut[base:base+4], want) {
		t.Fatalf("texel 0 = %x, want %x", gtfOut[base:base+4], want)
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatal("linear payload did not survive the round trip")
	}
}

func TestEncodeDecodeSwizzledA8R8G8B8RoundTrip(t *testing.T) {
	t.Parallel()

	payload := sequencePayload(4 * 4 * 4)
	in := buildDDS(t, &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture,
		Height: 4,
		Width:  4,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xff000000, RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		},
		Caps: dds.CapsTexture,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfOut))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if attrs[0].Info.Format != uint8(texformat.A8R8G8B8) {
		t.Fatalf("Format = 0x%x, want swizzled A8R8G8B8", attrs[0].Info.Format)
	}
	if attrs[0].Info.Pitch != 0 {
		t.Fatalf("Pitch = %d, want 0 for swizzled layout", attrs[0].Info.Pitch)
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatal("swizzled payload did not survive the round trip")
	}
}

func TestEncodeDecodeCubemapRoundTrip(t *testing.T) {
	t.Parallel()

	// 4x4 A8R8G8B8 cubemap: six 64-byte faces, each starting on a
	// 128-byte boundary in the swizzled GTF region.
	payload := sequencePayload(6 * 4 * 4 * 4)
	in := buildDDS(t, &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture,
		Height: 4,
		Width:  4,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xff000000, RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		},
		Caps:  dds.CapsTexture | dds.CapsComplex,
		Caps2: dds.Caps2Cubemap | dds.Caps2AllFaces,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfOut))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if attrs[0].Info.Cubemap != 1 {
		t.Fatal("expected cubemap flag set")
	}
	if attrs[0].TextureSize != 5*128+64 {
		t.Fatalf("TextureSize = %d, want %d", attrs[0].TextureSize, 5*128+64)
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatal("cubemap payload did not survive the round trip")
	}
}

func TestEncodeGTFRejectsPartialCubemap(t *testing.T) {
	t.Parallel()

	in := buildDDS(t, &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture,
		Height: 4,
		Width:  4,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC("DXT1"),
		},
		Caps:  dds.CapsTexture | dds.CapsComplex,
		Caps2: dds.Caps2Cubemap | dds.Caps2PositiveX, // five faces missing
	}, nil)

	_, err := EncodeGTF(in, Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindUnsupportedHeader {
		t.Fatalf("err = %v, want KindUnsupportedHeader", err)
	}
}

func TestEncodeGTFRejectsOversizedVolume(t *testing.T) {
	t.Parallel()

	in := buildDDS(t, &dds.Header{
		Size:   dds.HeaderSize,
		Flags:  dds.HeaderFlagsTexture | dds.HeaderFlagsVolume,
		Height: 1024,
		Width:  1024,
		Depth:  4,
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC("DXT1"),
		},
		Caps:  dds.CapsTexture | dds.CapsComplex,
		Caps2: dds.Caps2Volume,
	}, nil)

	_, err := EncodeGTF(in, Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindUnsupportedHeader {
		t.Fatalf("err = %v, want KindUnsupportedHeader", err)
	}
}

func TestEncodeDecodeRawCompressedRoundTrip(t *testing.T) {
	t.Parallel()

	// R8G8_B8G8: 2-byte pixels where each even/odd pair shares a 4-byte
	// group; the mover swaps whole groups, never a lone pixel.
	payload := sequencePayload(4 * 4 * 2)
	in := buildDDS(t, &dds.Header{
		Size:        dds.HeaderSize,
		Flags:       dds.HeaderFlagsTexture,
		Height:      4,
		Width:       4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: fourCC("RGBG")},
		Caps:        dds.CapsTexture,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfOut))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	wantFormat := uint8(texformat.CompressedB8R8G8R8Raw | texformat.Linear)
	if attrs[0].Info.Format != wantFormat {
		t.Fatalf("Format = 0x%x, want 0x%x (packed-pair formats stay linear)", attrs[0].Info.Format, wantFormat)
	}
	if attrs[0].Info.Remap != uint16(texformat.OrderAGRB) {
		t.Fatalf("Remap = 0x%04x, want OrderAGRB 0x%04x", attrs[0].Info.Remap, uint16(texformat.OrderAGRB))
	}
	if attrs[0].Info.Pitch != 16 {
		t.Fatalf("Pitch = %d, want 16", attrs[0].Info.Pitch)
	}
	if attrs[0].TextureSize != 4*16 {
		t.Fatalf("TextureSize = %d, want 64", attrs[0].TextureSize)
	}

	// Row 0 holds two swapped 4-byte groups, then pitch padding.
	base := int(attrs[0].OffsetToTex)
	want := []byte{
		payload[3], payload[2], payload[1], payload[0],
		payload[7], payload[6], payload[5], payload[4],
	}
	if !bytes.Equal(gtfOut[base:base+8], want) {
		t.Fatalf("row 0 = %x, want %x", gtfOut[base:base+8], want)
	}

	ddsOut, err := DecodeGTF(gtfOut, 0)
	if err != nil {
		t.Fatalf("DecodeGTF: %v", err)
	}
	if !bytes.Equal(ddsOut[128:], payload) {
		t.Fatal("packed-pair payload did not survive the round trip")
	}
}

func TestEncodeGTFR16FExpansion(t *testing.T) {
	t.Parallel()

	// R16F carries 2-byte texels; the GTF side widens each to a 4-byte
	// Y16X16Float texel with the upper half zero.
	payload := sequencePayload(4 * 4 * 2)
	in := buildDDS(t, &dds.Header{
		Size:        dds.HeaderSize,
		Flags:       dds.HeaderFlagsTexture,
		Height:      4,
		Width:       4,
		PixelFormat: dds.PixelFormat{Size: dds.PixelFormatSize, Flags: dds.PFFourCC, FourCC: 111}, // D3DFMT_R16F
		Caps:        dds.CapsTexture,
	}, payload)

	gtfOut, err := EncodeGTF(in, Options{})
	if err != nil {
		t.Fatalf("EncodeGTF: %v", err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfOut))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if attrs[0].Info.Format != uint8(texformat.Y16X16Float) {
		t.Fatalf("Format = 0x%x, want Y16X16Float", attrs[0].Info.Format)
	}
	if attrs[0].TextureSize != 4*4*4 {
		t.Fatalf("TextureSize = %d, want 64", attrs[0].TextureSize)
	}

	// Texel (0,0) swizzles to address 0: its 16-bit word is byte-swapped
	// into the texel's first half, the second half stays zero.
	got := gtfOut[128:132]
	want := []byte{payload[1], payload[0], 0, 0}
	if !bytes.Equal(got, want) {
		t.Fatalf("texel 0 = %x, want %x", got, want)
	}
}

func TestPackImagesEighteenSizeFormula(t *testing.T) {
	t.Parallel()

	images := make([][]byte, 18)
	for i := range images {
		images[i] = minimalDxt1DDS(t)
	}
	out, err := PackImages(images, Options{})
	if err != nil {
		t.Fatalf("PackImages: %v", err)
	}

	// header_block_size(18) = align_up(12 + 48*18, 128) = 896; each 8-byte
	// image region rounds up to its own 128-byte slot.
	const wantSize = 896 + 18*128
	if len(out) != wantSize {
		t.Fatalf("len(out) = %d, want %d", len(out), wantSize)
	}

	h, attrs, err := gtf.ReadHeader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("re-reading output: %v", err)
	}
	if h.Size != wantSize-896 {
		t.Fatalf("header Size = %d, want %d", h.Size, wantSize-896)
	}
	for i, a := range attrs {
		want := uint32(896 + 128*i)
		if a.OffsetToTex != want {
			t.Fatalf("attrs[%d].OffsetToTex = %d, want %d", i, a.OffsetToTex, want)
		}
	}
}

func TestEncodeGTFRejectsBadHeaderSizeField(t *testing.T) {
	t.Parallel()

	in := make([]byte, 128)
	copy(in, dds.Magic)
	in[4] = 123 // declared header size, little-endian

	_, err := EncodeGTF(in, Options{})
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidSize {
		t.Fatalf("err = %v, want KindInvalidSize", err)
	}
}

func TestDecodeGTFRejectsUnalignedLength(t *testing.T) {
	t.Parallel()

	_, err := DecodeGTF(make([]byte, 127), 0)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindGtfAlignment {
		t.Fatalf("err = %v, want KindGtfAlignment", err)
	}
}

func TestDecodeGTFRejectsNumTextureZero(t *testing.T) {
	t.Parallel()

	in := make([]byte, 128) // version/size/num_texture all zero
	_, err := DecodeGTF(in, 0)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindGtfCount {
		t.Fatalf("err = %v, want KindGtfCount", err)
	}
}

func TestDecodeGTFRejectsUnalignedAttributeOffset(t *testing.T) {
	t.Parallel()

	blockSize := gtf.HeaderBlockSize(1)
	h := &gtf.Header{Version: gtf.DefaultVersion, Size: 128, NumTexture: 1}
	attrs := []gtf.TextureAttribute{{ID: 0, OffsetToTex: 127, TextureSize: 1}}

	var buf bytes.Buffer
	if err := gtf.WriteHeader(&buf, h, attrs); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	data = append(data, make([]byte, int(blockSize)+128-len(data))...)

	_, err := DecodeGTF(data, 0)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindGtfAlignment {
		t.Fatalf("err = %v, want KindGtfAlignment", err)
	}
}
