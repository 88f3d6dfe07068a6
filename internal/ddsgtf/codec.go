package ddsgtf

import (
	"bytes"
	"errors"
	"math"
	"math/bits"

	"github.com/woozymasta/ddsgtf/internal/classify"
	"github.com/woozymasta/ddsgtf/internal/dds"
	"github.com/woozymasta/ddsgtf/internal/gtf"
	"github.com/woozymasta/ddsgtf/internal/layout"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// Options carries the DDS→GTF conversion knobs: Linearize forces
// swizzlable non-DXT power-of-two textures to linear layout; Unnormalize
// sets the Unnormalize sampler flag bit on the output format. Both are
// ignored on GTF→DDS.
type Options struct {
	Linearize   bool
	Unnormalize bool
}

func isPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

func alignUp64(x uint64) uint64 {
	if rem := x % gtf.Alignment; rem != 0 {
		x += gtf.Alignment - rem
	}
	return x
}

// EncodeGTF converts a single DDS image to a single-texture GTF file.
func EncodeGTF(ddsData []byte, opts Options) ([]byte, error) {
	header, err := dds.ReadHeader(bytes.NewReader(ddsData))
	if err != nil {
		return nil, ddsReadErr(err)
	}

	info, raw, ddsDepth, err := buildTextureInfo(header, opts)
	if err != nil {
		return nil, err
	}

	swizzled := texformat.IsSwizzled(texformat.TextureFormat(info.Format))
	volume := info.Dimension == gtf.Dimension3D

	table := layout.Plan(info, ddsDepth)

	ddsPayload := ddsData[dds.HeaderSize+4:]
	if uint64(len(ddsPayload)) < uint64(table.DdsImageSize) {
		return nil, newErr(KindDdsEof, "dds payload shorter than computed image size", nil)
	}

	blockSize := gtf.HeaderBlockSize(1)
	fileSize64 := alignUp64(uint64(blockSize) + uint64(table.GtfImageSize))
	if fileSize64 > math.MaxUint32 {
		return nil, newErr(KindFileTooLong, "gtf file size exceeds the 4 GiB limit", nil)
	}
	fileSize := uint32(fileSize64)
	out := make([]byte, fileSize)

	for _, rec := range table.Records {
		if err := moveRecord(out, blockSize, ddsData, dds.HeaderSize+4, raw, swizzled, volume, rec, ddsDepth, false); err != nil {
			return nil, err
		}
	}

	attr := gtf.TextureAttribute{ID: 0, OffsetToTex: blockSize, TextureSize: table.GtfImageSize, Info: info}
	head := &gtf.Header{Version: gtf.DefaultVersion, Size: fileSize - blockSize, NumTexture: 1}

	var buf bytes.Buffer
	if err := gtf.WriteHeader(&buf, head, []gtf.TextureAttribute{attr}); err != nil {
		return nil, newErr(KindFileTooLong, "writing gtf header", err)
	}
	copy(out[:buf.Len()], buf.Bytes())

	return out, nil
}

// DecodeGTF converts one texture out of a GTF file back to a standalone
// DDS file.
func DecodeGTF(gtfData []byte, textureID int) ([]byte, error) {
	_, attrs, err := gtf.ReadHeader(bytes.NewReader(gtfData))
	if err != nil {
		return nil, gtfReadErr(err)
	}

	var attr *gtf.TextureAttribute
	for i := range attrs {
		if int(attrs[i].ID) == textureID {
			attr = &attrs[i]
			break
		}
	}
	if attr == nil {
		return nil, newErr(KindTextureNotFound, "no attribute with requested id", nil)
	}

	ddsHeader, err := classify.SynthDDSHeader(attr.Info)
	if err != nil {
		return nil, newErr(KindUnsupportedFormat, "synthesizing dds header", err)
	}

	raw := texformat.RawFormat(texformat.TextureFormat(attr.Info.Format))
	swizzled := texformat.IsSwizzled(texformat.TextureFormat(attr.Info.Format))
	volume := attr.Info.Dimension == gtf.Dimension3D

	table := layout.Plan(attr.Info, 0)

	if uint64(attr.TextureSize) < uint64(table.GtfImageSize) {
		return nil, newErr(KindGtfEof, "attribute texture_size shorter than computed image size", nil)
	}
	if uint64(attr.OffsetToTex)+uint64(table.GtfImageSize) > uint64(len(gtfData)) {
		return nil, newErr(KindGtfEof, "attribute payload extends past end of file", nil)
	}

	out := make([]byte, dds.HeaderSize+4+table.DdsImageSize)
	var buf bytes.Buffer
	if err := dds.WriteMagic(&buf); err != nil {
		return nil, newErr(KindFileTooLong, "writing dds magic", err)
	}
	if err := dds.WriteHeader(&buf, ddsHeader); err != nil {
		return nil, newErr(KindFileTooLong, "writing dds header", err)
	}
	copy(out[:buf.Len()], buf.Bytes())

	for _, rec := range table.Records {
		if err := moveRecord(gtfData, attr.OffsetToTex, out, dds.HeaderSize+4, raw, swizzled, volume, rec, 0, true); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// PackImages builds a multi-texture GTF file from 1..255 DDS images,
// placing each texture region on a 128-byte boundary.
func PackImages(images [][]byte, opts Options) ([]byte, error) {
	n := len(images)
	if n < 1 || n > 255 {
		return nil, newErr(KindDdsImageCount, "packed image count out of range [1,255]", nil)
	}

	type planned struct {
		info     gtf.TextureInfo
		raw      texformat.TextureFormat
		swizzled bool
		volume   bool
		table    *layout.Table
		ddsDepth int
		ddsData  []byte
	}

	plans := make([]planned, n)
	for i, ddsData := range images {
		header, err := dds.ReadHeader(bytes.NewReader(ddsData))
		if err != nil {
			return nil, ddsReadErr(err)
		}
		info, raw, ddsDepth, err := buildTextureInfo(header, opts)
		if err != nil {
			return nil, err
		}
		table := layout.Plan(info, ddsDepth)

		if uint64(len(ddsData)-dds.HeaderSize-4) < uint64(table.DdsImageSize) {
			return nil, newErr(KindDdsEof, "dds payload shorter than computed image size", nil)
		}

		plans[i] = planned{
			info:     info,
			raw:      raw,
			swizzled: texformat.IsSwizzled(texformat.TextureFormat(info.Format)),
			volume:   info.Dimension == gtf.Dimension3D,
			table:    table,
			ddsDepth: ddsDepth,
			ddsData:  ddsData,
		}
	}

	blockSize := gtf.HeaderBlockSize(n)
	offsets := make([]uint32, n)
	next := uint64(blockSize)
	for i := 0; i < n; i++ {
		if next > math.MaxUint32 {
			return nil, newErr(KindFileTooLong, "gtf file size exceeds the 4 GiB limit", nil)
		}
		offsets[i] = uint32(next)
		next = alignUp64(next + uint64(plans[i].table.GtfImageSize))
	}
	if next > math.MaxUint32 {
		return nil, newErr(KindFileTooLong, "gtf file size exceeds the 4 GiB limit", nil)
	}
	fileSize := uint32(next)

	out := make([]byte, fileSize)
	attrs := make([]gtf.TextureAttribute, n)

	for i, p := range plans {
		for _, rec := range p.table.Records {
			if err := moveRecord(out, offsets[i], p.ddsData, dds.HeaderSize+4, p.raw, p.swizzled, p.volume, rec, p.ddsDepth, false); err != nil {
				return nil, err
			}
		}
		attrs[i] = gtf.TextureAttribute{
			ID:          uint32(i), //nolint:gosec // n is bounded to 255.
			OffsetToTex: offsets[i],
			TextureSize: p.table.GtfImageSize,
			Info:        p.info,
		}
	}

	head := &gtf.Header{Version: gtf.DefaultVersion, Size: fileSize - blockSize, NumTexture: uint32(n)} //nolint:gosec // bounded to 255.

	var buf bytes.Buffer
	if err := gtf.WriteHeader(&buf, head, attrs); err != nil {
		return nil, newErr(KindFileTooLong, "writing gtf header", err)
	}
	copy(out[:buf.Len()], buf.Bytes())

	return out, nil
}

// buildTextureInfo runs the classifier and the swizzle/pitch/flag
// decision for a parsed DDS header.
func buildTextureInfo(header *dds.Header, opts Options) (gtf.TextureInfo, texformat.TextureFormat, int, error) {
	rawFormat, remap := classify.Classify(header.PixelFormat)
	if rawFormat == 0 {
		return gtf.TextureInfo{}, 0, 0, newErr(KindUnsupportedFormat, "dds pixel format has no gtf equivalent", nil)
	}

	if header.IsCubemap() && !header.HasAllCubeFaces() {
		return gtf.TextureInfo{}, 0, 0, newErr(KindUnsupportedHeader, "cubemap missing one or more faces", nil)
	}
	if header.IsVolume() {
		if header.Width > 512 || header.Height > 512 || header.Depth > 512 {
			return gtf.TextureInfo{}, 0, 0, newErr(KindUnsupportedHeader, "volume dimension exceeds 512", nil)
		}
	} else if header.Width > 4096 || header.Height > 4096 {
		return gtf.TextureInfo{}, 0, 0, newErr(KindUnsupportedHeader, "2-D dimension exceeds 4096", nil)
	}

	info := gtf.TextureInfo{
		Width:  uint16(header.Width),  //nolint:gosec // bounded above.
		Height: uint16(header.Height), //nolint:gosec // bounded above.
		Depth:  1,
		MipMap: 1,
	}
	if header.IsVolume() {
		info.Depth = uint16(header.Depth) //nolint:gosec // bounded above.
		info.Dimension = gtf.Dimension3D
	} else {
		info.Dimension = gtf.Dimension2D
	}
	if header.HasMipMaps() {
		maxDim := header.Width
		if header.Height > maxDim {
			maxDim = header.Height
		}
		if header.IsVolume() && header.Depth > maxDim {
			maxDim = header.Depth
		}
		maxMipMap := bits.Len32(maxDim) // 1 + floor(log2(maxDim))
		if header.MipMapCount > uint32(maxMipMap) { //nolint:gosec // maxMipMap is small and positive.
			return gtf.TextureInfo{}, 0, 0, newErr(KindUnsupportedHeader, "mipmap count too large for texture dimensions", nil)
		}
		info.MipMap = uint8(header.MipMapCount) //nolint:gosec // bounded above.
	}
	if header.IsCubemap() {
		info.Cubemap = 1
	}

	swizzlable := isPowerOfTwo(header.Width) && isPowerOfTwo(header.Height) &&
		(!header.IsVolume() || isPowerOfTwo(header.Depth))
	if texformat.IsRawCompressed(rawFormat) {
		swizzlable = false // packed-pair formats are never swizzled on the wire
	}

	format := rawFormat
	swizzled := swizzlable && (texformat.IsDxtn(rawFormat) || !opts.Linearize)
	if swizzled {
		info.Pitch = 0
	} else {
		format |= texformat.Linear
		info.Pitch = uint32(texformat.Pitch(rawFormat, int(header.Width))) //nolint:gosec // bounded above.
	}
	if opts.Unnormalize {
		format |= texformat.Unnormalize
	}

	info.Format = uint8(format) //nolint:gosec // base codes and flag bits fit in a byte.
	info.Remap = uint16(remap)

	ddsDepth := 0
	if header.PixelFormat.Flags&dds.PFFourCC != 0 && header.PixelFormat.FourCC == 111 { // D3DFMT_R16F
		ddsDepth = 2
	} else if header.PixelFormat.RGBBitCount == 24 {
		ddsDepth = 3
	}

	return info, rawFormat, ddsDepth, nil
}

func ddsReadErr(err error) error {
	switch {
	case errors.Is(err, dds.ErrMagic):
		return newErr(KindInvalidMagic, "dds magic mismatch", err)
	case errors.Is(err, dds.ErrSize), errors.Is(err, dds.ErrPFSize):
		return newErr(KindInvalidSize, "dds header size mismatch", err)
	case errors.Is(err, dds.ErrDX10Unsupported):
		return newErr(KindDX10Unsupported, "dx10 extended header", err)
	case errors.Is(err, dds.ErrEOF):
		return newErr(KindDdsEof, "truncated dds header", err)
	default:
		return newErr(KindDdsEof, "dds parse error", err)
	}
}

func gtfReadErr(err error) error {
	switch {
	case errors.Is(err, gtf.ErrAlignment), errors.Is(err, gtf.ErrTextureOffset):
		return newErr(KindGtfAlignment, "gtf alignment violation", err)
	case errors.Is(err, gtf.ErrNumTexture), errors.Is(err, gtf.ErrTextureID):
		return newErr(KindGtfCount, "gtf texture count out of range", err)
	case errors.Is(err, gtf.ErrEOF), errors.Is(err, gtf.ErrTextureEOF):
		return newErr(KindGtfEof, "truncated gtf file", err)
	default:
		return newErr(KindGtfEof, "gtf parse error", err)
	}
}
