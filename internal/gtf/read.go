package gtf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadHeader parses a full GTF file's header and attribute table from r:
// file-size alignment, header EOF, texture-table EOF, num_texture range,
// declared-size alignment, then per-attribute id/offset/EOF checks, first
// failure wins. The whole-file size checks require the complete byte
// count up front, so r is read to completion before any parsing starts.
func ReadHeader(r io.Reader) (*Header, []TextureAttribute, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEOF, err)
	}

	if len(data)%Alignment != 0 {
		return nil, nil, fmt.Errorf("%w: file size %d", ErrAlignment, len(data))
	}
	if len(data) < HeaderSize {
		return nil, nil, fmt.Errorf("%w: need %d bytes, have %d", ErrEOF, HeaderSize, len(data))
	}

	be := binary.BigEndian
	h := &Header{
		Version:    be.Uint32(data[0:4]),
		Size:       be.Uint32(data[4:8]),
		NumTexture: be.Uint32(data[8:12]),
	}

	// Block size in uint64 so an absurd num_texture can't wrap before the
	// range check below rejects it.
	blockSize := uint64(HeaderSize) + uint64(AttributeSize)*uint64(h.NumTexture)
	if rem := blockSize % Alignment; rem != 0 {
		blockSize += Alignment - rem
	}
	if uint64(len(data)) < blockSize { //nolint:gosec // len(data) is non-negative.
		return nil, nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTextureEOF, blockSize, len(data))
	}
	if h.NumTexture < 1 || h.NumTexture > 255 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrNumTexture, h.NumTexture)
	}
	if h.Size%Alignment != 0 {
		return nil, nil, fmt.Errorf("%w: declared size %d", ErrAlignment, h.Size)
	}

	attrs := make([]TextureAttribute, h.NumTexture)
	for i := uint32(0); i < h.NumTexture; i++ {
		off := HeaderSize + i*AttributeSize
		a, err := readAttribute(data[off : off+AttributeSize])
		if err != nil {
			return nil, nil, err
		}
		if a.ID > 255 {
			return nil, nil, fmt.Errorf("%w: got %d", ErrTextureID, a.ID)
		}
		if a.OffsetToTex%Alignment != 0 {
			return nil, nil, fmt.Errorf("%w: offset %d", ErrTextureOffset, a.OffsetToTex)
		}
		if uint64(a.OffsetToTex)+uint64(a.TextureSize) > uint64(len(data)) {
			return nil, nil, fmt.Errorf("%w: texture %d ends at %d, file is %d bytes",
				ErrTextureEOF, a.ID, uint64(a.OffsetToTex)+uint64(a.TextureSize), len(data))
		}
		attrs[i] = a
	}

	return h, attrs, nil
}

func readAttribute(b []byte) (TextureAttribute, error) {
	be := binary.BigEndian
	a := TextureAttribute{
		ID:          be.Uint32(b[0:4]),
		OffsetToTex: be.Uint32(b[4:8]),
		TextureSize: be.Uint32(b[8:12]),
	}
	// 4 bytes of padding at b[12:16] before the embedded TextureInfo.
	info := b[16:48]
	a.Info = TextureInfo{
		Format:    info[0],
		MipMap:    info[1],
		Dimension: info[2],
		Cubemap:   info[3],
		Remap:     be.Uint16(info[4:6]),
		Width:     be.Uint16(info[6:8]),
		Height:    be.Uint16(info[8:10]),
		Depth:     be.Uint16(info[10:12]),
		Location:  info[12],
		Pad:       info[13],
		Pitch:     be.Uint32(info[16:20]),
		Offset:    be.Uint32(info[20:24]),
	}
	return a, nil
}
