// Package dds provides DDS reading functionality.
package dds

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// readDWORD reads a 32-bit little-endian value.
func readDWORD(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadHeader reads a DDS header from r (including the magic): EOF,
// magic, declared size, pixel-format size, then DX10 rejection, first
// failure wins.
func ReadHeader(r io.Reader) (*Header, error) {
	// Read magic plus header in one go so a short input fails with ErrEOF
	// before any field is validated.
	var raw [4 + HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	r = bytes.NewReader(raw[:])

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrMagic, Magic, string(magic))
	}

	size, err := readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	if size != HeaderSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrSize, HeaderSize, size)
	}

	var h Header
	h.Size = size

	fields := []*uint32{&h.Flags, &h.Height, &h.Width, &h.PitchOrLinearSize, &h.Depth, &h.MipMapCount}
	for _, f := range fields {
		*f, err = readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEOF, err)
		}
	}

	for i := 0; i < 11; i++ {
		h.Reserved1[i], err = readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEOF, err)
		}
	}

	pfSize, err := readDWORD(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEOF, err)
	}
	if pfSize != PixelFormatSize {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrPFSize, PixelFormatSize, pfSize)
	}
	h.PixelFormat.Size = pfSize

	pfFields := []*uint32{
		&h.PixelFormat.Flags, &h.PixelFormat.FourCC, &h.PixelFormat.RGBBitCount,
		&h.PixelFormat.RBitMask, &h.PixelFormat.GBitMask, &h.PixelFormat.BBitMask, &h.PixelFormat.ABitMask,
	}
	for _, f := range pfFields {
		*f, err = readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEOF, err)
		}
	}

	if h.PixelFormat.Flags&PFFourCC != 0 && h.PixelFormat.FourCC == FourCCDX10 {
		return nil, ErrDX10Unsupported
	}

	capsFields := []*uint32{&h.Caps, &h.Caps2, &h.Caps3, &h.Caps4, &h.Reserved2}
	for _, f := range capsFields {
		*f, err = readDWORD(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEOF, err)
		}
	}

	return &h, nil
}
