package gtf

import (
	"encoding/binary"
	"io"
)

func writeDWORD(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeWORD(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// WriteHeader writes the 12-byte file header followed by each attribute's
// 48-byte record, big-endian.
func WriteHeader(w io.Writer, h *Header, attrs []TextureAttribute) error {
	if err := writeDWORD(w, h.Version); err != nil {
		return err
	}
	if err := writeDWORD(w, h.Size); err != nil {
		return err
	}
	if err := writeDWORD(w, h.NumTexture); err != nil {
		return err
	}

	for _, a := range attrs {
		if err := writeAttribute(w, a); err != nil {
			return err
		}
	}
	return nil
}

func writeAttribute(w io.Writer, a TextureAttribute) error {
	if err := writeDWORD(w, a.ID); err != nil {
		return err
	}
	if err := writeDWORD(w, a.OffsetToTex); err != nil {
		return err
	}
	if err := writeDWORD(w, a.TextureSize); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 4)); err != nil { // padding
		return err
	}

	i := a.Info
	if _, err := w.Write([]byte{i.Format, i.MipMap, i.Dimension, i.Cubemap}); err != nil {
		return err
	}
	if err := writeWORD(w, i.Remap); err != nil {
		return err
	}
	if err := writeWORD(w, i.Width); err != nil {
		return err
	}
	if err := writeWORD(w, i.Height); err != nil {
		return err
	}
	if err := writeWORD(w, i.Depth); err != nil {
		return err
	}
	if _, err := w.Write([]byte{i.Location, i.Pad}); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 2)); err != nil { // alignment before 32-bit fields
		return err
	}
	if err := writeDWORD(w, i.Pitch); err != nil {
		return err
	}
	if err := writeDWORD(w, i.Offset); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, 8)); err != nil { // reserved tail
		return err
	}
	return nil
}
