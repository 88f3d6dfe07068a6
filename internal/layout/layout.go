// Package layout implements the per-mip, per-face placement planner
// that both the DDS→GTF and GTF→DDS codecs run before moving bytes.
package layout

import (
	"github.com/woozymasta/ddsgtf/internal/gtf"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// Record describes one (face, mip) sub-image: its dimensions and its
// byte range on both the DDS and GTF sides.
type Record struct {
	Face   int
	Mip    int
	Width  int
	Height int
	Depth  int

	DdsOffset uint32
	DdsSize   uint32
	DdsPitch  uint32

	GtfOffset uint32
	GtfSize   uint32
	GtfPitch  uint32
}

// Table is the ordered output of Plan: cube-major, mip-minor.
type Table struct {
	Records      []Record
	GtfImageSize uint32
	DdsImageSize uint32
}

// Plan computes the layout table for a texture descriptor. ddsDepth is
// the DDS-side channel-width override: 2 for fourcc R16F, 3 for 24-bit
// RGB DDS sources, 0 for no expansion.
func Plan(info gtf.TextureInfo, ddsDepth int) *Table {
	format := texformat.TextureFormat(info.Format)
	raw := texformat.RawFormat(format)
	swizzled := texformat.IsSwizzled(format)

	cubeCount := 1
	if info.Cubemap != 0 {
		cubeCount = 6
	}
	mipCount := int(info.MipMap)
	if mipCount < 1 {
		mipCount = 1
	}

	var records []Record
	var ddsOffset, gtfOffset uint32

	for face := 0; face < cubeCount; face++ {
		if swizzled && face > 0 {
			gtfOffset = gtf.AlignUp(gtfOffset, gtf.Alignment)
		}

		for mip := 0; mip < mipCount; mip++ {
			rawW := int(info.Width) >> mip
			rawH := int(info.Height) >> mip
			rawD := int(info.Depth) >> mip
			if rawW == 0 && rawH == 0 && rawD == 0 {
				break
			}

			w := maxInt(1, rawW)
			h := maxInt(1, rawH)
			v := maxInt(1, rawD)

			rec := buildRecord(raw, swizzled, w, h, v, ddsDepth)
			rec.Face, rec.Mip = face, mip
			rec.DdsOffset = ddsOffset
			rec.GtfOffset = gtfOffset

			ddsOffset += rec.DdsSize
			gtfOffset += rec.GtfSize

			records = append(records, rec)
		}
	}

	return &Table{Records: records, GtfImageSize: gtfOffset, DdsImageSize: ddsOffset}
}

func buildRecord(raw texformat.TextureFormat, swizzled bool, w, h, v, ddsDepth int) Record {
	gtfPitch := texformat.Pitch(raw, w)

	var ddsSize, gtfSwizzleSize, gtfLinearSize, ddsPitch int

	switch {
	case texformat.IsDxtn(raw):
		blocksW := (w + 3) / 4
		blocksH := (h + 3) / 4
		blockBytes := texformat.PixelDepth(raw)
		ddsSize = blocksW * blocksH * blockBytes
		gtfSwizzleSize = ddsSize
		gtfLinearSize = blocksH * gtfPitch
		ddsPitch = blocksW * blockBytes

	case texformat.IsRawCompressed(raw):
		ddsSize = ((w + 1) / 2) * h * 4
		gtfSwizzleSize = ddsSize
		gtfLinearSize = h * gtfPitch
		ddsPitch = ((w + 1) / 2) * 4

	default:
		colorDepth := texformat.PixelDepth(raw)
		ddsSize = w * h * colorDepth
		gtfSwizzleSize = ddsSize
		gtfLinearSize = h * gtfPitch
		ddsPitch = w * colorDepth
	}

	if ddsDepth != 0 && !texformat.IsDxtn(raw) && !texformat.IsRawCompressed(raw) {
		ddsPitch = w * ddsDepth
		ddsSize = ddsPitch * h
	}

	ddsSize *= v
	gtfSwizzleSize *= v
	gtfLinearSize *= v

	rec := Record{
		Width: w, Height: h, Depth: v,
		DdsSize:  uint32(ddsSize),  //nolint:gosec // texture dimensions are bounded well under 2^31.
		DdsPitch: uint32(ddsPitch), //nolint:gosec // same.
		GtfPitch: uint32(gtfPitch), //nolint:gosec // same.
	}
	if swizzled {
		rec.GtfSize = uint32(gtfSwizzleSize) //nolint:gosec // same.
	} else {
		rec.GtfSize = uint32(gtfLinearSize) //nolint:gosec // same.
	}
	return rec
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
