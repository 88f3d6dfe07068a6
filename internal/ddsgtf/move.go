package ddsgtf

import (
	"github.com/woozymasta/ddsgtf/internal/bytemover"
	"github.com/woozymasta/ddsgtf/internal/layout"
	"github.com/woozymasta/ddsgtf/internal/swizzle"
	"github.com/woozymasta/ddsgtf/internal/texformat"
)

// moveRecord transfers one layout record's payload between the DDS and
// GTF buffers, dispatching on (is_dxt, is_swizzled, is_3d, invert_flag).
// gtfToDds selects the direction; the transform itself (byte-swap or
// plain copy) is its own inverse either way.
func moveRecord(
	gtfBuf []byte, gtfBase uint32,
	ddsBuf []byte, ddsBase uint32,
	raw texformat.TextureFormat, swizzled, volume bool,
	rec layout.Record, ddsDepth int, gtfToDds bool,
) error {
	if rec.Width == 0 || rec.Height == 0 || rec.Depth == 0 {
		return nil
	}

	ddsOff := ddsBase + rec.DdsOffset
	gtfOff := gtfBase + rec.GtfOffset

	if uint64(ddsOff)+uint64(rec.DdsSize) > uint64(len(ddsBuf)) {
		return newErr(KindOverflowBytes, "dds payload extends past buffer end", nil)
	}
	if uint64(gtfOff)+uint64(rec.GtfSize) > uint64(len(gtfBuf)) {
		return newErr(KindOverflowBytes, "gtf payload extends past buffer end", nil)
	}

	gtfSlice := gtfBuf[gtfOff:]
	ddsSlice := ddsBuf[ddsOff:]

	switch {
	case texformat.IsDxtn(raw) && swizzled && volume:
		moveDxtVTC(gtfSlice, ddsSlice, raw, rec, gtfToDds)
	case texformat.IsDxtn(raw) && swizzled:
		moveContiguous(gtfSlice, ddsSlice, rec.DdsSize, gtfToDds)
	case texformat.IsDxtn(raw):
		moveDxtLinear(gtfSlice, ddsSlice, rec, gtfToDds)
	default:
		moveNonDxt(gtfSlice, ddsSlice, raw, swizzled, rec, ddsDepth, gtfToDds)
	}
	return nil
}

func moveContiguous(gtfSlice, ddsSlice []byte, n uint32, gtfToDds bool) {
	if gtfToDds {
		bytemover.Copy(ddsSlice, gtfSlice, int(n)) //nolint:gosec // n is a planner-computed record size, well under 2^31.
	} else {
		bytemover.Copy(gtfSlice, ddsSlice, int(n)) //nolint:gosec // same.
	}
}

// moveDxtVTC implements Volume Texture Compression ordering: up to four
// depth slices are packed per super-block.
func moveDxtVTC(gtfSlice, ddsSlice []byte, raw texformat.TextureFormat, rec layout.Record, gtfToDds bool) {
	blockBytes := texformat.PixelDepth(raw)
	blocksW := (rec.Width + 3) / 4
	blocksH := (rec.Height + 3) / 4
	depth := rec.Depth
	blockDepth := (depth + 3) / 4
	depthBlockNum := ((depth - 1) % 4) + 1
	sliceSize := blocksW * blocksH * blockBytes

	gtfPos := 0
	for z := 0; z < blockDepth; z++ {
		for y := 0; y < blocksH; y++ {
			for x := 0; x < blocksW; x++ {
				for d := 0; d < depthBlockNum; d++ {
					ddsPos := sliceSize*(z*4+d) + blockBytes*(x+y*blocksW)
					if gtfToDds {
						bytemover.Copy(ddsSlice[ddsPos:ddsPos+blockBytes], gtfSlice[gtfPos:gtfPos+blockBytes], blockBytes)
					} else {
						bytemover.Copy(gtfSlice[gtfPos:gtfPos+blockBytes], ddsSlice[ddsPos:ddsPos+blockBytes], blockBytes)
					}
					gtfPos += blockBytes
				}
			}
		}
	}
}

// moveDxtLinear copies a non-power-of-two DXT mip scanline by scanline,
// since the GTF and DDS sides may use different pitches.
func moveDxtLinear(gtfSlice, ddsSlice []byte, rec layout.Record, gtfToDds bool) {
	blocksH := (rec.Height + 3) / 4
	n := int(rec.DdsPitch)
	for line := 0; line < blocksH; line++ {
		g := line * int(rec.GtfPitch)
		d := line * n
		if gtfToDds {
			bytemover.Copy(ddsSlice[d:d+n], gtfSlice[g:g+n], n)
		} else {
			bytemover.Copy(gtfSlice[g:g+n], ddsSlice[d:d+n], n)
		}
	}
}

// moveNonDxt handles every uncompressed and raw-compressed format,
// swizzled or linear.
func moveNonDxt(
	gtfSlice, ddsSlice []byte, raw texformat.TextureFormat, swizzled bool,
	rec layout.Record, ddsDepth int, gtfToDds bool,
) {
	invert := texformat.InvertFlagFor(raw)
	colorDepth := texformat.PixelDepth(raw)

	width := rec.Width
	switch {
	case raw == texformat.W32Z32Y32X32Float && swizzled:
		width *= 4
		colorDepth = 4
	case raw == texformat.W16Z16Y16X16Float && swizzled:
		width *= 2
		colorDepth = 4
	}
	if texformat.IsRawCompressed(raw) && width%2 != 0 {
		width++
	}

	copySize := colorDepth
	if invert == texformat.InvertSwap32Even {
		copySize = 4
	}

	dDepth := ddsDepth
	dPitch := int(rec.DdsPitch)
	if ddsDepth == 0 {
		dDepth = colorDepth
		dPitch = width * dDepth
	}

	gPitch := int(rec.GtfPitch)
	height, depth := rec.Height, rec.Depth
	log2W, log2H, log2D := log2OfPow2(width), log2OfPow2(height), log2OfPow2(depth)

	if invert == texformat.InvertSwap32Even && !swizzled {
		// Packed-pair rows are linear on both sides; move each row in
		// one call, swapping every even pixel's shared 4-byte group.
		rowBytes := width * dDepth
		for z := 0; z < depth; z++ {
			for y := 0; y < height; y++ {
				g := z*height*gPitch + y*gPitch
				d := z*dPitch*height + y*dPitch
				if gtfToDds {
					bytemover.CopySwap32Even(ddsSlice[d:], gtfSlice[g:], rowBytes, dDepth, true)
				} else {
					bytemover.CopySwap32Even(gtfSlice[g:], ddsSlice[d:], rowBytes, dDepth, true)
				}
			}
		}
		return
	}

	expand := ddsDepth != 0
	var tmp [16]byte

	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if invert == texformat.InvertSwap32Even && x%2 != 0 {
					continue
				}

				var gtfPos int
				if swizzled {
					addr := swizzle.Address3D(uint32(x), uint32(y), uint32(z), log2W, log2H, log2D) //nolint:gosec // dims bounded.
					gtfPos = int(addr) * colorDepth
				} else {
					gtfPos = z*height*gPitch + y*gPitch + x*colorDepth
				}
				ddsPos := z*dPitch*height + y*dPitch + x*dDepth

				if expand {
					// The DDS texel is narrower than the GTF one; stage
					// through scratch so only dDepth bytes touch the DDS
					// side, with the GTF texel zero-padded.
					if gtfToDds {
						applySwap(tmp[:copySize], gtfSlice[gtfPos:], invert, copySize)
						bytemover.Copy(ddsSlice[ddsPos:], tmp[:], dDepth)
					} else {
						for k := range tmp[:copySize] {
							tmp[k] = 0
						}
						bytemover.Copy(tmp[:], ddsSlice[ddsPos:], dDepth)
						applySwap(gtfSlice[gtfPos:], tmp[:copySize], invert, copySize)
					}
					continue
				}

				if gtfToDds {
					applySwap(ddsSlice[ddsPos:], gtfSlice[gtfPos:], invert, copySize)
				} else {
					applySwap(gtfSlice[gtfPos:], ddsSlice[ddsPos:], invert, copySize)
				}
			}
		}
	}
}

func applySwap(dst, src []byte, invert texformat.InvertFlag, n int) {
	switch invert {
	case texformat.InvertSwap16:
		bytemover.CopySwap16(dst, src, n)
	case texformat.InvertSwap32:
		bytemover.CopySwap32(dst, src, n)
	case texformat.InvertSwap32Even:
		// One even pixel's group at a time; the caller already skipped
		// the odd pixels.
		bytemover.CopySwap32Even(dst, src, n, n, true)
	default:
		bytemover.Copy(dst, src, n)
	}
}

func log2OfPow2(n int) uint {
	var l uint
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}
