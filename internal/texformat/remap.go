package texformat

// Remap is the 16-bit sampler remap word: bits 0..7 hold four 2-bit
// component selectors (position 0=A, 1=R, 2=G, 3=B), bits 8..15 hold four
// 2-bit per-position modes (Zero=0, One=1, Remap=2).
type Remap uint16

// Per-position modes and component selectors.
const (
	modeZero  = 0
	modeOne   = 1
	modeRemap = 2

	FromAlpha = 0
	FromRed   = 1
	FromGreen = 2
	FromBlue  = 3
)

const (
	maskRRRR = Remap(modeRemap<<8) | Remap(modeRemap<<10) | Remap(modeRemap<<12) | Remap(modeRemap<<14)
	mask1RRR = Remap(modeOne<<8) | Remap(modeRemap<<10) | Remap(modeRemap<<12) | Remap(modeRemap<<14)
	maskR000 = Remap(modeRemap << 8)
)

// Preset remap words the classifier hands out.
const (
	OrderARGB = maskRRRR | Remap(FromAlpha) | Remap(FromRed<<2) | Remap(FromGreen<<4) | Remap(FromBlue<<6)
	OrderBGRA = maskRRRR | Remap(FromBlue) | Remap(FromGreen<<2) | Remap(FromRed<<4) | Remap(FromAlpha<<6)
	OrderABGR = maskRRRR | Remap(FromAlpha) | Remap(FromBlue<<2) | Remap(FromGreen<<4) | Remap(FromRed<<6)
	OrderAGRB = maskRRRR | Remap(FromAlpha) | Remap(FromGreen<<2) | Remap(FromRed<<4) | Remap(FromBlue<<6)
	OrderARBG = maskRRRR | Remap(FromAlpha) | Remap(FromRed<<2) | Remap(FromBlue<<4) | Remap(FromGreen<<6)
	Order1RGB = mask1RRR | Remap(FromAlpha) | Remap(FromRed<<2) | Remap(FromGreen<<4) | Remap(FromBlue<<6)
	Order1BBB = mask1RRR | Remap(FromAlpha) | Remap(FromBlue<<2) | Remap(FromBlue<<4) | Remap(FromBlue<<6)
	OrderB000 = maskR000 | Remap(FromBlue) | Remap(FromBlue<<2) | Remap(FromBlue<<4) | Remap(FromBlue<<6)
)

// componentFor maps a descending-order rank (0=largest mask) to the
// component it selects: 0=A, 1=R, 2=G, 3=B.
func componentFor(order int) int {
	switch order {
	case 0:
		return FromAlpha
	case 1:
		return FromRed
	case 2:
		return FromGreen
	default:
		return FromBlue
	}
}

// FromMasks computes the remap word for a DDS pixel format's channel
// bit-masks (A, R, G, B order). Without an alpha channel, the slot that
// would map the widest mask becomes a constant-one instead.
func FromMasks(masks [4]uint32, alphaPixels bool) Remap {
	m := masks
	if !alphaPixels {
		m[0] = ((m[1] | m[2] | m[3]) & 1) << 31
	}

	var order [4]int
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			if m[i] < m[j] {
				order[i]++
			}
		}
	}

	var word Remap
	oneSlot := -1
	for i := 0; i < 4; i++ {
		word |= Remap(modeRemap) << (8 + 2*i)
		word |= Remap(componentFor(order[i])) << (2 * i)
		if order[i] == 0 {
			oneSlot = i
		}
	}

	if !alphaPixels && oneSlot >= 0 {
		word &^= Remap(0b11) << (8 + 2*oneSlot)
		word |= Remap(modeOne) << (8 + 2*oneSlot)
	}

	return word
}
