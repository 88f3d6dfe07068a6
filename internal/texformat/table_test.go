package texformat

import "testing"

func TestPixelDepth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  TextureFormat
		want int
	}{
		{B8, 1},
		{A1R5G5B5, 2},
		{A8R8G8B8, 4},
		{W16Z16Y16X16Float, 8},
		{W32Z32Y32X32Float, 16},
		{Dxt1, 8},
		{Dxt23, 16},
		{Dxt45, 16},
	}
	for _, c := range cases {
		if got := PixelDepth(c.raw); got != c.want {
			t.Errorf("PixelDepth(0x%x) = %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestPitchDxt(t *testing.T) {
	t.Parallel()

	if got := Pitch(Dxt1, 5); got != 16 {
		t.Errorf("Pitch(Dxt1, 5) = %d, want 16", got)
	}
	if got := Pitch(Dxt45, 4); got != 16 {
		t.Errorf("Pitch(Dxt45, 4) = %d, want 16", got)
	}
}

func TestPitchRawCompressed(t *testing.T) {
	t.Parallel()

	if got := Pitch(CompressedB8R8G8R8Raw, 3); got != 16 {
		t.Errorf("Pitch(rawcompressed, 3) = %d, want 16", got)
	}
}

func TestInvertFlagFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  TextureFormat
		want InvertFlag
	}{
		{Dxt1, InvertNone},
		{CompressedB8R8G8R8Raw, InvertSwap32Even},
		{W32Z32Y32X32Float, InvertSwap32},
		{X16, InvertSwap16},
		{A8R8G8B8, InvertSwap32},
		{B8, InvertSwap32}, // pixel depth 1 falls through to the default branch
	}
	for _, c := range cases {
		if got := InvertFlagFor(c.raw); got != c.want {
			t.Errorf("InvertFlagFor(0x%x) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestRawFormatStripsFlags(t *testing.T) {
	t.Parallel()

	f := Dxt1 | Linear
	if got := RawFormat(f); got != Dxt1 {
		t.Errorf("RawFormat = 0x%x, want 0x%x", got, Dxt1)
	}
}

func TestIsSwizzled(t *testing.T) {
	t.Parallel()

	if IsSwizzled(Dxt1 | Linear) {
		t.Error("format with Linear flag set should not be swizzled")
	}
	if !IsSwizzled(Dxt1) {
		t.Error("format without Linear flag should be swizzled")
	}
}
