// Command testdata-generator writes sample .dds files for exercising the
// pack and convert commands: A8R8G8B8 images with a flat background, a
// border and a diagonal line, or flat-color DXT1 blocks, in random sizes.
package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/ddsgtf/internal/dds"
)

type Options struct {
	Args struct {
		OutputDir string `positional-arg-name:"output" description:"Output directory for generated DDS files" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	MinSize      int  `short:"m" long:"min-size" description:"Minimum image size" default:"16"`
	MaxSize      int  `short:"M" long:"max-size" description:"Maximum image size" default:"256"`
	Count        int  `short:"c" long:"count" description:"Number of images to generate" default:"10"`
	MaxRatio     int  `short:"r" long:"max-ratio" description:"Maximum side ratio (1=squares only, 4=one side can be 4x larger)" default:"1"`
	AllowNonPow2 bool `short:"n" long:"allow-non-pow2" description:"Allow non-power-of-2 sizes"`
	Dxt1         bool `short:"d" long:"dxt1" description:"Emit flat-color DXT1 images instead of A8R8G8B8"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "testdata-generator"
	parser.Usage = "[OPTIONS] <output>"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *Options) error {
	if opts.MinSize <= 0 || opts.MaxSize <= 0 {
		return fmt.Errorf("min-size and max-size must be positive")
	}
	if opts.MinSize > opts.MaxSize {
		return fmt.Errorf("min-size must be <= max-size")
	}
	if opts.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}
	if opts.MaxRatio < 1 {
		return fmt.Errorf("max-ratio must be >= 1")
	}

	if err := os.MkdirAll(opts.Args.OutputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	//nolint:gosec // Non-crypto randomness is fine for test data.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < opts.Count; i++ {
		width, height := generateSize(rng, opts)
		if err := generateDDS(opts, i, width, height, rng); err != nil {
			return fmt.Errorf("failed to generate image %d: %w", i, err)
		}
	}

	fmt.Printf("Successfully generated %d images in %s\n", opts.Count, opts.Args.OutputDir)
	return nil
}

// generateSize produces image dimensions based on options.
func generateSize(rng *rand.Rand, opts *Options) (width, height int) {
	size := opts.MinSize + rng.Intn(opts.MaxSize-opts.MinSize+1)

	if !opts.AllowNonPow2 {
		size = nextPowerOfTwo(size)
		if size > opts.MaxSize {
			size = prevPowerOfTwo(opts.MaxSize)
		}
	}

	if opts.MaxRatio == 1 {
		return size, size
	}

	ratio := 1 + rng.Intn(opts.MaxRatio)

	if rng.Intn(2) == 0 {
		width = size * ratio
		height = size
	} else {
		width = size
		height = size * ratio
	}

	if !opts.AllowNonPow2 {
		width = nextPowerOfTwo(width)
		height = nextPowerOfTwo(height)
	}
	if width > opts.MaxSize {
		width = opts.MaxSize
		if !opts.AllowNonPow2 {
			width = prevPowerOfTwo(opts.MaxSize)
		}
	}
	if height > opts.MaxSize {
		height = opts.MaxSize
		if !opts.AllowNonPow2 {
			height = prevPowerOfTwo(opts.MaxSize)
		}
	}

	return width, height
}

// generateDDS writes one sample image with simple visual markers.
func generateDDS(opts *Options, index, width, height int, rng *rand.Rand) error {
	var h *dds.Header
	var payload []byte

	if opts.Dxt1 {
		h, payload = buildDxt1(width, height, rng)
	} else {
		h, payload = buildA8R8G8B8(width, height, rng)
	}

	var buf bytes.Buffer
	if err := dds.WriteMagic(&buf); err != nil {
		return err
	}
	if err := dds.WriteHeader(&buf, h); err != nil {
		return err
	}
	buf.Write(payload)

	filename := filepath.Join(opts.Args.OutputDir, fmt.Sprintf("test_%03d_%dx%d.dds", index, width, height))
	if err := os.WriteFile(filename, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// buildA8R8G8B8 fills a 32-bit image with a background color, a border
// and a diagonal, so repacked output stays visually distinguishable.
func buildA8R8G8B8(width, height int, rng *rand.Rand) (*dds.Header, []byte) {
	bg := [3]uint8{randByte(rng), randByte(rng), randByte(rng)}
	fg := [3]uint8{randByte(rng), randByte(rng), randByte(rng)}

	payload := make([]byte, width*height*4)
	set := func(x, y int, c [3]uint8) {
		off := (y*width + x) * 4
		payload[off] = c[2] // B
		payload[off+1] = c[1]
		payload[off+2] = c[0]
		payload[off+3] = 255
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			set(x, y, bg)
		}
	}
	for y := 0; y < height; y++ {
		set(0, y, fg)
		set(width-1, y, fg)
	}
	for x := 0; x < width; x++ {
		set(x, 0, fg)
		set(x, height-1, fg)
		y := x * height / width
		set(x, y, fg)
	}

	h := &dds.Header{
		Size:              dds.HeaderSize,
		Flags:             dds.HeaderFlagsTexture | dds.HeaderFlagsPitch,
		Height:            uint32(height), //nolint:gosec // sizes are flag-bounded small ints.
		Width:             uint32(width),  //nolint:gosec // same.
		PitchOrLinearSize: uint32(width * 4), //nolint:gosec // same.
		PixelFormat: dds.PixelFormat{
			Size: dds.PixelFormatSize, Flags: dds.PFRGB | dds.PFAlphaPixels, RGBBitCount: 32,
			ABitMask: 0xff000000, RBitMask: 0x00ff0000, GBitMask: 0x0000ff00, BBitMask: 0x000000ff,
		},
		Caps: dds.CapsTexture,
	}
	return h, payload
}

// buildDxt1 fills every 4x4 block with one flat color: both block colors
// equal, all indices zero.
func buildDxt1(width, height int, rng *rand.Rand) (*dds.Header, []byte) {
	c565 := uint16(randByte(rng)>>3)<<11 | uint16(randByte(rng)>>2)<<5 | uint16(randByte(rng)>>3)

	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	payload := make([]byte, blocksW*blocksH*8)
	for b := 0; b < blocksW*blocksH; b++ {
		off := b * 8
		payload[off] = byte(c565)
		payload[off+1] = byte(c565 >> 8)
		payload[off+2] = byte(c565)
		payload[off+3] = byte(c565 >> 8)
	}

	h := &dds.Header{
		Size:              dds.HeaderSize,
		Flags:             dds.HeaderFlagsTexture | dds.HeaderFlagsLinearSize,
		Height:            uint32(height), //nolint:gosec // sizes are flag-bounded small ints.
		Width:             uint32(width),  //nolint:gosec // same.
		PitchOrLinearSize: uint32(len(payload)), //nolint:gosec // same.
		PixelFormat: dds.PixelFormat{
			Size:   dds.PixelFormatSize,
			Flags:  dds.PFFourCC,
			FourCC: uint32('D') | uint32('X')<<8 | uint32('T')<<16 | uint32('1')<<24,
		},
		Caps: dds.CapsTexture,
	}
	return h, payload
}

// nextPowerOfTwo returns the next power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	if n&(n-1) == 0 {
		return n
	}
	power := 1
	for power < n {
		power <<= 1
	}
	return power
}

// prevPowerOfTwo returns the previous power of two <= n.
func prevPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	power := 1
	for power*2 <= n {
		power <<= 1
	}
	return power
}

func randByte(rng *rand.Rand) uint8 {
	//nolint:gosec // Intn(256) is always within uint8.
	return uint8(rng.Intn(256))
}
