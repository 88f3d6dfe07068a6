package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/woozymasta/ddsgtf/internal/dds"
	"github.com/woozymasta/ddsgtf/internal/ddsgtf"
)

// CmdConvert converts a single file between DDS and GTF, inferring
// direction from the input's magic bytes rather than its extension.
type CmdConvert struct {
	Args struct {
		Input  string `positional-arg-name:"input" description:"Input file: .dds or .gtf" required:"yes"`
		Output string `positional-arg-name:"output" description:"Output file: .gtf or .dds" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	TextureID   int  `short:"t" long:"texture-id" description:"Texture id to extract when input is a .gtf (default: 0)" default:"0"`
	Linearize   bool `long:"linearize" description:"Force swizzlable textures to linear layout"`
	Unnormalize bool `long:"unnormalize" description:"Set the unnormalize sampler flag on the output"`
}

// Execute runs the convert command.
func (c *CmdConvert) Execute(args []string) error {
	in, err := os.ReadFile(c.Args.Input)
	if err != nil {
		return fmt.Errorf("read %q: %w", c.Args.Input, err)
	}

	var out []byte
	switch {
	case bytes.HasPrefix(in, []byte(dds.Magic)):
		out, err = ddsgtf.EncodeGTF(in, ddsgtf.Options{Linearize: c.Linearize, Unnormalize: c.Unnormalize})
		if err != nil {
			return fmt.Errorf("encode %q: %w", c.Args.Input, err)
		}
	default:
		out, err = ddsgtf.DecodeGTF(in, c.TextureID)
		if err != nil {
			return fmt.Errorf("decode %q: %w", c.Args.Input, err)
		}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(c.Args.Output), "."))
	if ext == "" {
		return fmt.Errorf("output has no extension: %q", c.Args.Output)
	}

	if err := os.WriteFile(c.Args.Output, out, 0600); err != nil {
		return fmt.Errorf("write %q: %w", c.Args.Output, err)
	}

	return nil
}

// parseTextureID accepts both decimal and 0x-prefixed hex texture ids,
// since GTF ids are often referenced in hex by tooling that dumps them.
func parseTextureID(s string) (int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}
	n, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid texture id %q: %w", s, err)
	}
	return int(n), nil
}
