package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/ddsgtf/internal/ddsgtf"
	"github.com/woozymasta/ddsgtf/internal/gtf"
)

// CmdUnpack extracts one or more textures out of a .gtf container into
// standalone .dds files.
type CmdUnpack struct {
	Args struct {
		GTFPath string `positional-arg-name:"gtf" description:"Path to .gtf" required:"yes"`
	} `positional-args:"yes" required:"yes"`

	OutputDir string `short:"O" long:"output-dir" description:"Output directory (default: current dir)"`
	IDs       string `short:"i" long:"ids" description:"Comma-separated texture ids to extract (default: all)"`
	Overwrite bool   `short:"f" long:"force" description:"Overwrite existing files"`
}

// Execute runs the unpack command.
func (c *CmdUnpack) Execute(args []string) error {
	return runUnpack(c)
}

func runUnpack(opts *CmdUnpack) error {
	data, err := os.ReadFile(opts.Args.GTFPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", opts.Args.GTFPath, err)
	}

	_, attrs, err := gtf.ReadHeader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse %q: %w", opts.Args.GTFPath, err)
	}

	wanted, err := parseWantedIDs(opts.IDs)
	if err != nil {
		return err
	}

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("mkdir %q: %w", outDir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(opts.Args.GTFPath), filepath.Ext(opts.Args.GTFPath))

	for _, attr := range attrs {
		id := int(attr.ID)
		if wanted != nil {
			if _, ok := wanted[id]; !ok {
				continue
			}
		}

		ddsData, err := ddsgtf.DecodeGTF(data, id)
		if err != nil {
			return fmt.Errorf("decode texture %d: %w", id, err)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("%s_%02d.dds", stem, id))
		if !opts.Overwrite {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("output file %q exists (use --force)", outPath)
			}
		}
		if err := os.WriteFile(outPath, ddsData, 0600); err != nil {
			return fmt.Errorf("write %q: %w", outPath, err)
		}
	}

	return nil
}

// parseWantedIDs parses a comma-separated id list; an empty string means
// "every texture in the file" and is reported as a nil set.
func parseWantedIDs(s string) (map[int]struct{}, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	out := make(map[int]struct{})
	for _, part := range strings.Split(s, ",") {
		id, err := parseTextureID(part)
		if err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}

	return out, nil
}
