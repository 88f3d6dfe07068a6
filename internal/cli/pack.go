package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/woozymasta/ddsgtf/internal/ddsgtf"
)

// CmdPack packs a directory of .dds files into a single multi-texture
// .gtf container, assigning texture ids in sorted filename order.
type CmdPack struct {
	Name        string `short:"n" long:"name" description:"Output file name without extension (default: input directory name)" yaml:"name"`
	Force       bool   `short:"f" long:"force" description:"Overwrite an existing output file" yaml:"force"`
	Skip        bool   `short:"u" long:"skip-unchanged" description:"Skip writing when inputs are unchanged" yaml:"skip_unchanged"`
	Linearize   bool   `long:"linearize" description:"Force swizzlable textures to linear layout" yaml:"linearize"`
	Unnormalize bool   `long:"unnormalize" description:"Set the unnormalize sampler flag on every packed texture" yaml:"unnormalize"`

	Args struct {
		Input  string `positional-arg-name:"input" description:"Input directory of .dds files" required:"yes" yaml:"input_dir"`
		Output string `positional-arg-name:"output" description:"Output directory (default: input directory)" yaml:"output_dir"`
	} `positional-args:"yes" required:"yes" yaml:"args"`
}

// imageFile is one discovered .dds input, ordered by name (file name
// without extension) so that texture ids are stable across repeated runs.
type imageFile struct {
	path string
	name string
}

// Execute runs the pack command.
func (c *CmdPack) Execute(args []string) error {
	return runPack(c)
}

func runPack(opts *CmdPack) error {
	outputDir := opts.Args.Output
	if outputDir == "" {
		outputDir = opts.Args.Input
	}

	name := opts.Name
	if name == "" {
		absInput, err := filepath.Abs(opts.Args.Input)
		if err != nil {
			return fmt.Errorf("failed to get absolute path: %w", err)
		}
		name = filepath.Base(absInput)
	}

	files, err := readDdsFiles(opts.Args.Input)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .dds files found in %q", opts.Args.Input)
	}
	if len(files) > 255 {
		return fmt.Errorf("too many .dds files in %q: %d, max is 255", opts.Args.Input, len(files))
	}

	gtfPath := filepath.Join(outputDir, name+".gtf")

	cachePath := filepath.Join(outputDir, name+".ddshash")
	var inputsHash uint64
	if opts.Skip {
		inputsHash, err = computeInputsHash(opts, files)
		if err != nil {
			return err
		}
		if shouldSkipPack(cachePath, gtfPath, inputsHash) {
			fmt.Printf("Inputs unchanged; skipping write for %s\n", gtfPath)
			return nil
		}
	}

	if !opts.Force {
		if _, err := os.Stat(gtfPath); err == nil {
			return fmt.Errorf("output file %q already exists (use --force)", gtfPath)
		}
	}

	images := make([][]byte, len(files))
	for i, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			return fmt.Errorf("read %q: %w", f.path, err)
		}
		images[i] = data
	}

	out, err := ddsgtf.PackImages(images, ddsgtf.Options{Linearize: opts.Linearize, Unnormalize: opts.Unnormalize})
	if err != nil {
		return fmt.Errorf("pack %q: %w", opts.Args.Input, err)
	}

	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(gtfPath, out, 0600); err != nil {
		return fmt.Errorf("write %q: %w", gtfPath, err)
	}

	if opts.Skip {
		if err := writeCacheHash(cachePath, inputsHash); err != nil {
			return err
		}
	}

	return nil
}

// readDdsFiles lists the .dds files directly inside dir, sorted by name
// so texture id assignment is deterministic.
func readDdsFiles(dir string) ([]imageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	var files []imageFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) != ".dds" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		files = append(files, imageFile{
			path: path,
			name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	return files, nil
}
