// Package cli implements the command-line interface for ddsgtf.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/ddsgtf/internal/vars"
)

// Root defines global CLI flags.
type Root struct{}

// CmdVersion prints build metadata.
type CmdVersion struct{}

// Execute runs the version command.
func (c *CmdVersion) Execute(args []string) error {
	vars.Print()
	return nil
}

// Run parses arguments and executes the selected command.
func Run(args []string) error {
	var root Root

	parser := flags.NewParser(&root, flags.Default)
	parser.Name = filepath.Base(os.Args[0])

	prog := parser.Name
	if _, err := parser.AddCommand(
		"build",
		"Build pack projects from a config file",
		fmt.Sprintf(
			`Run multiple pack jobs from a config file.

Examples:
  %s build ./my-ddsgtf-config.yaml
  %s build --project characters --project weapons`,
			prog, prog,
		),
		&CmdBuild{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"pack",
		"Pack a directory of .dds files into a single .gtf",
		fmt.Sprintf(
			`Pack every .dds file in a directory into one multi-texture GTF container.

Examples:
  %s pack ./textures
  %s pack ./textures ./out --force --unnormalize`,
			prog, prog,
		),
		&CmdPack{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"unpack",
		"Extract textures from a .gtf into .dds files",
		fmt.Sprintf(
			`Extract one or all textures out of a GTF container.

Examples:
  %s unpack atlas.gtf
  %s unpack atlas.gtf --ids 0,2,5 --output-dir ./out`,
			prog, prog,
		),
		&CmdUnpack{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"convert",
		"Convert a single file between DDS and GTF",
		fmt.Sprintf(
			`Convert one file, inferring direction from its magic bytes.

Examples:
  %s convert texture.dds texture.gtf
  %s convert atlas.gtf texture.dds --texture-id 3`,
			prog, prog,
		),
		&CmdConvert{},
	); err != nil {
		return err
	}

	if _, err := parser.AddCommand(
		"version",
		"Print build metadata",
		fmt.Sprintf(
			`Show build information.

Examples:
  %s version`,
			prog,
		),
		&CmdVersion{},
	); err != nil {
		return err
	}

	_, err := parser.ParseArgs(args)

	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	return nil
}
