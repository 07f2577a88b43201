package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locpack/internal/writer"
	"github.com/joshuapare/locpack/pkg/locpack"
	"github.com/joshuapare/locpack/pkg/types"
)

var (
	tobinStdout   bool
	frombinStdout bool
	frombinGUID   string
	frombinCRLF   bool
	frombinLF     bool
)

func init() {
	tobin := newToBinCmd()
	tobin.Flags().BoolVar(&tobinStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(tobin)

	frombin := newFromBinCmd()
	frombin.Flags().BoolVar(&frombinStdout, "stdout", false, "Write to stdout instead of file")
	frombin.Flags().StringVar(&frombinGUID, "guid-format", "", "Identifier format: hyphenated or compact (default from config)")
	frombin.Flags().BoolVar(&frombinCRLF, "crlf", false, "Use CRLF line endings")
	frombin.Flags().BoolVar(&frombinLF, "lf", false, "Use LF line endings")
	frombin.MarkFlagsMutuallyExclusive("crlf", "lf")
	rootCmd.AddCommand(frombin)
}

func newToBinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tobin <input.locpack> [output.locpackbin]",
		Short: "Convert LocPack text to LocPackBin",
		Long: `The tobin command packs a .locpack text file into LocPackBin.
Without an output path the result is written next to the input.

Example:
  locpackctl tobin menus.locpack
  locpackctl tobin menus.locpack build/menus.locpackbin
  locpackctl tobin menus.locpack --stdout > menus.locpackbin`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirect(locpack.DirectionToBin, args, tobinStdout)
		},
	}
}

func newFromBinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frombin <input.locpackbin> [output.locpack]",
		Short: "Convert LocPackBin to LocPack text",
		Long: `The frombin command unpacks a LocPackBin file into editable .locpack text.
Without an output path the result is written next to the input.

Example:
  locpackctl frombin subtitles.locpackbin
  locpackctl frombin subtitles.locpackbin --stdout --lf
  locpackctl frombin subtitles.locpackbin out.locpack --guid-format compact`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirect(locpack.DirectionFromBin, args, frombinStdout)
		},
	}
}

func runDirect(dir locpack.Direction, args []string, toStdout bool) error {
	inPath := args[0]
	var outPath string
	if len(args) > 1 {
		outPath = args[1]
	}
	if outPath != "" && toStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if dir == locpack.DirectionFromBin {
		if err := applyTextFlags(opts); err != nil {
			return err
		}
	}

	printVerbose("Reading: %s\n", inPath)
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	out, f, err := locpack.Convert(data, dir, opts)
	if err != nil {
		return types.WithFile(err, inPath)
	}

	if toStdout {
		_, err := os.Stdout.Write(out)
		return err
	}

	if outPath == "" {
		outPath = locpack.OutputPath(inPath, dir, "")
	}
	w := &writer.FileWriter{Path: outPath}
	if err := w.WriteOutput(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	printInfo("Converted: %s to %s\n", filepath.Base(inPath), filepath.Base(outPath))
	printVerbose("  %s, %d record%s, %d bytes\n", f.Kind, f.Len(), plural(f.Len()), len(out))
	return nil
}

func applyTextFlags(opts *locpack.Options) error {
	if frombinGUID != "" {
		style, ok := types.ParseGUIDStyle(frombinGUID)
		if !ok {
			return fmt.Errorf("invalid --guid-format %q: want hyphenated or compact", frombinGUID)
		}
		opts.GUIDStyle = style
	}
	switch {
	case frombinCRLF:
		opts.Newline = "\r\n"
	case frombinLF:
		opts.Newline = "\n"
	}
	return nil
}
