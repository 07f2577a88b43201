package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locpack/pkg/locpack"
)

var (
	convertOutDir  string
	convertWorkers int
	convertDryRun  bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertOutDir, "out-dir", "o", "", "Write outputs to this directory instead of next to each input")
	cmd.Flags().IntVarP(&convertWorkers, "workers", "w", 0, "Number of files converted in parallel (default from config)")
	cmd.Flags().BoolVarP(&convertDryRun, "dry-run", "n", false, "Convert without writing output files")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "Convert files, choosing the direction from each extension",
		Long: `The convert command converts every given file to the other form:
.locpack files become .locpackbin and .locpackbin files become .locpack.
Outputs are written next to their inputs unless --out-dir is set. A file
that fails to convert leaves no output and does not stop the others.

Example:
  locpackctl convert menus.locpack
  locpackctl convert *.locpackbin --out-dir text/
  locpackctl convert a.locpack b.locpackbin --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args)
		},
	}
	return cmd
}

type convertSummary struct {
	Input     string `json:"input"`
	Output    string `json:"output,omitempty"`
	Direction string `json:"direction,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Records   int    `json:"records"`
	Size      int    `json:"size"`
	Error     string `json:"error,omitempty"`
}

func runConvert(ctx context.Context, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	if convertOutDir != "" {
		if err := os.MkdirAll(convertOutDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		opts.OutDir = convertOutDir
	}
	if convertWorkers > 0 {
		opts.Workers = convertWorkers
	}
	opts.DryRun = convertDryRun

	workers := opts.PoolSize(len(args))
	printVerbose("Converting %d file%s with %d worker%s\n",
		len(args), plural(len(args)), workers, plural(workers))

	opts.OnResult = func(r locpack.Result) {
		if jsonOut {
			return
		}
		if r.Err != nil {
			printError("Failed to convert file: %s - %v\n", filepath.Base(r.Input), r.Err)
			return
		}
		if convertDryRun {
			printInfo("Would convert: %s to %s\n", filepath.Base(r.Input), filepath.Base(r.Output))
		} else {
			printInfo("Converted: %s to %s\n", filepath.Base(r.Input), filepath.Base(r.Output))
		}
		printVerbose("  %s, %d record%s in %s\n", r.Kind, r.Records, plural(r.Records), r.Duration)
	}

	results, convErr := locpack.ConvertFiles(ctx, args, opts)

	failed := 0
	summaries := make([]convertSummary, 0, len(results))
	for _, r := range results {
		s := convertSummary{Input: r.Input, Records: r.Records, Size: r.Size}
		if r.Err != nil {
			failed++
			s.Error = r.Err.Error()
		} else {
			s.Output = r.Output
			s.Direction = r.Direction.String()
			s.Kind = r.Kind.String()
		}
		summaries = append(summaries, s)
	}

	if jsonOut {
		if err := printJSON(summaries); err != nil {
			return err
		}
	}
	if convErr != nil {
		return fmt.Errorf("%d of %d file%s failed to convert", failed, len(results), plural(len(results)))
	}
	return nil
}
