package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/locpack/internal/loctext"
	"github.com/joshuapare/locpack/pkg/locpack"
	"github.com/joshuapare/locpack/pkg/types"
)

var inspectRecords bool

func init() {
	cmd := newInspectCmd()
	cmd.Flags().BoolVarP(&inspectRecords, "records", "r", false, "List every record")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Report header, title and record count of a pack",
		Long: `The inspect command decodes a .locpack or .locpackbin file without
writing anything and reports its header pair, the title it belongs to and
how many records it holds. With --records every record is listed.

Example:
  locpackctl inspect menus.locpackbin
  locpackctl inspect subtitles.locpack --records --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

type inspectReport struct {
	File    string          `json:"file"`
	Size    int             `json:"size"`
	Kind    string          `json:"kind"`
	Title   string          `json:"title,omitempty"`
	Line1   int32           `json:"line1"`
	Line2   int32           `json:"line2"`
	Count   int             `json:"records"`
	Records []inspectRecord `json:"record_list,omitempty"`
}

type inspectRecord struct {
	ID          string `json:"id"`
	LineVersion *int32 `json:"line_version,omitempty"`
	MaxLength   *int16 `json:"max_length,omitempty"`
	Unk0        *int32 `json:"unk0,omitempty"`
	Unk1        *int16 `json:"unk1,omitempty"`
	Unk2        *int16 `json:"unk2,omitempty"`
	Unk3        *int16 `json:"unk3,omitempty"`
	Text        string `json:"text"`
}

func runInspect(args []string) error {
	path := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}
	dir, err := locpack.DirectionFor(path)
	if err != nil {
		return types.WithFile(err, path)
	}

	printVerbose("Inspecting: %s\n", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f *types.File
	if dir == locpack.DirectionFromBin {
		f, err = locpack.Decode(data, opts)
	} else {
		f, err = locpack.Encode(data, opts)
	}
	if err != nil {
		return types.WithFile(err, path)
	}

	report := inspectReport{
		File:  path,
		Size:  len(data),
		Kind:  f.Kind.String(),
		Line1: f.Header.Line1,
		Line2: f.Header.Line2,
		Count: f.Len(),
	}
	if e, ok := opts.Titles.Lookup(f.Header); ok {
		report.Title = e.Title
	}
	if inspectRecords {
		report.Records = recordList(f)
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nPack Information:\n")
	printInfo("  File: %s\n", report.File)
	printInfo("  Size: %d bytes\n", report.Size)
	printInfo("  Header: %d, %d\n", report.Line1, report.Line2)
	printInfo("  Kind: %s\n", report.Kind)
	if report.Title != "" {
		printInfo("  Title: %s\n", report.Title)
	}
	printInfo("  Records: %d\n", report.Count)

	if inspectRecords {
		printInfo("\n")
		for i := range f.Menus {
			line, err := loctext.FormatMenuLine(f.Menus[i], opts.GUIDStyle)
			if err != nil {
				return err
			}
			printInfo("%s\n", line)
		}
		for i := range f.Subtitles {
			line, err := loctext.FormatSubtitleLine(f.Subtitles[i], opts.GUIDStyle)
			if err != nil {
				return err
			}
			printInfo("%s\n", line)
		}
	}
	return nil
}

func recordList(f *types.File) []inspectRecord {
	out := make([]inspectRecord, 0, f.Len())
	for _, rec := range f.Menus {
		out = append(out, inspectRecord{
			ID:          rec.ID.String(),
			LineVersion: &rec.LineVersion,
			MaxLength:   &rec.MaxLength,
			Text:        string(rec.Text),
		})
	}
	for _, rec := range f.Subtitles {
		out = append(out, inspectRecord{
			ID:   rec.ID.String(),
			Unk0: &rec.Unk0,
			Unk1: &rec.Unk1,
			Unk2: &rec.Unk2,
			Unk3: &rec.Unk3,
			Text: string(rec.Text),
		})
	}
	return out
}
