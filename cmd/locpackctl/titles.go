package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTitlesCmd())
}

func newTitlesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "titles",
		Short: "List the header pairs recognized as menu or subtitle packs",
		Long: `The titles command lists every header pair the converter classifies,
the built-in titles plus any added through --config.

Example:
  locpackctl titles
  locpackctl titles --config mods.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTitles()
		},
	}
}

type titleRow struct {
	Title string `json:"title"`
	Kind  string `json:"kind"`
	Line1 int32  `json:"line1"`
	Line2 int32  `json:"line2"`
}

func runTitles() error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	entries := opts.Titles.Entries()
	rows := make([]titleRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, titleRow{Title: e.Title, Kind: e.Kind.String(), Line1: e.Line1, Line2: e.Line2})
	}

	if jsonOut {
		return printJSON(rows)
	}
	for _, r := range rows {
		printInfo("%-9s %6d %8d  %s\n", r.Kind, r.Line1, r.Line2, r.Title)
	}
	return nil
}
