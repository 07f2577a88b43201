package locpack

import (
	"fmt"

	"github.com/joshuapare/locpack/internal/loctext"
	"github.com/joshuapare/locpack/pkg/config"
	"github.com/joshuapare/locpack/pkg/titles"
	"github.com/joshuapare/locpack/pkg/types"
)

// Options controls conversion. A nil *Options selects every default.
type Options struct {
	// Titles classifies header pairs. If nil, titles.Default() is used.
	Titles *titles.Table

	// Newline separates lines in LocPack output.
	// Default: the platform newline ("\r\n" on Windows, "\n" elsewhere).
	Newline string

	// GUIDStyle selects hyphenated (default) or compact identifiers in
	// LocPack output. Input accepts both.
	GUIDStyle types.GUIDStyle

	// InputEncoding is the LocPack encoding assumed when the input has no
	// byte-order mark. Supported: "UTF-8" (default), "UTF-16LE", "UTF-16BE".
	InputEncoding string

	// OutDir receives outputs of ConvertFile. If empty, each output is
	// written next to its input.
	OutDir string

	// Workers bounds ConvertFiles concurrency. Zero or less means
	// DefaultWorkers.
	Workers int

	// DryRun converts without writing; ConvertFile still reports the
	// output path and size.
	DryRun bool

	// OnResult is called once per file by ConvertFiles as each finishes.
	// Calls are serialized.
	OnResult func(Result)
}

// DefaultWorkers is the ConvertFiles pool size when Options.Workers is unset.
const DefaultWorkers = 4

// FromConfig builds Options from a loaded configuration.
func FromConfig(cfg *config.Config) (*Options, error) {
	if cfg == nil {
		return &Options{}, nil
	}
	nl, err := cfg.NewlineString()
	if err != nil {
		return nil, err
	}
	tbl, err := cfg.TitleTable(titles.Default())
	if err != nil {
		return nil, fmt.Errorf("config titles: %w", err)
	}
	return &Options{
		Titles:    tbl,
		Newline:   nl,
		GUIDStyle: cfg.GUIDStyle(),
		Workers:   cfg.Workers,
	}, nil
}

func (o *Options) table() *titles.Table {
	if o == nil || o.Titles == nil {
		return titles.Default()
	}
	return o.Titles
}

func (o *Options) parseOptions() loctext.ParseOptions {
	if o == nil {
		return loctext.ParseOptions{}
	}
	return loctext.ParseOptions{InputEncoding: o.InputEncoding}
}

func (o *Options) emitOptions() loctext.EmitOptions {
	if o == nil {
		return loctext.EmitOptions{}
	}
	return loctext.EmitOptions{Newline: o.Newline, GUIDStyle: o.GUIDStyle}
}

func (o *Options) outDir() string {
	if o == nil {
		return ""
	}
	return o.OutDir
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return DefaultWorkers
	}
	return o.Workers
}

func (o *Options) dryRun() bool {
	return o != nil && o.DryRun
}

// PoolSize returns how many workers ConvertFiles starts for files inputs.
func (o *Options) PoolSize(files int) int {
	return min(o.workers(), files)
}

func (o *Options) onResult() func(Result) {
	if o == nil {
		return nil
	}
	return o.OnResult
}
