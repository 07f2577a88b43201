package locpack

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/joshuapare/locpack/internal/logger"
	"github.com/joshuapare/locpack/internal/mmfile"
	"github.com/joshuapare/locpack/internal/writer"
	"github.com/joshuapare/locpack/pkg/types"
)

// File extensions recognized by ConvertFile.
const (
	TextExt   = ".locpack"
	BinaryExt = ".locpackbin"
)

// Direction is the conversion ConvertFile performs.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionToBin             // .locpack -> .locpackbin
	DirectionFromBin           // .locpackbin -> .locpack
)

func (d Direction) String() string {
	switch d {
	case DirectionToBin:
		return "tobin"
	case DirectionFromBin:
		return "frombin"
	default:
		return "unknown"
	}
}

// DirectionFor picks the conversion from the extension of path. Matching
// ignores case.
func DirectionFor(path string) (Direction, error) {
	ext := filepath.Ext(path)
	switch {
	case strings.EqualFold(ext, TextExt):
		return DirectionToBin, nil
	case strings.EqualFold(ext, BinaryExt):
		return DirectionFromBin, nil
	default:
		return DirectionUnknown, types.Errorf(types.ErrKindUnsupported,
			"unsupported file type %q: want %s or %s", ext, TextExt, BinaryExt)
	}
}

// OutputPath returns where ConvertFile writes the result for input. The
// extension is swapped; outDir, if set, replaces the directory.
func OutputPath(input string, dir Direction, outDir string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	switch dir {
	case DirectionToBin:
		base += BinaryExt
	case DirectionFromBin:
		base += TextExt
	}
	if outDir != "" {
		return filepath.Join(outDir, filepath.Base(base))
	}
	return base
}

// Result describes one file conversion.
type Result struct {
	Input     string
	Output    string
	Direction Direction
	Kind      types.FileKind
	Records   int
	Size      int // output bytes
	Duration  time.Duration
	Err       error
}

// ConvertFile converts the file at path to the other form, choosing the
// direction from its extension. The output is written atomically; on any
// error nothing is written. Errors carry the input path.
func ConvertFile(path string, opts *Options) (Result, error) {
	start := time.Now()
	res := Result{Input: path}
	fail := func(err error) (Result, error) {
		res.Err = types.WithFile(err, path)
		res.Duration = time.Since(start)
		logger.Warn("conversion failed", "file", path, "error", res.Err)
		return res, res.Err
	}

	dir, err := DirectionFor(path)
	if err != nil {
		return fail(err)
	}
	res.Direction = dir
	res.Output = OutputPath(path, dir, opts.outDir())

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fail(err)
	}
	defer func() { _ = cleanup() }()

	out, f, err := Convert(data, dir, opts)
	if err != nil {
		return fail(err)
	}
	res.Kind = f.Kind
	res.Records = f.Len()
	res.Size = len(out)

	var sink writer.Sink = &writer.FileWriter{Path: res.Output}
	if opts.dryRun() {
		sink = &writer.MemWriter{}
	}
	if err := sink.WriteOutput(out); err != nil {
		return fail(err)
	}

	res.Duration = time.Since(start)
	logger.Info("converted",
		"input", res.Input,
		"output", res.Output,
		"kind", res.Kind.String(),
		"records", res.Records,
		"bytes", res.Size,
		"dry_run", opts.dryRun(),
		"duration", res.Duration)
	return res, nil
}

// Convert converts data in the given direction and returns the output bytes
// along with the decoded records.
func Convert(data []byte, dir Direction, opts *Options) ([]byte, *types.File, error) {
	switch dir {
	case DirectionToBin:
		f, err := Encode(data, opts)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("parsed text", "kind", f.Kind.String(), "records", f.Len())
		out, err := Marshal(f)
		return out, f, err
	case DirectionFromBin:
		f, err := Decode(data, opts)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("decoded binary", "kind", f.Kind.String(), "records", f.Len())
		out, err := Render(f, opts)
		return out, f, err
	default:
		return nil, nil, types.Errorf(types.ErrKindUnsupported, "direction %v", dir)
	}
}
