package loctext

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/locpack/internal/format"
	"github.com/joshuapare/locpack/pkg/types"
)

// ParseOptions controls how LocPack text is read.
type ParseOptions struct {
	// InputEncoding is used when the data has no byte-order mark.
	// Supported: "UTF-8" (default), "UTF-16LE", "UTF-16BE".
	InputEncoding string
}

// Parse converts LocPack text into a File. The header pair is classified
// before any record line is looked at, so an unrecognized header fails fast.
// Errors carry the 1-based line number of the offending line.
func Parse(data []byte, cls format.Classifier, opts ParseOptions) (*types.File, error) {
	text, err := decodeInput(data, opts.InputEncoding)
	if err != nil {
		return nil, err
	}
	lines := splitLines(text)
	if len(lines) < headerLines {
		return nil, types.Errorf(types.ErrKindMalformedLine, "missing header: need %d lines, have %d", headerLines, len(lines))
	}

	line1, err := parseHeaderLine(lines[0])
	if err != nil {
		return nil, err
	}
	line2, err := parseHeaderLine(lines[1])
	if err != nil {
		return nil, err
	}
	h := types.Header{Line1: line1, Line2: line2}
	kind, err := cls.Classify(h)
	if err != nil {
		return nil, err
	}

	body := lines[headerLines:]
	f := &types.File{Header: h, Kind: kind}
	switch kind {
	case types.KindMenu:
		f.Menus = make([]types.MenuRecord, 0, len(body))
		for _, l := range body {
			rec, err := ParseMenuLine(l.text)
			if err != nil {
				return nil, atLine(err, l.num)
			}
			f.Menus = append(f.Menus, rec)
		}
	case types.KindSubtitle:
		f.Subtitles = make([]types.SubtitleRecord, 0, len(body))
		for _, l := range body {
			rec, err := ParseSubtitleLine(l.text)
			if err != nil {
				return nil, atLine(err, l.num)
			}
			f.Subtitles = append(f.Subtitles, rec)
		}
	default:
		return nil, types.Errorf(types.ErrKindUnsupported, "record kind %v", kind)
	}
	return f, nil
}

// parseHeaderLine reads one header integer, ignoring its alignment commas.
func parseHeaderLine(l line) (int32, error) {
	v, err := parseInt(strings.TrimRight(l.text, FieldSeparator), "header", 32)
	if err != nil {
		return 0, atLine(err, l.num)
	}
	return int32(v), nil
}

// ParseMenuLine parses "guid,lineVersion,maxLength,text".
func ParseMenuLine(s string) (types.MenuRecord, error) {
	var rec types.MenuRecord
	fields, err := splitFields(s, types.KindMenu.FieldCount())
	if err != nil {
		return rec, err
	}
	if rec.ID, err = types.ParseGUID(fields[0]); err != nil {
		return rec, err
	}
	lineVersion, err := parseInt(fields[1], "lineVersion", 32)
	if err != nil {
		return rec, err
	}
	maxLength, err := parseInt(fields[2], "maxLength", 16)
	if err != nil {
		return rec, err
	}
	text, err := parseText(fields[3])
	if err != nil {
		return rec, err
	}
	rec.LineVersion = int32(lineVersion)
	rec.MaxLength = int16(maxLength)
	rec.Text = text
	if err := format.ValidateMenu(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// ParseSubtitleLine parses "guid,unk0,unk1,unk2,unk3,text".
func ParseSubtitleLine(s string) (types.SubtitleRecord, error) {
	var rec types.SubtitleRecord
	fields, err := splitFields(s, types.KindSubtitle.FieldCount())
	if err != nil {
		return rec, err
	}
	if rec.ID, err = types.ParseGUID(fields[0]); err != nil {
		return rec, err
	}
	var vals [4]int64
	for i, name := range []string{"unk0", "unk1", "unk2", "unk3"} {
		bits := 16
		if i == 0 {
			bits = 32
		}
		if vals[i], err = parseInt(fields[i+1], name, bits); err != nil {
			return rec, err
		}
	}
	text, err := parseText(fields[5])
	if err != nil {
		return rec, err
	}
	rec.Unk0 = int32(vals[0])
	rec.Unk1 = int16(vals[1])
	rec.Unk2 = int16(vals[2])
	rec.Unk3 = int16(vals[3])
	rec.Text = text
	if err := format.ValidateSubtitle(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

// splitFields splits into exactly n fields; the last keeps any extra commas.
func splitFields(s string, n int) ([]string, error) {
	fields := strings.SplitN(s, FieldSeparator, n)
	if len(fields) != n {
		return nil, types.Errorf(types.ErrKindMalformedLine, "expected %d fields, got %d", n, len(fields))
	}
	return fields, nil
}

func parseInt(s, field string, bits int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	if err != nil {
		lo, hi := int64(math.MinInt32), int64(math.MaxInt32)
		if bits == 16 {
			lo, hi = math.MinInt16, math.MaxInt16
		}
		e := types.Errorf(types.ErrKindMalformedLine, "%s %q is not an integer in [%d, %d]", field, s, lo, hi)
		e.Err = err
		return 0, e
	}
	return v, nil
}

func parseText(field string) ([]byte, error) {
	text, err := UnescapeText(field)
	if err != nil {
		e := types.NewError(types.ErrKindMalformedLine, fmt.Sprintf("text field %q", field))
		e.Err = err
		return nil, e
	}
	if strings.ContainsAny(text, CR+LF) {
		return nil, types.Errorf(types.ErrKindMalformedLine, "text field %q contains a line break", field)
	}
	if text == "" {
		return nil, nil
	}
	return []byte(text), nil
}

// atLine stamps a line number on a *types.Error, leaving other errors alone.
func atLine(err error, num int) error {
	if e, ok := err.(*types.Error); ok {
		cp := *e
		cp.Line = num
		return &cp
	}
	return err
}
