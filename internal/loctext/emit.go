package loctext

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/joshuapare/locpack/pkg/types"
)

// EmitOptions controls how LocPack text is written.
type EmitOptions struct {
	// Newline separates lines. Empty selects the platform newline.
	Newline string
	// GUIDStyle selects hyphenated (default) or compact identifiers.
	GUIDStyle types.GUIDStyle
}

// Emit renders f as LocPack text. Lines are joined with the newline and no
// newline follows the last line. Header alignment commas are regenerated
// from the kind.
func Emit(f *types.File, opts EmitOptions) ([]byte, error) {
	nl := opts.Newline
	if nl == "" {
		nl = PlatformNewline
	}
	commas := strings.Repeat(FieldSeparator, f.Kind.TrailingCommas())
	if commas == "" {
		return nil, types.Errorf(types.ErrKindUnsupported, "record kind %v", f.Kind)
	}

	var buf bytes.Buffer
	buf.Grow(estimateSize(f))
	buf.WriteString(strconv.FormatInt(int64(f.Header.Line1), 10))
	buf.WriteString(commas)
	buf.WriteString(nl)
	buf.WriteString(strconv.FormatInt(int64(f.Header.Line2), 10))
	buf.WriteString(commas)

	switch f.Kind {
	case types.KindMenu:
		for i, rec := range f.Menus {
			buf.WriteString(nl)
			if err := emitMenu(&buf, rec, opts.GUIDStyle); err != nil {
				return nil, atRecord(err, i)
			}
		}
	case types.KindSubtitle:
		for i, rec := range f.Subtitles {
			buf.WriteString(nl)
			if err := emitSubtitle(&buf, rec, opts.GUIDStyle); err != nil {
				return nil, atRecord(err, i)
			}
		}
	}
	return buf.Bytes(), nil
}

// FormatMenuLine renders a single menu record line.
func FormatMenuLine(rec types.MenuRecord, style types.GUIDStyle) (string, error) {
	var buf bytes.Buffer
	if err := emitMenu(&buf, rec, style); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatSubtitleLine renders a single subtitle record line.
func FormatSubtitleLine(rec types.SubtitleRecord, style types.GUIDStyle) (string, error) {
	var buf bytes.Buffer
	if err := emitSubtitle(&buf, rec, style); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func emitMenu(buf *bytes.Buffer, rec types.MenuRecord, style types.GUIDStyle) error {
	text, err := textField(rec.Text)
	if err != nil {
		return err
	}
	buf.WriteString(rec.ID.Format(style))
	writeInt(buf, int64(rec.LineVersion))
	writeInt(buf, int64(rec.MaxLength))
	buf.WriteString(FieldSeparator)
	buf.WriteString(text)
	return nil
}

func emitSubtitle(buf *bytes.Buffer, rec types.SubtitleRecord, style types.GUIDStyle) error {
	text, err := textField(rec.Text)
	if err != nil {
		return err
	}
	buf.WriteString(rec.ID.Format(style))
	writeInt(buf, int64(rec.Unk0))
	writeInt(buf, int64(rec.Unk1))
	writeInt(buf, int64(rec.Unk2))
	writeInt(buf, int64(rec.Unk3))
	buf.WriteString(FieldSeparator)
	buf.WriteString(text)
	return nil
}

func writeInt(buf *bytes.Buffer, v int64) {
	buf.WriteString(FieldSeparator)
	buf.WriteString(strconv.FormatInt(v, 10))
}

// textField escapes raw record text. Line breaks cannot be represented in a
// line-based file and are rejected.
func textField(raw []byte) (string, error) {
	if bytes.ContainsAny(raw, CR+LF) {
		return "", types.NewError(types.ErrKindCorrupt, "text contains a line break")
	}
	return EscapeText(string(raw)), nil
}

func estimateSize(f *types.File) int {
	// GUID + separators + a few digits per integer column.
	const perLine = 36 + 24
	n := 32
	for _, rec := range f.Menus {
		n += perLine + len(rec.Text)
	}
	for _, rec := range f.Subtitles {
		n += perLine + len(rec.Text)
	}
	return n
}

func atRecord(err error, index int) error {
	if e, ok := err.(*types.Error); ok {
		cp := *e
		cp.Record = index
		return &cp
	}
	return err
}
