package format

import (
	"github.com/joshuapare/locpack/internal/buf"
	"github.com/joshuapare/locpack/pkg/types"
)

// Classifier maps a header pair to a record kind.
type Classifier interface {
	Classify(types.Header) (types.FileKind, error)
}

// DecodeFile parses a complete LocPackBin buffer. The header is classified
// first; an unrecognized header fails before any record is read. Records are
// decoded until the buffer is exhausted.
func DecodeFile(data []byte, cls Classifier) (*types.File, error) {
	c := buf.NewCursor(data)
	h, err := ReadHeader(c)
	if err != nil {
		return nil, err
	}
	kind, err := cls.Classify(h)
	if err != nil {
		return nil, err
	}

	f := &types.File{Header: h, Kind: kind}
	switch kind {
	case types.KindMenu:
		f.Menus = make([]types.MenuRecord, 0, c.Remaining()/MenuFixedSize)
	case types.KindSubtitle:
		f.Subtitles = make([]types.SubtitleRecord, 0, c.Remaining()/SubtitleFixedSize)
	}
	for i := 0; !c.Done(); i++ {
		switch kind {
		case types.KindMenu:
			rec, err := ReadMenu(c, i)
			if err != nil {
				return nil, err
			}
			f.Menus = append(f.Menus, rec)
		case types.KindSubtitle:
			rec, err := ReadSubtitle(c, i)
			if err != nil {
				return nil, err
			}
			f.Subtitles = append(f.Subtitles, rec)
		default:
			return nil, types.Errorf(types.ErrKindUnsupported, "record kind %v", kind)
		}
	}
	return f, nil
}

// EncodeFile serializes f into a new LocPackBin buffer. The returned error
// carries the index of the offending record.
func EncodeFile(f *types.File) ([]byte, error) {
	size := HeaderSize
	switch f.Kind {
	case types.KindMenu:
		for _, rec := range f.Menus {
			size += MenuSize(rec)
		}
	case types.KindSubtitle:
		for _, rec := range f.Subtitles {
			size += SubtitleSize(rec)
		}
	default:
		return nil, types.Errorf(types.ErrKindUnsupported, "record kind %v", f.Kind)
	}

	out := AppendHeader(make([]byte, 0, size), f.Header)
	var err error
	switch f.Kind {
	case types.KindMenu:
		for i, rec := range f.Menus {
			if out, err = AppendMenu(out, rec); err != nil {
				return nil, atRecord(err, i)
			}
		}
	case types.KindSubtitle:
		for i, rec := range f.Subtitles {
			if out, err = AppendSubtitle(out, rec); err != nil {
				return nil, atRecord(err, i)
			}
		}
	}
	return out, nil
}

func atRecord(err error, index int) error {
	if e, ok := err.(*types.Error); ok {
		cp := *e
		cp.Record = index
		return &cp
	}
	return err
}
