package types

// FileKind identifies which record layout a file uses. It is determined
// solely by the header pair.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindMenu
	KindSubtitle
)

// String implements fmt.Stringer.
func (k FileKind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindSubtitle:
		return "subtitle"
	default:
		return "unknown"
	}
}

// ParseFileKind accepts the names produced by String (and their plurals, as
// used in config files).
func ParseFileKind(s string) (FileKind, bool) {
	switch s {
	case "menu", "menus", "Menu", "Menus":
		return KindMenu, true
	case "subtitle", "subtitles", "Subtitle", "Subtitles":
		return KindSubtitle, true
	default:
		return KindUnknown, false
	}
}

// TrailingCommas is the number of empty alignment columns written after each
// header integer in LocPack text.
func (k FileKind) TrailingCommas() int {
	switch k {
	case KindMenu:
		return 3
	case KindSubtitle:
		return 5
	default:
		return 0
	}
}

// FieldCount is the number of comma-separated fields in a record line. The
// last field is the text and may itself contain commas.
func (k FileKind) FieldCount() int {
	return k.TrailingCommas() + 1
}

// Header is the two-integer pair opening every LocPack and LocPackBin file.
type Header struct {
	Line1 int32
	Line2 int32
}

// MenuRecord is one menu string.
type MenuRecord struct {
	ID          GUID
	LineVersion int32
	MaxLength   int16 // forced to 0 on encode when Text is empty
	Text        []byte
}

// SubtitleRecord is one subtitle line. The meaning of the Unk fields is not
// known; they are carried through verbatim.
type SubtitleRecord struct {
	ID   GUID
	Unk0 int32
	Unk1 int16
	Unk2 int16 // big-endian in LocPackBin
	Unk3 int16
	Text []byte
}

// File is a fully decoded localization pack. Exactly one of Menus and
// Subtitles is populated, according to Kind. Record order is significant.
type File struct {
	Header    Header
	Kind      FileKind
	Menus     []MenuRecord
	Subtitles []SubtitleRecord
}

// Len returns the number of records for the file's kind.
func (f *File) Len() int {
	switch f.Kind {
	case KindMenu:
		return len(f.Menus)
	case KindSubtitle:
		return len(f.Subtitles)
	default:
		return 0
	}
}
