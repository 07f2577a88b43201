package types

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnrecognizedHeader ErrKind = iota + 1 // header pair matches no known title
	ErrKindMalformedLine                         // text line has wrong field count or bad integers
	ErrKindTruncated                             // binary ended inside a record
	ErrKindInvalidIdentifier                     // GUID field is not a valid UUID
	ErrKindCorrupt                               // binary layout violates the record format
	ErrKindUnsupported                           // unknown extension, encoding or option value
)

// String returns a short name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindUnrecognizedHeader:
		return "unrecognized header"
	case ErrKindMalformedLine:
		return "malformed line"
	case ErrKindTruncated:
		return "truncated binary"
	case ErrKindInvalidIdentifier:
		return "invalid identifier"
	case ErrKindCorrupt:
		return "corrupt record"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return "ErrKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a typed error with location context and an optional underlying cause.
//
// Line is the 1-based line number in LocPack text, Record the 0-based record
// index and Offset the byte offset in LocPackBin. Unset locations are -1;
// NewError and Errorf initialise them that way.
type Error struct {
	Kind   ErrKind
	Msg    string
	File   string
	Line   int
	Record int
	Offset int
	Err    error // optional underlying cause
}

// NewError returns an Error of the given kind with no location set.
func NewError(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Line: -1, Record: -1, Offset: -1}
}

// Errorf is NewError with fmt-style formatting.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return NewError(kind, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	var loc string
	if e.File != "" {
		loc = e.File
	}
	if e.Line >= 0 {
		loc = joinLoc(loc, "line "+strconv.Itoa(e.Line))
	}
	if e.Record >= 0 {
		loc = joinLoc(loc, "record "+strconv.Itoa(e.Record))
	}
	if e.Offset >= 0 {
		loc = joinLoc(loc, fmt.Sprintf("offset 0x%x", e.Offset))
	}
	if loc != "" {
		msg = loc + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func joinLoc(a, b string) string {
	if a == "" {
		return b
	}
	return a + ", " + b
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so the sentinels below work with
// errors.Is regardless of message or location.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// WithFile returns a copy of err stamped with the file path when err is an
// *Error; any other error is wrapped with the path as prefix.
func WithFile(err error, path string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		cp := *e
		cp.File = path
		return &cp
	}
	return fmt.Errorf("%s: %w", path, err)
}

// Sentinels for errors.Is checks.
var (
	// ErrUnrecognizedHeader indicates the header pair matches neither record kind.
	ErrUnrecognizedHeader = NewError(ErrKindUnrecognizedHeader, "not a valid menus or subtitles locpack")
	// ErrMalformedLine indicates a text line could not be parsed.
	ErrMalformedLine = NewError(ErrKindMalformedLine, "malformed line")
	// ErrTruncated indicates the binary ended before a record was complete.
	ErrTruncated = NewError(ErrKindTruncated, "truncated binary")
	// ErrInvalidIdentifier indicates a GUID field could not be parsed.
	ErrInvalidIdentifier = NewError(ErrKindInvalidIdentifier, "invalid identifier")
	// ErrCorrupt indicates a binary record violates the expected layout.
	ErrCorrupt = NewError(ErrKindCorrupt, "corrupt record")
	// ErrUnsupported indicates an unsupported file type or option.
	ErrUnsupported = NewError(ErrKindUnsupported, "unsupported")
)
