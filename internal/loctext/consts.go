package loctext

const (
	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// FieldSeparator separates the columns of a LocPack line
	FieldSeparator = ","

	// Quote wraps text fields containing separators or quotes
	Quote = "\""

	// DoubledQuote is the escaped form of a quote inside a text field
	DoubledQuote = "\"\""

	// SlashEscape is prepended to text that would otherwise be misread
	SlashEscape = "/"

	// CommentMarker is the text prefix that requires SlashEscape
	CommentMarker = "--"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CRLF is the Windows line ending (carriage return + line feed)
	CRLF = "\r\n"

	// CR is the carriage return character
	CR = "\r"

	// LF is the line feed character
	LF = "\n"

	// ============================================================================
	// Encoding Names
	// ============================================================================

	// EncodingUTF8 is the identifier for UTF-8 encoding
	EncodingUTF8 = "UTF-8"

	// EncodingUTF16LE is the identifier for UTF-16 little-endian encoding
	EncodingUTF16LE = "UTF-16LE"

	// EncodingUTF16BE is the identifier for UTF-16 big-endian encoding
	EncodingUTF16BE = "UTF-16BE"

	// headerLines is the number of lines holding the header pair
	headerLines = 2
)
