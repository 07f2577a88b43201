package loctext

import (
	"errors"
	"strings"
)

var errUnterminatedQuote = errors.New("quoted text field is not terminated")

// UnescapeText converts the raw last field of a LocPack line into the text
// stored in LocPackBin:
//   - a leading quote strips exactly one leading and one trailing quote
//   - every doubled quote becomes a single quote
//   - one leading slash, the escape marker, is removed
func UnescapeText(field string) (string, error) {
	if strings.HasPrefix(field, Quote) {
		if len(field) < 2*len(Quote) || !strings.HasSuffix(field, Quote) {
			return "", errUnterminatedQuote
		}
		field = field[len(Quote) : len(field)-len(Quote)]
	}
	if strings.Contains(field, DoubledQuote) {
		field = strings.ReplaceAll(field, DoubledQuote, Quote)
	}
	return strings.TrimPrefix(field, SlashEscape), nil
}

// EscapeText is the inverse of UnescapeText. Text starting with the comment
// marker or with a slash gets a slash prepended, quotes are doubled, and the
// field is quoted when it contains a separator or a quote.
func EscapeText(text string) string {
	if strings.HasPrefix(text, CommentMarker) || strings.HasPrefix(text, SlashEscape) {
		text = SlashEscape + text
	}
	if !strings.ContainsAny(text, FieldSeparator+Quote) {
		return text
	}
	return Quote + strings.ReplaceAll(text, Quote, DoubledQuote) + Quote
}

// splitLines splits text into lines, accepting both LF and CRLF endings.
// Returned line numbers are 1-based; blank and whitespace-only lines are
// dropped.
func splitLines(text string) []line {
	raw := strings.Split(text, LF)
	out := make([]line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimSuffix(l, CR)
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, line{num: i + 1, text: l})
	}
	return out
}

type line struct {
	num  int
	text string
}
