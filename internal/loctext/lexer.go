package loctext

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/locpack/pkg/types"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// decodeInput converts raw LocPack bytes to a UTF-8 string. A byte-order
// mark always wins over enc: a UTF-8 BOM is dropped and UTF-16 input with a
// BOM is transcoded. Without a BOM the data is read as enc (default UTF-8).
//
// UTF-8 input is never run through a decoder so invalid sequences reach the
// binary untouched.
func decodeInput(data []byte, enc string) (string, error) {
	var fallback encoding.Encoding
	plainUTF8 := false
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		fallback = unicode.UTF8
		plainUTF8 = true
	case EncodingUTF16LE:
		fallback = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case EncodingUTF16BE:
		fallback = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return "", types.Errorf(types.ErrKindUnsupported, "input encoding %q", enc)
	}

	if bytes.HasPrefix(data, utf8BOM) {
		return string(data[len(utf8BOM):]), nil
	}
	utf16BOM := bytes.HasPrefix(data, utf16LEBOM) || bytes.HasPrefix(data, utf16BEBOM)
	if plainUTF8 && !utf16BOM {
		return string(data), nil
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(fallback.NewDecoder()), data)
	if err != nil {
		e := types.Errorf(types.ErrKindMalformedLine, "decode %s input", enc)
		e.Err = err
		return "", e
	}
	return string(out), nil
}
