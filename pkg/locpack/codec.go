package locpack

import (
	"github.com/joshuapare/locpack/internal/format"
	"github.com/joshuapare/locpack/internal/loctext"
	"github.com/joshuapare/locpack/pkg/types"
)

// Encode parses LocPack text into records.
func Encode(text []byte, opts *Options) (*types.File, error) {
	return loctext.Parse(text, opts.table(), opts.parseOptions())
}

// Decode parses a LocPackBin buffer into records. Record text is copied, so
// the result does not alias bin.
func Decode(bin []byte, opts *Options) (*types.File, error) {
	return format.DecodeFile(bin, opts.table())
}

// Marshal serializes records as LocPackBin.
func Marshal(f *types.File) ([]byte, error) {
	return format.EncodeFile(f)
}

// Render serializes records as LocPack text.
func Render(f *types.File, opts *Options) ([]byte, error) {
	return loctext.Emit(f, opts.emitOptions())
}

// ToBin converts LocPack text to LocPackBin.
func ToBin(text []byte, opts *Options) ([]byte, error) {
	f, err := Encode(text, opts)
	if err != nil {
		return nil, err
	}
	return Marshal(f)
}

// FromBin converts LocPackBin to LocPack text.
func FromBin(bin []byte, opts *Options) ([]byte, error) {
	f, err := Decode(bin, opts)
	if err != nil {
		return nil, err
	}
	return Render(f, opts)
}
