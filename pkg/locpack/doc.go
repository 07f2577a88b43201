/*
Package locpack converts game localization packs between the editable
LocPack text form (.locpack) and the packed LocPackBin form (.locpackbin).

# Quick Start

Convert a file next to its input, picking the direction from the extension:

	res, err := locpack.ConvertFile("menus.locpack", nil)
	// res.Output == "menus.locpackbin"

# In-memory conversion

	bin, err := locpack.ToBin(text, nil)
	text, err := locpack.FromBin(bin, &locpack.Options{Newline: "\r\n"})

Encode and Decode stop at the record model so callers can inspect or edit
records before serializing:

	f, err := locpack.Decode(bin, nil)
	for _, rec := range f.Subtitles {
	    fmt.Println(rec.ID, string(rec.Text))
	}

# Classification

Both directions read the two-integer header first and classify it against
a titles.Table. A header no table entry knows fails with
types.ErrUnrecognizedHeader before any record is touched, and ConvertFile
writes nothing. Extra titles can be registered through Options.Titles or a
config file.

# Batch conversion

ConvertFiles converts many files with a bounded worker pool. One failing
file does not stop the others; results come back in input order.

# Guarantees

  - FromBin(ToBin(x)) reproduces x for canonical text (header commas,
    escaping and newline as Emit writes them)
  - ToBin(FromBin(b)) reproduces b byte for byte
  - Outputs are written atomically; a failed conversion leaves no file
*/
package locpack
