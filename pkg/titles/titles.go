// Package titles classifies localization packs by their header pair.
//
// Every supported game writes a fixed (line1, line2) pair at the top of its
// menu and subtitle packs. A Table maps those pairs to a record kind. Tables
// are immutable; Extend returns a new table so that titles can be added from
// configuration without touching the codec.
package titles

import (
	"fmt"
	"sort"
	"sync"

	"github.com/joshuapare/locpack/pkg/types"
)

// Entry registers one header pair.
type Entry struct {
	Title string
	Kind  types.FileKind
	Line1 int32
	Line2 int32
}

// Header returns the pair as a types.Header.
func (e Entry) Header() types.Header {
	return types.Header{Line1: e.Line1, Line2: e.Line2}
}

// builtin lists the header pairs of the shipped titles.
var builtin = []Entry{
	{Title: "Avatar: Frontiers of Pandora", Kind: types.KindMenu, Line1: 6, Line2: 30887},
	{Title: "Star Wars Outlaws", Kind: types.KindMenu, Line1: 6, Line2: 17106},
	{Title: "Avatar: Frontiers of Pandora", Kind: types.KindSubtitle, Line1: 7, Line2: 65565},
	{Title: "Star Wars Outlaws", Kind: types.KindSubtitle, Line1: 8, Line2: 98265},
}

// Table is an immutable header-pair lookup. The zero value classifies nothing.
type Table struct {
	byHeader map[types.Header]Entry
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table of built-in titles.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(builtin...)
		if err != nil {
			panic(fmt.Sprintf("titles: invalid builtin table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// New builds a table from entries. Registering one pair for two different
// kinds is an error; registering an identical pair twice is not.
func New(entries ...Entry) (*Table, error) {
	t := &Table{byHeader: make(map[types.Header]Entry, len(entries))}
	if err := t.add(entries); err != nil {
		return nil, err
	}
	return t, nil
}

// Extend returns a new table holding the receiver's entries plus entries.
// The receiver is not modified.
func (t *Table) Extend(entries ...Entry) (*Table, error) {
	out := &Table{byHeader: make(map[types.Header]Entry, t.Len()+len(entries))}
	if t != nil {
		for h, e := range t.byHeader {
			out.byHeader[h] = e
		}
	}
	if err := out.add(entries); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Table) add(entries []Entry) error {
	for _, e := range entries {
		if e.Kind != types.KindMenu && e.Kind != types.KindSubtitle {
			return fmt.Errorf("titles: %q (%d, %d): invalid kind %v", e.Title, e.Line1, e.Line2, e.Kind)
		}
		h := e.Header()
		if prev, ok := t.byHeader[h]; ok && prev.Kind != e.Kind {
			return fmt.Errorf("titles: header (%d, %d) registered as both %v (%s) and %v (%s)",
				h.Line1, h.Line2, prev.Kind, prev.Title, e.Kind, e.Title)
		}
		t.byHeader[h] = e
	}
	return nil
}

// Lookup returns the entry registered for h.
func (t *Table) Lookup(h types.Header) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.byHeader[h]
	return e, ok
}

// Classify returns the record kind for h, or an ErrKindUnrecognizedHeader
// error when h is not registered.
func (t *Table) Classify(h types.Header) (types.FileKind, error) {
	e, ok := t.Lookup(h)
	if !ok {
		return types.KindUnknown, types.Errorf(types.ErrKindUnrecognizedHeader,
			"header (%d, %d) is not a valid menus or subtitles locpack", h.Line1, h.Line2)
	}
	return e.Kind, nil
}

// IsMenus reports whether h is a registered menu header.
func (t *Table) IsMenus(h types.Header) bool {
	e, ok := t.Lookup(h)
	return ok && e.Kind == types.KindMenu
}

// IsSubtitles reports whether h is a registered subtitle header.
func (t *Table) IsSubtitles(h types.Header) bool {
	e, ok := t.Lookup(h)
	return ok && e.Kind == types.KindSubtitle
}

// Len returns the number of registered pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byHeader)
}

// Entries returns all entries ordered by kind, then by header pair.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.byHeader))
	for _, e := range t.byHeader {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Line1 != b.Line1 {
			return a.Line1 < b.Line1
		}
		return a.Line2 < b.Line2
	})
	return out
}
