// Package talktable declares the surface of BioWare's TLK (talk table)
// string-resource format. It is out of scope for this module: the Bink
// decoder is the subsystem that carries the engineering weight here, and
// a TLK file is flat data with no interesting invariants. The types
// below exist so callers wiring a full Aurora engine have somewhere to
// plug a loader in; Load always reports ErrNotImplemented.
package talktable

import "errors"

// ErrNotImplemented is returned by Load. TLK parsing is out of scope.
var ErrNotImplemented = errors.New("talktable: loader not implemented")

// EntryFlags marks which fields of an Entry were present in the source
// file, mirroring the V3/V4 TLK entry layout.
type EntryFlags uint32

const (
	FlagTextPresent EntryFlags = 1 << iota
	FlagSoundPresent
	FlagSoundLengthPresent
)

// Entry is one string resource referenced by a StrRef.
type Entry struct {
	Text  string
	Flags EntryFlags

	SoundResRef string
	SoundLength float32 // seconds
	SoundID     uint32
}

// Table holds the entries of one loaded talk table.
type Table struct {
	Language int
	entries  map[uint32]Entry
}

// GetEntry returns the entry for strRef, or ok=false if strRef is out of
// range or the table was never loaded.
func (t *Table) GetEntry(strRef uint32) (Entry, bool) {
	e, ok := t.entries[strRef]
	return e, ok
}

// Load parses a TLK resource. Not implemented: this module's scope ends
// at the Bink decoder core.
func Load(data []byte) (*Table, error) {
	return nil, ErrNotImplemented
}
