package storage

import (
	"unicode/utf8"

	"github.com/evmkit/slotstore/common"
)

// String is an accessor for a storage-backed string, a thin wrapper over
// Bytes storing the UTF-8 encoding.
type String struct {
	bytes *Bytes
}

// NewString binds a string accessor to the given root slot.
func NewString(cs *Cache, slot common.Slot, offset int) *String {
	return &String{bytes: NewBytes(cs, slot, offset)}
}

// Len returns the number of bytes stored, not the number of characters.
func (s *String) Len() uint64 {
	return s.bytes.Len()
}

// Empty returns true if the string has no bytes.
func (s *String) Empty() bool {
	return s.bytes.Empty()
}

// Push appends a character, one encoded byte at a time.
func (s *String) Push(char rune) {
	for _, b := range utf8.AppendRune(nil, char) {
		s.bytes.Push(b)
	}
}

// GetString returns the stored string.
func (s *String) GetString() string {
	return string(s.bytes.GetBytes())
}

// SetString overwrites the stored string, erasing what was previously
// stored.
func (s *String) SetString(value string) {
	s.bytes.Erase()
	s.bytes.Append([]byte(value))
}

// Erase clears the stored string.
func (s *String) Erase() {
	s.bytes.Erase()
}

// StringType is the storage descriptor of strings, allowing them as
// collection elements.
type StringType struct{}

func (StringType) SlotBytes() int     { return common.WordSize }
func (StringType) RequiredSlots() int { return 0 }
func (StringType) New(cs *Cache, slot common.Slot, offset int) *String {
	return NewString(cs, slot, offset)
}
func (StringType) Load(a *String) string     { return a.GetString() }
func (StringType) Store(a *String, v string) { a.SetString(v) }
func (StringType) Erase(a *String)           { a.Erase() }
