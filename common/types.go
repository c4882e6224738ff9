package common

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// Slot is a 256-bit key into a word-addressed store, in big-endian byte order.
// Root slots are assigned by the layout algorithm, derived slots are obtained
// by hashing a root slot.
type Slot [32]byte

// Word is the fixed 32-byte value stored at a slot.
type Word [32]byte

// Address is a 160-bit account address.
type Address [20]byte

// Hash is a 256-bit digest.
type Hash [32]byte

const (
	SlotSize    = 32
	WordSize    = 32
	AddressSize = 20
	HashSize    = 32
)

// SlotOf returns the slot with the given ordinal number.
func SlotOf(n uint64) (slot Slot) {
	binary.BigEndian.PutUint64(slot[24:], n)
	return
}

// Add returns the slot delta positions after s, wrapping modulo 2^256.
func (s Slot) Add(delta uint64) Slot {
	var x uint256.Int
	x.SetBytes32(s[:])
	x.AddUint64(&x, delta)
	return Slot(x.Bytes32())
}

func (s *Slot) Compare(other *Slot) int {
	return bytes.Compare(s[:], other[:])
}

func (s Slot) String() string {
	return fmt.Sprintf("0x%x", s[:])
}

func (w *Word) Compare(other *Word) int {
	return bytes.Compare(w[:], other[:])
}

// Uint64 decodes the word as a big-endian integer, ignoring bytes
// beyond the uint64 range.
func (w Word) Uint64() uint64 {
	return binary.BigEndian.Uint64(w[24:])
}

// WordOf returns the word encoding the given integer in big-endian order.
func WordOf(n uint64) (word Word) {
	binary.BigEndian.PutUint64(word[24:], n)
	return
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", a[:])
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}
