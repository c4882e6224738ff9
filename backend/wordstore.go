package backend

//go:generate mockgen -source wordstore.go -destination wordstore_mocks.go -package backend

import (
	"github.com/evmkit/slotstore/common"
)

// WordStore is the persistent backend of contract storage. It maps 256-bit
// slot keys to 32-byte words, with every never-written slot holding the
// all-zero word.
//
// Implementations are not required to be thread-safe; a store is owned by a
// single session at a time.
type WordStore interface {

	// Load returns the word stored at the given slot, or the zero word
	// if the slot has never been written.
	Load(slot common.Slot) (common.Word, error)

	// Store persists the given word at the given slot.
	Store(slot common.Slot, value common.Word) error

	// Flush pushes buffered writes to the underlying medium.
	Flush() error

	// Close flushes and releases the store.
	Close() error
}
