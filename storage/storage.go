// Package storage provides typed access to a word-addressed persistent
// key/value store using the Solidity storage layout. Values are packed into
// 32-byte words exactly as Solidity packs contract state, so that external
// tooling reading the same store interprets every value identically.
//
// All reads and writes go through a Cache session, which batches word
// operations against the backing store until flushed. Accessors are light
// (slot, offset) views created on demand; dynamic collections derive the
// slots of their elements by hashing their root slot.
package storage

import (
	"github.com/evmkit/slotstore/common"
)

// StorageType describes how accessors of type A occupy storage. It plays the
// role of Solidity's type information: the byte footprint of a value within
// a slot, the number of whole slots it claims, and the construction of an
// accessor bound to a concrete position.
//
// Implementations are small stateless descriptor structs, one per accessor
// type, passed to collections the same way serializers are passed to stores.
type StorageType[A any] interface {

	// SlotBytes returns the number of bytes of a slot needed to represent
	// the type. Must not exceed 32.
	SlotBytes() int

	// RequiredSlots returns the number of whole slots the type must fill.
	// It is 0 for values packed inline with other fields.
	RequiredSlots() int

	// New binds an accessor to the given position of the given session.
	// Creating two accessors for overlapping positions aliases storage;
	// see the aliasing note on Cache.
	New(cs *Cache, slot common.Slot, offset int) A
}

// ValueType is a StorageType whose accessors wrap a plain value that can be
// read and written in full. All primitive accessors have value types; this
// is what allows collections to offer value-level operations like Push,
// Pop and Insert next to the accessor-level ones.
//
// Erasing must write the zero value and nothing more; the representation of
// a value type is entirely inline.
type ValueType[A any, V any] interface {
	StorageType[A]

	// Load reads the wrapped value through the accessor.
	Load(a A) V

	// Store writes the wrapped value through the accessor.
	Store(a A, v V)

	// Erase zeroes the storage representation of the wrapped value.
	Erase(a A)
}
