package storage

import (
	"encoding/binary"

	"github.com/evmkit/slotstore/common"
)

// KeyType canonicalizes keys of type K for slot derivation. The slot of a
// mapping entry is Keccak256(Encode(key) ++ root), so the encoding must be
// injective per key type; collisions are only as likely as hash collisions
// and are not handled.
type KeyType[K any] interface {
	Encode(key K) []byte
}

// Map is an accessor for a storage-backed mapping from keys of type K to
// elements of accessor type A wrapping values of type V. The root slot is
// used only as hashing input; there is no length tracking and no iteration,
// matching the Solidity mapping layout. Absent keys read as the zero value.
type Map[K any, A any, V any] struct {
	cs   *Cache
	slot common.Slot
	keys KeyType[K]
	vals ValueType[A, V]
}

// NewMap binds a mapping accessor to the given root slot.
func NewMap[K any, A any, V any](cs *Cache, slot common.Slot, keys KeyType[K], vals ValueType[A, V]) *Map[K, A, V] {
	return &Map[K, A, V]{cs: cs, slot: slot, keys: keys, vals: vals}
}

// SlotFor derives the slot holding the value of the given key.
func (m *Map[K, A, V]) SlotFor(key K) common.Slot {
	encoded := m.keys.Encode(key)
	data := make([]byte, 0, len(encoded)+common.SlotSize)
	data = append(data, encoded...)
	data = append(data, m.slot[:]...)
	return common.Slot(common.Keccak256(data))
}

// Getter returns an accessor to the value of the given key. Every key has a
// value; absent keys are indistinguishable from stored zero values.
func (m *Map[K, A, V]) Getter(key K) A {
	return m.vals.New(m.cs, m.SlotFor(key), 0)
}

// Setter is Getter under a name making mutation intent explicit at call
// sites; value accessors serve both reads and writes.
func (m *Map[K, A, V]) Setter(key K) A {
	return m.Getter(key)
}

// Get returns the value of the given key, the zero value if never set.
func (m *Map[K, A, V]) Get(key K) V {
	return m.vals.Load(m.Getter(key))
}

// Insert associates the given value with the given key.
func (m *Map[K, A, V]) Insert(key K, value V) {
	m.vals.Store(m.Setter(key), value)
}

// Replace associates the given value with the given key and returns the
// previous value.
func (m *Map[K, A, V]) Replace(key K, value V) V {
	accessor := m.Setter(key)
	previous := m.vals.Load(accessor)
	m.vals.Store(accessor, value)
	return previous
}

// Take removes the value of the given key and returns it.
func (m *Map[K, A, V]) Take(key K) V {
	accessor := m.Setter(key)
	value := m.vals.Load(accessor)
	m.vals.Erase(accessor)
	return value
}

// Delete erases the value of the given key in place.
func (m *Map[K, A, V]) Delete(key K) {
	m.vals.Erase(m.Setter(key))
}

// Uint64Key encodes unsigned integer keys right-aligned big-endian into
// 32 bytes.
type Uint64Key struct{}

func (Uint64Key) Encode(key uint64) []byte {
	buf := make([]byte, common.SlotSize)
	binary.BigEndian.PutUint64(buf[24:], key)
	return buf
}

// Int64Key encodes signed integer keys as two's complement, sign-extended
// into 32 bytes.
type Int64Key struct{}

func (Int64Key) Encode(key int64) []byte {
	buf := make([]byte, common.SlotSize)
	if key < 0 {
		for i := 0; i < 24; i++ {
			buf[i] = 0xff
		}
	}
	binary.BigEndian.PutUint64(buf[24:], uint64(key))
	return buf
}

// AddressKey encodes address keys right-aligned into 32 bytes.
type AddressKey struct{}

func (AddressKey) Encode(key common.Address) []byte {
	buf := make([]byte, common.SlotSize)
	copy(buf[common.SlotSize-common.AddressSize:], key[:])
	return buf
}

// HashKey encodes 32-byte hash keys as their raw bytes.
type HashKey struct{}

func (HashKey) Encode(key common.Hash) []byte {
	return key[:]
}

// BoolKey encodes boolean keys as 1 or 0, right-aligned into 32 bytes.
type BoolKey struct{}

func (BoolKey) Encode(key bool) []byte {
	buf := make([]byte, common.SlotSize)
	if key {
		buf[common.SlotSize-1] = 1
	}
	return buf
}

// BytesKey encodes byte-string keys as the Keccak-256 digest of their raw
// bytes, giving arbitrary-length keys a fixed-width encoding ahead of the
// final slot hash.
type BytesKey struct{}

func (BytesKey) Encode(key []byte) []byte {
	hash := common.Keccak256(key)
	return hash[:]
}

// StringKey encodes string keys as the Keccak-256 digest of their raw bytes.
type StringKey struct{}

func (StringKey) Encode(key string) []byte {
	hash := common.Keccak256([]byte(key))
	return hash[:]
}
