package storage

import (
	"fmt"

	"github.com/evmkit/slotstore/common"
)

// Array is an accessor for a storage-backed array of a fixed number of
// elements of accessor type A wrapping values of type V. Unlike Vec there is
// no length word and no slot derivation: elements live directly in the word
// run starting at the root slot, packed as densely as their width allows.
type Array[A any, V any] struct {
	cs   *Cache
	slot common.Slot
	typ  ValueType[A, V]
	size uint64
}

// NewArray binds an array accessor of the given element count to the given
// root slot.
func NewArray[A any, V any](cs *Cache, slot common.Slot, offset int, typ ValueType[A, V], size uint64) *Array[A, V] {
	checkWordAligned(offset)
	if width := typ.SlotBytes(); width <= 0 || width > common.WordSize {
		panic(fmt.Sprintf("storage: invalid element width %d", width))
	}
	if size == 0 {
		panic("storage: array needs at least one element")
	}
	return &Array[A, V]{cs: cs, slot: slot, typ: typ, size: size}
}

// Len returns the number of elements, fixed at construction.
func (a *Array[A, V]) Len() uint64 {
	return a.size
}

// Getter returns an accessor to the element at the given index, reporting
// false if the index is out of bounds.
func (a *Array[A, V]) Getter(index uint64) (A, bool) {
	if index >= a.size {
		var none A
		return none, false
	}
	slot, offset := a.indexPosition(index)
	return a.typ.New(a.cs, slot, offset), true
}

// Setter is Getter under a name making mutation intent explicit at call
// sites; element accessors serve both reads and writes.
func (a *Array[A, V]) Setter(index uint64) (A, bool) {
	return a.Getter(index)
}

// Get returns the value of the element at the given index, reporting false
// if the index is out of bounds.
func (a *Array[A, V]) Get(index uint64) (V, bool) {
	accessor, exists := a.Getter(index)
	if !exists {
		var none V
		return none, false
	}
	return a.typ.Load(accessor), true
}

// Set overwrites the element at the given index, reporting false if the
// index is out of bounds.
func (a *Array[A, V]) Set(index uint64, value V) bool {
	accessor, exists := a.Setter(index)
	if !exists {
		return false
	}
	a.typ.Store(accessor, value)
	return true
}

// Erase erases every element.
func (a *Array[A, V]) Erase() {
	for index := uint64(0); index < a.size; index++ {
		slot, offset := a.indexPosition(index)
		a.typ.Erase(a.typ.New(a.cs, slot, offset))
	}
}

// density returns how many elements share one 32-byte word.
func (a *Array[A, V]) density() uint64 {
	return uint64(common.WordSize / a.typ.SlotBytes())
}

// elementWords returns how many whole words one element spans.
func (a *Array[A, V]) elementWords() int {
	if words := a.typ.RequiredSlots(); words > 0 {
		return words
	}
	return 1
}

// indexPosition determines the slot and byte offset of the element at the
// given index.
func (a *Array[A, V]) indexPosition(index uint64) (common.Slot, int) {
	width := a.typ.SlotBytes()
	density := a.density()

	slot := a.slot.Add(uint64(a.elementWords()) * index / density)
	offset := common.WordSize - width*int(1+index%density)
	return slot, offset
}

// ArrayType is the storage descriptor of arrays of Size elements described
// by Elements. Arrays claim their whole word run, so they always start at a
// fresh slot and are never packed with neighboring fields.
type ArrayType[A any, V any] struct {
	Elements ValueType[A, V]
	Size     uint64
}

func (ArrayType[A, V]) SlotBytes() int { return common.WordSize }
func (t ArrayType[A, V]) RequiredSlots() int {
	if words := t.Elements.RequiredSlots(); words > 0 {
		return words * int(t.Size)
	}
	density := uint64(common.WordSize / t.Elements.SlotBytes())
	return int((t.Size + density - 1) / density)
}
func (t ArrayType[A, V]) New(cs *Cache, slot common.Slot, offset int) *Array[A, V] {
	return NewArray(cs, slot, offset, t.Elements, t.Size)
}
func (t ArrayType[A, V]) Load(a *Array[A, V]) []V {
	res := make([]V, 0, a.size)
	for index := uint64(0); index < a.size; index++ {
		value, _ := a.Get(index)
		res = append(res, value)
	}
	return res
}
func (t ArrayType[A, V]) Store(a *Array[A, V], values []V) {
	if uint64(len(values)) != a.size {
		panic(fmt.Sprintf("storage: invalid value count %d for %d-element array", len(values), a.size))
	}
	for index, value := range values {
		a.Set(uint64(index), value)
	}
}
func (ArrayType[A, V]) Erase(a *Array[A, V]) { a.Erase() }
