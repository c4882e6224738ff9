package storage

import (
	"fmt"

	"github.com/evmkit/slotstore/common"
)

// Vec is an accessor for a storage-backed growable array of elements of
// accessor type A wrapping values of type V. The element count lives in the
// word at the root slot; elements live at slots derived by hashing the root,
// packed as densely as their width allows (the Solidity dynamic array
// layout).
type Vec[A any, V any] struct {
	cs   *Cache
	slot common.Slot
	typ  ValueType[A, V]
	base *common.Slot // derived element base, computed on first use
}

// NewVec binds a vector accessor to the given root slot.
func NewVec[A any, V any](cs *Cache, slot common.Slot, typ ValueType[A, V]) *Vec[A, V] {
	if width := typ.SlotBytes(); width <= 0 || width > common.WordSize {
		panic(fmt.Sprintf("storage: invalid element width %d", width))
	}
	return &Vec[A, V]{cs: cs, slot: slot, typ: typ}
}

// Len returns the number of elements stored.
func (v *Vec[A, V]) Len() uint64 {
	return v.cs.GetWord(v.slot).Uint64()
}

// Empty returns true if the vector contains no elements.
func (v *Vec[A, V]) Empty() bool {
	return v.Len() == 0
}

// Getter returns an accessor to the element at the given index, reporting
// false if the index is out of bounds. The accessor must not be used across
// writes to the same element obtained through another accessor.
func (v *Vec[A, V]) Getter(index uint64) (A, bool) {
	if index >= v.Len() {
		var none A
		return none, false
	}
	slot, offset := v.indexPosition(index)
	return v.typ.New(v.cs, slot, offset), true
}

// Setter is Getter under a name making mutation intent explicit at call
// sites; element accessors serve both reads and writes.
func (v *Vec[A, V]) Setter(index uint64) (A, bool) {
	return v.Getter(index)
}

// Get returns the value of the element at the given index, reporting false
// if the index is out of bounds.
func (v *Vec[A, V]) Get(index uint64) (V, bool) {
	accessor, exists := v.Getter(index)
	if !exists {
		var none V
		return none, false
	}
	return v.typ.Load(accessor), true
}

// Set overwrites the element at the given index, reporting false if the
// index is out of bounds.
func (v *Vec[A, V]) Set(index uint64, value V) bool {
	accessor, exists := v.Setter(index)
	if !exists {
		return false
	}
	v.typ.Store(accessor, value)
	return true
}

// Grow appends one element and returns an accessor to it, letting callers
// initialize new elements in place instead of constructing a value first.
// The new element reads as whatever the underlying storage holds, normally
// the zero value.
func (v *Vec[A, V]) Grow() A {
	index := v.Len()
	v.setLen(index + 1)
	slot, offset := v.indexPosition(index)
	return v.typ.New(v.cs, slot, offset)
}

// Push appends the given value.
func (v *Vec[A, V]) Push(value V) {
	v.typ.Store(v.Grow(), value)
}

// Shrink removes the last element and returns an accessor to its former
// position, reporting false if the vector is empty. The element's storage
// is left untouched; use Pop to also reclaim freed words.
func (v *Vec[A, V]) Shrink() (A, bool) {
	length := v.Len()
	if length == 0 {
		var none A
		return none, false
	}
	index := length - 1
	v.setLen(index)
	slot, offset := v.indexPosition(index)
	return v.typ.New(v.cs, slot, offset), true
}

// Pop removes and returns the last element, reporting false if the vector is
// empty. The removed element is erased through its type, reclaiming any
// derived storage it owns, and when it was the only element left in its word
// the freed word run is zeroed so that stale bytes cannot resurface under a
// reinterpreting regrow.
func (v *Vec[A, V]) Pop() (V, bool) {
	accessor, exists := v.Shrink()
	if !exists {
		var none V
		return none, false
	}
	value := v.typ.Load(accessor)
	v.typ.Erase(accessor)

	index := v.Len() // the index just removed
	if index%v.density() == 0 {
		slot, _ := v.indexPosition(index)
		for i := 0; i < v.elementWords(); i++ {
			v.cs.ClearWord(slot.Add(uint64(i)))
		}
	}
	return value, true
}

// Truncate shortens the vector to the given length if it is longer. Only the
// length word is overwritten; the storage of dropped elements is retained.
// Callers needing erasure guarantees must erase elements before truncating.
func (v *Vec[A, V]) Truncate(length uint64) {
	if length < v.Len() {
		v.setLen(length)
	}
}

// Erase erases every element and resets the length to zero.
func (v *Vec[A, V]) Erase() {
	length := v.Len()
	for index := uint64(0); index < length; index++ {
		slot, offset := v.indexPosition(index)
		v.typ.Erase(v.typ.New(v.cs, slot, offset))
	}
	v.cs.ClearWord(v.slot)
}

func (v *Vec[A, V]) setLen(length uint64) {
	v.cs.SetWord(v.slot, common.WordOf(length))
}

// density returns how many elements share one 32-byte word.
func (v *Vec[A, V]) density() uint64 {
	return uint64(common.WordSize / v.typ.SlotBytes())
}

// elementWords returns how many whole words one element spans.
func (v *Vec[A, V]) elementWords() int {
	if words := v.typ.RequiredSlots(); words > 0 {
		return words
	}
	return 1
}

// indexPosition determines the slot and byte offset of the element at the
// given index.
func (v *Vec[A, V]) indexPosition(index uint64) (common.Slot, int) {
	width := v.typ.SlotBytes()
	density := v.density()

	slot := v.elementBase().Add(uint64(v.elementWords()) * index / density)
	offset := common.WordSize - width*int(1+index%density)
	return slot, offset
}

// elementBase determines where in storage the elements start.
func (v *Vec[A, V]) elementBase() common.Slot {
	if v.base == nil {
		base := common.Slot(common.Keccak256ForSlot(v.slot))
		v.base = &base
	}
	return *v.base
}

// VecType is the storage descriptor of vectors whose elements are described
// by Elements, allowing vectors as collection values. The length word is the
// only inline footprint; elements live at derived slots.
type VecType[A any, V any] struct {
	Elements ValueType[A, V]
}

func (VecType[A, V]) SlotBytes() int     { return common.WordSize }
func (VecType[A, V]) RequiredSlots() int { return 0 }
func (t VecType[A, V]) New(cs *Cache, slot common.Slot, offset int) *Vec[A, V] {
	checkWordAligned(offset)
	return NewVec(cs, slot, t.Elements)
}
func (VecType[A, V]) Load(a *Vec[A, V]) []V {
	length := a.Len()
	res := make([]V, 0, length)
	for index := uint64(0); index < length; index++ {
		value, _ := a.Get(index)
		res = append(res, value)
	}
	return res
}
func (VecType[A, V]) Store(a *Vec[A, V], values []V) {
	a.Erase()
	for _, value := range values {
		a.Push(value)
	}
}
func (VecType[A, V]) Erase(a *Vec[A, V]) { a.Erase() }
