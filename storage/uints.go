package storage

import (
	"unsafe"

	"github.com/evmkit/slotstore/common"
	"github.com/holiman/uint256"
)

// unsignedInt enumerates the fixed-width unsigned integers stored inline.
type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// signedInt enumerates the fixed-width signed integers stored inline.
type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Uint is an accessor for a storage-backed fixed-width unsigned integer. The
// value occupies the bytes [offset, offset+width) of its slot in big-endian
// order, i.e. right-aligned the way Solidity packs numeric fields.
type Uint[T unsignedInt] struct {
	cs     *Cache
	slot   common.Slot
	offset int
	local  *T
}

// Accessor aliases for the supported integer widths.
type (
	Uint8  = Uint[uint8]
	Uint16 = Uint[uint16]
	Uint32 = Uint[uint32]
	Uint64 = Uint[uint64]
	Int8   = Int[int8]
	Int16  = Int[int16]
	Int32  = Int[int32]
	Int64  = Int[int64]
)

// NewUint binds an unsigned integer accessor to the given position.
func NewUint[T unsignedInt](cs *Cache, slot common.Slot, offset int) *Uint[T] {
	return &Uint[T]{cs: cs, slot: slot, offset: offset}
}

// Get returns the current value. The first read is served through the cache,
// later reads reuse the accessor's last observed value.
func (a *Uint[T]) Get() T {
	if a.local == nil {
		value := T(getUintBytes(a.cs.GetBytes(a.slot, a.offset, sizeOf[T]())))
		a.local = &value
	}
	return *a.local
}

// Set overwrites the value.
func (a *Uint[T]) Set(value T) {
	a.local = &value
	buf := make([]byte, sizeOf[T]())
	putUintBytes(buf, uint64(value))
	a.cs.SetBytes(a.slot, a.offset, buf)
}

// Erase zeroes the value.
func (a *Uint[T]) Erase() {
	a.Set(0)
}

// Int is an accessor for a storage-backed fixed-width signed integer, encoded
// as big-endian two's complement within its byte width.
type Int[T signedInt] struct {
	cs     *Cache
	slot   common.Slot
	offset int
	local  *T
}

// NewInt binds a signed integer accessor to the given position.
func NewInt[T signedInt](cs *Cache, slot common.Slot, offset int) *Int[T] {
	return &Int[T]{cs: cs, slot: slot, offset: offset}
}

func (a *Int[T]) Get() T {
	if a.local == nil {
		width := sizeOf[T]()
		raw := getUintBytes(a.cs.GetBytes(a.slot, a.offset, width))
		shift := 64 - 8*width
		value := T(int64(raw<<shift) >> shift)
		a.local = &value
	}
	return *a.local
}

func (a *Int[T]) Set(value T) {
	a.local = &value
	buf := make([]byte, sizeOf[T]())
	putUintBytes(buf, uint64(int64(value)))
	a.cs.SetBytes(a.slot, a.offset, buf)
}

func (a *Int[T]) Erase() {
	a.Set(0)
}

// Uint256 is an accessor for a storage-backed 256-bit unsigned integer,
// occupying a full word.
type Uint256 struct {
	cs    *Cache
	slot  common.Slot
	local *uint256.Int
}

// NewUint256 binds a 256-bit integer accessor to the given slot. The offset
// must be 0, full-word values are never packed with neighbors.
func NewUint256(cs *Cache, slot common.Slot, offset int) *Uint256 {
	checkWordAligned(offset)
	return &Uint256{cs: cs, slot: slot}
}

// Get returns a copy of the current value.
func (a *Uint256) Get() *uint256.Int {
	if a.local == nil {
		word := a.cs.GetWord(a.slot)
		a.local = new(uint256.Int).SetBytes32(word[:])
	}
	return new(uint256.Int).Set(a.local)
}

func (a *Uint256) Set(value *uint256.Int) {
	a.local = new(uint256.Int).Set(value)
	a.cs.SetWord(a.slot, common.Word(value.Bytes32()))
}

func (a *Uint256) Erase() {
	a.Set(uint256.NewInt(0))
}

// Int256 is an accessor for a storage-backed 256-bit signed integer. It
// shares the raw two's complement word encoding with Uint256; signed
// interpretation is up to the caller's arithmetic.
type Int256 struct {
	Uint256
}

// NewInt256 binds a 256-bit signed integer accessor to the given slot.
func NewInt256(cs *Cache, slot common.Slot, offset int) *Int256 {
	checkWordAligned(offset)
	return &Int256{Uint256{cs: cs, slot: slot}}
}

// UintType is the storage descriptor of fixed-width unsigned integers.
type UintType[T unsignedInt] struct{}

// Descriptor aliases for the supported integer widths.
type (
	Uint8Type  = UintType[uint8]
	Uint16Type = UintType[uint16]
	Uint32Type = UintType[uint32]
	Uint64Type = UintType[uint64]
	Int8Type   = IntType[int8]
	Int16Type  = IntType[int16]
	Int32Type  = IntType[int32]
	Int64Type  = IntType[int64]
)

func (UintType[T]) SlotBytes() int     { return sizeOf[T]() }
func (UintType[T]) RequiredSlots() int { return 0 }
func (UintType[T]) New(cs *Cache, slot common.Slot, offset int) *Uint[T] {
	return NewUint[T](cs, slot, offset)
}
func (UintType[T]) Load(a *Uint[T]) T     { return a.Get() }
func (UintType[T]) Store(a *Uint[T], v T) { a.Set(v) }
func (UintType[T]) Erase(a *Uint[T])      { a.Erase() }

// IntType is the storage descriptor of fixed-width signed integers.
type IntType[T signedInt] struct{}

func (IntType[T]) SlotBytes() int     { return sizeOf[T]() }
func (IntType[T]) RequiredSlots() int { return 0 }
func (IntType[T]) New(cs *Cache, slot common.Slot, offset int) *Int[T] {
	return NewInt[T](cs, slot, offset)
}
func (IntType[T]) Load(a *Int[T]) T     { return a.Get() }
func (IntType[T]) Store(a *Int[T], v T) { a.Set(v) }
func (IntType[T]) Erase(a *Int[T])      { a.Erase() }

// Uint256Type is the storage descriptor of 256-bit unsigned integers.
type Uint256Type struct{}

func (Uint256Type) SlotBytes() int     { return 32 }
func (Uint256Type) RequiredSlots() int { return 0 }
func (Uint256Type) New(cs *Cache, slot common.Slot, offset int) *Uint256 {
	return NewUint256(cs, slot, offset)
}
func (Uint256Type) Load(a *Uint256) *uint256.Int     { return a.Get() }
func (Uint256Type) Store(a *Uint256, v *uint256.Int) { a.Set(v) }
func (Uint256Type) Erase(a *Uint256)                 { a.Erase() }

func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func getUintBytes(buf []byte) (value uint64) {
	for _, b := range buf {
		value = value<<8 | uint64(b)
	}
	return
}

func putUintBytes(buf []byte, value uint64) {
	for i := len(buf) - 1; i >= 0; i-- {
		buf[i] = byte(value)
		value >>= 8
	}
}

func checkWordAligned(offset int) {
	if offset != 0 {
		panic("storage: accessor occupies a full word, offset must be 0")
	}
}
