package storage

import (
	"fmt"

	"github.com/evmkit/slotstore/common"
)

// Bool is an accessor for a storage-backed boolean, occupying one byte.
// Any nonzero byte reads as true.
type Bool struct {
	cs     *Cache
	slot   common.Slot
	offset int
	local  *bool
}

// NewBool binds a boolean accessor to the given position.
func NewBool(cs *Cache, slot common.Slot, offset int) *Bool {
	return &Bool{cs: cs, slot: slot, offset: offset}
}

func (a *Bool) Get() bool {
	if a.local == nil {
		value := a.cs.GetByte(a.slot, a.offset) != 0
		a.local = &value
	}
	return *a.local
}

func (a *Bool) Set(value bool) {
	a.local = &value
	var b byte
	if value {
		b = 1
	}
	a.cs.SetByte(a.slot, a.offset, b)
}

func (a *Bool) Erase() {
	a.Set(false)
}

// Address is an accessor for a storage-backed 160-bit address, occupying
// 20 bytes.
type Address struct {
	cs     *Cache
	slot   common.Slot
	offset int
	local  *common.Address
}

// NewAddress binds an address accessor to the given position.
func NewAddress(cs *Cache, slot common.Slot, offset int) *Address {
	return &Address{cs: cs, slot: slot, offset: offset}
}

func (a *Address) Get() common.Address {
	if a.local == nil {
		var value common.Address
		copy(value[:], a.cs.GetBytes(a.slot, a.offset, common.AddressSize))
		a.local = &value
	}
	return *a.local
}

func (a *Address) Set(value common.Address) {
	a.local = &value
	a.cs.SetBytes(a.slot, a.offset, value[:])
}

func (a *Address) Erase() {
	a.Set(common.Address{})
}

// FixedBytes is an accessor for a storage-backed fixed-size byte array of up
// to 32 bytes. Unlike integers, the raw bytes fill their byte range from the
// left, matching how Solidity distinguishes numeric from byte-string packing.
type FixedBytes struct {
	cs     *Cache
	slot   common.Slot
	offset int
	size   int
	local  []byte
}

// NewFixedBytes binds a byte-array accessor of the given size to the given
// position.
func NewFixedBytes(cs *Cache, slot common.Slot, offset, size int) *FixedBytes {
	if size < 0 || size > common.WordSize {
		panic(fmt.Sprintf("storage: fixed byte array of %d bytes exceeds a word", size))
	}
	return &FixedBytes{cs: cs, slot: slot, offset: offset, size: size}
}

// Size returns the length of the byte array.
func (a *FixedBytes) Size() int {
	return a.size
}

// Get returns a copy of the current value.
func (a *FixedBytes) Get() []byte {
	if a.local == nil {
		a.local = a.cs.GetBytes(a.slot, a.offset, a.size)
	}
	res := make([]byte, a.size)
	copy(res, a.local)
	return res
}

// Set overwrites the value. The input must have the accessor's exact size.
func (a *FixedBytes) Set(value []byte) {
	if len(value) != a.size {
		panic(fmt.Sprintf("storage: invalid value length %d for %d-byte array", len(value), a.size))
	}
	a.local = make([]byte, a.size)
	copy(a.local, value)
	a.cs.SetBytes(a.slot, a.offset, value)
}

func (a *FixedBytes) Erase() {
	a.Set(make([]byte, a.size))
}

// BlockNumber is an accessor for a storage-backed 64-bit block number.
type BlockNumber = Uint[uint64]

// NewBlockNumber binds a block number accessor to the given position.
func NewBlockNumber(cs *Cache, slot common.Slot, offset int) *BlockNumber {
	return NewUint[uint64](cs, slot, offset)
}

// BlockHash is an accessor for a storage-backed 256-bit block hash,
// occupying a full word.
type BlockHash struct {
	cs    *Cache
	slot  common.Slot
	local *common.Hash
}

// NewBlockHash binds a block hash accessor to the given slot. The offset
// must be 0, full-word values are never packed with neighbors.
func NewBlockHash(cs *Cache, slot common.Slot, offset int) *BlockHash {
	checkWordAligned(offset)
	return &BlockHash{cs: cs, slot: slot}
}

func (a *BlockHash) Get() common.Hash {
	if a.local == nil {
		value := common.Hash(a.cs.GetWord(a.slot))
		a.local = &value
	}
	return *a.local
}

func (a *BlockHash) Set(value common.Hash) {
	a.local = &value
	a.cs.SetWord(a.slot, common.Word(value))
}

func (a *BlockHash) Erase() {
	a.Set(common.Hash{})
}

// BoolType is the storage descriptor of booleans.
type BoolType struct{}

func (BoolType) SlotBytes() int     { return 1 }
func (BoolType) RequiredSlots() int { return 0 }
func (BoolType) New(cs *Cache, slot common.Slot, offset int) *Bool {
	return NewBool(cs, slot, offset)
}
func (BoolType) Load(a *Bool) bool     { return a.Get() }
func (BoolType) Store(a *Bool, v bool) { a.Set(v) }
func (BoolType) Erase(a *Bool)         { a.Erase() }

// AddressType is the storage descriptor of addresses.
type AddressType struct{}

func (AddressType) SlotBytes() int     { return common.AddressSize }
func (AddressType) RequiredSlots() int { return 0 }
func (AddressType) New(cs *Cache, slot common.Slot, offset int) *Address {
	return NewAddress(cs, slot, offset)
}
func (AddressType) Load(a *Address) common.Address     { return a.Get() }
func (AddressType) Store(a *Address, v common.Address) { a.Set(v) }
func (AddressType) Erase(a *Address)                   { a.Erase() }

// FixedBytesType is the storage descriptor of fixed-size byte arrays of
// Size bytes.
type FixedBytesType struct {
	Size int
}

func (t FixedBytesType) SlotBytes() int   { return t.Size }
func (FixedBytesType) RequiredSlots() int { return 0 }
func (t FixedBytesType) New(cs *Cache, slot common.Slot, offset int) *FixedBytes {
	return NewFixedBytes(cs, slot, offset, t.Size)
}
func (FixedBytesType) Load(a *FixedBytes) []byte     { return a.Get() }
func (FixedBytesType) Store(a *FixedBytes, v []byte) { a.Set(v) }
func (FixedBytesType) Erase(a *FixedBytes)           { a.Erase() }

// BlockNumberType is the storage descriptor of block numbers.
type BlockNumberType = UintType[uint64]

// BlockHashType is the storage descriptor of block hashes.
type BlockHashType struct{}

func (BlockHashType) SlotBytes() int     { return common.WordSize }
func (BlockHashType) RequiredSlots() int { return 0 }
func (BlockHashType) New(cs *Cache, slot common.Slot, offset int) *BlockHash {
	return NewBlockHash(cs, slot, offset)
}
func (BlockHashType) Load(a *BlockHash) common.Hash     { return a.Get() }
func (BlockHashType) Store(a *BlockHash, v common.Hash) { a.Set(v) }
func (BlockHashType) Erase(a *BlockHash)                { a.Erase() }
