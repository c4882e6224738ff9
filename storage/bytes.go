package storage

import (
	"github.com/evmkit/slotstore/common"
)

// Bytes is an accessor for a storage-backed dynamic byte string. Two
// representations are multiplexed on the root word, following the Solidity
// layout: strings of up to 31 bytes live inline in the root word with the
// doubled length in the last byte, longer strings store the doubled length
// plus one in the root word and spill their payload to slots derived by
// hashing the root, 32 bytes per slot.
type Bytes struct {
	cs   *Cache
	slot common.Slot
	base *common.Slot // derived payload base, computed on first use
}

// NewBytes binds a byte-string accessor to the given root slot.
func NewBytes(cs *Cache, slot common.Slot, offset int) *Bytes {
	checkWordAligned(offset)
	return &Bytes{cs: cs, slot: slot}
}

// Len returns the number of bytes stored.
func (b *Bytes) Len() uint64 {
	root := b.root()
	return root.len()
}

// Empty returns true if no bytes are stored.
func (b *Bytes) Empty() bool {
	return b.Len() == 0
}

// Get returns the byte at the given index, reporting false if the index is
// out of bounds.
func (b *Bytes) Get(index uint64) (byte, bool) {
	root := b.root()
	return root.get(index)
}

// Setter returns a byte accessor to the given index, reporting false if the
// index is out of bounds.
func (b *Bytes) Setter(index uint64) (*Uint8, bool) {
	root := b.root()
	if index >= root.len() {
		return nil, false
	}
	slot, offset := root.indexPosition(index)
	return NewUint[uint8](b.cs, slot, offset), true
}

// Push appends a byte to the end. Appending the 32nd byte transitions the
// representation from inline to spilled: the filled payload word moves
// verbatim to the first derived slot, its former length byte becoming the
// last payload byte, and the root word is re-encoded.
func (b *Bytes) Push(value byte) {
	root := b.root()
	index := root.len()

	// still inline after appending
	if index < 31 {
		root.word[index] = value
		root.writeLen(index + 1)
		return
	}

	// transition to the spilled representation
	if index == 31 {
		root.word[index] = value
		b.cs.SetWord(b.payloadBase(), root.word)
		root.writeLen(index + 1)
		return
	}

	// already spilled
	slot, offset := root.indexPosition(index)
	b.cs.SetByte(slot, offset, value)
	root.writeLen(index + 1)
}

// Pop removes and returns the last byte, reporting false if no bytes are
// stored. Spilled slots are cleared as soon as their last byte is removed,
// and shrinking to 31 bytes demotes the value back to the inline
// representation, keeping the encoding canonical for every length.
func (b *Bytes) Pop() (byte, bool) {
	root := b.root()
	length := root.len()
	if length == 0 {
		return 0, false
	}
	index := length - 1

	// demote to the inline representation
	if length == 32 {
		base := b.payloadBase()
		root.word = b.cs.GetWord(base)
		value := root.word[index]
		root.writeLen(index)
		b.cs.ClearWord(base)
		return value, true
	}

	value, _ := root.get(index)

	// clear the spilled word that just ran empty
	if length > 32 && index%common.WordSize == 0 {
		slot, _ := root.indexPosition(index)
		b.cs.ClearWord(slot)
	}

	// zero the freed byte of the inline word
	if length < 32 {
		root.word[index] = 0
	}

	root.writeLen(index)
	return value, true
}

// GetBytes returns a copy of the full contents.
func (b *Bytes) GetBytes() []byte {
	root := b.root()
	length := root.len()
	res := make([]byte, 0, length)
	if length < 32 {
		return append(res, root.word[:length]...)
	}
	base := b.payloadBase()
	for index := uint64(0); index < length; index += common.WordSize {
		word := b.cs.GetWord(base.Add(index / common.WordSize))
		remaining := length - index
		if remaining > common.WordSize {
			remaining = common.WordSize
		}
		res = append(res, word[:remaining]...)
	}
	return res
}

// SetBytes overwrites the contents, erasing what was previously stored.
func (b *Bytes) SetBytes(data []byte) {
	b.Erase()
	b.Append(data)
}

// Append appends the given bytes, writing whole words at a time where
// possible instead of pushing byte by byte.
func (b *Bytes) Append(data []byte) {
	if len(data) == 0 {
		return
	}
	root := b.root()
	length := root.len()

	if length < 32 {
		// fill up the inline word first
		for length < 32 && len(data) > 0 {
			root.word[length] = data[0]
			data = data[1:]
			length++
		}
		if length < 32 {
			root.writeLen(length)
			return
		}
		// the inline word filled up, spill it and continue beyond it
		b.cs.SetWord(b.payloadBase(), root.word)
		if len(data) == 0 {
			root.writeLen(length)
			return
		}
	} else if length%common.WordSize != 0 {
		// fill the partial trailing slot to get word-aligned
		slot, _ := root.indexPosition(length - 1)
		word := b.cs.GetWord(slot)
		for length%common.WordSize != 0 && len(data) > 0 {
			word[length%common.WordSize] = data[0]
			data = data[1:]
			length++
		}
		b.cs.SetWord(slot, word)
		if length%common.WordSize != 0 {
			root.writeLen(length)
			return
		}
	}

	// write the remainder a word at a time
	slot := b.payloadBase().Add(length / common.WordSize)
	for len(data) >= common.WordSize {
		var word common.Word
		copy(word[:], data[:common.WordSize])
		b.cs.SetWord(slot, word)
		data = data[common.WordSize:]
		length += common.WordSize
		slot = slot.Add(1)
	}
	if len(data) > 0 {
		var word common.Word
		copy(word[:], data)
		b.cs.SetWord(slot, word)
		length += uint64(len(data))
	}
	root.writeLen(length)
}

// Erase clears all spilled slots and the root word.
func (b *Bytes) Erase() {
	root := b.root()
	length := root.len()
	if length > 31 {
		base := b.payloadBase()
		for cleared := uint64(0); cleared < length; cleared += common.WordSize {
			b.cs.ClearWord(base.Add(cleared / common.WordSize))
		}
	}
	b.cs.ClearWord(b.slot)
}

// payloadBase determines where in storage the spilled payload starts.
func (b *Bytes) payloadBase() common.Slot {
	if b.base == nil {
		base := common.Slot(common.Keccak256ForSlot(b.slot))
		b.base = &base
	}
	return *b.base
}

func (b *Bytes) root() bytesRoot {
	return bytesRoot{b: b, word: b.cs.GetWord(b.slot)}
}

// bytesRoot manipulates the root word multiplexing the two representations.
type bytesRoot struct {
	b    *Bytes
	word common.Word
}

// len decodes the length from the root word. An even last byte signals the
// inline form holding half the byte, an odd one the spilled form holding
// half the full word value.
func (r *bytesRoot) len() uint64 {
	if r.word[31]&1 == 0 {
		return uint64(r.word[31] / 2)
	}
	return r.word.Uint64() / 2
}

// writeLen re-encodes the given length into the root word and writes it
// back, preserving inline payload bytes.
func (r *bytesRoot) writeLen(length uint64) {
	if length < 32 {
		r.word[31] = byte(length * 2)
	} else {
		r.word = common.WordOf(length*2 + 1)
	}
	r.b.cs.SetWord(r.b.slot, r.word)
}

// indexPosition determines the slot and byte offset of the byte at the given
// index under the current representation.
func (r *bytesRoot) indexPosition(index uint64) (common.Slot, int) {
	if r.len() >= 32 {
		return r.b.payloadBase().Add(index / common.WordSize), int(index % common.WordSize)
	}
	return r.b.slot, int(index % common.WordSize)
}

func (r *bytesRoot) get(index uint64) (byte, bool) {
	if index >= r.len() {
		return 0, false
	}
	slot, offset := r.indexPosition(index)
	return r.b.cs.GetByte(slot, offset), true
}

// BytesType is the storage descriptor of dynamic byte strings, allowing
// them as collection elements. The root word is the only inline footprint;
// the payload lives at derived slots.
type BytesType struct{}

func (BytesType) SlotBytes() int     { return common.WordSize }
func (BytesType) RequiredSlots() int { return 0 }
func (BytesType) New(cs *Cache, slot common.Slot, offset int) *Bytes {
	return NewBytes(cs, slot, offset)
}
func (BytesType) Load(a *Bytes) []byte     { return a.GetBytes() }
func (BytesType) Store(a *Bytes, v []byte) { a.SetBytes(v) }
func (BytesType) Erase(a *Bytes)           { a.Erase() }
