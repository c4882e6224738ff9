package storage

// Field describes the storage shape of one struct field for layout purposes.
type Field struct {
	// SlotBytes is the number of bytes of a slot the field occupies.
	// Must not exceed 32. Types spanning multiple whole slots use 32.
	SlotBytes int
	// RequiredSlots is the number of whole slots the field must fill.
	// It is 0 for values packed inline with their neighbors.
	RequiredSlots int
}

// Position is the storage location assigned to a field, as a slot offset
// from the struct's root slot and a byte offset within that slot.
type Position struct {
	Slot   uint64
	Offset int
}

// ComputeLayout assigns each field a position following the Solidity storage
// layout rules: fields pack into 32-byte words in declaration order, filling
// each word from its right edge, and a value never straddles two words.
// Fields with RequiredSlots > 0 always start at a fresh word and consume
// their whole slot run.
//
// The second result is the total number of slots the struct occupies, which
// becomes the struct's own RequiredSlots when nested.
func ComputeLayout(fields []Field) ([]Position, int) {
	positions := make([]Position, len(fields))
	space := 32 // remaining bytes in the current word
	slot := uint64(0)
	for i, field := range fields {
		bytes := field.SlotBytes
		if bytes < 0 || bytes > 32 {
			panic("storage: field exceeds a 32-byte word")
		}
		if field.RequiredSlots > 0 {
			bytes = 32
		}
		if space < bytes {
			space = 32
			slot++
		}
		space -= bytes
		positions[i] = Position{Slot: slot, Offset: space}
		if field.RequiredSlots > 0 {
			slot += uint64(field.RequiredSlots)
			space = 32
		}
	}
	total := int(slot)
	if space != 32 || total == 0 {
		total++
	}
	return positions, total
}
