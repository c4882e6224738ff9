package backend

import (
	"github.com/evmkit/slotstore/common"
)

// Memory is an in-memory WordStore implementation mapping slots to words.
// Slots that were never written read as the zero word.
type Memory struct {
	data map[common.Slot]common.Word
}

// NewMemory constructs a new empty in-memory word store.
func NewMemory() *Memory {
	return &Memory{
		data: map[common.Slot]common.Word{},
	}
}

func (m *Memory) Load(slot common.Slot) (common.Word, error) {
	return m.data[slot], nil
}

func (m *Memory) Store(slot common.Slot, value common.Word) error {
	m.data[slot] = value
	return nil
}

// Size returns the number of slots holding an explicitly written word.
func (m *Memory) Size() int {
	return len(m.data)
}

func (m *Memory) Flush() error {
	return nil // no-op for in-memory store
}

func (m *Memory) Close() error {
	return nil
}
