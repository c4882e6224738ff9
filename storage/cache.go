package storage

import (
	"fmt"

	"github.com/evmkit/slotstore/backend"
	"github.com/evmkit/slotstore/common"
	"golang.org/x/exp/slices"
)

// Cache is a write-back cache over a backend.WordStore, scoped to a single
// contract invocation. It batches slot writes so that repeated accesses to
// the same word cost at most one load and one store against the backend.
//
// A cache is a session object: every accessor created during an invocation
// is bound to the same instance, and the owner of the session decides when
// modified words are persisted by calling Flush or Clear. Sessions are
// single-threaded; instances must not be shared between goroutines.
type Cache struct {
	store backend.WordStore
	words map[common.Slot]*cachedWord
}

// cachedWord is the cached state of one storage slot.
type cachedWord struct {
	// The current value of the slot as visible to accessors.
	value common.Word
	// The value known to be persisted in the word store, if known.
	known common.Word
	// Whether the persisted value is known.
	knownSet bool
}

// dirty determines whether the slot needs to be written back.
func (w *cachedWord) dirty() bool {
	return !w.knownSet || w.value != w.known
}

// New creates an empty cache session over the given word store.
func New(store backend.WordStore) *Cache {
	return &Cache{
		store: store,
		words: map[common.Slot]*cachedWord{},
	}
}

// GetWord returns the current value of the word at the given slot, loading
// it from the word store on first access. A failure of the word store is
// considered fatal and aborts the invocation.
func (c *Cache) GetWord(key common.Slot) common.Word {
	if entry, exists := c.words[key]; exists {
		return entry.value
	}
	value, err := c.store.Load(key)
	if err != nil {
		panic(fmt.Sprintf("storage: failed to load slot %v: %v", key, err))
	}
	c.words[key] = &cachedWord{value: value, known: value, knownSet: true}
	return value
}

// SetWord unconditionally overwrites the word at the given slot. The entry
// is marked dirty even if the new value happens to equal the persisted one;
// writers must not pay for a load just to detect redundant stores.
func (c *Cache) SetWord(key common.Slot, value common.Word) {
	c.words[key] = &cachedWord{value: value}
}

// ClearWord zeroes the word at the given slot.
func (c *Cache) ClearWord(key common.Slot) {
	c.SetWord(key, common.Word{})
}

// GetBytes returns a copy of the bytes [offset, offset+n) of the word at the
// given slot. The range must lie within a single word; a violation is a
// programming error.
func (c *Cache) GetBytes(key common.Slot, offset, n int) []byte {
	checkRange(offset, n)
	word := c.GetWord(key)
	res := make([]byte, n)
	copy(res, word[offset:offset+n])
	return res
}

// GetByte returns the byte at the given offset of the word at the given slot.
func (c *Cache) GetByte(key common.Slot, offset int) byte {
	checkRange(offset, 1)
	word := c.GetWord(key)
	return word[offset]
}

// SetBytes overwrites the bytes [offset, offset+len(data)) of the word at the
// given slot, preserving the rest of the word. The range must lie within a
// single word. Whole-word writes skip the read of the previous value.
func (c *Cache) SetBytes(key common.Slot, offset int, data []byte) {
	checkRange(offset, len(data))
	if len(data) == common.WordSize {
		var word common.Word
		copy(word[:], data)
		c.SetWord(key, word)
		return
	}
	word := c.GetWord(key)
	copy(word[offset:offset+len(data)], data)
	c.SetWord(key, word)
}

// SetByte overwrites the byte at the given offset of the word at the given slot.
func (c *Cache) SetByte(key common.Slot, offset int, value byte) {
	c.SetBytes(key, offset, []byte{value})
}

// Flush writes every modified word back to the word store. Loaded values are
// retained, so subsequent reads are still served from the cache. Flushing
// twice in a row performs no additional stores.
func (c *Cache) Flush() error {
	dirty := make([]common.Slot, 0, len(c.words))
	for key, entry := range c.words {
		if entry.dirty() {
			dirty = append(dirty, key)
		}
	}
	// Slots are written in ascending order to make the store traffic
	// reproducible across runs.
	slices.SortFunc(dirty, func(a, b common.Slot) bool {
		return a.Compare(&b) < 0
	})
	for _, key := range dirty {
		entry := c.words[key]
		if err := c.store.Store(key, entry.value); err != nil {
			return fmt.Errorf("failed to store slot %v: %w", key, err)
		}
		entry.known = entry.value
		entry.knownSet = true
	}
	return nil
}

// Clear flushes the cache and evicts all entries. It is intended for
// call boundaries where another party could observe the word store and
// re-enter, invalidating cached values.
func (c *Cache) Clear() error {
	if err := c.Flush(); err != nil {
		return err
	}
	c.words = map[common.Slot]*cachedWord{}
	return nil
}

func checkRange(offset, n int) {
	if offset < 0 || n < 0 || offset+n > common.WordSize {
		panic(fmt.Sprintf("storage: byte range [%d, %d) exceeds a word", offset, offset+n))
	}
}
