package common

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the legacy Keccak-256 digest of the given data. This is
// the hash used for deriving out-of-line storage locations of dynamic
// collections, and it matches the digest produced by Ethereum tooling.
func Keccak256(data []byte) Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

// Keccak256ForSlot computes the Keccak-256 digest of a slot key, used as the
// derived base of dynamic collections rooted at that slot.
func Keccak256ForSlot(slot Slot) Hash {
	return Keccak256(slot[:])
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}
