// Package hash provides the blake3 digest used for derived identities and
// chainspec checksums.
package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// Size of a digest in bytes.
const Size = 32

// pool amortizes hasher allocations. Users must Reset a hasher before
// returning it.
var pool = &sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// GetHasher returns a blake3 hasher from the pool.
func GetHasher() *blake3.Hasher {
	return pool.Get().(*blake3.Hasher)
}

// PutHasher returns a hasher to the pool after Reset.
func PutHasher(hasher *blake3.Hasher) {
	pool.Put(hasher)
}

// Sum computes the blake3 digest of the concatenation of chunks.
func Sum(chunks ...[]byte) (sum [Size]byte) {
	hasher := GetHasher()
	for _, chunk := range chunks {
		hasher.Write(chunk)
	}
	hasher.Sum(sum[:0])
	hasher.Reset()
	PutHasher(hasher)
	return sum
}
