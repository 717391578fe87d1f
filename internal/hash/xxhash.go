package hash

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - Hash algorithm based on 64 bit xxHash, it spreads keys sharing long prefixes (such as
// phone numbers within the same area code) better than crc32.
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc - Given key it generates a hash value using xxhash.Sum64String
func (X *XXHashAlgorithm) HashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}
