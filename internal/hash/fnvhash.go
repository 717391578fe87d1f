package hash

import (
	"hash/fnv"
)

// FNVHashAlgorithm - Hash algorithm based on 64 bit FNV-1a
type FNVHashAlgorithm struct{}

// NewFNVHashAlgorithm - Returns a pointer to a new FNVHashAlgorithm instance
func NewFNVHashAlgorithm() *FNVHashAlgorithm {
	return &FNVHashAlgorithm{}
}

// HashFunc - Given key it generates a hash value using fnv.New64a
func (F *FNVHashAlgorithm) HashFunc(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}
