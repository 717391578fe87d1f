package hash

import (
	"hash/crc32"
)

// CRC32HashAlgorithm - The internally used default hash algorithm, implemented using crc32.ChecksumIEEE to
// create a hash value over the key.
type CRC32HashAlgorithm struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm() *CRC32HashAlgorithm {
	return &CRC32HashAlgorithm{}
}

// HashFunc - Given key it generates a hash value using crc32.ChecksumIEEE
func (C *CRC32HashAlgorithm) HashFunc(key string) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
