package hashfunc

import (
	"fmt"
	"github.com/gostonefire/phonedirectory/internal/conf"
	"github.com/gostonefire/phonedirectory/internal/hash"
)

// Default - Returns the default hash algorithm for string keys (crc32)
func Default() HashAlgorithm[string] {
	return hash.NewCRC32HashAlgorithm()
}

// ByName - Returns one of the built-in hash algorithms for string keys.
//   - name is one of "crc32", "xxhash" or "fnv", an empty name gives the default (crc32)
//
// It returns:
//   - hashAlgorithm is the requested algorithm
//   - err is a standard error if the name is unknown
func ByName(name string) (hashAlgorithm HashAlgorithm[string], err error) {
	switch name {
	case "", conf.CRC32:
		hashAlgorithm = hash.NewCRC32HashAlgorithm()
	case conf.XXHash:
		hashAlgorithm = hash.NewXXHashAlgorithm()
	case conf.FNV:
		hashAlgorithm = hash.NewFNVHashAlgorithm()
	default:
		err = fmt.Errorf("unknown hash algorithm %q, should be one of %s, %s or %s", name, conf.CRC32, conf.XXHash, conf.FNV)
	}

	return
}
