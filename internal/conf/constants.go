package conf

// DefaultTableSize - Number of buckets used for each index when none is given
const DefaultTableSize int = 100

// PhoneNumberLength - Number of decimal digits in a normalized phone number
const PhoneNumberLength int = 10

// CRC32 - Name of the crc32 (IEEE) hash algorithm, the default one
const CRC32 string = "crc32"

// XXHash - Name of the 64 bit xxHash algorithm
const XXHash string = "xxhash"

// FNV - Name of the 64 bit FNV-1a hash algorithm
const FNV string = "fnv"

// EnvPrefix - Prefix of environment variables overriding command line defaults
const EnvPrefix string = "PHONEDIRECTORY_"
