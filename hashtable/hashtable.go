package hashtable

import (
	"fmt"
	"github.com/gostonefire/phonedirectory/hashfunc"
)

// Entry - Represents one key/value pair in a bucket chain
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Statistics - Snapshot of the collision accounting of a table
//   - CollisionRatio is Collisions divided by Entries, 0 (zero) if the table is empty
//   - Collisions is the total number of collisions accumulated over all insertions
//   - MaxCollisionsInOneInsertion is the highest number of collisions caused by a single insertion
//   - Entries is the number of entries inserted so far
//   - Buckets is the fixed number of buckets of the table
type Statistics struct {
	CollisionRatio              float64
	Collisions                  int
	MaxCollisionsInOneInsertion int
	Entries                     int
	Buckets                     int
}

// HashTable - Fixed capacity hash table using separate chaining, keeping track of collisions as entries are
// inserted. The number of buckets never changes, so chains grow with the load factor.
//
// A HashTable is not safe for concurrent use.
type HashTable[K comparable, V any] struct {
	buckets       [][]Entry[K, V]
	hashAlgorithm hashfunc.HashAlgorithm[K]
	entries       int
	collisions    int
	maxCollisions int
}

// NewHashTable - Returns a new hash table with a fixed number of buckets.
//   - bucketCount is the number of buckets, 0 (zero) gives a table that refuses all insertions
//   - hashAlgorithm is the hash function used to select buckets, it is required
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is of type InvalidConfiguration if bucketCount is negative or hashAlgorithm is nil
func NewHashTable[K comparable, V any](bucketCount int, hashAlgorithm hashfunc.HashAlgorithm[K]) (
	hashTable *HashTable[K, V],
	err error,
) {
	if bucketCount < 0 {
		err = InvalidConfiguration{msg: fmt.Sprintf("bucket count can not be negative, got %d", bucketCount)}
		return
	}
	if hashAlgorithm == nil {
		err = InvalidConfiguration{msg: "a hash algorithm must be given"}
		return
	}

	hashTable = &HashTable[K, V]{
		buckets:       make([][]Entry[K, V], bucketCount),
		hashAlgorithm: hashAlgorithm,
	}

	return
}

// Insert - Adds a new key/value pair to the table.
// If the bucket already holds entries, each of them counts as one collision for this insertion.
//   - key is the identifier of the entry, it must not already be present
//   - value is the value to associate with key
//
// It returns:
//   - err is of type DuplicateKey if key is already present, or InvalidConfiguration if the table has no buckets.
//     The table is left untouched in both cases.
func (H *HashTable[K, V]) Insert(key K, value V) (err error) {
	bucketNo, err := H.BucketNo(key)
	if err != nil {
		return
	}

	chain := H.buckets[bucketNo]
	if lookup(key, chain) >= 0 {
		err = DuplicateKey{msg: fmt.Sprintf("key %v already present in bucket %d", key, bucketNo)}
		return
	}

	collisions := len(chain)
	H.buckets[bucketNo] = append(chain, Entry[K, V]{Key: key, Value: value})

	H.entries++
	H.collisions += collisions
	if collisions > H.maxCollisions {
		H.maxCollisions = collisions
	}

	return
}

// Contains - Returns true if key is present in the table
func (H *HashTable[K, V]) Contains(key K) bool {
	bucketNo, err := H.BucketNo(key)
	if err != nil {
		return false
	}

	return lookup(key, H.buckets[bucketNo]) >= 0
}

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type KeyNotFound if there is no entry for key
func (H *HashTable[K, V]) Get(key K) (value V, err error) {
	bucketNo, err := H.BucketNo(key)
	if err != nil {
		err = KeyNotFound{msg: fmt.Sprintf("key %v not found in a table without buckets", key)}
		return
	}

	chain := H.buckets[bucketNo]
	i := lookup(key, chain)
	if i < 0 {
		err = KeyNotFound{msg: fmt.Sprintf("key %v not found", key)}
		return
	}

	value = chain[i].Value

	return
}

// Statistics - Returns a snapshot of the collision accounting
func (H *HashTable[K, V]) Statistics() (statistics Statistics) {
	statistics = Statistics{
		Collisions:                  H.collisions,
		MaxCollisionsInOneInsertion: H.maxCollisions,
		Entries:                     H.entries,
		Buckets:                     len(H.buckets),
	}
	if H.entries > 0 {
		statistics.CollisionRatio = float64(H.collisions) / float64(H.entries)
	}

	return
}

// Len - Returns the number of entries in the table
func (H *HashTable[K, V]) Len() int {
	return H.entries
}

// BucketCount - Returns the fixed number of buckets of the table
func (H *HashTable[K, V]) BucketCount() int {
	return len(H.buckets)
}

// BucketDistribution - Returns the chain length of every bucket, one element per bucket
func (H *HashTable[K, V]) BucketDistribution() (distribution []int) {
	distribution = make([]int, len(H.buckets))
	for i, chain := range H.buckets {
		distribution[i] = len(chain)
	}

	return
}

// BucketNo - Returns which bucket number the given key results in
//   - key is the identifier of an entry
//
// It returns:
//   - bucketNo is hash(key) modulo the bucket count
//   - err is of type InvalidConfiguration if the table has no buckets
func (H *HashTable[K, V]) BucketNo(key K) (bucketNo int, err error) {
	if len(H.buckets) == 0 {
		err = InvalidConfiguration{msg: "hash table has no buckets"}
		return
	}

	bucketNo = int(H.hashAlgorithm.HashFunc(key) % uint64(len(H.buckets)))

	return
}

// lookup - Returns the index of key in chain, or -1 if not present
func lookup[K comparable, V any](key K, chain []Entry[K, V]) int {
	for i, entry := range chain {
		if entry.Key == key {
			return i
		}
	}
	return -1
}
