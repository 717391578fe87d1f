package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom hash
// algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value.
	// The hash table reduces the value to a bucket number by taking it modulo its bucket count, so the function
	// doesn't need to know anything about the table size.
	HashFunc(key K) uint64
}

// Func - Adapter to allow the use of an ordinary function as a HashAlgorithm.
type Func[K any] func(key K) uint64

// HashFunc - Calls f(key)
func (f Func[K]) HashFunc(key K) uint64 {
	return f(key)
}
