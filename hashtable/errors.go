package hashtable

// DuplicateKey - Custom error to inform that the key is already present in the table
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already present
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// Is - Matches any DuplicateKey regardless of message
func (E DuplicateKey) Is(target error) bool {
	_, ok := target.(DuplicateKey)
	return ok
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// Is - Matches any KeyNotFound regardless of message
func (E KeyNotFound) Is(target error) bool {
	_, ok := target.(KeyNotFound)
	return ok
}

// InvalidConfiguration - Custom error to inform that the table can't operate with the configuration it was given
type InvalidConfiguration struct {
	msg string
}

// Error - Used to notify an invalid configuration
func (I InvalidConfiguration) Error() string {
	if I.msg == "" {
		return "invalid configuration"
	}
	return I.msg
}

// Is - Matches any InvalidConfiguration regardless of message
func (I InvalidConfiguration) Is(target error) bool {
	_, ok := target.(InvalidConfiguration)
	return ok
}
