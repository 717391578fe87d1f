package phonedirectory

// InvalidInput - Custom error to inform that a field is empty or malformed
type InvalidInput struct {
	msg string
}

// Error - Used to notify invalid input
func (E InvalidInput) Error() string {
	if E.msg == "" {
		return "invalid input"
	}
	return E.msg
}

// Is - Matches any InvalidInput regardless of message
func (E InvalidInput) Is(target error) bool {
	_, ok := target.(InvalidInput)
	return ok
}

// DuplicateEntry - Custom error to inform that an entry with the same name or fixed phone already exists
type DuplicateEntry struct {
	msg string
}

// Error - Used to notify a duplicate entry
func (E DuplicateEntry) Error() string {
	if E.msg == "" {
		return "duplicate entry"
	}
	return E.msg
}

// Is - Matches any DuplicateEntry regardless of message
func (E DuplicateEntry) Is(target error) bool {
	_, ok := target.(DuplicateEntry)
	return ok
}

// NotFound - Custom error to inform that no entry was found
type NotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "no entry found"
	}
	return E.msg
}

// Is - Matches any NotFound regardless of message
func (E NotFound) Is(target error) bool {
	_, ok := target.(NotFound)
	return ok
}
