package phonedirectory

import (
	"fmt"
)

// Insert - Adds a new record to the directory and to both indices.
// Duplicates are detected before anything is mutated, so a failed insert leaves the directory as it was.
//   - lastName, firstName are the name of the person, neither can be empty
//   - fixedPhone, mobilePhone are phone numbers of exactly 10 decimal digits
//   - email can not be empty
//
// It returns:
//   - err is of type InvalidInput if a field is empty or malformed, or DuplicateEntry if the name
//     (last name followed by first name) or the fixed phone is already in the directory
func (D *Directory) Insert(lastName, firstName, fixedPhone, mobilePhone, email string) (err error) {
	record := Record{
		LastName:    lastName,
		FirstName:   firstName,
		FixedPhone:  fixedPhone,
		MobilePhone: mobilePhone,
		Email:       email,
	}

	err = record.Validate()
	if err != nil {
		return
	}

	key := record.NameKey()
	if D.byName.Contains(key) {
		err = DuplicateEntry{msg: fmt.Sprintf("an entry named %s, %s already exists", lastName, firstName)}
		return
	}
	if D.byPhone.Contains(fixedPhone) {
		err = DuplicateEntry{msg: fmt.Sprintf("an entry with fixed phone %s already exists", fixedPhone)}
		return
	}

	// Both keys are absent and both indices have buckets, so the inserts below can't fail
	position := len(D.records)
	err = D.byName.Insert(key, position)
	if err != nil {
		return
	}
	err = D.byPhone.Insert(fixedPhone, position)
	if err != nil {
		return
	}

	D.records = append(D.records, record)

	return
}

// FindByName - Gets the record of a person given the name.
//   - lastName, firstName are the name of the person, neither can be empty
//
// It returns:
//   - record is the matching record
//   - err is of type InvalidInput if a name is empty, or NotFound if there is no such entry
func (D *Directory) FindByName(lastName, firstName string) (record Record, err error) {
	if lastName == "" || firstName == "" {
		err = InvalidInput{msg: "last name and first name can not be empty"}
		return
	}

	position, err := D.byName.Get(nameKey(lastName, firstName))
	if err != nil {
		err = NotFound{msg: fmt.Sprintf("no entry named %s, %s", lastName, firstName)}
		return
	}

	record = D.records[position]

	return
}

// FindByPhone - Gets the record of a person given the fixed phone number.
//   - fixedPhone is the 10 digit fixed phone number, it can not be empty
//
// It returns:
//   - record is the matching record
//   - err is of type InvalidInput if fixedPhone is empty, or NotFound if there is no such entry
func (D *Directory) FindByPhone(fixedPhone string) (record Record, err error) {
	if fixedPhone == "" {
		err = InvalidInput{msg: "fixed phone can not be empty"}
		return
	}

	position, err := D.byPhone.Get(fixedPhone)
	if err != nil {
		err = NotFound{msg: fmt.Sprintf("no entry with fixed phone %s", fixedPhone)}
		return
	}

	record = D.records[position]

	return
}

// ForEachRecord - Calls visitor with every record in insertion order. It stops at the first error returned
// by visitor and returns it.
func (D *Directory) ForEachRecord(visitor func(record Record) error) (err error) {
	iter := D.Records()
	var record Record
	for iter.HasNext() {
		record, err = iter.Next()
		if err != nil {
			return
		}
		err = visitor(record)
		if err != nil {
			return
		}
	}

	return
}
