package phonedirectory

import (
	"fmt"
	"github.com/gostonefire/phonedirectory/internal/utils"
)

// Record - One person in the directory, phone numbers are stored as 10 digits without punctuation
type Record struct {
	LastName    string
	FirstName   string
	FixedPhone  string
	MobilePhone string
	Email       string
}

// String - Returns the record as "Last, First, Fixed, Mobile, Email"
func (R Record) String() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s", R.LastName, R.FirstName, R.FixedPhone, R.MobilePhone, R.Email)
}

// NameKey - Returns the composite key used by the name index.
// Last and first names are concatenated without a separator, so ("A", "BC") and ("AB", "C") share a key.
func (R Record) NameKey() string {
	return nameKey(R.LastName, R.FirstName)
}

// Validate - Checks that no field is empty and that both phone numbers are 10 decimal digits.
// It returns an error of type InvalidInput if not.
func (R Record) Validate() error {
	fieldNames := []string{"last name", "first name", "fixed phone", "mobile phone", "email"}
	if i := utils.FirstEmpty(R.LastName, R.FirstName, R.FixedPhone, R.MobilePhone, R.Email); i >= 0 {
		return InvalidInput{msg: fmt.Sprintf("%s can not be empty", fieldNames[i])}
	}
	if !utils.IsPhoneNumber(R.FixedPhone) {
		return InvalidInput{msg: fmt.Sprintf("fixed phone %q must be 10 decimal digits", R.FixedPhone)}
	}
	if !utils.IsPhoneNumber(R.MobilePhone) {
		return InvalidInput{msg: fmt.Sprintf("mobile phone %q must be 10 decimal digits", R.MobilePhone)}
	}

	return nil
}

func nameKey(lastName, firstName string) string {
	return lastName + firstName
}
