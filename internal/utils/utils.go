package utils

import (
	"github.com/gostonefire/phonedirectory/internal/conf"
	"strings"
)

// IsPhoneNumber - Returns true if s is exactly conf.PhoneNumberLength ASCII decimal digits
func IsPhoneNumber(s string) bool {
	if len(s) != conf.PhoneNumberLength {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// NormalizePhone - Removes the punctuation used when writing phone numbers, i.e. "(418) 656-2131" becomes "4186562131"
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '(', ')', '-', ' ':
			return -1
		}
		return r
	}, s)
}

// FirstEmpty - Returns the index of the first empty string in values, or -1 if none is empty
func FirstEmpty(values ...string) int {
	for i, v := range values {
		if v == "" {
			return i
		}
	}
	return -1
}
