package services

import (
	"strconv"
	"strings"
)

// Coercion helpers for translating form text into datastore values.
// The remote schema stores numbers and timestamps; an empty string is
// not a valid value for either, so blanks become SQL NULL.

// numberOrNil parses a currency/numeric text field. Blank or unparsable
// text coerces to nil rather than zero.
func numberOrNil(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return v
}

// intOrNil parses an integer text field, nil when blank or unparsable.
func intOrNil(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return v
}

// dateOrNil passes a date-like text field through, coercing blanks to
// nil so the store never receives an empty-string timestamp.
func dateOrNil(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// textOrNil coerces blank text to nil.
func textOrNil(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// ratioOrNil converts a derived ratio pointer to a datastore value.
func ratioOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
