package domain

import "strings"

// IllegalPrefixChars are the characters that may not appear in a layer
// name, and therefore not in a prefix either.
const IllegalPrefixChars = "<>\\/\":;*?|,=`"

// Prefix is a validated string prepended to every layer name.
// The zero value is invalid; use ParsePrefix.
type Prefix string

// ParsePrefix validates a candidate prefix string.
// It rejects empty strings and strings containing any character that is
// illegal in a layer name.
func ParsePrefix(s string) (Prefix, error) {
	if s == "" {
		return "", ErrPrefixEmpty
	}
	if strings.ContainsAny(s, IllegalPrefixChars) {
		return "", ErrPrefixInvalid
	}
	return Prefix(s), nil
}

// String returns the prefix as a plain string.
func (p Prefix) String() string {
	return string(p)
}

// Apply prepends the prefix to a layer name.
func (p Prefix) Apply(name string) string {
	return string(p) + name
}
