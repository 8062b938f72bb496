package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParsePrefix_Valid tests that ordinary prefixes are accepted
func TestParsePrefix_Valid(t *testing.T) {
	for _, s := range []string{"A-", "NEW_", "floor2 ", "p", "ÁREA-", "01."} {
		p, err := ParsePrefix(s)
		assert.NoError(t, err, "prefix %q", s)
		assert.Equal(t, s, p.String())
	}
}

// TestParsePrefix_Empty tests that the empty string is rejected
func TestParsePrefix_Empty(t *testing.T) {
	_, err := ParsePrefix("")
	assert.ErrorIs(t, err, ErrPrefixEmpty)
}

// TestParsePrefix_IllegalCharacters tests that every forbidden character is rejected
func TestParsePrefix_IllegalCharacters(t *testing.T) {
	for _, c := range IllegalPrefixChars {
		_, err := ParsePrefix("abc" + string(c) + "def")
		assert.ErrorIs(t, err, ErrPrefixInvalid, "character %q", c)
	}
}

// TestParsePrefix_IllegalAlone tests a forbidden character on its own
func TestParsePrefix_IllegalAlone(t *testing.T) {
	_, err := ParsePrefix("*")
	assert.ErrorIs(t, err, ErrPrefixInvalid)
}

// TestPrefix_Apply tests that Apply prepends the prefix
func TestPrefix_Apply(t *testing.T) {
	p, err := ParsePrefix("NEW-")
	assert.NoError(t, err)
	assert.Equal(t, "NEW-Walls", p.Apply("Walls"))
}

// TestPrefix_ApplyTwice documents that re-applying double-prefixes.
// There is no idempotence guarantee.
func TestPrefix_ApplyTwice(t *testing.T) {
	p, err := ParsePrefix("X-")
	assert.NoError(t, err)
	assert.Equal(t, "X-X-Walls", p.Apply(p.Apply("Walls")))
}
