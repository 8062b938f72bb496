package dxf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReadTags_Basic tests parsing a small tag stream
func TestReadTags_Basic(t *testing.T) {
	input := "  0\r\nSECTION\r\n  2\r\nHEADER\r\n  0\r\nENDSEC\r\n  0\r\nEOF\r\n"

	tags, err := ReadTags(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tags, 4)
	assert.Equal(t, Tag{Code: 0, Value: "SECTION"}, tags[0])
	assert.Equal(t, Tag{Code: 2, Value: "HEADER"}, tags[1])
}

// TestReadTags_PlainNewlines tests LF-only input
func TestReadTags_PlainNewlines(t *testing.T) {
	input := "0\nEOF\n"

	tags, err := ReadTags(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, Tag{Code: 0, Value: "EOF"}, tags[0])
}

// TestReadTags_BadGroupCode tests a non-integer code line
func TestReadTags_BadGroupCode(t *testing.T) {
	_, err := ReadTags(strings.NewReader("zero\nEOF\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

// TestReadTags_DanglingCode tests a code line with no value line
func TestReadTags_DanglingCode(t *testing.T) {
	_, err := ReadTags(strings.NewReader("0\nSECTION\n8\n"))
	assert.ErrorIs(t, err, ErrMalformed)
}

// TestReadTags_Empty tests empty input
func TestReadTags_Empty(t *testing.T) {
	_, err := ReadTags(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformed)
}

// TestWriteTags_RoundTrip tests that written tags parse back identically
func TestWriteTags_RoundTrip(t *testing.T) {
	tags := []Tag{
		{Code: 0, Value: "SECTION"},
		{Code: 2, Value: "ENTITIES"},
		{Code: 8, Value: "Walls"},
		{Code: 0, Value: "ENDSEC"},
		{Code: 0, Value: "EOF"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTags(&buf, tags))

	parsed, err := ReadTags(&buf)
	require.NoError(t, err)
	assert.Equal(t, tags, parsed)
}
