package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed indicates the input is not a well-formed ASCII DXF stream.
var ErrMalformed = errors.New("malformed DXF")

// Group codes with meanings the codec cares about.
const (
	// CodeEntity starts an entity, table entry, or structure marker.
	CodeEntity = 0
	// CodeName carries a symbol table entry name.
	CodeName = 2
	// CodeLayerRef carries the layer an entity lives on.
	CodeLayerRef = 8
	// CodeHeaderVar carries a header variable name ($CLAYER etc.).
	CodeHeaderVar = 9
)

// Tag is one group code / value pair.
type Tag struct {
	// Code is the integer group code.
	Code int
	// Value is the raw value line, without the line terminator.
	Value string
}

// ReadTags parses an ASCII DXF stream into tags.
// Group code lines may be right-justified; surrounding whitespace is
// ignored. Value lines keep their content as written.
func ReadTags(r io.Reader) ([]Tag, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var tags []Tag
	line := 0
	for scanner.Scan() {
		line++
		codeText := strings.TrimSpace(strings.TrimSuffix(scanner.Text(), "\r"))
		code, err := strconv.Atoi(codeText)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: group code %q", ErrMalformed, line, codeText)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading value line: %w", err)
			}
			return nil, fmt.Errorf("%w: line %d: group code %d has no value line", ErrMalformed, line, code)
		}
		line++
		value := strings.TrimSuffix(scanner.Text(), "\r")

		tags = append(tags, Tag{Code: code, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading DXF: %w", err)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	return tags, nil
}

// WriteTags serialises tags back to an ASCII DXF stream.
// Codes are right-justified to three columns and lines end with CRLF,
// matching what AutoCAD itself writes.
func WriteTags(w io.Writer, tags []Tag) error {
	bw := bufio.NewWriter(w)
	for _, t := range tags {
		if _, err := fmt.Fprintf(bw, "%3d\r\n%s\r\n", t.Code, t.Value); err != nil {
			return fmt.Errorf("writing DXF: %w", err)
		}
	}
	return bw.Flush()
}

// isMarker reports whether a tag is a (0, name) structure marker.
func (t Tag) isMarker(name string) bool {
	return t.Code == CodeEntity && t.Value == name
}
