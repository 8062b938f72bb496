package dxf

import (
	"fmt"
	"io"
	"os"
)

// Structure marker values in the tag stream.
const (
	markerSection = "SECTION"
	markerEndSec  = "ENDSEC"
	markerTable   = "TABLE"
	markerEndTab  = "ENDTAB"
	markerLayer   = "LAYER"
	markerEOF     = "EOF"
)

// HeaderCurrentLayer is the header variable naming the current layer.
const HeaderCurrentLayer = "$CLAYER"

// Document is a parsed DXF file held as its raw tag stream.
type Document struct {
	tags []Tag
}

// Parse reads and structurally validates a DXF stream.
// Validation is shallow: sections must nest correctly and the stream
// must end with an EOF marker. Tag contents are not interpreted.
func Parse(r io.Reader) (*Document, error) {
	tags, err := ReadTags(r)
	if err != nil {
		return nil, err
	}

	inSection := false
	sawEOF := false
	for i, t := range tags {
		switch {
		case t.isMarker(markerSection):
			if inSection {
				return nil, fmt.Errorf("%w: nested SECTION at tag %d", ErrMalformed, i)
			}
			inSection = true
		case t.isMarker(markerEndSec):
			if !inSection {
				return nil, fmt.Errorf("%w: ENDSEC outside a section at tag %d", ErrMalformed, i)
			}
			inSection = false
		case t.isMarker(markerEOF):
			sawEOF = true
		}
	}
	if inSection {
		return nil, fmt.Errorf("%w: unterminated SECTION", ErrMalformed)
	}
	if !sawEOF {
		return nil, fmt.Errorf("%w: missing EOF marker", ErrMalformed)
	}

	return &Document{tags: tags}, nil
}

// Open parses a DXF file from disk.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening drawing: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Save serialises the document to a writer.
func (d *Document) Save(w io.Writer) error {
	return WriteTags(w, d.tags)
}

// SaveAs writes the document to a file.
func (d *Document) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating drawing: %w", err)
	}
	if err := d.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing drawing: %w", err)
	}
	return nil
}

// Tags exposes the raw tag stream. Callers must not mutate it.
func (d *Document) Tags() []Tag {
	return d.tags
}

// layerEntryNames returns the tag indexes of the (2, name) tags of LAYER
// table entries, in file order.
//
// A layer table looks like:
//
//	0/TABLE, 2/LAYER, ..., 0/LAYER, 2/<name>, ..., 0/LAYER, 2/<name>, ..., 0/ENDTAB
//
// The (2, LAYER) right after (0, TABLE) identifies the table; only that
// table's (0, LAYER) entries carry layer names.
func (d *Document) layerEntryNames() []int {
	var indexes []int
	pendingTable := false
	inLayerTable := false
	expectName := false

	for i, t := range d.tags {
		switch {
		case t.isMarker(markerTable):
			pendingTable = true
			inLayerTable = false
			expectName = false
		case pendingTable && t.Code == CodeName:
			inLayerTable = t.Value == markerLayer
			pendingTable = false
		case t.isMarker(markerEndTab):
			inLayerTable = false
			expectName = false
		case inLayerTable && t.isMarker(markerLayer):
			expectName = true
		case inLayerTable && expectName && t.Code == CodeName:
			indexes = append(indexes, i)
			expectName = false
		}
	}
	return indexes
}

// Layers returns the layer names from the LAYER table, in file order.
func (d *Document) Layers() []string {
	indexes := d.layerEntryNames()
	names := make([]string, 0, len(indexes))
	for _, i := range indexes {
		names = append(names, d.tags[i].Value)
	}
	return names
}

// Header returns the value of a header variable, if present.
// Header variable values immediately follow their (9, $NAME) tag.
func (d *Document) Header(name string) (string, bool) {
	for i, t := range d.tags {
		if t.Code == CodeHeaderVar && t.Value == name && i+1 < len(d.tags) {
			return d.tags[i+1].Value, true
		}
	}
	return "", false
}

// SetHeader rewrites the value of an existing header variable.
// Missing variables are left alone; a drawing without $CLAYER keeps
// whatever the application considers current.
func (d *Document) SetHeader(name, value string) bool {
	for i, t := range d.tags {
		if t.Code == CodeHeaderVar && t.Value == name && i+1 < len(d.tags) {
			d.tags[i+1].Value = value
			return true
		}
	}
	return false
}

// ApplyRenames rewrites layer names in a single simultaneous pass: every
// LAYER table entry and every (8, name) reference is looked up in
// renames exactly once, by its value before any rewrite. That covers
// entities, block contents, and the $CLAYER header value, and it keeps
// one rename's result from matching another: with Walls -> P-Walls and a
// pre-existing P-Walls -> P-P-Walls, the freshly written P-Walls is
// never renamed again, so the two layers stay distinct. Returns the
// number of tags rewritten.
//
// Callers that must preserve $CLAYER park it on layer "0" first and
// restore it afterwards, the way the file backend does.
func (d *Document) ApplyRenames(renames map[string]string) int {
	renamed := 0
	for _, i := range d.layerEntryNames() {
		if newName, ok := renames[d.tags[i].Value]; ok {
			d.tags[i].Value = newName
			renamed++
		}
	}
	for i, t := range d.tags {
		if t.Code != CodeLayerRef {
			continue
		}
		if newName, ok := renames[t.Value]; ok {
			d.tags[i].Value = newName
			renamed++
		}
	}
	return renamed
}

// RenameLayer rewrites a single layer name and its references.
func (d *Document) RenameLayer(oldName, newName string) int {
	return d.ApplyRenames(map[string]string{oldName: newName})
}
