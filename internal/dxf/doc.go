// Package dxf implements a minimal codec for the ASCII drawing exchange
// format, sufficient to read and rewrite layer names.
//
// A DXF file is a flat stream of tagged values: a group code line (an
// integer) followed by a value line. Sections are delimited by
// (0, SECTION) ... (0, ENDSEC) pairs and the stream ends with (0, EOF).
// The codec keeps the tag stream intact and only rewrites the tags that
// carry layer names:
//
//   - (2, name) entries following (0, LAYER) inside the LAYER table
//   - (8, name) layer references on entities and block contents
//   - the (9, $CLAYER) header variable's value
//
// Everything else round-trips untouched, so geometry and application
// data survive a rename byte for byte.
package dxf
