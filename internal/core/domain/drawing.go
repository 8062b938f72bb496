package domain

import (
	"path/filepath"
	"strings"
)

// FileFormat identifies a drawing file format by extension.
type FileFormat string

const (
	// FormatDWG is the native AutoCAD drawing format.
	// Opaque to Prelayn; only application-driving backends handle it.
	FormatDWG FileFormat = ".dwg"

	// FormatDXF is the drawing exchange format.
	// The file-format backend reads and writes it directly.
	FormatDXF FileFormat = ".dxf"

	// FormatUnknown is any other extension.
	FormatUnknown FileFormat = ""
)

// FormatOf derives the file format from a path, case-insensitively.
func FormatOf(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case string(FormatDWG):
		return FormatDWG
	case string(FormatDXF):
		return FormatDXF
	default:
		return FormatUnknown
	}
}

// String returns the extension, including the leading dot.
func (f FileFormat) String() string {
	return string(f)
}
