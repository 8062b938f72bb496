// Package pathutil provides small path helpers shared by the UIs.
package pathutil

import (
	"path/filepath"
	"strings"
)

// DefaultLimit is the display width the UIs shorten paths to.
const DefaultLimit = 50

// Shorten limits a path's length by replacing its middle components
// with an ellipsis. The root and the trailing components are kept; when
// even the last component does not fit, its tail is kept.
func Shorten(path string, limit int) string {
	if len(path) <= limit {
		return path
	}

	parts := split(path)
	head := parts[0] + "..."
	remaining := limit - len(head)
	if remaining <= 0 {
		remaining = 0
	}

	last := parts[len(parts)-1]
	if len(last) > remaining {
		return head + last[len(last)-remaining:]
	}

	sep := string(filepath.Separator)
	var tail []string
	for i := len(parts) - 1; i >= 1; i-- {
		part := parts[i]
		if remaining <= len(part) {
			break
		}
		tail = append([]string{sep + part}, tail...)
		remaining -= len(part) + len(sep)
	}
	return head + strings.Join(tail, "")
}

// split breaks a path into its root followed by each component.
func split(path string) []string {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	sep := string(filepath.Separator)

	root := vol
	if strings.HasPrefix(rest, sep) {
		root += sep
		rest = strings.TrimPrefix(rest, sep)
	}

	parts := []string{}
	if root != "" {
		parts = append(parts, root)
	}
	for _, part := range strings.Split(rest, sep) {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		parts = []string{path}
	}
	return parts
}
