package pathutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func p(parts ...string) string {
	sep := string(filepath.Separator)
	return sep + strings.Join(parts, sep)
}

// TestShorten tests middle-ellipsis shortening
func TestShorten(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name  string
		path  string
		limit int
		want  string
	}{
		{
			name:  "short path unchanged",
			path:  p("home", "user", "site.dxf"),
			limit: 50,
			want:  p("home", "user", "site.dxf"),
		},
		{
			name:  "exactly at limit unchanged",
			path:  p("ab", "cd"),
			limit: len(p("ab", "cd")),
			want:  p("ab", "cd"),
		},
		{
			name:  "middle components dropped",
			path:  p("aaaaaaaaaa", "bbbbbbbbbb", "cccccccccc", "file.dxf"),
			limit: 20,
			want:  sep + "..." + sep + "file.dxf",
		},
		{
			name:  "two trailing components kept when they fit",
			path:  p("aaaaaaaaaa", "bbbbbbbbbb", "plans", "site.dxf"),
			limit: 25,
			want:  sep + "..." + sep + "plans" + sep + "site.dxf",
		},
		{
			name:  "oversized last component keeps its tail",
			path:  p("dir", "averyverylongfilename.dxf"),
			limit: 12,
			want:  sep + "..." + "name.dxf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shorten(tt.path, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), max(tt.limit, len(sep+"...")))
		})
	}
}

// TestShorten_Relative tests a path with no root
func TestShorten_Relative(t *testing.T) {
	path := strings.Join([]string{"aaaaaaaaaa", "bbbbbbbbbb", "site.dxf"}, string(filepath.Separator))

	// The head leaves only five characters, so the file name's tail wins.
	got := Shorten(path, 18)
	assert.Equal(t, "aaaaaaaaaa...e.dxf", got)
}
