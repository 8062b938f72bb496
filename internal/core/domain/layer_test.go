package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIsReservedLayer_Reserved tests the reserved layer names
func TestIsReservedLayer_Reserved(t *testing.T) {
	assert.True(t, IsReservedLayer("0"))
	assert.True(t, IsReservedLayer("Defpoints"))
}

// TestIsReservedLayer_Ordinary tests ordinary layer names
func TestIsReservedLayer_Ordinary(t *testing.T) {
	assert.False(t, IsReservedLayer("Walls"))
	assert.False(t, IsReservedLayer("defpoints")) // reserved names are case-sensitive
	assert.False(t, IsReservedLayer("00"))
	assert.False(t, IsReservedLayer(""))
}

// TestFormatOf tests extension-based format detection
func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatDWG, FormatOf("plan.dwg"))
	assert.Equal(t, FormatDWG, FormatOf("C:\\drawings\\PLAN.DWG"))
	assert.Equal(t, FormatDXF, FormatOf("/tmp/plan.dxf"))
	assert.Equal(t, FormatDXF, FormatOf("plan.DxF"))
	assert.Equal(t, FormatUnknown, FormatOf("plan.pdf"))
	assert.Equal(t, FormatUnknown, FormatOf("plan"))
}
