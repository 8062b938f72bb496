package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func TestNewField(t *testing.T) {
	f := NewField(nil, "Prefix", "e.g. P-")

	require.NotNil(t, f)
	assert.Equal(t, "Prefix", f.Label())
	assert.Empty(t, f.Value())
	assert.NoError(t, f.Err())
}

func TestField_SetValue(t *testing.T) {
	f := NewField(nil, "Input file", "drawing.dxf")

	f.SetValue("site.dxf")

	assert.Equal(t, "site.dxf", f.Value())
}

func TestField_Validation(t *testing.T) {
	f := NewField(nil, "Prefix", "e.g. P-").WithValidator(func(value string) error {
		_, err := domain.ParsePrefix(value)
		return err
	})

	f.SetValue("P-")
	assert.NoError(t, f.Err())

	f.SetValue("a|b")
	assert.ErrorIs(t, f.Err(), domain.ErrPrefixInvalid)
}

func TestField_Update_Revalidates(t *testing.T) {
	f := NewField(nil, "Prefix", "").WithValidator(func(value string) error {
		_, err := domain.ParsePrefix(value)
		return err
	})
	f.Focus()

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'*'}})

	assert.ErrorIs(t, f.Err(), domain.ErrPrefixInvalid)
}

func TestField_View_ShowsError(t *testing.T) {
	f := NewField(nil, "Prefix", "").WithValidator(func(value string) error {
		_, err := domain.ParsePrefix(value)
		return err
	})
	f.SetValue("a*b")

	out := f.View()

	assert.Contains(t, out, "Prefix")
	assert.Contains(t, out, domain.ErrPrefixInvalid.Error())
}

func TestField_View_NoErrorWhenEmpty(t *testing.T) {
	f := NewField(nil, "Prefix", "").WithValidator(func(value string) error {
		_, err := domain.ParsePrefix(value)
		return err
	})

	out := f.View()

	assert.NotContains(t, out, domain.ErrPrefixEmpty.Error())
}

func TestField_FocusBlur(t *testing.T) {
	f := NewField(nil, "Output file", "")

	assert.False(t, f.Focused())

	f.Focus()
	assert.True(t, f.Focused())

	f.Blur()
	assert.False(t, f.Focused())
}

func TestField_Reset(t *testing.T) {
	f := NewField(nil, "Prefix", "").WithValidator(func(value string) error {
		_, err := domain.ParsePrefix(value)
		return err
	})
	f.SetValue("a*b")

	f.Reset()

	assert.Empty(t, f.Value())
	assert.NoError(t, f.Err())
}

func TestField_SetWidth_Minimum(t *testing.T) {
	f := NewField(nil, "Prefix", "")

	f.SetWidth(10)

	// Input width never drops below a usable minimum.
	assert.Equal(t, 10, f.width)
}
