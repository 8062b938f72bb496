// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prelayn/prelayn/internal/adapters/driving/tui/styles"
)

// Validator checks a field value and returns an error for illegal input.
type Validator func(value string) error

// Field is a labelled text input with optional live validation.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	validate  Validator
	err       error
	width     int
}

// NewField creates a new labelled field.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// WithValidator attaches a live validator. The field re-validates after
// every keystroke.
func (f *Field) WithValidator(v Validator) *Field {
	f.validate = v
	return f
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	if f.validate != nil {
		f.err = f.validate(f.textinput.Value())
	}
	return f, cmd
}

// View renders the field: label, input box, and validation error if any.
func (f *Field) View() string {
	label := f.styles.Subtitle.Render(f.label + ": ")
	box := f.styles.InputField.Render(f.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	line := lipgloss.JoinHorizontal(lipgloss.Center, label, box)
	if f.err != nil && f.textinput.Value() != "" {
		line += "\n  " + f.styles.Error.Render(f.err.Error())
	}
	return line
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value and re-validates.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
	if f.validate != nil {
		f.err = f.validate(value)
	}
}

// Err returns the current validation error, or nil.
func (f *Field) Err() error {
	return f.err
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the field is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the field.
func (f *Field) SetWidth(width int) {
	f.width = width
	inputWidth := width - len(f.label) - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Reset clears the field.
func (f *Field) Reset() {
	f.textinput.Reset()
	f.err = nil
}
