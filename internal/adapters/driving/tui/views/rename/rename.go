// Package rename provides the rename form view for the TUI: pick a
// backend, type a prefix, choose the drawing, preview, run.
package rename

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prelayn/prelayn/internal/adapters/driving/tui/components/input"
	"github.com/prelayn/prelayn/internal/adapters/driving/tui/components/status"
	"github.com/prelayn/prelayn/internal/adapters/driving/tui/messages"
	"github.com/prelayn/prelayn/internal/adapters/driving/tui/styles"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// focusArea tracks which form row has keyboard focus.
type focusArea int

const (
	focusBackend focusArea = iota
	focusPrefix
	focusInFile
	focusOutFile
	focusLayers
	focusCount // sentinel
)

// previewLimit caps how many planned renames are listed before folding.
const previewLimit = 10

// timeRounding trims report durations for display.
const timeRounding = 10 * time.Millisecond

// View is the rename form view.
type View struct {
	styles          *styles.Styles
	renameService   driving.RenameService
	settingsService driving.SettingsService
	ctx             context.Context

	// backends is the stable backend list from the registry.
	backends   []domain.BackendType
	backendIdx int

	prefixField  *input.Field
	inFileField  *input.Field
	outFileField *input.Field
	layersField  *input.Field

	bar   *status.Bar
	focus focusArea

	preview *domain.RenameReport
	report  *domain.RenameReport
	err     error
	working bool

	width  int
	height int
	ready  bool
}

// NewView creates a new rename form view.
func NewView(
	s *styles.Styles,
	renameService driving.RenameService,
	backendRegistry driving.BackendRegistry,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	var backends []domain.BackendType
	if backendRegistry != nil {
		backends = backendRegistry.List()
	}

	prefixField := input.NewField(s, "Prefix", "e.g. P-").
		WithValidator(func(value string) error {
			_, err := domain.ParsePrefix(value)
			return err
		})
	inFileField := input.NewField(s, "Input file", "drawing.dxf")
	outFileField := input.NewField(s, "Output file", "drawing_renamed.dxf")
	layersField := input.NewField(s, "Layers", "comma-separated, for backends that cannot list them")

	return &View{
		styles:          s,
		renameService:   renameService,
		settingsService: settingsService,
		ctx:             context.Background(),
		backends:        backends,
		prefixField:     prefixField,
		inFileField:     inFileField,
		outFileField:    outFileField,
		layersField:     layersField,
		bar:             status.NewBar(s, nil),
		focus:           focusBackend,
	}
}

// SetContext sets the context used for preview and run commands.
func (v *View) SetContext(ctx context.Context) {
	if ctx != nil {
		v.ctx = ctx
	}
}

// Init initialises the view and loads settings for pre-filling.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the rename form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.prefixField.SetWidth(msg.Width)
		v.inFileField.SetWidth(msg.Width)
		v.outFileField.SetWidth(msg.Width)
		v.layersField.SetWidth(msg.Width)
		v.bar.SetWidth(msg.Width)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil || msg.Settings == nil {
			return v, nil
		}
		v.applyDefaults(msg.Settings)
		return v, nil

	case messages.PreviewCompleted:
		v.working = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.preview = msg.Report
		v.bar.SetState(status.StateReady)
		return v, nil

	case messages.RenameCompleted:
		v.working = false
		if msg.Err != nil {
			v.err = msg.Err
			v.bar.SetState(status.StateError)
			v.bar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.report = msg.Report
		v.preview = nil
		v.bar.SetState(status.StateDone)
		v.bar.SetCounts(len(msg.Report.Renamed), len(msg.Report.Skipped))
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// applyDefaults pre-fills the form from saved settings.
func (v *View) applyDefaults(settings *driving.AppSettings) {
	if v.prefixField.Value() == "" && settings.DefaultPrefix != "" {
		v.prefixField.SetValue(settings.DefaultPrefix)
	}
	for i, b := range v.backends {
		if b.ID == settings.DefaultBackend {
			v.backendIdx = i
			break
		}
	}
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "tab":
		v.setFocus((v.focus + 1) % focusCount)
		return v, nil

	case "shift+tab":
		v.setFocus((v.focus + focusCount - 1) % focusCount)
		return v, nil

	case "enter":
		if v.working {
			return v, nil
		}
		return v, v.runPreview()

	case "ctrl+r":
		if v.working {
			return v, nil
		}
		return v, v.runRename()
	}

	if v.focus == focusBackend {
		return v.handleBackendKeys(msg)
	}

	var cmd tea.Cmd
	switch v.focus {
	case focusPrefix:
		v.prefixField, cmd = v.prefixField.Update(msg)
	case focusInFile:
		v.inFileField, cmd = v.inFileField.Update(msg)
	case focusOutFile:
		v.outFileField, cmd = v.outFileField.Update(msg)
	case focusLayers:
		v.layersField, cmd = v.layersField.Update(msg)
	case focusBackend, focusCount:
		// Handled above.
	}
	return v, cmd
}

func (v *View) handleBackendKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if len(v.backends) == 0 {
		return v, nil
	}

	switch msg.String() {
	case "left", "h", "up", "k":
		v.backendIdx = (v.backendIdx + len(v.backends) - 1) % len(v.backends)
		v.preview = nil
	case "right", "l", "down", "j":
		v.backendIdx = (v.backendIdx + 1) % len(v.backends)
		v.preview = nil
	}
	return v, nil
}

// setFocus moves keyboard focus between form rows, skipping rows the
// selected backend does not use.
func (v *View) setFocus(f focusArea) {
	v.prefixField.Blur()
	v.inFileField.Blur()
	v.outFileField.Blur()
	v.layersField.Blur()

	backend := v.Backend()
	if backend != nil {
		if !backend.NeedsFiles && (f == focusInFile || f == focusOutFile) {
			if v.focus < f {
				f = focusLayers
			} else {
				f = focusPrefix
			}
		}
		if !backend.NeedsLayerList && f == focusLayers {
			if v.focus < f {
				f = focusBackend
			} else if backend.NeedsFiles {
				f = focusOutFile
			} else {
				f = focusPrefix
			}
		}
	}

	v.focus = f
	switch f {
	case focusPrefix:
		v.prefixField.Focus()
	case focusInFile:
		v.inFileField.Focus()
	case focusOutFile:
		v.outFileField.Focus()
	case focusLayers:
		v.layersField.Focus()
	case focusBackend, focusCount:
		// No text input on the backend row.
	}
}

// request builds the rename request from the current form state.
func (v *View) request() driving.RenameRequest {
	req := driving.RenameRequest{
		Prefix:  v.prefixField.Value(),
		InFile:  v.inFileField.Value(),
		OutFile: v.outFileField.Value(),
		Layers:  splitLayers(v.layersField.Value()),
	}
	if b := v.Backend(); b != nil {
		req.Backend = b.ID
	}
	return req
}

// splitLayers parses the comma-separated layers field.
func splitLayers(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	layers := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			layers = append(layers, trimmed)
		}
	}
	return layers
}

// runPreview returns a command that fetches the planned renames.
func (v *View) runPreview() tea.Cmd {
	req := v.request()
	if err := v.renameService.Validate(req); err != nil {
		v.err = err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(err.Error())
		return nil
	}

	v.working = true
	v.bar.SetState(status.StateWorking)
	return func() tea.Msg {
		report, err := v.renameService.Preview(v.ctx, req)
		return messages.PreviewCompleted{Report: report, Err: err}
	}
}

// runRename returns a command that performs the rename.
func (v *View) runRename() tea.Cmd {
	req := v.request()
	if err := v.renameService.Validate(req); err != nil {
		v.err = err
		v.bar.SetState(status.StateError)
		v.bar.SetMessage(err.Error())
		return nil
	}

	v.working = true
	v.bar.SetState(status.StateWorking)
	return func() tea.Msg {
		report, err := v.renameService.Run(v.ctx, req)
		return messages.RenameCompleted{Report: report, Err: err}
	}
}

// View renders the rename form.
//
//nolint:gocognit // form rendering walks every row
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Rename Layers"))
	b.WriteString("\n\n")

	b.WriteString(v.renderBackendRow())
	b.WriteString("\n\n")

	b.WriteString(v.prefixField.View())
	b.WriteString("\n")

	backend := v.Backend()
	if backend == nil || backend.NeedsFiles {
		b.WriteString(v.inFileField.View())
		b.WriteString("\n")
		b.WriteString(v.outFileField.View())
		b.WriteString("\n")
	} else {
		b.WriteString(v.styles.Muted.Render("  Works on the document open in AutoCAD."))
		b.WriteString("\n")
	}

	if backend != nil && backend.NeedsLayerList {
		b.WriteString(v.layersField.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("  This backend cannot list layers; name them explicitly."))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	if v.preview != nil {
		b.WriteString("\n")
		b.WriteString(v.renderPreview())
	}

	if v.report != nil {
		b.WriteString("\n")
		b.WriteString(v.renderReport())
	}

	b.WriteString("\n")
	b.WriteString(v.bar.View())

	return b.String()
}

func (v *View) renderBackendRow() string {
	if len(v.backends) == 0 {
		return v.styles.Warning.Render("No backends available")
	}

	backend := v.backends[v.backendIdx]
	indicator := "  "
	name := v.styles.Normal.Render(fmt.Sprintf("< %s >", backend.Name))
	if v.focus == focusBackend {
		indicator = "> "
		name = v.styles.Selected.Render(fmt.Sprintf("< %s >", backend.Name))
	}

	row := fmt.Sprintf("%sBackend: %s", indicator, name)
	if backend.WindowsOnly {
		row += " " + v.styles.Warning.Render("[Windows only]")
	}
	row += "\n  " + v.styles.Muted.Render(backend.Description)
	return row
}

func (v *View) renderPreview() string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Planned renames (%d)", len(v.preview.Renamed))))
	b.WriteString("\n")

	for i, r := range v.preview.Renamed {
		if i == previewLimit {
			b.WriteString(v.styles.Muted.Render(
				fmt.Sprintf("  ... and %d more", len(v.preview.Renamed)-previewLimit),
			))
			b.WriteString("\n")
			break
		}
		b.WriteString(v.styles.Normal.Render(fmt.Sprintf("  %s -> %s", r.Old, r.New)))
		b.WriteString("\n")
	}

	for _, skipped := range v.preview.Skipped {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s (reserved, skipped)", skipped)))
		b.WriteString("\n")
	}

	b.WriteString(v.styles.Help.Render("[ctrl+r] run these renames"))
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderReport() string {
	var b strings.Builder

	b.WriteString(v.styles.Success.Render(fmt.Sprintf(
		"Renamed %d layers, skipped %d, in %s.",
		len(v.report.Renamed), len(v.report.Skipped), v.report.Duration.Round(timeRounding),
	)))
	b.WriteString("\n")

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Backend returns the currently selected backend type, or nil.
func (v *View) Backend() *domain.BackendType {
	if len(v.backends) == 0 {
		return nil
	}
	return &v.backends[v.backendIdx]
}

// Err returns the last error shown by the form.
func (v *View) Err() error {
	return v.err
}

// Reset clears the form back to its initial state.
func (v *View) Reset() {
	v.prefixField.Reset()
	v.inFileField.Reset()
	v.outFileField.Reset()
	v.layersField.Reset()
	v.preview = nil
	v.report = nil
	v.err = nil
	v.working = false
	v.bar.Clear()
	v.setFocus(focusBackend)
}
