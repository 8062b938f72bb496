// Package history provides the run history view for the TUI.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prelayn/prelayn/internal/adapters/driving/tui/messages"
	"github.com/prelayn/prelayn/internal/adapters/driving/tui/styles"
	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driving"
	"github.com/prelayn/prelayn/internal/pathutil"
)

// loadLimit caps how many records the view fetches.
const loadLimit = 50

// View lists recorded rename runs, newest first.
type View struct {
	styles         *styles.Styles
	historyService driving.HistoryService
	ctx            context.Context

	records  []domain.JobRecord
	selected int
	err      error
	loaded   bool

	width  int
	height int
	ready  bool
}

// NewView creates a new history view.
func NewView(s *styles.Styles, historyService driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:         s,
		historyService: historyService,
		ctx:            context.Background(),
	}
}

// SetContext sets the context used when loading records.
func (v *View) SetContext(ctx context.Context) {
	if ctx != nil {
		v.ctx = ctx
	}
}

// Init initialises the view and loads the history.
func (v *View) Init() tea.Cmd {
	return v.loadHistory()
}

// loadHistory returns a command that fetches recorded runs.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.HistoryLoaded{Err: fmt.Errorf("history service not available")}
		}
		records, err := v.historyService.List(v.ctx, loadLimit)
		return messages.HistoryLoaded{Records: records, Err: err}
	}
}

// clearHistory returns a command that deletes all records.
func (v *View) clearHistory() tea.Cmd {
	return func() tea.Msg {
		if err := v.historyService.Clear(v.ctx); err != nil {
			return messages.HistoryCleared{Err: err}
		}
		return messages.HistoryCleared{}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case messages.HistoryLoaded:
		v.loaded = true
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.records = msg.Records
		if v.selected >= len(v.records) {
			v.selected = 0
		}
		return v, nil

	case messages.HistoryCleared:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.records = nil
		v.selected = 0
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}

	case "down", "j":
		if v.selected < len(v.records)-1 {
			v.selected++
		}

	case "r":
		return v, v.loadHistory()

	case "x":
		return v, v.clearHistory()
	}

	return v, nil
}

// View renders the history list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	switch {
	case !v.loaded:
		b.WriteString(v.styles.Muted.Render("Loading history..."))
	case len(v.records) == 0:
		b.WriteString(v.styles.Muted.Render("No rename runs recorded yet."))
	default:
		b.WriteString(v.renderRecords())
	}

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [r] reload  [x] clear  [esc] back"))

	return b.String()
}

func (v *View) renderRecords() string {
	var b strings.Builder

	for i, rec := range v.records {
		indicator := "  "
		line := v.recordLine(rec)
		if i == v.selected {
			indicator = "> "
			b.WriteString(indicator + v.styles.Selected.Render(line))
		} else {
			b.WriteString(indicator + v.styles.Normal.Render(line))
		}
		b.WriteString("\n")

		if i == v.selected {
			b.WriteString(v.recordDetail(rec))
		}
	}

	return b.String()
}

// recordLine is the one-line summary shown in the list.
func (v *View) recordLine(rec domain.JobRecord) string {
	file := rec.Job.InFile
	if file == "" {
		file = "(active document)"
	}
	return fmt.Sprintf(
		"%s  %-8s %-9s %s",
		rec.FinishedAt.Local().Format("2006-01-02 15:04"),
		rec.Job.Backend,
		string(rec.Status),
		pathutil.Shorten(file, pathutil.DefaultLimit),
	)
}

// recordDetail is the expanded block under the selected record.
func (v *View) recordDetail(rec domain.JobRecord) string {
	var b strings.Builder

	b.WriteString(v.styles.Muted.Render(fmt.Sprintf(
		"    prefix %q, %d renamed, %d skipped",
		rec.Job.Prefix.String(), rec.LayersRenamed, rec.LayersSkipped,
	)))
	b.WriteString("\n")

	if rec.Job.OutFile != "" {
		b.WriteString(v.styles.Muted.Render(
			"    saved to " + pathutil.Shorten(rec.Job.OutFile, pathutil.DefaultLimit),
		))
		b.WriteString("\n")
	}

	if rec.Status == domain.JobFailed && rec.Error != "" {
		b.WriteString(v.styles.Error.Render("    " + rec.Error))
		b.WriteString("\n")
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Records returns the loaded records.
func (v *View) Records() []domain.JobRecord {
	return v.records
}

// Err returns the last error, or nil.
func (v *View) Err() error {
	return v.err
}

// Reset clears the view so the next Init reloads from scratch.
func (v *View) Reset() {
	v.records = nil
	v.selected = 0
	v.err = nil
	v.loaded = false
}
