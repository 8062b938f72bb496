package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prelayn/prelayn/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewMenu, "menu"},
		{ViewRename, "rename"},
		{ViewHistory, "history"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewChanged(t *testing.T) {
	msg := ViewChanged{View: ViewHistory}

	assert.Equal(t, ViewHistory, msg.View)
}

func TestRenameCompleted(t *testing.T) {
	report := &domain.RenameReport{
		Renamed: []domain.LayerRename{{Old: "Walls", New: "P-Walls"}},
		Skipped: []string{"0"},
	}
	msg := RenameCompleted{Report: report}

	assert.Len(t, msg.Report.Renamed, 1)
	assert.NoError(t, msg.Err)
}

func TestErrorOccurred(t *testing.T) {
	err := errors.New("boom")
	msg := ErrorOccurred{Err: err}

	assert.Equal(t, err, msg.Err)
}
