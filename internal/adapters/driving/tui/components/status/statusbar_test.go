package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 80, bar.Width())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)

	out := bar.View()

	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "tab")
}

func TestBar_View_Working(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateWorking)

	out := bar.View()

	assert.Contains(t, out, "Renaming...")
}

func TestBar_View_Done(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateDone)
	bar.SetCounts(5, 2)

	out := bar.View()

	assert.Contains(t, out, "5 renamed")
	assert.Contains(t, out, "2 skipped")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("file locked")

	out := bar.View()

	assert.Contains(t, out, "Error: file locked")
}

func TestBar_View_Error_NoMessage(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)

	out := bar.View()

	assert.Contains(t, out, "Error")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetCounts(3, 1)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}
