//go:build windows

package sendkeys

import (
	"context"
	"fmt"
	"time"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/time/rate"

	"github.com/prelayn/prelayn/internal/core/domain"
	"github.com/prelayn/prelayn/internal/core/ports/driven"
	"github.com/prelayn/prelayn/internal/logger"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// startupDelay is how long we wait after handing the drawing to the
// shell before typing anything. AutoCAD takes a while to come up.
const startupDelay = 3 * time.Second

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard    = 1
	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004

	vkReturn = 0x0D
	vkEscape = 0x1B
	vkMenu   = 0x12 // alt
)

// keyboardInput mirrors KEYBDINPUT.
type keyboardInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

// input mirrors INPUT. The union member is sized for MOUSEINPUT, which
// is larger than KEYBDINPUT, hence the trailing pad.
type input struct {
	kind uint32
	_    uint32
	ki   keyboardInput
	_    [8]byte
}

// Backend drives AutoCAD through the keyboard. It shell-opens the
// drawing, types the rename script into the focused window and saves
// through SAVEAS. There is no feedback channel: if focus moves away the
// keystrokes land somewhere else.
type Backend struct {
	job     domain.RenameJob
	limiter *rate.Limiter
}

func newBackend(job domain.RenameJob, delay time.Duration) (driven.Backend, error) {
	return &Backend{
		job:     job,
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}, nil
}

// Type returns the backend type identifier.
func (b *Backend) Type() string {
	return domain.BackendSendKeys
}

// Capabilities returns what this backend supports.
func (b *Backend) Capabilities() driven.BackendCapabilities {
	return capabilities()
}

// Validate checks the job names the layers to rename. The backend is
// blind, so an explicit list is the only way it knows what to type.
func (b *Backend) Validate(_ context.Context) error {
	if len(b.job.Layers) == 0 {
		return domain.ErrLayersRequired
	}
	return nil
}

// ListLayers always fails: keystrokes go one way.
func (b *Backend) ListLayers(_ context.Context) ([]domain.Layer, error) {
	return nil, fmt.Errorf("%w: the keystroke backend cannot read layers back",
		domain.ErrBackendUnavailable)
}

// Rename opens the drawing with the shell and types the rename script.
func (b *Backend) Rename(ctx context.Context) (*domain.RenameReport, error) {
	if err := b.Validate(ctx); err != nil {
		return nil, err
	}
	start := time.Now()

	if err := shellOpen(b.job.InFile); err != nil {
		return nil, fmt.Errorf("opening %s: %w", b.job.InFile, err)
	}
	logger.Info("sendkeys: opened %s, waiting for the application", b.job.InFile)

	select {
	case <-time.After(startupDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	for _, step := range Script(b.job) {
		if err := b.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		if err := b.inject(step); err != nil {
			return nil, err
		}
	}

	renamed, skipped := plannedRenames(b.job)
	return &domain.RenameReport{
		Renamed:  renamed,
		Skipped:  skipped,
		Duration: time.Since(start),
	}, nil
}

// Close releases nothing; the injected session keeps running.
func (b *Backend) Close() error {
	return nil
}

func (b *Backend) inject(step Step) error {
	if len(step.Keys) > 0 {
		return sendChord(step.Keys)
	}
	logger.Debug("sendkeys: typing %q", step.Text)
	if err := sendText(step.Text); err != nil {
		return err
	}
	return sendKey(vkReturn)
}

func shellOpen(path string) error {
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
}

// sendText types a string as KEYEVENTF_UNICODE events, which sidesteps
// keyboard layouts entirely.
func sendText(text string) error {
	var inputs []input
	for _, unit := range utf16.Encode([]rune(text)) {
		inputs = append(inputs,
			input{kind: inputKeyboard, ki: keyboardInput{scan: unit, flags: keyeventfUnicode}},
			input{kind: inputKeyboard, ki: keyboardInput{scan: unit, flags: keyeventfUnicode | keyeventfKeyUp}},
		)
	}
	return sendInputs(inputs)
}

func sendKey(vk uint16) error {
	return sendInputs([]input{
		{kind: inputKeyboard, ki: keyboardInput{vk: vk}},
		{kind: inputKeyboard, ki: keyboardInput{vk: vk, flags: keyeventfKeyUp}},
	})
}

// sendChord presses the named keys together and releases them in
// reverse order.
func sendChord(names []string) error {
	vks := make([]uint16, 0, len(names))
	for _, name := range names {
		vk, err := virtualKey(name)
		if err != nil {
			return err
		}
		vks = append(vks, vk)
	}
	var inputs []input
	for _, vk := range vks {
		inputs = append(inputs, input{kind: inputKeyboard, ki: keyboardInput{vk: vk}})
	}
	for i := len(vks) - 1; i >= 0; i-- {
		inputs = append(inputs, input{kind: inputKeyboard, ki: keyboardInput{vk: vks[i], flags: keyeventfKeyUp}})
	}
	return sendInputs(inputs)
}

func virtualKey(name string) (uint16, error) {
	switch name {
	case "alt":
		return vkMenu, nil
	case "esc":
		return vkEscape, nil
	case "enter":
		return vkReturn, nil
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return uint16(name[0] - 'a' + 'A'), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

func sendInputs(inputs []input) error {
	if len(inputs) == 0 {
		return nil
	}
	sent, _, err := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if int(sent) != len(inputs) {
		return fmt.Errorf("SendInput delivered %d of %d events: %w", sent, len(inputs), err)
	}
	return nil
}
