//go:build !windows

package acadauto

import "errors"

// ErrUnsupported is returned on platforms without COM automation.
var ErrUnsupported = errors.New("AutoCAD automation is only available on Windows")

// Session is a placeholder on non-Windows platforms.
type Session struct{}

// Connect always fails; COM automation needs Windows.
func Connect(_ bool) (*Session, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on non-Windows platforms.
func (s *Session) Close() {}
