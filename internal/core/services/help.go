package services

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/prelayn/prelayn/internal/core/ports/driving"
)

// Ensure HelpService implements the interface.
var _ driving.HelpService = (*HelpService)(nil)

//go:embed help.html
var helpPage []byte

// HelpService opens the bundled help page in the default browser.
type HelpService struct {
	// dir is where the page is written; defaults to the user config dir.
	dir string
}

// NewHelpService creates a new help service writing into dir.
// An empty dir falls back to the OS temp directory.
func NewHelpService(dir string) *HelpService {
	return &HelpService{dir: dir}
}

// Open displays the help page in the default browser.
func (s *HelpService) Open() (string, error) {
	path, err := s.Path()
	if err != nil {
		return "", err
	}
	if err := openURL(path); err != nil {
		return "", fmt.Errorf("open help page: %w", err)
	}
	return path, nil
}

// Path writes the embedded page to disk if necessary and returns its
// location.
func (s *HelpService) Path() (string, error) {
	dir := s.dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create help dir: %w", err)
	}

	path := filepath.Join(dir, "help.html")
	if existing, err := os.ReadFile(path); err == nil && string(existing) == string(helpPage) {
		return path, nil
	}
	if err := os.WriteFile(path, helpPage, 0o644); err != nil {
		return "", fmt.Errorf("write help page: %w", err)
	}
	return path, nil
}

// openURL opens a URL/path using the system default handler.
func openURL(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
