package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tw-event-radar/radar/internal/constants"
)

// DefaultPath returns <dir>/<date>.md, using the default content dir when dir
// is empty.
func DefaultPath(dir, date string) string {
	if dir == "" {
		dir = constants.DefaultContentDir
	}
	return filepath.Join(dir, date+".md")
}

// WriteFile writes the document, creating parent directories as needed.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
