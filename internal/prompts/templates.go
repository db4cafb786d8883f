package prompts

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meridian-legal/counsel/internal/classify"
)

//go:embed templates/*.txt
var defaultTemplates embed.FS

// DefaultTemplate returns the embedded base template for a task.
func DefaultTemplate(task classify.Task) (string, error) {
	data, err := defaultTemplates.ReadFile(fmt.Sprintf("templates/%s.txt", task))
	if err != nil {
		return "", fmt.Errorf("default template for %s: %w", task, err)
	}
	return string(data), nil
}

// LoadTemplate reads an exported prompt version from disk at
// <dir>/<task>/<versionID>.txt. A load failure is recoverable: the error
// is returned as displayable content so callers can surface it instead
// of aborting.
func LoadTemplate(dir string, task classify.Task, versionID string) string {
	path := filepath.Join(dir, string(task), versionID+".txt")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("Error loading prompt: %s", err)
	}

	return string(data)
}
