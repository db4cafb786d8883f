package prompts_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/prompts"
)

func TestDefaultTemplatePlaceholders(t *testing.T) {
	tests := []struct {
		task         classify.Task
		placeholders []string
	}{
		{classify.TaskJurisdiction, []string{"{document_text}", "{company_name}"}},
		{classify.TaskCounterparty, []string{"{document_text}", "{company_name}", "{available_codes}"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.task), func(t *testing.T) {
			content, err := prompts.DefaultTemplate(tt.task)
			if err != nil {
				t.Fatalf("default template failed: %v", err)
			}

			for _, ph := range tt.placeholders {
				if !strings.Contains(content, ph) {
					t.Errorf("template missing placeholder %s", ph)
				}
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	dir := t.TempDir()
	taskDir := filepath.Join(dir, "jurisdiction")
	if err := os.MkdirAll(taskDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	content := "exported template {document_text}"
	if err := os.WriteFile(filepath.Join(taskDir, "v1.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got := prompts.LoadTemplate(dir, classify.TaskJurisdiction, "v1")
	if got != content {
		t.Errorf("LoadTemplate = %q, want %q", got, content)
	}
}

func TestLoadTemplateMissingFileReturnsErrorString(t *testing.T) {
	got := prompts.LoadTemplate(t.TempDir(), classify.TaskCounterparty, "missing")
	if !strings.HasPrefix(got, "Error loading prompt: ") {
		t.Errorf("LoadTemplate = %q, want error string", got)
	}
}
