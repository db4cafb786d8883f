// Package prompts implements the prompt version domain: per-task prompt
// templates, the optimizer that derives new versions from validated
// training examples, and the activation lifecycle guaranteeing at most
// one active version per task.
package prompts

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
)

// Version is one immutable prompt revision for a classification task.
// New versions start inactive; activation is a separate explicit step.
type Version struct {
	ID                 uuid.UUID     `json:"id"`
	VersionID          string        `json:"version_id"`
	Task               classify.Task `json:"task"`
	Content            string        `json:"content"`
	SourceExampleCount int           `json:"source_example_count"`
	Active             bool          `json:"active"`
	CreatedAt          time.Time     `json:"created_at"`
}

// OptimizeCommand selects the training window for an optimization run.
// Empty dates include the whole corpus.
type OptimizeCommand struct {
	Task      classify.Task `json:"task"`
	StartDate string        `json:"start_date,omitempty"`
	EndDate   string        `json:"end_date,omitempty"`
}
