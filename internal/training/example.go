// Package training implements the training corpus: human-validated
// analysis outcomes persisted as immutable examples, plus the accuracy
// metric computed over them.
package training

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/analyses"
	"github.com/meridian-legal/counsel/internal/classify"
)

// Example is one validated analysis packaged for prompt optimization.
// It embeds the full analysis, the source text, and the code catalog in
// effect at analysis time so the decision space can be reconstructed.
// Immutable once stored.
type Example struct {
	ID           uuid.UUID             `json:"id"`
	Analysis     analyses.Analysis     `json:"analysis_result"`
	DocumentText string                `json:"document_text"`
	Codes        *classify.CodeCatalog `json:"counterparty_codes"`
	CreatedAt    time.Time             `json:"created_at"`
}

// ValidatedFor reports whether the example's analysis was marked correct
// for the given task. Unset flags count as not validated.
func (e *Example) ValidatedFor(task classify.Task) bool {
	switch task {
	case classify.TaskJurisdiction:
		return e.Analysis.JurisdictionCorrect != nil && *e.Analysis.JurisdictionCorrect
	case classify.TaskCounterparty:
		return e.Analysis.CounterpartyCorrect != nil && *e.Analysis.CounterpartyCorrect
	default:
		return false
	}
}

// SubmitCommand carries a reviewed analysis into the training corpus.
type SubmitCommand struct {
	Analysis     analyses.Analysis     `json:"analysis_result"`
	DocumentText string                `json:"document_text"`
	Codes        *classify.CodeCatalog `json:"counterparty_codes"`
}

// AccuracyReport summarizes validation outcomes for one task.
type AccuracyReport struct {
	Task     classify.Task `json:"task"`
	Total    int           `json:"total"`
	Correct  int           `json:"correct"`
	Accuracy float64       `json:"accuracy"`
}

// Accuracy computes the share of examples validated correct for a task.
// Defined as 0.0 when no examples are supplied.
func Accuracy(task classify.Task, examples []Example) AccuracyReport {
	report := AccuracyReport{Task: task, Total: len(examples)}

	for i := range examples {
		if examples[i].ValidatedFor(task) {
			report.Correct++
		}
	}

	if report.Total > 0 {
		report.Accuracy = float64(report.Correct) / float64(report.Total)
	}

	return report
}
