package prompts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/training"
)

// DefaultFewShotCap bounds the few-shot set embedded into an optimized
// prompt when no cap is configured.
const DefaultFewShotCap = 8

const versionTimeLayout = "20060102_150405"

// FilterValidated keeps only the examples validated correct for the task,
// in their original order.
func FilterValidated(task classify.Task, examples []training.Example) []training.Example {
	validated := make([]training.Example, 0, len(examples))
	for i := range examples {
		if examples[i].ValidatedFor(task) {
			validated = append(validated, examples[i])
		}
	}
	return validated
}

// BuildVersion assembles a new inactive prompt version from validated
// training examples. The few-shot set is the first min(len, cap) validated
// examples in store order; the content augments the base template with a
// provenance header and the few-shot set so operators can diff versions.
// Returns ErrInsufficientData when no example is validated for the task.
func BuildVersion(
	task classify.Task,
	base string,
	examples []training.Example,
	limit int,
	now time.Time,
) (Version, error) {
	validated := FilterValidated(task, examples)
	if len(validated) == 0 {
		return Version{}, ErrInsufficientData
	}

	if limit < 1 {
		limit = DefaultFewShotCap
	}
	fewShot := validated[:min(len(validated), limit)]

	return Version{
		VersionID:          fmt.Sprintf("v%s_optimized", now.Format(versionTimeLayout)),
		Task:               task,
		Content:            composeContent(task, base, fewShot, len(validated), now),
		SourceExampleCount: len(validated),
	}, nil
}

// Optimize derives a new inactive prompt version for the command's task
// from the training corpus window and persists it.
func (r *repo) Optimize(ctx context.Context, cmd OptimizeCommand) (*Version, error) {
	examples, err := r.corpus.Load(ctx, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load training examples: %w", err)
	}

	base, err := r.Template(ctx, cmd.Task)
	if err != nil {
		return nil, fmt.Errorf("resolve base template: %w", err)
	}

	version, err := BuildVersion(cmd.Task, base, examples, r.fewShotCap, time.Now())
	if err != nil {
		return nil, err
	}

	created, err := r.create(ctx, version)
	if err != nil {
		return nil, err
	}

	r.logger.Info(
		"prompt optimized",
		"task", cmd.Task,
		"version", created.VersionID,
		"validated_examples", created.SourceExampleCount,
	)

	return created, nil
}

func composeContent(
	task classify.Task,
	base string,
	fewShot []training.Example,
	sourceCount int,
	now time.Time,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Optimized prompt generated on %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "# Based on %d training examples\n", sourceCount)
	b.WriteString(base)

	if len(fewShot) > 0 {
		b.WriteString("\n\nValidated examples:\n")
		for i := range fewShot {
			writeExample(&b, task, &fewShot[i])
		}
	}

	return b.String()
}

func writeExample(b *strings.Builder, task classify.Task, ex *training.Example) {
	var result classify.Result
	switch task {
	case classify.TaskJurisdiction:
		result = ex.Analysis.Jurisdiction
	case classify.TaskCounterparty:
		result = ex.Analysis.Counterparty
	}

	fmt.Fprintf(b, "\nCompany: %s\n", ex.Analysis.CompanyName)
	fmt.Fprintf(b, "Classification: %s\n", result.Label)
	if result.Reasoning != "" {
		fmt.Fprintf(b, "Reasoning: %s\n", result.Reasoning)
	}
	if result.Citation != "" {
		fmt.Fprintf(b, "Citation: %s\n", result.Citation)
	}
}
