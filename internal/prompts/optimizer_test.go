package prompts_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/meridian-legal/counsel/internal/analyses"
	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/prompts"
	"github.com/meridian-legal/counsel/internal/training"
)

func boolPtr(v bool) *bool { return &v }

func example(company string, jurisdiction *bool) training.Example {
	return training.Example{
		Analysis: analyses.Analysis{
			CompanyName:         company,
			Jurisdiction:        classify.Result{Label: "Delaware", Reasoning: "charter", Citation: "sec 1"},
			Counterparty:        classify.Result{Label: "A001"},
			JurisdictionCorrect: jurisdiction,
		},
		DocumentText: "text",
		CreatedAt:    time.Now(),
	}
}

func TestBuildVersionFiltersValidated(t *testing.T) {
	examples := []training.Example{
		example("Validated Co", boolPtr(true)),
		example("Rejected Co", boolPtr(false)),
		example("Unreviewed Co", nil),
	}

	v, err := prompts.BuildVersion(classify.TaskJurisdiction, "base", examples, 8, time.Now())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if v.SourceExampleCount != 1 {
		t.Errorf("SourceExampleCount = %d, want 1", v.SourceExampleCount)
	}
	if !strings.Contains(v.Content, "Validated Co") {
		t.Error("content missing validated example")
	}
	if strings.Contains(v.Content, "Rejected Co") || strings.Contains(v.Content, "Unreviewed Co") {
		t.Error("content contains non-validated example")
	}
}

func TestBuildVersionInsufficientData(t *testing.T) {
	examples := []training.Example{
		example("Rejected Co", boolPtr(false)),
		example("Unreviewed Co", nil),
	}

	_, err := prompts.BuildVersion(classify.TaskJurisdiction, "base", examples, 8, time.Now())
	if !errors.Is(err, prompts.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
}

func TestBuildVersionCapsFewShotSet(t *testing.T) {
	examples := make([]training.Example, 0, 12)
	for i := range 12 {
		examples = append(examples, example(fmt.Sprintf("Company %02d", i), boolPtr(true)))
	}

	v, err := prompts.BuildVersion(classify.TaskJurisdiction, "base", examples, 8, time.Now())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if v.SourceExampleCount != 12 {
		t.Errorf("SourceExampleCount = %d, want 12", v.SourceExampleCount)
	}

	embedded := strings.Count(v.Content, "Company: ")
	if embedded != 8 {
		t.Errorf("embedded examples = %d, want 8", embedded)
	}

	// Store order: the first eight survive, the rest do not.
	if !strings.Contains(v.Content, "Company 00") || !strings.Contains(v.Content, "Company 07") {
		t.Error("content missing expected few-shot examples")
	}
	if strings.Contains(v.Content, "Company 08") {
		t.Error("content contains example beyond the cap")
	}
}

func TestBuildVersionContentShape(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	examples := []training.Example{example("Acme Corp", boolPtr(true))}

	v, err := prompts.BuildVersion(classify.TaskJurisdiction, "BASE TEMPLATE", examples, 8, now)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if v.VersionID != "v20260314_093000_optimized" {
		t.Errorf("VersionID = %q", v.VersionID)
	}
	if v.Active {
		t.Error("new version must start inactive")
	}
	if !strings.HasPrefix(v.Content, "# Optimized prompt generated on ") {
		t.Errorf("content missing generation header: %q", v.Content)
	}
	if !strings.Contains(v.Content, "# Based on 1 training examples") {
		t.Error("content missing provenance count")
	}
	if !strings.Contains(v.Content, "BASE TEMPLATE") {
		t.Error("content missing base template")
	}
}

func TestBuildVersionCounterpartyUsesCounterpartyResult(t *testing.T) {
	ex := example("Acme Corp", nil)
	ex.Analysis.CounterpartyCorrect = boolPtr(true)
	ex.Analysis.Counterparty = classify.Result{Label: "B002", Reasoning: "underwriting"}

	v, err := prompts.BuildVersion(classify.TaskCounterparty, "base", []training.Example{ex}, 8, time.Now())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !strings.Contains(v.Content, "Classification: B002") {
		t.Error("content missing counterparty classification")
	}
	if strings.Contains(v.Content, "Classification: Delaware") {
		t.Error("content used jurisdiction result for counterparty task")
	}
}
