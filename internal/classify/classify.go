// Package classify implements the document classification contract and the
// two task classifiers, jurisdiction and counterparty. Classifiers never
// fail outward: every error path degrades to a result carrying a zero
// confidence and a diagnostic reasoning so callers always have something
// to display and store.
package classify

import "context"

// SuccessConfidence is assigned to every successfully parsed classification.
// The completion provider does not report a calibrated probability, so a
// fixed value distinguishes parsed results from the 0.0 failure sentinel.
const SuccessConfidence = 0.8

// Request carries the inputs for a single classification call.
// Codes is required for counterparty classification and ignored
// by the jurisdiction classifier.
type Request struct {
	DocumentText string       `json:"document_text"`
	CompanyName  string       `json:"company_name"`
	Codes        *CodeCatalog `json:"codes,omitempty"`
}

// Result is the structured outcome of a classification call.
// Label holds a jurisdiction name or a counterparty code depending on task.
// Confidence is always set, 0.0 on any failure path.
type Result struct {
	Label      string  `json:"label"`
	Reasoning  string  `json:"reasoning"`
	Citation   string  `json:"citation"`
	Confidence float64 `json:"confidence"`
}

// Classifier produces a validated classification result for a request.
// Implementations must not return errors through the result path; failures
// degrade to a Result with Confidence 0.
type Classifier interface {
	Classify(ctx context.Context, req Request) Result
}

// Provider sends a composed prompt to the completion backend and returns
// the raw reply text. Implemented by the provider package.
type Provider interface {
	Complete(ctx context.Context, systemMessage, prompt string) (string, error)
}

// TemplateSource resolves the prompt template a classifier renders for a
// task. Implemented by the prompts package, which returns the active
// version's content or an embedded default.
type TemplateSource interface {
	Template(ctx context.Context, task Task) (string, error)
}
