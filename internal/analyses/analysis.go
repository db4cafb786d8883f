// Package analyses implements the analysis domain: running the
// classification workflow over parsed document text, persisting results
// to blob storage, and recording human validation of the outcome.
package analyses

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridian-legal/counsel/internal/classify"
)

// Analysis is the aggregate produced by one analysis run. Validation flags
// start unset and are written exactly once by the reviewing workflow.
type Analysis struct {
	ID           uuid.UUID       `json:"id"`
	UserName     string          `json:"user_name"`
	CompanyName  string          `json:"company_name"`
	Timestamp    time.Time       `json:"timestamp"`
	Jurisdiction classify.Result `json:"jurisdiction"`
	Counterparty classify.Result `json:"counterparty"`

	DocumentNames []string `json:"document_names"`
	CatalogName   string   `json:"catalog_name,omitempty"`
	StorageRefs   []string `json:"storage_refs"`

	JurisdictionCorrect *bool `json:"jurisdiction_correct,omitempty"`
	CounterpartyCorrect *bool `json:"counterparty_correct,omitempty"`
}

// AnalyzeCommand carries the inputs for one analysis run. DocumentText is
// the already-parsed text of the document set; StorageRefs are the blob
// keys of any previously uploaded source documents.
type AnalyzeCommand struct {
	UserName      string                `json:"user_name"`
	CompanyName   string                `json:"company_name"`
	DocumentText  string                `json:"document_text"`
	DocumentNames []string              `json:"document_names"`
	CatalogName   string                `json:"catalog_name,omitempty"`
	Codes         *classify.CodeCatalog `json:"codes"`
	StorageRefs   []string              `json:"storage_refs,omitempty"`
}

// ValidateCommand carries the human review verdict for an analysis.
// Nil flags leave the corresponding task unvalidated.
type ValidateCommand struct {
	JurisdictionCorrect *bool `json:"jurisdiction_correct,omitempty"`
	CounterpartyCorrect *bool `json:"counterparty_correct,omitempty"`
}

// AnalyzeResult pairs a completed analysis with its persistence outcome.
// Saved is false when blob storage was unavailable; the analysis is still
// returned so the caller can proceed.
type AnalyzeResult struct {
	Analysis   Analysis `json:"analysis"`
	StorageKey string   `json:"storage_key,omitempty"`
	Saved      bool     `json:"saved"`
}
