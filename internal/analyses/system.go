package analyses

import (
	"context"
	"io"
)

// System defines the public contract for analysis domain operations.
type System interface {
	Handler() *Handler

	// Analyze runs the classification workflow over the command's document
	// text and persists the result to blob storage best-effort.
	Analyze(ctx context.Context, cmd AnalyzeCommand) (*AnalyzeResult, error)

	// Validate writes the human review verdict onto an analysis. A task
	// flag may be set exactly once; re-validation returns ErrAlreadyValidated.
	Validate(a *Analysis, cmd ValidateCommand) error

	// List returns the blob keys of stored analyses.
	List(ctx context.Context) ([]string, error)

	// Find loads a stored analysis by its blob key (without the prefix).
	Find(ctx context.Context, key string) (*Analysis, error)

	// UploadDocument stores a raw source document and returns its blob key.
	UploadDocument(ctx context.Context, userName, companyName, fileName string, r io.Reader) (string, error)
}
