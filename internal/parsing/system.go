package parsing

import (
	"context"

	"github.com/meridian-legal/counsel/internal/classify"
)

// System defines the public contract for parsing operations.
type System interface {
	Handler() *Handler

	// Parse extracts the text content of a single document.
	Parse(ctx context.Context, file File) (string, error)

	// ParseMany extracts and combines the text of multiple documents.
	// Files that fail to parse contribute an inline error block instead
	// of failing the whole batch.
	ParseMany(ctx context.Context, files []File) string

	// ParseTable reads a delimited code table into an ordered catalog.
	ParseTable(ctx context.Context, file File) (*classify.CodeCatalog, error)
}
