package training

import (
	"context"

	"github.com/meridian-legal/counsel/internal/classify"
)

// System defines the public contract for training corpus operations.
type System interface {
	Handler() *Handler

	// Submit stores a reviewed analysis as a new training example.
	// Each call creates a distinctly-keyed record; examples are never
	// updated in place.
	Submit(ctx context.Context, cmd SubmitCommand) (*Example, string, error)

	// List returns the blob keys of stored examples.
	List(ctx context.Context) ([]string, error)

	// Get loads an example by its blob key (without the prefix).
	Get(ctx context.Context, key string) (*Example, error)

	// Load returns stored examples, optionally bounded by creation date
	// (inclusive, YYYY-MM-DD). Empty bounds are ignored.
	Load(ctx context.Context, startDate, endDate string) ([]Example, error)

	// Accuracy loads examples in the date range and reports the share
	// validated correct for the task.
	Accuracy(ctx context.Context, task classify.Task, startDate, endDate string) (*AccuracyReport, error)
}
