package workflow

import (
	"log/slog"

	"github.com/meridian-legal/counsel/internal/classify"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed by higher-level composition code from Infrastructure
// and Domain systems.
type Runtime struct {
	Jurisdiction classify.Classifier
	Counterparty classify.Classifier
	Logger       *slog.Logger
}
