package workflow

import (
	"errors"
	"time"

	"github.com/meridian-legal/counsel/internal/classify"
)

// State keys shared between workflow nodes.
const (
	KeyRequest      = "request"
	KeyJurisdiction = "jurisdiction"
	KeyCounterparty = "counterparty"
	KeyOutcome      = "outcome"
)

// Workflow stage errors.
var (
	ErrClassifyFailed = errors.New("classify stage failed")
	ErrFinalizeFailed = errors.New("finalize stage failed")
)

// Outcome carries both task results for a single analysis run.
type Outcome struct {
	Jurisdiction classify.Result `json:"jurisdiction"`
	Counterparty classify.Result `json:"counterparty"`
	CompletedAt  time.Time       `json:"completed_at"`
}
