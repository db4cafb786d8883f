package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/meridian-legal/counsel/internal/classify"
)

// FinalizeNode assembles both task results into the workflow outcome.
func FinalizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		jurisdiction, err := extractResult(s, KeyJurisdiction)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		counterparty, err := extractResult(s, KeyCounterparty)
		if err != nil {
			return s, fmt.Errorf("finalize: %w", err)
		}

		outcome := Outcome{
			Jurisdiction: jurisdiction,
			Counterparty: counterparty,
			CompletedAt:  time.Now(),
		}

		s = s.Set(KeyOutcome, outcome)
		return s, nil
	})
}

func extractResult(s state.State, key string) (classify.Result, error) {
	val, ok := s.Get(key)
	if !ok {
		return classify.Result{}, fmt.Errorf("%w: missing %s in state", ErrFinalizeFailed, key)
	}

	result, ok := val.(classify.Result)
	if !ok {
		return classify.Result{}, fmt.Errorf("%w: %s is not classify.Result", ErrFinalizeFailed, key)
	}

	return result, nil
}
