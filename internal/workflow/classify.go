package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/meridian-legal/counsel/internal/classify"
)

// ClassifyNode returns a state node that runs the jurisdiction and
// counterparty classifiers concurrently. The classifiers share no mutable
// state and self-contain their failure handling, so each goroutine only
// writes its own result slot.
func ClassifyNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		req, err := extractRequest(s)
		if err != nil {
			return s, fmt.Errorf("classify: %w", err)
		}

		var jurisdiction, counterparty classify.Result

		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			jurisdiction = rt.Jurisdiction.Classify(gctx, req)
			return nil
		})

		g.Go(func() error {
			counterparty = rt.Counterparty.Classify(gctx, req)
			return nil
		})

		if err := g.Wait(); err != nil {
			return s, fmt.Errorf("%w: %w", ErrClassifyFailed, err)
		}

		rt.Logger.InfoContext(
			ctx, "classify node complete",
			"company", req.CompanyName,
			"jurisdiction", jurisdiction.Label,
			"counterparty", counterparty.Label,
		)

		s = s.Set(KeyJurisdiction, jurisdiction)
		s = s.Set(KeyCounterparty, counterparty)
		return s, nil
	})
}

func extractRequest(s state.State) (classify.Request, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return classify.Request{}, fmt.Errorf("%w: missing %s in state", ErrClassifyFailed, KeyRequest)
	}

	req, ok := val.(classify.Request)
	if !ok {
		return classify.Request{}, fmt.Errorf("%w: %s is not classify.Request", ErrClassifyFailed, KeyRequest)
	}

	return req, nil
}
