package api

import (
	"github.com/meridian-legal/counsel/internal/analyses"
	"github.com/meridian-legal/counsel/internal/classify"
	"github.com/meridian-legal/counsel/internal/feedback"
	"github.com/meridian-legal/counsel/internal/parsing"
	"github.com/meridian-legal/counsel/internal/prompts"
	"github.com/meridian-legal/counsel/internal/provider"
	"github.com/meridian-legal/counsel/internal/training"
	"github.com/meridian-legal/counsel/internal/workflow"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Analyses analyses.System
	Training training.System
	Prompts  prompts.System
	Feedback feedback.System
	Parsing  parsing.System
}

// NewDomain creates all domain systems from the API runtime. Prompt templates
// flow from the prompts system into both classifiers, and the training corpus
// feeds prompt optimization.
func NewDomain(runtime *Runtime) *Domain {
	llm := provider.New(&runtime.Provider, runtime.Agent, runtime.Logger)

	trainingSystem := training.New(runtime.Storage, runtime.Logger)

	promptsSystem := prompts.New(
		runtime.Database.Connection(),
		trainingSystem,
		runtime.Logger,
		runtime.Pagination,
		runtime.Prompts.FewShotCap,
		runtime.Prompts.TemplatesDir,
	)

	rt := &workflow.Runtime{
		Jurisdiction: classify.NewJurisdictionClassifier(llm, promptsSystem, runtime.Logger),
		Counterparty: classify.NewCounterpartyClassifier(llm, promptsSystem, runtime.Logger),
		Logger:       runtime.Logger,
	}

	return &Domain{
		Analyses: analyses.New(rt, runtime.Storage, runtime.Logger),
		Training: trainingSystem,
		Prompts:  promptsSystem,
		Feedback: feedback.New(runtime.Storage, runtime.Logger),
		Parsing:  parsing.New(runtime.Logger),
	}
}
