package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/meridian-legal/counsel/pkg/formatting"
)

const counterpartySystemMessage = `You are a legal expert specializing in corporate counterparty classification.
Your task is to analyze legal documents and assign the most appropriate counterparty code.
Always provide your response in the following JSON format:
{
    "code": "selected_code",
    "reasoning": "detailed reasoning for the classification",
    "citation": "relevant text snippet from the document",
    "confidence": 0.95
}`

type counterpartyReply struct {
	Code      string `json:"code"`
	Reasoning string `json:"reasoning"`
	Citation  string `json:"citation"`
}

type counterpartyClassifier struct {
	provider  Provider
	templates TemplateSource
	logger    *slog.Logger
}

// NewCounterpartyClassifier creates the counterparty task classifier.
func NewCounterpartyClassifier(
	provider Provider,
	templates TemplateSource,
	logger *slog.Logger,
) Classifier {
	return &counterpartyClassifier{
		provider:  provider,
		templates: templates,
		logger:    logger.With("classifier", "counterparty"),
	}
}

func (c *counterpartyClassifier) Classify(ctx context.Context, req Request) Result {
	codes := req.Codes
	if codes == nil {
		codes = NewCodeCatalog()
	}

	template, err := c.templates.Template(ctx, TaskCounterparty)
	if err != nil {
		c.logger.Warn("template resolution failed", "error", err)
		return counterpartyFallback(codes, err.Error(), "N/A")
	}

	prompt := strings.NewReplacer(
		"{document_text}", req.DocumentText,
		"{company_name}", req.CompanyName,
		"{available_codes}", codes.Render(),
	).Replace(template)

	raw, err := c.provider.Complete(ctx, counterpartySystemMessage, prompt)
	if err != nil {
		c.logger.Warn("completion failed", "error", err)
		return counterpartyFallback(codes, err.Error(), "N/A")
	}

	reply, err := formatting.Parse[counterpartyReply](raw)
	if err != nil {
		c.logger.Warn("reply parse failed", "company", req.CompanyName)
		return counterpartyFallback(codes, "Failed to parse response", formatting.Snippet(raw, 200))
	}

	// The emitted code is always a catalog key or the UNKNOWN sentinel,
	// so callers never re-validate.
	code := reply.Code
	if !codes.Has(code) {
		code = codes.First()
	}

	return Result{
		Label:      code,
		Reasoning:  reply.Reasoning,
		Citation:   reply.Citation,
		Confidence: SuccessConfidence,
	}
}

func counterpartyFallback(codes *CodeCatalog, reasoning, citation string) Result {
	return Result{
		Label:      codes.First(),
		Reasoning:  reasoning,
		Citation:   citation,
		Confidence: 0.0,
	}
}
