package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/meridian-legal/counsel/pkg/formatting"
)

const jurisdictionSystemMessage = `You are a legal expert specializing in corporate jurisdiction analysis.
Your task is to analyze legal documents and determine the jurisdiction of a company.
Always provide your response in the following JSON format:
{
    "jurisdiction": "specific jurisdiction",
    "reasoning": "detailed reasoning for the classification",
    "citation": "relevant text snippet from the document",
    "confidence": 0.95
}`

type jurisdictionReply struct {
	Jurisdiction string `json:"jurisdiction"`
	Reasoning    string `json:"reasoning"`
	Citation     string `json:"citation"`
}

type jurisdictionClassifier struct {
	provider  Provider
	templates TemplateSource
	logger    *slog.Logger
}

// NewJurisdictionClassifier creates the jurisdiction task classifier.
func NewJurisdictionClassifier(
	provider Provider,
	templates TemplateSource,
	logger *slog.Logger,
) Classifier {
	return &jurisdictionClassifier{
		provider:  provider,
		templates: templates,
		logger:    logger.With("classifier", "jurisdiction"),
	}
}

func (c *jurisdictionClassifier) Classify(ctx context.Context, req Request) Result {
	template, err := c.templates.Template(ctx, TaskJurisdiction)
	if err != nil {
		c.logger.Warn("template resolution failed", "error", err)
		return jurisdictionFallback(err.Error(), "N/A")
	}

	prompt := strings.NewReplacer(
		"{document_text}", req.DocumentText,
		"{company_name}", req.CompanyName,
	).Replace(template)

	raw, err := c.provider.Complete(ctx, jurisdictionSystemMessage, prompt)
	if err != nil {
		c.logger.Warn("completion failed", "error", err)
		return jurisdictionFallback(err.Error(), "N/A")
	}

	reply, err := formatting.Parse[jurisdictionReply](raw)
	if err != nil {
		c.logger.Warn("reply parse failed", "company", req.CompanyName)
		return jurisdictionFallback("Failed to parse response", formatting.Snippet(raw, 200))
	}

	return Result{
		Label:      reply.Jurisdiction,
		Reasoning:  reply.Reasoning,
		Citation:   reply.Citation,
		Confidence: SuccessConfidence,
	}
}

func jurisdictionFallback(reasoning, citation string) Result {
	return Result{
		Label:      "Unknown",
		Reasoning:  reasoning,
		Citation:   citation,
		Confidence: 0.0,
	}
}
