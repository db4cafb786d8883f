// Package provider adapts the go-agents completion backend to the narrow
// contract the classifiers consume: one system message, one prompt, one
// raw text reply.
package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// System sends composed prompts to the completion backend.
type System interface {
	// Complete sends a system message and user prompt, returning the raw
	// reply text. Every failure is wrapped in ErrProvider. The call is
	// bounded by the configured timeout.
	Complete(ctx context.Context, systemMessage, prompt string) (string, error)
}

type llm struct {
	agentCfg gaconfig.AgentConfig
	timeout  time.Duration
	logger   *slog.Logger
}

// New creates a provider system. The call parameters from cfg are applied
// into the agent's provider options once here so every completion carries
// them.
func New(cfg *Config, agentCfg gaconfig.AgentConfig, logger *slog.Logger) System {
	if agentCfg.Provider != nil {
		if agentCfg.Provider.Options == nil {
			agentCfg.Provider.Options = make(map[string]any)
		}
		agentCfg.Provider.Options["temperature"] = cfg.Temperature
		agentCfg.Provider.Options["max_tokens"] = cfg.MaxTokens
	}

	return &llm{
		agentCfg: agentCfg,
		timeout:  cfg.TimeoutDuration(),
		logger:   logger.With("system", "provider"),
	}
}

func (l *llm) Complete(ctx context.Context, systemMessage, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	a, err := agent.New(&l.agentCfg)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrProvider, err)
	}

	composed := prompt
	if systemMessage != "" {
		composed = systemMessage + "\n\n" + prompt
	}

	start := time.Now()
	resp, err := a.Chat(ctx, composed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	l.logger.Debug(
		"completion finished",
		"model", l.agentCfg.Model.Name,
		"duration", time.Since(start),
	)

	return resp.Content(), nil
}
