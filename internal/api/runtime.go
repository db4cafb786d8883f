package api

import (
	"github.com/meridian-legal/counsel/internal/config"
	"github.com/meridian-legal/counsel/internal/infrastructure"
	"github.com/meridian-legal/counsel/internal/provider"
	"github.com/meridian-legal/counsel/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Provider   provider.Config
	Prompts    config.PromptsConfig
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Agent:     infra.Agent,
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Provider:   cfg.Provider,
		Prompts:    cfg.Prompts,
		Pagination: cfg.API.Pagination,
	}
}
