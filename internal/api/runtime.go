package api

import (
	"github.com/JaimeStill/account-lab/internal/config"
	"github.com/JaimeStill/account-lab/internal/infrastructure"
	"github.com/JaimeStill/account-lab/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Registry:  infra.Registry,
			Metrics:   infra.Metrics,
		},
		Pagination: cfg.API.Pagination,
	}
}
