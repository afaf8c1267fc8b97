// Package api assembles the JSON API module: domain systems, their routes,
// the generated OpenAPI document and the module middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/account-lab/internal/config"
	"github.com/JaimeStill/account-lab/internal/infrastructure"
	"github.com/JaimeStill/account-lab/pkg/middleware"
	"github.com/JaimeStill/account-lab/pkg/module"
	"github.com/JaimeStill/account-lab/pkg/openapi"
)

// NewModule builds the API module from the shared infrastructure.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	return newModule(cfg, runtime, NewDomain(runtime))
}

func newModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, cfg.API.BasePath, spec, domain, runtime.Logger, runtime.Pagination)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	if out := cfg.API.OpenAPI.Output; out != "" {
		if err := openapi.WriteFile(out, specBytes); err != nil {
			return nil, err
		}
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(runtime.Metrics.Instrument("api"))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodyBytes()))

	return m, nil
}
