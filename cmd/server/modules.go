package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/account-lab/internal/api"
	"github.com/JaimeStill/account-lab/internal/config"
	"github.com/JaimeStill/account-lab/internal/infrastructure"
	"github.com/JaimeStill/account-lab/pkg/middleware"
	"github.com/JaimeStill/account-lab/pkg/module"
	"github.com/JaimeStill/account-lab/web/app"
	"github.com/JaimeStill/account-lab/web/scalar"
)

// Modules holds the mounted application modules.
type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

// NewModules builds the API, app and Scalar modules from the infrastructure.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(app.Options{
		BasePath: cfg.App.BasePath,
		APIPath:  cfg.API.BasePath,
		Title:    cfg.App.Title,
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.RequestID())
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))
	appModule.Use(infra.Metrics.Instrument("app"))

	scalarModule, err := scalar.NewModule(
		"/scalar",
		cfg.API.OpenAPI.Title,
		cfg.API.BasePath+"/openapi.json",
	)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

// Mount registers every module with router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure, appPath string) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPath, http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{}).ServeHTTP)

	return router
}
