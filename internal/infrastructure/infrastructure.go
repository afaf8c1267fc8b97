// Package infrastructure assembles the core systems every module depends on:
// lifecycle coordination, logging, the database pool and request metrics.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/account-lab/internal/config"
	"github.com/JaimeStill/account-lab/internal/migrations"
	"github.com/JaimeStill/account-lab/pkg/database"
	"github.com/JaimeStill/account-lab/pkg/lifecycle"
	"github.com/JaimeStill/account-lab/pkg/logging"
	"github.com/JaimeStill/account-lab/pkg/middleware"
)

// MetricsNamespace prefixes every collector the service registers.
const MetricsNamespace = "account_lab"

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Registry  *prometheus.Registry
	Metrics   *middleware.Metrics
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Registry:  reg,
		Metrics:   middleware.NewMetrics(reg, MetricsNamespace),
	}, nil
}

// Start connects the database and registers its shutdown with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
