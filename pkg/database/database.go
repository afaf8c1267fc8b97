package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/account-lab/pkg/lifecycle"
)

// System owns the connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
}

type database struct {
	conn       *sql.DB
	cfg        *Config
	migrations fs.FS
	logger     *slog.Logger
}

// New opens a pool for cfg. No connection is made until Start.
// When cfg.Migrate is set, migrations is applied during Start; it may be nil otherwise.
func New(cfg *Config, migrations fs.FS, logger *slog.Logger) (System, error) {
	conn, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:       conn,
		cfg:        cfg,
		migrations: migrations,
		logger:     logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

// Start verifies connectivity, applies migrations when enabled and closes
// the pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.logger.Info("database connected", "host", d.cfg.Host, "name", d.cfg.Name)

	if d.cfg.Migrate {
		if d.migrations == nil {
			return fmt.Errorf("migrate enabled without migration source")
		}
		if err := Migrate(d.conn, d.migrations, d.cfg.Name, d.logger); err != nil {
			return err
		}
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
			return
		}
		d.logger.Info("database connection closed")
	})

	return nil
}
