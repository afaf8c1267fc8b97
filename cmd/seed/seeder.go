// Package main provides the seed command for populating the database with
// demo accounts and transfers. Seeders run individually or together within
// a single transaction.
package main

import (
	"context"
	"database/sql"
	"fmt"
)

// Seeder defines the interface for database seeders.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed executes the seeding logic within the provided transaction.
	Seed(ctx context.Context, tx *sql.Tx) error
}

// registry keeps seeders in registration order so dependent data is
// inserted after the rows it references.
type registry struct {
	order   []string
	seeders map[string]Seeder
}

func newRegistry(seeders ...Seeder) *registry {
	r := &registry{seeders: make(map[string]Seeder, len(seeders))}
	for _, s := range seeders {
		r.order = append(r.order, s.Name())
		r.seeders[s.Name()] = s
	}
	return r
}

func (r *registry) get(name string) (Seeder, bool) {
	s, ok := r.seeders[name]
	return s, ok
}

func (r *registry) list() []Seeder {
	result := make([]Seeder, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.seeders[name])
	}
	return result
}

// run executes the named seeders, or all of them when names is empty,
// within one transaction. Any failure rolls back everything.
func (r *registry) run(ctx context.Context, db *sql.DB, names ...string) error {
	if len(names) == 0 {
		names = r.order
	}

	selected := make([]Seeder, 0, len(names))
	for _, name := range names {
		s, ok := r.get(name)
		if !ok {
			return fmt.Errorf("seeder not found: %s", name)
		}
		selected = append(selected, s)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	for _, s := range selected {
		if err := s.Seed(ctx, tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
