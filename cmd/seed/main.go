package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"
)

// EnvDatabaseDSN supplies the connection string when --dsn is omitted.
const EnvDatabaseDSN = "DATABASE_DSN"

//go:embed seeds/*.json
var seedFiles embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dsn string

	accountSeeder := &AccountSeeder{}
	transactionSeeder := &TransactionSeeder{}
	seeders := newRegistry(accountSeeder, transactionSeeder)

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Populate the account ledger with demo data",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", "", "database connection string (default $"+EnvDatabaseDSN+")")

	runSeeders := func(cmd *cobra.Command, names ...string) error {
		db, err := openDB(cmd.Context(), dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := seeders.run(cmd.Context(), db, names...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "seeding completed successfully")
		return nil
	}

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: accountSeeder.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeeders(cmd, accountSeeder.Name())
		},
	}
	accountsCmd.Flags().StringVar(&accountSeeder.File, "file", "", "external seed file (overrides embedded)")
	accountsCmd.Flags().IntVar(&accountSeeder.Count, "count", 0, "generate this many consecutive accounts instead of reading a seed file")
	accountsCmd.Flags().IntVar(&accountSeeder.Start, "start", 1, "first generated account key")
	accountsCmd.Flags().StringVar(&accountSeeder.Balance, "balance", "1000.00", "opening balance of generated accounts")

	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: transactionSeeder.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeeders(cmd, transactionSeeder.Name())
		},
	}
	transactionsCmd.Flags().StringVar(&transactionSeeder.File, "file", "", "external seed file (overrides embedded)")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "Run every seeder in one transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeeders(cmd)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available seeders",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available seeders:")
			for _, s := range seeders.list() {
				fmt.Fprintf(out, "  - %s: %s\n", s.Name(), s.Description())
			}
		},
	}

	root.AddCommand(accountsCmd, transactionsCmd, allCmd, listCmd)
	return root
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = os.Getenv(EnvDatabaseDSN)
	}
	if dsn == "" {
		return nil, fmt.Errorf("database connection string required: use --dsn or %s", EnvDatabaseDSN)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// loadSeedFile decodes path when set, otherwise the embedded default.
func loadSeedFile(path, embedded string, v any) error {
	var content []byte
	var err error

	if path != "" {
		content, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = fs.ReadFile(seedFiles, embedded)
		if err != nil {
			return fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}
	return nil
}
