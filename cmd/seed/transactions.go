package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/account-lab/internal/transactions"
)

// TransactionSeed is one pending transfer in a seed file.
type TransactionSeed struct {
	SourceID      int             `json:"source_id"`
	DestinationID json.RawMessage `json:"destination_id"`
	Amount        json.RawMessage `json:"amount"`
}

// TransactionSeeder records pending transfers between seeded accounts.
type TransactionSeeder struct {
	File string
}

func (s *TransactionSeeder) Name() string {
	return "transactions"
}

func (s *TransactionSeeder) Description() string {
	return "Seeds pending transfers between the demo accounts"
}

func (s *TransactionSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	var seeds []TransactionSeed
	if err := loadSeedFile(s.File, "seeds/transactions.json", &seeds); err != nil {
		return err
	}

	const query = `
		INSERT INTO transactions (source_id, destination_id, amount, status)
		VALUES ($1, $2, $3, $4)`

	for i, seed := range seeds {
		cmd := transactions.CreateCommand{
			DestinationID: seed.DestinationID,
			Amount:        seed.Amount,
		}
		dest, amt, err := cmd.Validate(seed.SourceID)
		if err != nil {
			return fmt.Errorf("transfer %d: %w", i, err)
		}
		if amt.IsZero() {
			return fmt.Errorf("transfer %d: %w", i, transactions.ErrInvalidParameters)
		}
		if _, err := tx.ExecContext(ctx, query, seed.SourceID, dest, amt, transactions.StatusPending); err != nil {
			return fmt.Errorf("save transfer %d: %w", i, err)
		}
	}
	return nil
}
