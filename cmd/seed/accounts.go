package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/pkg/amount"
)

// AccountSeed is one account entry in a seed file.
type AccountSeed struct {
	ID           int             `json:"account_id"`
	BalanceTotal json.RawMessage `json:"balance_total"`
}

type account struct {
	id      int
	balance decimal.Decimal
}

// AccountSeeder saves accounts from a seed file, or generates Count
// consecutive accounts starting at Start when Count is set.
type AccountSeeder struct {
	File    string
	Count   int
	Start   int
	Balance string
}

func (s *AccountSeeder) Name() string {
	return "accounts"
}

func (s *AccountSeeder) Description() string {
	return "Seeds ledger accounts with opening balances"
}

// Seed inserts the accounts, resetting the balance of keys that already exist.
func (s *AccountSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	rows, err := s.accounts()
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO accounts (id, balance)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET
			balance = EXCLUDED.balance,
			updated_at = NOW()`

	for _, a := range rows {
		if _, err := tx.ExecContext(ctx, query, a.id, a.balance); err != nil {
			return fmt.Errorf("save account %d: %w", a.id, err)
		}
	}
	return nil
}

func (s *AccountSeeder) accounts() ([]account, error) {
	if s.Count > 0 {
		return generateAccounts(s.Start, s.Count, s.Balance)
	}

	var seeds []AccountSeed
	if err := loadSeedFile(s.File, "seeds/accounts.json", &seeds); err != nil {
		return nil, err
	}

	rows := make([]account, 0, len(seeds))
	for _, seed := range seeds {
		if !accounts.ValidKey(seed.ID) {
			return nil, fmt.Errorf("account %d: %w", seed.ID, accounts.ErrInvalidKey)
		}
		balance, err := amount.FromJSON(seed.BalanceTotal)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", seed.ID, err)
		}
		rows = append(rows, account{id: seed.ID, balance: balance})
	}
	return rows, nil
}

func generateAccounts(start, count int, balance string) ([]account, error) {
	opening, err := amount.Parse(balance)
	if err != nil {
		return nil, fmt.Errorf("balance: %w", err)
	}

	last := start + count - 1
	if !accounts.ValidKey(start) || !accounts.ValidKey(last) {
		return nil, fmt.Errorf("accounts %d..%d: %w", start, last, accounts.ErrInvalidKey)
	}

	rows := make([]account, 0, count)
	for id := start; id <= last; id++ {
		rows = append(rows, account{id: id, balance: opening})
	}
	return rows, nil
}
