package transactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/pkg/amount"
	"github.com/JaimeStill/account-lab/pkg/query"
	"github.com/JaimeStill/account-lab/pkg/repository"
)

type repo struct {
	accounts accounts.System
	db       *sql.DB
	logger   *slog.Logger
}

// New creates a transactions system backed by db. Account existence is
// checked through accts.
func New(accts accounts.System, db *sql.DB, logger *slog.Logger) System {
	return &repo{
		accounts: accts,
		db:       db,
		logger:   logger.With("system", "transactions"),
	}
}

func (r *repo) Create(ctx context.Context, sourceID int, cmd CreateCommand) (*Transaction, error) {
	destID, value, err := cmd.Validate(sourceID)
	if err != nil {
		return nil, err
	}

	for _, id := range []int{sourceID, destID} {
		if _, err := r.accounts.Find(ctx, id); err != nil {
			if errors.Is(err, accounts.ErrNotFound) {
				return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, id)
			}
			return nil, err
		}
	}

	if value.IsZero() {
		return nil, ErrInvalidParameters
	}

	q := `
		INSERT INTO transactions (source_id, destination_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, source_id, destination_id, amount, status, created_at, processed_at`

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, []any{sourceID, destID, value}, scanTransaction)
	})
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	r.logger.Info("transaction created",
		"id", t.ID, "source", t.SourceID, "destination", t.DestinationID, "amount", amount.String(t.Amount))
	return &t, nil
}

func (r *repo) List(ctx context.Context, accountID int, filter Filter) ([]Transaction, error) {
	if !accounts.ValidKey(accountID) {
		return nil, accounts.ErrInvalidKey
	}
	if err := filter.Type.validate(); err != nil {
		return nil, err
	}
	if filter.Start < 0 {
		return nil, ErrInvalidStart
	}

	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals(filter.Type.column(), accountID).
		WhereGreaterThan("id", filter.Start).
		BuildLimit(PageLimit)

	out, err := repository.QueryMany(ctx, r.db, q, args, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return out, nil
}

func (r *repo) Process(ctx context.Context, accountID int) (*ProcessResult, error) {
	if !accounts.ValidKey(accountID) {
		return nil, accounts.ErrInvalidKey
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (*ProcessResult, error) {
		var balance decimal.Decimal
		err := tx.QueryRowContext(ctx,
			`SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID,
		).Scan(&balance)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("lock account: %w", err)
		}

		pendingSQL, pendingArgs := query.NewBuilder(projection, defaultSort).
			WhereEquals("source_id", accountID).
			WhereEquals("status", string(StatusPending)).
			Build()

		pending, err := repository.QueryMany(ctx, tx, pendingSQL+" FOR UPDATE", pendingArgs, scanTransaction)
		if err != nil {
			return nil, fmt.Errorf("query pending: %w", err)
		}

		final, outcomes := Settle(balance, pending)
		return r.apply(ctx, tx, accountID, final, outcomes)
	})
	if err != nil {
		return nil, err
	}

	if result != nil {
		r.logger.Info("transactions processed",
			"account", accountID, "processed", len(result.Processed), "rejected", len(result.Rejected))
	}
	return result, nil
}

func (r *repo) apply(ctx context.Context, tx *sql.Tx, accountID int, balance decimal.Decimal, outcomes []Outcome) (*ProcessResult, error) {
	result := &ProcessResult{
		AccountID: accountID,
		Balance:   balance,
		Processed: make([]int, 0),
		Rejected:  make([]int, 0),
	}

	lastDebit := 0
	for _, o := range outcomes {
		t := o.Transaction

		if o.Status == StatusProcessed {
			err := repository.ExecExpectOne(ctx, tx, `
				UPDATE accounts
				SET balance = balance + $2, last_credit_transaction = $3, updated_at = NOW()
				WHERE id = $1`,
				t.DestinationID, t.Amount, t.ID,
			)
			if err != nil {
				return nil, fmt.Errorf("credit account %d: %w", t.DestinationID, err)
			}
			lastDebit = t.ID
			result.Processed = append(result.Processed, t.ID)
		} else {
			result.Rejected = append(result.Rejected, t.ID)
		}

		err := repository.ExecExpectOne(ctx, tx,
			`UPDATE transactions SET status = $2, processed_at = NOW() WHERE id = $1`,
			t.ID, string(o.Status),
		)
		if err != nil {
			return nil, fmt.Errorf("mark transaction %d: %w", t.ID, err)
		}
	}

	if lastDebit > 0 {
		err := repository.ExecExpectOne(ctx, tx, `
			UPDATE accounts
			SET balance = $2, last_debit_transaction = $3, updated_at = NOW()
			WHERE id = $1`,
			accountID, balance, lastDebit,
		)
		if err != nil {
			return nil, fmt.Errorf("debit account %d: %w", accountID, err)
		}
	}

	return result, nil
}
