package accounts

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/account-lab/pkg/amount"
	"github.com/JaimeStill/account-lab/pkg/pagination"
	"github.com/JaimeStill/account-lab/pkg/query"
	"github.com/JaimeStill/account-lab/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an accounts system backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "accounts"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Account], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	accounts, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}

	result := pagination.NewPageResult(accounts, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id int) (*Account, error) {
	if !ValidKey(id) {
		return nil, ErrInvalidKey
	}

	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("id", id)

	account, err := repository.QueryOne(ctx, r.db, q, args, scanAccount)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &account, nil
}

func (r *repo) Create(ctx context.Context, id int, cmd CreateCommand) (*Account, error) {
	if !ValidKey(id) {
		return nil, ErrInvalidKey
	}

	balance, err := amount.FromJSON(cmd.BalanceTotal)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	q := `
		INSERT INTO accounts (id, balance)
		VALUES ($1, $2)
		RETURNING id, balance, last_credit_transaction, last_debit_transaction, created_at, updated_at`

	account, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Account, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, balance}, scanAccount)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("account created", "id", account.ID, "balance", amount.String(account.Balance))
	return &account, nil
}
