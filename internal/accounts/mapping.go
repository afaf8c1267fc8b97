package accounts

import (
	"github.com/JaimeStill/account-lab/pkg/query"
	"github.com/JaimeStill/account-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "accounts", "a").
	Project("id", "id").
	Project("balance", "balance").
	Project("last_credit_transaction", "last_credit_transaction").
	Project("last_debit_transaction", "last_debit_transaction").
	Project("created_at", "created_at").
	Project("updated_at", "updated_at")

var defaultSort = query.SortField{Field: "id"}

func scanAccount(s repository.Scanner) (Account, error) {
	var a Account
	err := s.Scan(
		&a.ID, &a.Balance,
		&a.LastCreditTransaction, &a.LastDebitTransaction,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
