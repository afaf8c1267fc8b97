package api

import (
	"github.com/JaimeStill/account-lab/internal/accounts"
	"github.com/JaimeStill/account-lab/internal/transactions"
)

// Domain holds the domain systems served by the API.
type Domain struct {
	Accounts     accounts.System
	Transactions transactions.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	accountsSys := accounts.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	transactionsSys := transactions.New(
		accountsSys,
		runtime.Database.Connection(),
		runtime.Logger,
	)

	return &Domain{
		Accounts:     accountsSys,
		Transactions: transactionsSys,
	}
}
